package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeldWriterFlushesOnRelease(t *testing.T) {
	var dst bytes.Buffer
	out := &heldWriter{dst: &dst, hold: true}
	logger := newLogger(out)

	logger.Infof("Session %s", "abc")
	assert.Empty(t, dst.String(), "nothing reaches the terminal while held")

	out.release()
	assert.Contains(t, dst.String(), "Session abc")

	logger.Warnf("after %d", 1)
	assert.Contains(t, dst.String(), "after 1")
	assert.Zero(t, out.buf.Len())
}

func TestHeldWriterPassesThrough(t *testing.T) {
	var dst bytes.Buffer
	out := &heldWriter{dst: &dst}

	newLogger(out).Info("direct")
	assert.Contains(t, dst.String(), "direct")
}
