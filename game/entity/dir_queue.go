package entity

import (
	"snake3d/game/types"

	"github.com/go-gl/mathgl/mgl32"
)

// DirQueue buffers pending turns, oldest first. One entry is consumed per tick.
type DirQueue struct {
	items []mgl32.Vec3
}

func (q *DirQueue) Append(dir mgl32.Vec3) {
	q.items = append(q.items, dir)
}

func (q *DirQueue) PopFront() (mgl32.Vec3, bool) {
	if len(q.items) == 0 {
		return mgl32.Vec3{}, false
	}
	dir := q.items[0]
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = q.items[:0:0]
	}
	return dir, true
}

// LastOr returns the last queued direction, or def when the queue is empty.
func (q *DirQueue) LastOr(def mgl32.Vec3) mgl32.Vec3 {
	if len(q.items) == 0 {
		return def
	}
	return q.items[len(q.items)-1]
}

// Offer queues dir unless it is zero, repeats the last accepted direction,
// or reverses it. current is the snake's live direction.
func (q *DirQueue) Offer(dir, current mgl32.Vec3) bool {
	if types.IsZero(dir) {
		return false
	}
	last := q.LastOr(current)
	if types.NearEq(dir, last) || types.NearEq(dir, last.Mul(-1)) {
		return false
	}
	q.Append(dir)
	return true
}

func (q *DirQueue) Len() int { return len(q.items) }

// Items returns a copy of the pending directions.
func (q *DirQueue) Items() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(q.items))
	copy(out, q.items)
	return out
}

func (q *DirQueue) Clear() {
	q.items = nil
}
