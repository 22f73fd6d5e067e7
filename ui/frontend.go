package ui

import (
	"fmt"

	"snake3d/config"
	"snake3d/game"

	"github.com/atotto/clipboard"
	"github.com/go-gl/mathgl/mgl32"
)

// Input is what a frontend collected during one frame.
type Input struct {
	Direction mgl32.Vec3 // zero when no movement key was pressed
	Copy      bool       // copy the score to the clipboard
}

// Frontend owns the window or terminal, polls input and draws the game.
type Frontend interface {
	ShouldClose() bool
	FrameTime() float32
	PollInput() Input
	Draw(g *game.Game, best int)
	Close()
}

// New opens the frontend named in cfg.
func New(cfg config.Config) (Frontend, error) {
	switch cfg.Frontend {
	case config.FrontendRaylib:
		return NewRenderer(cfg.Window, cfg.GridSize), nil
	case config.FrontendTerminal:
		return NewTerminal()
	default:
		return nil, fmt.Errorf("unknown frontend %q", cfg.Frontend)
	}
}

func FinalScoreLine(score int) string {
	return fmt.Sprintf("Final Score: %d", score)
}

// CopyScore puts the final score line on the system clipboard.
func CopyScore(score int) error {
	return clipboard.WriteAll(FinalScoreLine(score))
}
