package ui

import (
	"fmt"

	"snake3d/config"
	"snake3d/game"
	"snake3d/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	backgroundColor = rl.SkyBlue
	gridColor       = rl.White
	snakeColor      = rl.Red
	fruitColor      = rl.Blue
	gameOverColor   = rl.Red
)

const hudFontSize = 20

// Renderer is the raylib frontend: a 3D window with an orbit-able camera.
type Renderer struct {
	camera       rl.Camera3D
	screenWidth  int32
	screenHeight int32
}

func NewRenderer(cfg config.WindowConfig, gridSize int) *Renderer {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(cfg.Width, cfg.Height, cfg.Title)
	rl.DisableCursor()
	if cfg.Borderless {
		rl.ToggleBorderlessWindowed()
	}

	half := float32(gridSize / 2)
	r := &Renderer{
		camera: rl.Camera3D{
			Position:   rl.NewVector3(0, half+2, half+2),
			Target:     rl.NewVector3(0, 0, 0),
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       100,
			Projection: rl.CameraPerspective,
		},
	}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) ShouldClose() bool  { return rl.WindowShouldClose() }
func (r *Renderer) FrameTime() float32 { return rl.GetFrameTime() }
func (r *Renderer) Close()             { rl.CloseWindow() }

func (r *Renderer) PollInput() Input {
	if rl.IsKeyPressed(rl.KeyF) {
		rl.ToggleBorderlessWindowed()
	}
	return Input{
		Direction: keyboardDirection().ToVec(),
		Copy:      rl.IsKeyPressed(rl.KeyC),
	}
}

// keyboardDirection reports at most one movement key edge per frame.
func keyboardDirection() types.Direction {
	switch {
	case rl.IsKeyPressed(rl.KeyW):
		return types.FORWARD
	case rl.IsKeyPressed(rl.KeyA):
		return types.LEFT
	case rl.IsKeyPressed(rl.KeyS):
		return types.BACK
	case rl.IsKeyPressed(rl.KeyD):
		return types.RIGHT
	case rl.IsKeyPressed(rl.KeyUp):
		return types.UP
	case rl.IsKeyPressed(rl.KeyDown):
		return types.DOWN
	}
	return types.NONE
}

// drawing and mode3D pair raylib's Begin/End calls around fn.
func drawing(fn func()) {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	fn()
}

func mode3D(camera rl.Camera3D, fn func()) {
	rl.BeginMode3D(camera)
	defer rl.EndMode3D()
	fn()
}

func (r *Renderer) Draw(g *game.Game, best int) {
	r.UpdateDimensions()
	if g.GameOver {
		r.drawGameOver(g)
		return
	}

	// TODO: camera controls that don't share keys with movement
	if rl.IsKeyDown(rl.KeySpace) {
		rl.UpdateCamera(&r.camera, rl.CameraOrbital)
	}

	drawing(func() {
		rl.ClearBackground(backgroundColor)
		mode3D(r.camera, func() {
			r.drawGrid(g)
		})
		r.drawHUD(g, best)
	})
}

func (r *Renderer) drawGrid(g *game.Game) {
	half := float32(g.GridSize / 2)
	food := g.GetFood()
	cells := g.GetSnake().Cells()

	rl.DrawCube(toWorld(food, half), 1, 1, 1, fruitColor)
	for _, c := range cells {
		rl.DrawCube(toWorld(c, half), 1, 1, 1, snakeColor)
	}

	// flat "shadows" on the floor and ceiling so depth is readable
	for _, c := range cells {
		drawShadow(c, half, snakeColor)
	}
	drawShadow(food, half, fruitColor)

	size := float32(g.GridSize)
	rl.DrawCubeWires(rl.NewVector3(0, 0, 0), size, size, size, gridColor)
}

func toWorld(c mgl32.Vec3, half float32) rl.Vector3 {
	return rl.NewVector3(c[0]-half, c[1]-half, c[2]-half)
}

func drawShadow(c mgl32.Vec3, half float32, color rl.Color) {
	bottom := rl.NewVector3(c[0]-half, -half-1, c[2]-half)
	top := rl.NewVector3(c[0]-half, half, c[2]-half)
	rl.DrawCubeWires(bottom, 1, 0, 1, color)
	rl.DrawCubeWires(top, 1, 0, 1, color)
}

func (r *Renderer) drawHUD(g *game.Game, best int) {
	text := fmt.Sprintf("Score: %d", g.Score)
	w := rl.MeasureText(text, hudFontSize)
	rl.DrawText(text, r.screenWidth/2-w/2, 10, hudFontSize, rl.White)

	if best > 0 {
		text = fmt.Sprintf("Best: %d", best)
		w = rl.MeasureText(text, hudFontSize)
		rl.DrawText(text, r.screenWidth/2-w/2, 10+hudFontSize+4, hudFontSize, rl.White)
	}

	rl.DrawFPS(10, 10)
}

func (r *Renderer) drawGameOver(g *game.Game) {
	drawing(func() {
		rl.ClearBackground(gameOverColor)

		text := "Game Over"
		if g.Won {
			text = "Grid Filled!"
		}
		fontSize := (r.screenWidth + r.screenHeight) / int32(len(text)*2)
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, (r.screenWidth-w)/2, 50, fontSize, rl.White)

		text = fmt.Sprintf("Score: %d", g.Score)
		fontSize = (r.screenWidth + r.screenHeight) / int32(len(text)*3)
		w = rl.MeasureText(text, fontSize)
		rl.DrawText(text, (r.screenWidth-w)/2, r.screenHeight/2, fontSize, rl.White)

		text = "Press C to copy your score"
		w = rl.MeasureText(text, hudFontSize)
		rl.DrawText(text, (r.screenWidth-w)/2, r.screenHeight-2*hudFontSize, hudFontSize, rl.White)
	})
}
