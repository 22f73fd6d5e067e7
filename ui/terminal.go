package ui

import (
	"fmt"
	"time"
	"unicode"

	"snake3d/game"
	"snake3d/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

const terminalFrameInterval = time.Second / 60

var (
	styleText  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleFrame = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSnake = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleHead  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleFruit = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleOver  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
)

// Terminal draws the grid as three orthographic projections.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   bool
	last   time.Time
}

func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 64),
		last:   time.Now(),
	}
	go t.pollEvents()
	return t, nil
}

// pollEvents forwards screen events until the screen is finalized.
func (t *Terminal) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			close(t.events)
			return
		}
		select {
		case t.events <- ev:
		default:
		}
	}
}

func (t *Terminal) ShouldClose() bool { return t.quit }

// FrameTime waits for the next frame slot and returns the elapsed seconds.
func (t *Terminal) FrameTime() float32 {
	now := time.Now()
	if wait := terminalFrameInterval - now.Sub(t.last); wait > 0 {
		time.Sleep(wait)
		now = time.Now()
	}
	dt := now.Sub(t.last)
	t.last = now
	return float32(dt.Seconds())
}

func (t *Terminal) PollInput() Input {
	var in Input
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				t.quit = true
				return in
			}
			t.handleEvent(ev, &in)
		default:
			return in
		}
	}
}

func (t *Terminal) handleEvent(ev tcell.Event, in *Input) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		dir := types.NONE
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			t.quit = true
		case tcell.KeyUp:
			dir = types.UP
		case tcell.KeyDown:
			dir = types.DOWN
		case tcell.KeyRune:
			switch unicode.ToLower(ev.Rune()) {
			case 'w':
				dir = types.FORWARD
			case 'a':
				dir = types.LEFT
			case 's':
				dir = types.BACK
			case 'd':
				dir = types.RIGHT
			case 'c':
				in.Copy = true
			case 'q':
				t.quit = true
			}
		}
		// one movement edge per frame, like the window frontend
		if dir != types.NONE && types.IsZero(in.Direction) {
			in.Direction = dir.ToVec()
		}
	}
}

func (t *Terminal) Draw(g *game.Game, best int) {
	t.screen.Clear()
	if g.GameOver {
		t.drawGameOver(g)
		t.screen.Show()
		return
	}

	snake := g.GetSnake()
	heading := types.DirectionOf(snake.Direction).String()
	for _, d := range g.PendingDirections() {
		heading += ">" + types.DirectionOf(d).String()
	}
	t.drawText(0, 0, styleText, fmt.Sprintf("Score: %d  Best: %d  Heading: %s", g.Score, best, heading))
	t.drawText(0, 1, styleFrame, fmt.Sprintf("Length %d/%d  Step %d  WASD/arrows move, q quits",
		snake.Len(), snake.Cap(), g.Steps()))

	n := g.GridSize
	panelW := 2*n + 2
	// top view: X across, Z down
	t.drawPanel(0, 3, n, "top (x,z)", g, func(c mgl32.Vec3) (int, int) { return int(c[0]), int(c[2]) })
	// front view: X across, Y up
	t.drawPanel(panelW+2, 3, n, "front (x,y)", g, func(c mgl32.Vec3) (int, int) { return int(c[0]), n - 1 - int(c[1]) })
	// side view: Z across, Y up
	t.drawPanel(2*(panelW+2), 3, n, "side (z,y)", g, func(c mgl32.Vec3) (int, int) { return int(c[2]), n - 1 - int(c[1]) })

	t.screen.Show()
}

func (t *Terminal) drawPanel(x0, y0, n int, label string, g *game.Game, project func(mgl32.Vec3) (int, int)) {
	t.drawText(x0, y0, styleFrame, label)
	top := y0 + 1
	for i := 0; i < 2*n+2; i++ {
		t.screen.SetContent(x0+i, top, '-', nil, styleFrame)
		t.screen.SetContent(x0+i, top+n+1, '-', nil, styleFrame)
	}
	for j := 0; j < n; j++ {
		t.screen.SetContent(x0, top+1+j, '|', nil, styleFrame)
		t.screen.SetContent(x0+2*n+1, top+1+j, '|', nil, styleFrame)
	}

	plot := func(c mgl32.Vec3, r rune, style tcell.Style) {
		col, row := project(c)
		t.screen.SetContent(x0+1+2*col, top+1+row, r, nil, style)
	}

	snake := g.GetSnake()
	for i := 0; i < snake.Len()-1; i++ {
		plot(snake.At(i), 'o', styleSnake)
	}
	plot(g.GetFood(), '*', styleFruit)
	plot(snake.Head(), '@', styleHead)
}

func (t *Terminal) drawGameOver(g *game.Game) {
	w, h := t.screen.Size()
	title := "Game Over"
	if g.Won {
		title = "Grid Filled!"
	}
	lines := []string{
		title,
		fmt.Sprintf("Score: %d", g.Score),
		"c copies the score, q quits",
	}
	for i, line := range lines {
		t.drawText((w-len(line))/2, h/2-1+i, styleOver, line)
	}
}

func (t *Terminal) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *Terminal) Close() {
	t.screen.Fini()
}
