package game

import (
	"errors"
	"fmt"

	"snake3d/game/entity"
	"snake3d/game/manager"
	"snake3d/game/types"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

type Options struct {
	GridSize     int
	TickInterval float32 // seconds
	Seed         uint64
	Logger       *zap.SugaredLogger // nil discards
}

func DefaultOptions() Options {
	return Options{
		GridSize:     types.DefaultGridSize,
		TickInterval: types.DefaultTickInterval,
	}
}

// TickResult tells the caller what a frame changed.
type TickResult struct {
	Ticked bool
	Ate    bool
	Died   bool
	Won    bool // the snake fills every cell
}

type Game struct {
	GridSize     int
	TickInterval float32
	Score        int
	GameOver     bool
	Won          bool

	snake    *entity.Snake
	food     mgl32.Vec3
	dirQueue entity.DirQueue
	timer    float32
	steps    int

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	logger       *zap.SugaredLogger
}

func NewGame(opts Options) (*Game, error) {
	if opts.GridSize <= 0 {
		opts.GridSize = types.DefaultGridSize
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = types.DefaultTickInterval
	}
	if opts.GridSize < types.InitialSnakeLength {
		return nil, fmt.Errorf("grid size %d cannot hold a snake of length %d", opts.GridSize, types.InitialSnakeLength)
	}

	snake, err := entity.NewStartingSnake(opts.GridSize, types.InitialSnakeLength)
	if err != nil {
		return nil, fmt.Errorf("place snake: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	collisionMgr := manager.NewCollisionManager(opts.GridSize)
	g := &Game{
		GridSize:     opts.GridSize,
		TickInterval: opts.TickInterval,
		snake:        snake,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(opts.GridSize, opts.Seed, collisionMgr),
		logger:       logger,
	}

	if g.food, err = g.foodMgr.GenerateFood(g.snake); err != nil {
		return nil, fmt.Errorf("place fruit: %w", err)
	}
	return g, nil
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() mgl32.Vec3 {
	return g.food
}

// Steps is the number of simulation ticks run so far.
func (g *Game) Steps() int {
	return g.steps
}

// PendingDirections returns the queued turns, oldest first.
func (g *Game) PendingDirections() []mgl32.Vec3 {
	return g.dirQueue.Items()
}

// QueueDirection offers a turn from the player. Zero, repeated and reversing
// turns are dropped.
func (g *Game) QueueDirection(dir mgl32.Vec3) bool {
	if g.GameOver {
		return false
	}
	return g.dirQueue.Offer(dir, g.snake.Direction)
}

// Update runs one frame: queue the input, advance the timer and run a
// simulation step once the tick interval has elapsed.
func (g *Game) Update(input mgl32.Vec3, dt float32) (TickResult, error) {
	if g.GameOver {
		return TickResult{}, nil
	}

	g.QueueDirection(input)

	g.timer += dt
	if g.timer < g.TickInterval {
		return TickResult{}, nil
	}
	g.timer = 0

	return g.Tick()
}

// Tick runs a single simulation step regardless of the timer.
func (g *Game) Tick() (TickResult, error) {
	res := TickResult{Ticked: true}
	if g.GameOver {
		return TickResult{}, nil
	}
	g.steps++

	if dir, ok := g.dirQueue.PopFront(); ok {
		g.snake.Direction = dir
	}

	newHead := g.collisionMgr.NextHead(g.snake)
	if g.collisionMgr.IsSelfCollision(newHead, g.snake) {
		g.GameOver = true
		g.dirQueue.Clear()
		res.Died = true
		g.logger.Infow("Self collision", "cell", newHead, "steps", g.steps, "score", g.Score)
		return res, nil
	}

	if _, err := g.snake.Pop(); err != nil {
		return res, fmt.Errorf("move tail: %w", err)
	}
	if err := g.snake.PushHead(newHead); err != nil {
		return res, fmt.Errorf("move head: %w", err)
	}

	if g.collisionMgr.IsFoodCollision(newHead, g.food) {
		res.Ate = true
		g.Score++
		if err := g.snake.Grow(g.GridSize); err != nil {
			return res, fmt.Errorf("grow: %w", err)
		}
		food, err := g.foodMgr.GenerateFood(g.snake)
		if errors.Is(err, manager.ErrGridFull) {
			g.GameOver = true
			g.Won = true
			g.dirQueue.Clear()
			res.Won = true
			g.logger.Infow("Grid filled", "steps", g.steps, "score", g.Score)
			return res, nil
		}
		if err != nil {
			return res, fmt.Errorf("place fruit: %w", err)
		}
		g.food = food
	}

	return res, nil
}
