package game

import (
	"testing"

	"snake3d/game/entity"
	"snake3d/game/types"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newTestGame(t *testing.T, seed uint64) *Game {
	t.Helper()
	g, err := NewGame(Options{GridSize: 10, TickInterval: 0.5, Seed: seed})
	require.NoError(t, err)
	return g
}

func setSnake(t *testing.T, g *Game, dir mgl32.Vec3, cells ...mgl32.Vec3) {
	t.Helper()
	s := entity.NewSnake(g.GridSize*g.GridSize*g.GridSize, dir)
	for _, c := range cells {
		require.NoError(t, s.PushHead(c))
	}
	g.snake = s
}

func assertNoOverlap(t *testing.T, s *entity.Snake) {
	t.Helper()
	cells := s.Cells()
	for i := range cells {
		for j := i + 1; j < len(cells); j++ {
			require.False(t, types.NearEq(cells[i], cells[j]), "cells %d and %d overlap at %v", i, j, cells[i])
		}
	}
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t, 1)

	assert.Equal(t, 0, g.Score)
	assert.False(t, g.GameOver)
	assert.Equal(t, []mgl32.Vec3{{9, 5, 5}, {8, 5, 5}, {7, 5, 5}, {6, 5, 5}}, g.GetSnake().Cells())
	assert.False(t, g.GetSnake().Contains(g.GetFood()))

	_, err := NewGame(Options{GridSize: 3})
	assert.Error(t, err)
}

func TestBasicGrowth(t *testing.T) {
	g := newTestGame(t, 1)
	g.food = mgl32.Vec3{5, 5, 5}

	res, err := g.Update(mgl32.Vec3{}, 0.5)
	require.NoError(t, err)

	assert.True(t, res.Ticked)
	assert.True(t, res.Ate)
	assert.False(t, res.Died)
	assert.Equal(t, 1, g.Score)
	assert.Equal(t, 5, g.GetSnake().Len())
	assert.Equal(t, mgl32.Vec3{5, 5, 5}, g.GetSnake().Head())
	for _, c := range g.GetSnake().Cells() {
		assert.False(t, types.NearEq(c, g.GetFood()))
	}
	assertNoOverlap(t, g.GetSnake())
}

func TestWrapMovement(t *testing.T) {
	g := newTestGame(t, 1)
	setSnake(t, g, types.LEFT.ToVec(),
		mgl32.Vec3{3, 5, 5}, mgl32.Vec3{2, 5, 5}, mgl32.Vec3{1, 5, 5}, mgl32.Vec3{0, 5, 5})
	g.food = mgl32.Vec3{1, 1, 1}

	res, err := g.Tick()
	require.NoError(t, err)
	assert.True(t, res.Ticked)
	assert.False(t, res.Ate)
	assert.Equal(t, mgl32.Vec3{9, 5, 5}, g.GetSnake().Head())
	assert.Equal(t, 4, g.GetSnake().Len())
}

func TestReversalRejected(t *testing.T) {
	g := newTestGame(t, 1)
	g.GetSnake().Direction = mgl32.Vec3{1, 0, 0}

	assert.False(t, g.QueueDirection(mgl32.Vec3{-1, 0, 0}))
	assert.Empty(t, g.PendingDirections())
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, 1)
	// tail first; the head at x=0 wraps onto the third segment at x=9
	cells := []mgl32.Vec3{{9, 3, 5}, {9, 4, 5}, {9, 5, 5}, {9, 6, 5}, {0, 6, 5}, {0, 5, 5}}
	setSnake(t, g, types.LEFT.ToVec(), cells...)
	g.food = mgl32.Vec3{8, 8, 8}
	assertNoOverlap(t, g.GetSnake())
	require.Equal(t, cells[2], g.collisionMgr.NextHead(g.GetSnake()))

	res, err := g.Update(mgl32.Vec3{}, 0.5)
	require.NoError(t, err)
	assert.True(t, res.Died)
	assert.False(t, res.Won)
	assert.True(t, g.GameOver)
	assert.Equal(t, cells, g.GetSnake().Cells(), "snake keeps its last valid shape")
	assert.Equal(t, 0, g.Score)

	// terminal state is sticky
	res, err = g.Update(types.UP.ToVec(), 1)
	require.NoError(t, err)
	assert.Equal(t, TickResult{}, res)
	assert.True(t, g.GameOver)
	assert.Equal(t, cells, g.GetSnake().Cells())
	assert.Empty(t, g.PendingDirections())
}

func TestSelfCollisionDropsQueuedTurns(t *testing.T) {
	g := newTestGame(t, 1)
	cells := []mgl32.Vec3{{0, 3, 5}, {0, 4, 5}, {1, 4, 5}, {1, 5, 5}, {0, 5, 5}}
	setSnake(t, g, types.LEFT.ToVec(), cells...)
	g.food = mgl32.Vec3{8, 8, 8}
	require.True(t, g.QueueDirection(types.DOWN.ToVec()))
	require.True(t, g.QueueDirection(types.BACK.ToVec()))

	res, err := g.Tick()
	require.NoError(t, err)
	assert.True(t, res.Died, "turning down runs into the body")
	assert.Equal(t, cells, g.GetSnake().Cells())
	assert.Empty(t, g.PendingDirections())
}

// fillOrder walks every cell of an n³ grid so consecutive cells are
// neighbours.
func fillOrder(n int) []mgl32.Vec3 {
	var path []mgl32.Vec3
	row := 0
	for z := 0; z < n; z++ {
		for i := 0; i < n; i++ {
			y := i
			if z%2 == 1 {
				y = n - 1 - i
			}
			for j := 0; j < n; j++ {
				x := j
				if row%2 == 0 {
					x = n - 1 - j
				}
				path = append(path, mgl32.Vec3{float32(x), float32(y), float32(z)})
			}
			row++
		}
	}
	return path
}

func TestFillingTheGridWins(t *testing.T) {
	g, err := NewGame(Options{GridSize: 4, TickInterval: 0.5, Seed: 1})
	require.NoError(t, err)

	path := fillOrder(4)
	require.Len(t, path, 64)
	last := path[len(path)-1]
	dir := last.Sub(path[len(path)-2])
	require.Equal(t, float32(1), dir.Len())

	setSnake(t, g, dir, path[:len(path)-1]...)
	g.food = last
	require.Equal(t, 63, g.GetSnake().Len())

	res, err := g.Update(mgl32.Vec3{}, 0.5)
	require.NoError(t, err)
	assert.True(t, res.Ate)
	assert.True(t, res.Won)
	assert.False(t, res.Died)
	assert.True(t, g.GameOver)
	assert.True(t, g.Won)
	assert.Equal(t, 1, g.Score)
	assert.Equal(t, 64, g.GetSnake().Len())
	assert.Equal(t, last, g.GetSnake().Head())
	assertNoOverlap(t, g.GetSnake())

	res, err = g.Update(types.UP.ToVec(), 1)
	require.NoError(t, err)
	assert.Equal(t, TickResult{}, res)
	assert.Equal(t, 64, g.GetSnake().Len())
}

func TestTickTimer(t *testing.T) {
	g := newTestGame(t, 1)
	g.food = mgl32.Vec3{0, 0, 0}

	res, err := g.Update(mgl32.Vec3{}, 0.3)
	require.NoError(t, err)
	assert.False(t, res.Ticked)
	assert.Equal(t, mgl32.Vec3{6, 5, 5}, g.GetSnake().Head())

	res, err = g.Update(mgl32.Vec3{}, 0.3)
	require.NoError(t, err)
	assert.True(t, res.Ticked)
	assert.Equal(t, mgl32.Vec3{5, 5, 5}, g.GetSnake().Head())
	assert.Equal(t, float32(0), g.timer, "timer resets instead of carrying the overshoot")
	assert.Equal(t, 1, g.Steps())
}

func TestOneQueuedTurnPerTick(t *testing.T) {
	g := newTestGame(t, 1)
	g.food = mgl32.Vec3{0, 0, 0}

	_, err := g.Update(types.UP.ToVec(), 0.1)
	require.NoError(t, err)
	_, err = g.Update(types.BACK.ToVec(), 0.1)
	require.NoError(t, err)
	assert.Len(t, g.PendingDirections(), 2)

	_, err = g.Tick()
	require.NoError(t, err)
	assert.Equal(t, types.UP.ToVec(), g.GetSnake().Direction)
	assert.Equal(t, mgl32.Vec3{6, 6, 5}, g.GetSnake().Head())

	_, err = g.Tick()
	require.NoError(t, err)
	assert.Equal(t, types.BACK.ToVec(), g.GetSnake().Direction)
	assert.Equal(t, mgl32.Vec3{6, 6, 6}, g.GetSnake().Head())
	assert.Empty(t, g.PendingDirections())
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	dirs := []types.Direction{types.NONE, types.LEFT, types.RIGHT, types.UP, types.DOWN, types.FORWARD, types.BACK}

	for seed := uint64(1); seed <= 25; seed++ {
		g := newTestGame(t, seed)
		rng := rand.New(rand.NewSource(seed * 31))

		for frame := 0; frame < 2000 && !g.GameOver; frame++ {
			before := g.GetSnake().Cells()
			score := g.Score

			res, err := g.Update(dirs[rng.Intn(len(dirs))].ToVec(), 0.25)
			require.NoError(t, err)

			s := g.GetSnake()
			switch {
			case res.Died:
				assert.Equal(t, before, s.Cells())
				assert.Equal(t, score, g.Score)
			case res.Ate:
				assert.Equal(t, len(before)+1, s.Len())
				assert.Equal(t, score+1, g.Score)
			default:
				assert.Equal(t, len(before), s.Len())
			}
			if !g.GameOver {
				assertNoOverlap(t, s)
			}
			assert.False(t, s.Contains(g.GetFood()), "fruit placed on the snake")
			for _, c := range s.Cells() {
				for axis := 0; axis < 3; axis++ {
					assert.True(t, c[axis] >= 0 && c[axis] < float32(g.GridSize))
				}
			}
		}
	}
}

func TestSameSeedSameGame(t *testing.T) {
	play := func() (int, []mgl32.Vec3, mgl32.Vec3) {
		g := newTestGame(t, 42)
		inputs := []types.Direction{types.UP, types.FORWARD, types.LEFT, types.DOWN, types.BACK}
		for i := 0; i < 60 && !g.GameOver; i++ {
			_, err := g.Update(inputs[i%len(inputs)].ToVec(), 0.5)
			require.NoError(t, err)
		}
		return g.Score, g.GetSnake().Cells(), g.GetFood()
	}

	s1, c1, f1 := play()
	s2, c2, f2 := play()
	assert.Equal(t, s1, s2)
	assert.Equal(t, c1, c2)
	assert.Equal(t, f1, f2)
}
