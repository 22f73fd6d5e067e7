package entity

import (
	"errors"

	"snake3d/game/types"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrSnakeOverflow  = errors.New("snake overflow")
	ErrSnakeUnderflow = errors.New("snake underflow")
)

// Snake is a fixed-capacity double-ended queue of grid cells.
// Index 0 is the tail, Len()-1 is the head.
type Snake struct {
	points []mgl32.Vec3
	begin  int
	size   int

	Direction mgl32.Vec3

	lastTail    mgl32.Vec3
	hasLastTail bool
}

// NewSnake creates an empty snake able to hold capacity cells.
func NewSnake(capacity int, dir mgl32.Vec3) *Snake {
	return &Snake{
		points:    make([]mgl32.Vec3, capacity),
		Direction: dir,
	}
}

// NewStartingSnake lays out the opening body: length cells in a row centred
// on the grid, heading towards -X.
func NewStartingSnake(gridSize, length int) (*Snake, error) {
	s := NewSnake(gridSize*gridSize*gridSize, types.LEFT.ToVec())
	c := gridSize / 2
	for i := 0; i < length; i++ {
		cell := types.Wrap(mgl32.Vec3{float32(c + length - i), float32(c), float32(c)}, gridSize)
		if err := s.PushHead(cell); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Snake) index(i int) int {
	n := len(s.points)
	return ((s.begin+i)%n + n) % n
}

func (s *Snake) PushHead(p mgl32.Vec3) error {
	if s.size >= len(s.points) {
		return ErrSnakeOverflow
	}
	s.points[s.index(s.size)] = p
	s.size++
	return nil
}

func (s *Snake) PushTail(p mgl32.Vec3) error {
	if s.size >= len(s.points) {
		return ErrSnakeOverflow
	}
	s.begin = s.index(-1)
	s.points[s.begin] = p
	s.size++
	return nil
}

// Pop removes and returns the tail.
func (s *Snake) Pop() (mgl32.Vec3, error) {
	if s.size == 0 {
		return mgl32.Vec3{}, ErrSnakeUnderflow
	}
	p := s.points[s.begin]
	s.begin = s.index(1)
	s.size--
	s.lastTail = p
	s.hasLastTail = true
	return p, nil
}

// Head returns the most recently pushed cell, or the zero vector when empty.
func (s *Snake) Head() mgl32.Vec3 {
	if s.size == 0 {
		return mgl32.Vec3{}
	}
	return s.points[s.index(s.size-1)]
}

func (s *Snake) Tail() mgl32.Vec3 {
	if s.size == 0 {
		return mgl32.Vec3{}
	}
	return s.points[s.begin]
}

// At returns the i-th live cell counted from the tail.
func (s *Snake) At(i int) mgl32.Vec3 {
	return s.points[s.index(i)]
}

func (s *Snake) Len() int { return s.size }
func (s *Snake) Cap() int { return len(s.points) }

// Cells copies the live cells from tail to head.
func (s *Snake) Cells() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, s.size)
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

func (s *Snake) Contains(p mgl32.Vec3) bool {
	for i := 0; i < s.size; i++ {
		if types.NearEq(p, s.At(i)) {
			return true
		}
	}
	return false
}

// Grow adds one segment behind the tail. After a move it re-attaches the
// cell the tail just left; before the first move it extends one step
// opposite to the heading.
func (s *Snake) Grow(gridSize int) error {
	if s.hasLastTail {
		if err := s.PushTail(s.lastTail); err != nil {
			return err
		}
		s.hasLastTail = false
		return nil
	}
	return s.PushTail(types.Wrap(s.Tail().Sub(s.Direction), gridSize))
}
