package types

import "github.com/go-gl/mathgl/mgl32"

// Direction is one of the six axis-aligned movement directions.
type Direction int

const (
	NONE    Direction = iota // 0
	LEFT                     // -X
	RIGHT                    // +X
	UP                       // +Y
	DOWN                     // -Y
	FORWARD                  // -Z
	BACK                     // +Z
)

// ToVec converts a Direction into a unit step vector.
func (d Direction) ToVec() mgl32.Vec3 {
	switch d {
	case LEFT:
		return mgl32.Vec3{-1, 0, 0}
	case RIGHT:
		return mgl32.Vec3{1, 0, 0}
	case UP:
		return mgl32.Vec3{0, 1, 0}
	case DOWN:
		return mgl32.Vec3{0, -1, 0}
	case FORWARD:
		return mgl32.Vec3{0, 0, -1}
	case BACK:
		return mgl32.Vec3{0, 0, 1}
	default:
		return mgl32.Vec3{}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case LEFT:
		return RIGHT
	case RIGHT:
		return LEFT
	case UP:
		return DOWN
	case DOWN:
		return UP
	case FORWARD:
		return BACK
	case BACK:
		return FORWARD
	default:
		return NONE
	}
}

func (d Direction) String() string {
	switch d {
	case LEFT:
		return "-X"
	case RIGHT:
		return "+X"
	case UP:
		return "+Y"
	case DOWN:
		return "-Y"
	case FORWARD:
		return "-Z"
	case BACK:
		return "+Z"
	default:
		return "none"
	}
}

// DirectionOf interprets a step vector as one of the cardinal directions,
// NONE for the zero vector.
func DirectionOf(v mgl32.Vec3) Direction {
	switch {
	case v[0] < -0.5:
		return LEFT
	case v[0] > 0.5:
		return RIGHT
	case v[1] > 0.5:
		return UP
	case v[1] < -0.5:
		return DOWN
	case v[2] < -0.5:
		return FORWARD
	case v[2] > 0.5:
		return BACK
	default:
		return NONE
	}
}
