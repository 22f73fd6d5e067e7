package types

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Grid defaults
const (
	DefaultGridSize     = 10
	DefaultTickInterval = 0.5 // seconds between simulation steps
	InitialSnakeLength  = 4

	nearEqThreshold = 0.01
)

// NearEq reports whether two cells are the same grid position.
// Cells are integral but stored as float32, so equality goes through the
// squared distance instead of ==.
func NearEq(a, b mgl32.Vec3) bool {
	d := a.Sub(b)
	return d.Dot(d) < nearEqThreshold
}

// IsZero reports whether v is the zero direction.
func IsZero(v mgl32.Vec3) bool {
	return NearEq(v, mgl32.Vec3{})
}

// Wrap folds every component of p into [0, size).
func Wrap(p mgl32.Vec3, size int) mgl32.Vec3 {
	return mgl32.Vec3{
		wrapComponent(p[0], size),
		wrapComponent(p[1], size),
		wrapComponent(p[2], size),
	}
}

func wrapComponent(c float32, size int) float32 {
	n := int(math.Round(float64(c)))
	return float32(((n % size) + size) % size)
}
