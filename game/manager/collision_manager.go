package manager

import (
	"snake3d/game/entity"
	"snake3d/game/types"

	"github.com/go-gl/mathgl/mgl32"
)

type CollisionManager struct {
	gridSize int
}

func NewCollisionManager(gridSize int) *CollisionManager {
	return &CollisionManager{
		gridSize: gridSize,
	}
}

// NextHead returns where the head lands after one step, wrapped onto the torus.
func (cm *CollisionManager) NextHead(snake *entity.Snake) mgl32.Vec3 {
	return types.Wrap(snake.Head().Add(snake.Direction), cm.gridSize)
}

// IsSelfCollision checks pos against every segment that is still occupied
// once the tail moves on, i.e. all but the tail.
func (cm *CollisionManager) IsSelfCollision(pos mgl32.Vec3, snake *entity.Snake) bool {
	for i := 1; i < snake.Len(); i++ {
		if types.NearEq(pos, snake.At(i)) {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos, food mgl32.Vec3) bool {
	return types.NearEq(pos, food)
}

// ValidateSpawnPosition reports whether pos is inside the grid and off the snake.
func (cm *CollisionManager) ValidateSpawnPosition(pos mgl32.Vec3, snake *entity.Snake) bool {
	for axis := 0; axis < 3; axis++ {
		if pos[axis] < 0 || pos[axis] >= float32(cm.gridSize) {
			return false
		}
	}
	return !snake.Contains(pos)
}
