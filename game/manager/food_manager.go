package manager

import (
	"errors"

	"snake3d/game/entity"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/rand"
)

var ErrGridFull = errors.New("no free cell left for fruit")

type FoodManager struct {
	gridSize     int
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(gridSize int, seed uint64, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		gridSize:     gridSize,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// GenerateFood draws uniform cells until one is off the snake.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (mgl32.Vec3, error) {
	if snake.Len() >= fm.gridSize*fm.gridSize*fm.gridSize {
		return mgl32.Vec3{}, ErrGridFull
	}
	for {
		food := mgl32.Vec3{
			float32(fm.rng.Intn(fm.gridSize)),
			float32(fm.rng.Intn(fm.gridSize)),
			float32(fm.rng.Intn(fm.gridSize)),
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, nil
		}
	}
}
