package manager

import (
	"canvas-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check classifies the head position of body after a shift. Wall collisions
// win over self collisions.
func (cm *CollisionManager) Check(body []types.Point) types.CollisionType {
	head := body[0]
	if cm.IsWallCollision(head) {
		return types.WallCollision
	}
	if cm.IsSelfCollision(body) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// IsWallCollision checks if a position lies outside the canvas
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsSelfCollision reports whether the head shares a cell with any other
// segment. Segment 1 always holds the previous head after a shift, so it
// only matches on a real overlap.
func (cm *CollisionManager) IsSelfCollision(body []types.Point) bool {
	for i := 1; i < len(body); i++ {
		if body[0] == body[i] {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// IsOccupied reports whether pos is covered by any body segment.
func (cm *CollisionManager) IsOccupied(pos types.Point, body []types.Point) bool {
	for _, p := range body {
		if p == pos {
			return true
		}
	}
	return false
}
