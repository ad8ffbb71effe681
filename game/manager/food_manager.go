package manager

import (
	"log/slog"

	"golang.org/x/exp/rand"

	"canvas-snake/game/types"
)

// DefaultPlacementRetries bounds the random draws before falling back to a scan.
const DefaultPlacementRetries = 64

// FoodManager places food on free cells of the margin-excluded interior.
type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
	retries      int
	logger       *slog.Logger
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager, retries int, logger *slog.Logger) *FoodManager {
	if retries <= 0 {
		retries = DefaultPlacementRetries
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		retries:      retries,
		logger:       logger,
	}
}

// InteriorAxis lists the cell origins on one axis that keep margin cells clear
// of both edges, margin being initialLength*scale.
func InteriorAxis(extent, scale, initialLength int) []int {
	margin := initialLength * scale
	cells := make([]int, 0)
	for v := margin; v < extent-margin; v += scale {
		cells = append(cells, v)
	}
	return cells
}

// RandomCell draws an interior cell uniformly, each axis independently.
// It reports false when the interior is empty.
func (fm *FoodManager) RandomCell(scale, initialLength int) (types.Point, bool) {
	xs := InteriorAxis(fm.grid.Width, scale, initialLength)
	ys := InteriorAxis(fm.grid.Height, scale, initialLength)
	if len(xs) == 0 || len(ys) == 0 {
		return types.Point{}, false
	}
	return types.Point{
		X: xs[fm.rng.Intn(len(xs))],
		Y: ys[fm.rng.Intn(len(ys))],
	}, true
}

// GenerateFood returns a cell not covered by body. Random draws are retried a
// bounded number of times, then the interior and finally the whole canvas are
// scanned row by row. It reports false only when every cell is taken.
func (fm *FoodManager) GenerateFood(body []types.Point, scale, initialLength int) (types.Point, bool) {
	for attempt := 0; attempt < fm.retries; attempt++ {
		food, ok := fm.RandomCell(scale, initialLength)
		if !ok {
			break
		}
		if !fm.collisionMgr.IsOccupied(food, body) {
			return food, true
		}
	}

	fm.logger.Debug("food placement falling back to scan", "retries", fm.retries, "length", len(body))

	if food, ok := fm.scan(body, scale, initialLength); ok {
		return food, true
	}
	return fm.scan(body, scale, 0)
}

func (fm *FoodManager) scan(body []types.Point, scale, initialLength int) (types.Point, bool) {
	for _, y := range InteriorAxis(fm.grid.Height, scale, initialLength) {
		for _, x := range InteriorAxis(fm.grid.Width, scale, initialLength) {
			p := types.Point{X: x, Y: y}
			if !fm.collisionMgr.IsOccupied(p, body) {
				return p, true
			}
		}
	}
	return types.Point{}, false
}
