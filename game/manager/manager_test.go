package manager

import (
	"testing"

	"golang.org/x/exp/rand"

	"canvas-snake/game/types"
)

func TestCollisionManagerCheck(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 1600, Height: 800})

	tests := []struct {
		name string
		body []types.Point
		want types.CollisionType
	}{
		{"free", []types.Point{{X: 200, Y: 200}, {X: 160, Y: 200}}, types.NoCollision},
		{"right wall", []types.Point{{X: 1600, Y: 200}, {X: 1560, Y: 200}}, types.WallCollision},
		{"left wall", []types.Point{{X: -40, Y: 200}, {X: 0, Y: 200}}, types.WallCollision},
		{"top wall", []types.Point{{X: 200, Y: -40}, {X: 200, Y: 0}}, types.WallCollision},
		{"bottom wall", []types.Point{{X: 200, Y: 800}, {X: 200, Y: 760}}, types.WallCollision},
		{"last edge cell", []types.Point{{X: 1560, Y: 760}, {X: 1520, Y: 760}}, types.NoCollision},
		{"self", []types.Point{{X: 200, Y: 200}, {X: 240, Y: 200}, {X: 240, Y: 240}, {X: 200, Y: 240}, {X: 200, Y: 200}}, types.SelfCollision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cm.Check(tt.body); got != tt.want {
				t.Errorf("Check = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInteriorAxis(t *testing.T) {
	xs := InteriorAxis(1600, 40, 4)
	if len(xs) != 32 {
		t.Fatalf("len = %d, want 32", len(xs))
	}
	if xs[0] != 160 || xs[len(xs)-1] != 1400 {
		t.Errorf("range = [%d, %d], want [160, 1400]", xs[0], xs[len(xs)-1])
	}
	if got := InteriorAxis(300, 40, 4); len(got) != 0 {
		t.Errorf("too small extent should yield no cells, got %v", got)
	}
}

func TestGenerateFoodNeverOnBody(t *testing.T) {
	grid := types.Grid{Width: 1600, Height: 800}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, rand.New(rand.NewSource(7)), cm, 0, nil)

	body := make([]types.Point, 0)
	for _, y := range InteriorAxis(800, 40, 4)[:6] {
		for _, x := range InteriorAxis(1600, 40, 4) {
			body = append(body, types.Point{X: x, Y: y})
		}
	}

	for i := 0; i < 500; i++ {
		food, ok := fm.GenerateFood(body, 40, 4)
		if !ok {
			t.Fatal("GenerateFood reported a full board")
		}
		if cm.IsOccupied(food, body) {
			t.Fatalf("food %+v placed on body", food)
		}
		if food.X%40 != 0 || food.Y%40 != 0 {
			t.Fatalf("food %+v not aligned to scale", food)
		}
	}
}

func TestGenerateFoodFallsBackToScan(t *testing.T) {
	grid := types.Grid{Width: 400, Height: 400}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)), cm, 1, nil)

	// Interior with margin 1*40 is 8x8 cells; cover all but the last one.
	xs := InteriorAxis(400, 40, 1)
	ys := InteriorAxis(400, 40, 1)
	body := make([]types.Point, 0)
	for _, y := range ys {
		for _, x := range xs {
			body = append(body, types.Point{X: x, Y: y})
		}
	}
	free := body[len(body)-1]
	body = body[:len(body)-1]

	food, ok := fm.GenerateFood(body, 40, 1)
	if !ok {
		t.Fatal("GenerateFood reported a full board")
	}
	if food != free {
		t.Errorf("food = %+v, want the only free interior cell %+v", food, free)
	}
}

func TestGenerateFoodUsesMarginWhenInteriorFull(t *testing.T) {
	grid := types.Grid{Width: 120, Height: 120}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)), cm, 4, nil)

	// Margin 1*40 leaves a single interior cell.
	body := []types.Point{{X: 40, Y: 40}}
	food, ok := fm.GenerateFood(body, 40, 1)
	if !ok {
		t.Fatal("GenerateFood reported a full board")
	}
	if food != (types.Point{X: 0, Y: 0}) {
		t.Errorf("food = %+v, want first free canvas cell {0 0}", food)
	}
}

func TestGenerateFoodFullBoard(t *testing.T) {
	grid := types.Grid{Width: 80, Height: 40}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)), cm, 4, nil)

	body := []types.Point{{X: 0, Y: 0}, {X: 40, Y: 0}}
	if _, ok := fm.GenerateFood(body, 40, 0); ok {
		t.Error("GenerateFood should report a full board")
	}
}

func TestStateManagerResetData(t *testing.T) {
	sm := NewStateManager(types.Grid{Width: 1600, Height: 800}, 40)
	if sm.Phase() != types.Menu {
		t.Errorf("initial phase = %v, want menu", sm.Phase())
	}

	sm.IncrementScore()
	sm.IncrementScore()
	sm.ReduceScale(30)
	sm.SetDirectionKey(types.UP)

	sm.ResetData()
	if sm.Score() != 0 || sm.Scale() != 40 || sm.DirectionKey() != types.NONE {
		t.Errorf("after ResetData score=%d scale=%d key=%v", sm.Score(), sm.Scale(), sm.DirectionKey())
	}
}
