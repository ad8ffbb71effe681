package game

import (
	"log/slog"

	"golang.org/x/exp/rand"

	"canvas-snake/game/entity"
	"canvas-snake/game/manager"
	"canvas-snake/game/types"
)

// DefaultInitialLength is the body length after a reset.
const DefaultInitialLength = 4

// Painter receives the cosmetic output of a tick. The simulation paints the
// food before growth and the body before the shift, in that order.
type Painter interface {
	DrawFood(food types.Point, scale int)
	DrawSegments(body []types.Point, scale int)
}

// Options configures a Game.
type Options struct {
	InitialLength    int
	PlacementRetries int
	Logger           *slog.Logger
}

// Game is the snake simulation: body, heading and food on one canvas.
type Game struct {
	state         *manager.StateManager
	collisionMgr  *manager.CollisionManager
	foodMgr       *manager.FoodManager
	snake         *entity.Snake
	food          types.Point
	defaultLength int
	initialLength int
	lastCollision types.CollisionType
	logger        *slog.Logger
}

// NewGame creates a simulation reporting into state and resets it.
func NewGame(state *manager.StateManager, rng *rand.Rand, opts Options) *Game {
	if opts.InitialLength <= 0 {
		opts.InitialLength = DefaultInitialLength
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	collisionMgr := manager.NewCollisionManager(state.Grid())
	g := &Game{
		state:         state,
		collisionMgr:  collisionMgr,
		foodMgr:       manager.NewFoodManager(state.Grid(), rng, collisionMgr, opts.PlacementRetries, opts.Logger),
		defaultLength: opts.InitialLength,
		logger:        opts.Logger,
	}
	g.Reset()
	return g
}

// Move turns the snake toward dir. Reversals and NONE are ignored.
func (g *Game) Move(dir types.Direction) {
	g.snake.SetDirection(dir)
}

// Tick advances the simulation one step and paints it. p may be nil.
func (g *Game) Tick(p Painter) {
	scale := g.state.Scale()

	if p != nil {
		p.DrawFood(g.food, scale)
	}

	g.snake.ApplyGrowth()

	if p != nil {
		p.DrawSegments(g.snake.Body, scale)
	}

	g.snake.Advance(scale)

	if c := g.collisionMgr.Check(g.snake.Body); c != types.NoCollision {
		g.lastCollision = c
		g.state.SetPhase(types.GameOver)
	}

	if g.collisionMgr.IsFoodCollision(g.snake.GetHead(), g.food) {
		g.eat(scale)
	}

	g.snake.RememberTail()
}

func (g *Game) eat(scale int) {
	food, ok := g.foodMgr.GenerateFood(g.snake.Body, scale, g.initialLength)
	if ok {
		g.food = food
	} else {
		g.lastCollision = types.BoardFull
		g.state.SetPhase(types.GameOver)
	}
	g.snake.RememberTail()
	g.snake.ScheduleGrowth()
	g.state.IncrementScore()
}

// Reset starts a fresh snake at a random interior cell using the current scale.
func (g *Game) Reset() {
	g.initialLength = g.defaultLength
	scale := g.state.Scale()

	head, ok := g.foodMgr.RandomCell(scale, g.initialLength)
	if !ok {
		// Config validation keeps the interior non-empty; center as a last resort.
		grid := g.state.Grid()
		head = types.Point{X: grid.Width / 2 / scale * scale, Y: grid.Height / 2 / scale * scale}
	}
	g.snake = entity.NewSnake(head, g.initialLength, scale)
	g.lastCollision = types.NoCollision

	food, ok := g.foodMgr.GenerateFood(g.snake.Body, scale, g.initialLength)
	if !ok {
		g.logger.Warn("no free cell for food after reset")
	}
	g.food = food
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Food() types.Point {
	return g.food
}

func (g *Game) Body() []types.Point {
	return g.snake.Body
}

func (g *Game) Velocity() types.Point {
	return g.snake.Velocity
}

// LastCollision reports what ended the most recent round.
func (g *Game) LastCollision() types.CollisionType {
	return g.lastCollision
}
