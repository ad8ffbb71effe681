package game

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"canvas-snake/game/manager"
	"canvas-snake/game/types"
	"canvas-snake/telemetry"
)

var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrNotInMenu         = errors.New("game can only be started from the menu")
)

// DefaultTickInterval is the simulation cadence while a round is running.
const DefaultTickInterval = 100 * time.Millisecond

// Surface is the drawing target of a running tick. Clear and Flush bracket
// everything painted during one tick.
type Surface interface {
	Painter
	Clear()
	DrawScore(score int)
	Flush()
}

// Difficulty shrinks the cell scale by a fixed amount.
type Difficulty struct {
	Name           string
	ScaleReduction int
}

// DefaultDifficulties are the selectable difficulties, in menu order.
var DefaultDifficulties = []Difficulty{
	{Name: "easy", ScaleReduction: 0},
	{Name: "medium", ScaleReduction: 20},
	{Name: "hard", ScaleReduction: 30},
}

// ControllerOptions configures a Controller.
type ControllerOptions struct {
	TickInterval time.Duration
	Difficulties []Difficulty
	Stats        *telemetry.SessionStats
	RoundLog     *telemetry.RoundLog
	Logger       *slog.Logger
	Clock        func() time.Time
}

type round struct {
	id         string
	difficulty string
	startedAt  time.Time
}

// Controller drives the game loop. It owns the phase transitions and calls
// into the simulation once per tick while a round is running. It is meant to
// be driven from a single goroutine.
type Controller struct {
	state        *manager.StateManager
	game         *Game
	tickInterval time.Duration
	difficulties []Difficulty
	lastTick     time.Time
	round        round
	stats        *telemetry.SessionStats
	roundLog     *telemetry.RoundLog
	logger       *slog.Logger
	clock        func() time.Time
}

func NewController(state *manager.StateManager, g *Game, opts ControllerOptions) *Controller {
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if len(opts.Difficulties) == 0 {
		opts.Difficulties = DefaultDifficulties
	}
	if opts.Stats == nil {
		opts.Stats = telemetry.NewSessionStats()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Controller{
		state:        state,
		game:         g,
		tickInterval: opts.TickInterval,
		difficulties: opts.Difficulties,
		stats:        opts.Stats,
		roundLog:     opts.RoundLog,
		logger:       opts.Logger,
		clock:        opts.Clock,
	}
}

// Start begins a round from the menu at the named difficulty.
func (c *Controller) Start(difficulty string) error {
	if c.state.Phase() != types.Menu {
		return ErrNotInMenu
	}
	d, ok := c.findDifficulty(difficulty)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}

	c.state.ResetData()
	c.state.ReduceScale(d.ScaleReduction)
	c.game.Reset()
	c.beginRound(d.Name)
	return nil
}

// PlayAgain restarts from the game over screen, keeping the difficulty.
func (c *Controller) PlayAgain() {
	if c.state.Phase() != types.GameOver {
		return
	}
	c.state.ResetScore()
	c.state.ClearDirectionKey()
	c.game.Reset()
	c.beginRound(c.round.difficulty)
}

// ReturnToMenu leaves the game over screen.
func (c *Controller) ReturnToMenu() {
	if c.state.Phase() != types.GameOver {
		return
	}
	c.state.SetPhase(types.Menu)
	c.logger.Debug("returned to menu")
}

// PressKey records a direction key. Only the last press before a tick counts.
func (c *Controller) PressKey(r rune) {
	if d, ok := types.DirectionFromKey(r); ok {
		c.state.SetDirectionKey(d)
	}
}

// Update runs one tick when a round is running and the tick interval has
// elapsed since the previous one. It reports whether a tick ran.
func (c *Controller) Update(now time.Time, s Surface) bool {
	if c.state.Phase() != types.Running {
		return false
	}
	if !c.lastTick.IsZero() && now.Sub(c.lastTick) < c.tickInterval {
		return false
	}
	c.lastTick = now

	c.game.Move(c.state.DirectionKey())

	if s != nil {
		s.Clear()
	}
	c.game.Tick(s)
	if s != nil {
		s.DrawScore(c.state.Score())
		s.Flush()
	}

	if c.state.Phase() == types.GameOver {
		c.endRound(now)
	}
	return true
}

func (c *Controller) beginRound(difficulty string) {
	c.round = round{
		id:         uuid.New().String(),
		difficulty: difficulty,
		startedAt:  c.clock(),
	}
	c.lastTick = time.Time{}
	c.state.SetPhase(types.Running)

	c.logger.Info("round started",
		"round", c.round.id,
		"difficulty", difficulty,
		"scale", c.state.Scale(),
	)
}

func (c *Controller) endRound(now time.Time) {
	rec := telemetry.RoundRecord{
		ID:              c.round.id,
		Difficulty:      c.round.difficulty,
		Scale:           c.state.Scale(),
		Score:           c.state.Score(),
		Length:          len(c.game.Body()),
		Cause:           c.game.LastCollision().String(),
		StartedAt:       c.round.startedAt.UTC().Format(time.RFC3339),
		DurationSeconds: now.Sub(c.round.startedAt).Seconds(),
	}
	c.stats.AddRound(rec)

	c.logger.Info("round over",
		"round", rec.ID,
		"score", rec.Score,
		"length", rec.Length,
		"cause", rec.Cause,
		"duration", now.Sub(c.round.startedAt).Round(time.Millisecond),
	)

	if err := c.roundLog.Write(rec); err != nil {
		c.logger.Error("failed to write round log", "error", err)
	}
}

func (c *Controller) findDifficulty(name string) (Difficulty, bool) {
	for _, d := range c.difficulties {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return Difficulty{}, false
}

// Difficulties returns the selectable difficulties in menu order.
func (c *Controller) Difficulties() []Difficulty {
	return c.difficulties
}

// CurrentDifficulty returns the difficulty of the current or last round.
func (c *Controller) CurrentDifficulty() string {
	return c.round.difficulty
}

func (c *Controller) Phase() types.Phase {
	return c.state.Phase()
}

func (c *Controller) Score() int {
	return c.state.Score()
}

func (c *Controller) Stats() *telemetry.SessionStats {
	return c.stats
}

func (c *Controller) Game() *Game {
	return c.game
}

// Action is a menu or game over button press.
type Action int

const (
	NoAction Action = iota
	StartAction
	PlayAgainAction
	MenuAction
)

// Handle applies a button press. difficulty is only read by StartAction.
func (c *Controller) Handle(a Action, difficulty string) error {
	switch a {
	case StartAction:
		return c.Start(difficulty)
	case PlayAgainAction:
		c.PlayAgain()
	case MenuAction:
		c.ReturnToMenu()
	}
	return nil
}
