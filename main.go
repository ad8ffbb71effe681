package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"

	"canvas-snake/config"
	"canvas-snake/game"
	"canvas-snake/game/manager"
	"canvas-snake/game/types"
	"canvas-snake/telemetry"
	"canvas-snake/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = time-based)")
	roundLogPath := flag.String("round-log", "", "CSV file receiving one row per finished round")
	writeConfig := flag.String("write-config", "", "Write the effective config to this path and exit")
	logFormat := flag.String("log-format", "", "Log format: text or json (empty = use config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (empty = use config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.OverrideLogging(*logLevel, *logFormat); err != nil {
		slog.Error("invalid logging flags", "error", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, cfg.Logging.Format, cfg.Derived.LogLevel)
	slog.SetDefault(logger)

	if *writeConfig != "" {
		if err := cfg.WriteYAML(*writeConfig); err != nil {
			logger.Error("failed to write config", "error", err)
			os.Exit(1)
		}
		logger.Info("config written", "path", *writeConfig)
		return
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
	}

	roundLog, err := telemetry.OpenRoundLog(*roundLogPath)
	if err != nil {
		logger.Error("failed to open round log", "error", err)
		os.Exit(1)
	}
	defer roundLog.Close()

	grid := types.Grid{Width: cfg.Screen.Width, Height: cfg.Screen.Height}
	state := manager.NewStateManager(grid, cfg.Game.BaseScale)
	snake := game.NewGame(state, rand.New(rand.NewSource(rngSeed)), game.Options{
		InitialLength:    cfg.Game.InitialLength,
		PlacementRetries: cfg.Game.FoodPlacementRetries,
		Logger:           logger,
	})

	difficulties := make([]game.Difficulty, len(cfg.Difficulties))
	for i, d := range cfg.Difficulties {
		difficulties[i] = game.Difficulty{Name: d.Name, ScaleReduction: d.ScaleReduction}
	}
	controller := game.NewController(state, snake, game.ControllerOptions{
		TickInterval: cfg.Derived.TickInterval,
		Difficulties: difficulties,
		Stats:        telemetry.NewSessionStats(),
		RoundLog:     roundLog,
		Logger:       logger,
	})

	logger.Info("starting",
		"seed", rngSeed,
		"width", cfg.Screen.Width,
		"height", cfg.Screen.Height,
		"tick_interval", cfg.Derived.TickInterval,
		"round_log", roundLog.Path(),
	)

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	renderer := ui.NewRenderer(cfg.Screen.Width, cfg.Screen.Height)
	defer renderer.Unload()

	for !rl.WindowShouldClose() {
		ui.PollKeys(controller)

		// Ticks run at the fixed interval; the window redraws every frame.
		controller.Update(time.Now(), renderer)

		action, difficulty := renderer.Draw(controller)
		if err := controller.Handle(action, difficulty); err != nil {
			logger.Warn("ignored button press", "error", err)
		}
	}

	stats := controller.Stats()
	logger.Info("session finished",
		"rounds", stats.RoundsPlayed(),
		"high_score", stats.HighScore(),
		"average_score", stats.AverageScore(),
	)
}

func newLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
