package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/trytobebee/snake_classic/pkg/config"
	"github.com/trytobebee/snake_classic/pkg/game"
	"github.com/trytobebee/snake_classic/pkg/input"
	"github.com/trytobebee/snake_classic/pkg/logger"
	"github.com/trytobebee/snake_classic/pkg/renderer"
)

func main() {
	var (
		size     = flag.Int("size", config.GridSize, "board width and height in cells")
		interval = flag.Duration("interval", config.TickInterval, "time between snake moves")
		seed     = flag.Int64("seed", 0, "food RNG seed (0 picks one from the clock)")
		logPath  = flag.String("log", config.LogFile, "log file path")
		logLevel = flag.String("log-level", "info", "log level: debug, info, warn, error")
		record   = flag.Bool("record", false, "record every step to the records directory")
	)
	flag.Parse()

	if err := run(*size, *interval, *seed, *logPath, *logLevel, *record); err != nil {
		fmt.Fprintln(os.Stderr, "snake:", err)
		os.Exit(1)
	}
}

func run(size int, interval time.Duration, seed int64, logPath, logLevel string, record bool) error {
	log, err := logger.New(logPath, logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync(log)

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Initialize input handler
	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		return fmt.Errorf("opening keyboard: %w", err)
	}
	defer inputHandler.Stop()

	// Initialize renderer
	render := renderer.NewTerminalRenderer(size)
	render.HideCursor()
	defer render.ShowCursor()

	g := game.NewGame(game.WithSize(size), game.WithSeed(seed))

	opts := []game.SessionOption{
		game.WithClock(game.NewTickerClock(interval)),
		game.WithController(&game.HeuristicController{}),
		game.WithLogger(log),
		game.WithObserver(func(_ string, state game.GameState) {
			if err := render.Render(state); err != nil {
				log.Warnw("render failed", "error", err)
			}
		}),
	}

	sessionID := uuid.NewString()
	opts = append(opts, game.WithSessionID(sessionID))
	if record {
		rec, err := game.NewRecorder(config.RecordDir, sessionID, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := rec.Close(); err != nil {
				log.Errorw("closing recorder", "error", err)
			}
			log.Infow("recording saved", "path", rec.Path(), "dropped", rec.Dropped())
		}()
		opts = append(opts, game.WithRecorder(rec))
	}
	sess := game.NewSession(g, opts...)

	log.Infow("starting terminal game", "size", size, "interval", interval, "seed", seed)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- sess.Run(ctx) }()

	inputChan := inputHandler.GetInputChan()
	for {
		select {
		case key := <-inputChan:
			if input.IsQuit(key) {
				cancel()
				if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
					return err
				}
				fmt.Println("\n  Thanks for playing! 👋")
				return nil
			}
			if cmd, ok := input.ParseCommand(key); ok {
				sess.Send(cmd)
			}
		case err := <-done:
			return err
		}
	}
}
