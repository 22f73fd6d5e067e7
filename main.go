package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"time"

	"snake3d/config"
	"snake3d/game"
	"snake3d/game/manager"
	"snake3d/ui"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func init() {
	// raylib must be driven from the thread that created the window
	runtime.LockOSThread()
}

// heldWriter buffers log output while a frontend owns the terminal.
type heldWriter struct {
	dst  io.Writer
	buf  bytes.Buffer
	hold bool
}

func (w *heldWriter) Write(p []byte) (int, error) {
	if w.hold {
		return w.buf.Write(p)
	}
	return w.dst.Write(p)
}

// release flushes everything held so far and writes through from then on.
func (w *heldWriter) release() {
	w.hold = false
	w.dst.Write(w.buf.Bytes())
	w.buf.Reset()
}

func newLogger(w io.Writer) *zap.SugaredLogger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), zap.InfoLevel)
	return zap.New(core).Sugar()
}

func main() {
	configPath := flag.String("config", "snake3d.yaml", "YAML config file (optional)")
	frontend := flag.String("frontend", "", "raylib or terminal")
	grid := flag.Int("grid", 0, "Grid size per axis")
	tick := flag.Float64("tick", 0, "Seconds between snake steps")
	seed := flag.Uint64("seed", 0, "Random seed (0 = from the clock)")
	statsFile := flag.String("stats", "", "Score history file, \"none\" disables it")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	out := &heldWriter{dst: os.Stderr}
	logger := newLogger(out)

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Fatalf("Config: %v", err)
		}
		cfg = config.Default()
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frontend":
			cfg.Frontend = *frontend
		case "grid":
			cfg.GridSize = *grid
		case "tick":
			cfg.TickInterval = float32(*tick)
		case "seed":
			cfg.Seed = *seed
		case "stats":
			cfg.StatsFile = *statsFile
			if cfg.StatsFile == "none" {
				cfg.StatsFile = ""
			}
		case "mute":
			cfg.Sound = !*mute
		}
	})
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Config: %v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	// tcell owns the terminal while it runs; hold log lines until it closes
	out.hold = cfg.Frontend == config.FrontendTerminal

	stateMgr, err := manager.NewStateManager(cfg.StatsFile, logger)
	if err != nil {
		out.release()
		logger.Fatalf("Stats: %v", err)
	}
	logger.Infof("Session %s, seed %d\n%s", stateMgr.SessionID(), cfg.Seed, cfg)

	g, err := game.NewGame(game.Options{
		GridSize:     cfg.GridSize,
		TickInterval: cfg.TickInterval,
		Seed:         cfg.Seed,
		Logger:       logger,
	})
	if err != nil {
		out.release()
		logger.Fatalf("Game: %v", err)
	}

	fe, err := ui.New(cfg)
	if err != nil {
		out.release()
		logger.Fatalf("UI: %v", err)
	}

	sounds := ui.NewSounds(cfg.Sound, logger)
	runErr := run(g, fe, sounds, stateMgr.GetHighScore(), logger)
	fe.Close()
	sounds.Close()
	out.release()
	if runErr != nil {
		logger.Fatalf("Game: %v", runErr)
	}

	if err := stateMgr.RecordGame(g.Score, g.GridSize); err != nil {
		logger.Warnf("Stats save failed: %v", err)
	}
	logger.Infow("Session recorded", "games", len(stateMgr.GetScoreHistory()), "high_score", stateMgr.GetHighScore())
	logger.Sync()

	fmt.Println(ui.FinalScoreLine(g.Score))
	os.Exit(0)
}

// run drives the frame loop until the frontend asks to close.
func run(g *game.Game, fe ui.Frontend, sounds *ui.Sounds, best int, logger *zap.SugaredLogger) error {
	for !fe.ShouldClose() {
		in := fe.PollInput()
		if in.Copy && g.GameOver {
			if err := ui.CopyScore(g.Score); err != nil {
				logger.Warnf("Copy score: %v", err)
			}
		}

		res, err := g.Update(in.Direction, fe.FrameTime())
		if err != nil {
			return err
		}
		sounds.Play(res)

		if g.Score > best {
			best = g.Score
		}
		fe.Draw(g, best)
	}
	return nil
}
