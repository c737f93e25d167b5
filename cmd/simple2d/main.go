package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/simple2d/audio"
	"github.com/lixenwraith/simple2d/config"
	"github.com/lixenwraith/simple2d/core"
	"github.com/lixenwraith/simple2d/engine"
	"github.com/lixenwraith/simple2d/game"
	"github.com/lixenwraith/simple2d/input"
	"github.com/lixenwraith/simple2d/logger"
	"github.com/lixenwraith/simple2d/parameter"
	"github.com/lixenwraith/simple2d/render"
	"github.com/lixenwraith/simple2d/system"
	"github.com/lixenwraith/simple2d/vmath"
)

var (
	configFlag     = flag.String("config", "simple2d.yaml", "YAML config file, missing file uses defaults")
	logLevelFlag   = flag.String("log-level", "", "Override log level: debug, info, warn, error")
	logFileFlag    = flag.String("log-file", "", "Override log output path")
	broadPhaseFlag = flag.String("broad-phase", "", "Override collision broad phase: current, swept")
	noAudioFlag    = flag.Bool("no-audio", false, "Disable sound")
	debugFlag      = flag.Bool("debug", false, "Outline collision bodies")
)

func main() {
	// Panic Recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "simple2d: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFile(*configFlag)
	if err != nil {
		return err
	}
	if *logLevelFlag != "" {
		cfg.Log.Level = *logLevelFlag
	}
	if *logFileFlag != "" {
		cfg.Log.Output = *logFileFlag
	}
	if *broadPhaseFlag != "" {
		cfg.Collision.BroadPhase = *broadPhaseFlag
	}
	if *noAudioFlag {
		cfg.Audio.Enabled = false
	}
	if *debugFlag {
		cfg.Render.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding, Output: cfg.Log.Output})
	if err != nil {
		return err
	}
	defer log.Sync()

	keys := input.DefaultKeyTable()
	if len(cfg.Keys) > 0 {
		override, err := input.ParseKeyBindings(cfg.Keys)
		if err != nil {
			return err
		}
		keys = input.MergeKeyTable(keys, override)
	}

	w := engine.NewWorld(engine.Dimensions{Width: cfg.World.Width, Height: cfg.World.Height}, log)
	defer w.Close()

	broadPhase, err := system.ParseBroadPhase(cfg.Collision.BroadPhase)
	if err != nil {
		return err
	}
	collision, err := system.Register(w, system.Options{CellSize: cfg.Collision.CellSize, BroadPhase: broadPhase})
	if err != nil {
		return err
	}

	// Audio is optional, the game runs silent without a device
	var sound audio.Player = audio.Nop{}
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume, log)
		if err := sm.Initialize(); err != nil {
			log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			sound = sm
			defer sm.Cleanup()
		}
	}

	scene := game.NewScene(w, sound, cfg.Physics.Gravity)
	if _, err := cfg.BuildScene(w); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)

	renderer := render.NewRenderer(screen, cfg.Render.Scale, vmath.Size{W: cfg.World.Width, H: cfg.World.Height})
	renderer.Debug = cfg.Render.Debug

	clock := engine.NewPausableClock(nil)
	tickInterval := time.Second / time.Duration(cfg.TicksPerSecond)
	scheduler := engine.NewClockScheduler(w, clock, tickInterval, cfg.MaxCatchUpTicks)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, parameter.InputQueueSize)
	g, gctx := errgroup.WithContext(ctx)
	gctx, cancel := context.WithCancel(gctx)
	defer cancel()

	// PollEvent blocks, it returns nil once the screen is finalized
	g.Go(core.Guard(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	}))

	g.Go(core.Guard(func() error {
		// Quit unblocks the poller
		defer cancel()
		defer screen.Fini()

		return scheduler.Run(gctx, engine.FrameHooks{
			Poll: func(w *engine.World) bool {
				for {
					select {
					case ev := <-events:
						if !handleEvent(ev, w, keys, clock, renderer, screen) {
							return false
						}
					default:
						return true
					}
				}
			},
			Render: func(w *engine.World) {
				if box, ok := scene.PlayerBox(); ok {
					renderer.Camera.Follow(box)
				}
				status := scene.Status()
				if clock.IsPaused() {
					status += "  [paused]"
				}
				renderer.Draw(w, status)
			},
		})
	}))

	err = g.Wait()
	log.Info("simulation stopped",
		zap.Uint64("ticks", scheduler.TickCount()),
		zap.Uint64("dropped", scheduler.Dropped()),
		zap.Uint64("failures", w.Failures()),
		zap.Int("collisions_last_tick", collision.Stats().Collisions),
		zap.String("digest", fmt.Sprintf("%016x", w.Digest())),
		zap.Int("score", scene.Score()))
	return err
}

// handleEvent applies one terminal event, false requests quit
func handleEvent(ev tcell.Event, w *engine.World, keys *input.KeyTable, clock *engine.PausableClock, r *render.Renderer, screen tcell.Screen) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		r.Resize()
		screen.Sync()
	case *tcell.EventKey:
		k, ok := keys.Translate(ev)
		if !ok {
			return true
		}
		switch k {
		case input.KeyQuit:
			return false
		case input.KeyPause:
			clock.Toggle()
		case input.KeyDebug:
			r.Debug = !r.Debug
		default:
			w.PushInput(input.Press(k))
		}
	}
	return true
}
