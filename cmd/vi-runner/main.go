package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-runner/config"
	"github.com/lixenwraith/vi-runner/core"
	"github.com/lixenwraith/vi-runner/engine"
	"github.com/lixenwraith/vi-runner/event"
	"github.com/lixenwraith/vi-runner/input"
	"github.com/lixenwraith/vi-runner/logging"
	"github.com/lixenwraith/vi-runner/render"
	"github.com/lixenwraith/vi-runner/runner"
	"github.com/lixenwraith/vi-runner/status"
)

// defaultTUILog keeps log output off the screen when no file is configured
const defaultTUILog = "vi-runner.log"

const renderInterval = time.Second / 30

var (
	configPath = flag.String("config", "", "TOML config file (defaults and VIRUNNER_* env apply without one)")
	headless   = flag.Bool("headless", false, "Run without a terminal UI")
	maxTicks   = flag.Int("ticks", 3600, "Tick limit for headless runs")
	scriptPath = flag.String("script", "", "Command script replayed in headless runs")
	logLevel   = flag.String("log-level", "", "Override log.level")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-runner: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	logOut, closeLog, err := openLog(cfg.Log.File, *headless)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := logging.New(logOut, cfg.Log.Level, cfg.Log.Console)

	course, err := cfg.BuildCourse()
	if err != nil {
		return fmt.Errorf("building course: %w", err)
	}
	tiles := course.Tiles()

	metrics := status.NewRegistry()
	loop, err := engine.New(engine.Options{
		Runner: runner.Options{
			Track:   course,
			Layers:  course.Layers(),
			Start:   tiles[0].Center,
			Heading: tiles[0].Heading,
			Tuning:  cfg.Runner,
		},
		Interval: cfg.Engine.TickInterval(),
		Metrics:  metrics,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	traceEvents(loop, logging.Component(logger, "events"))

	keys := input.DefaultKeyTable()
	if err := input.ApplyKeyConfig(keys, cfg.Keys); err != nil {
		return err
	}
	machine := input.NewMachine(keys, loop.Commands(), func() int64 { return loop.Latest().Frame })

	if *headless {
		return runHeadless(loop, machine, cfg.Engine.TickInterval().Seconds(), logger)
	}
	return runTerminal(loop, machine, render.NewView(nil, course, cfg.Runner.ColliderHeight/2), logger)
}

func openLog(path string, headless bool) (io.Writer, func(), error) {
	if path == "" && headless {
		return os.Stderr, func() {}, nil
	}
	if path == "" {
		path = defaultTUILog
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// traceEvents logs every outbound event by registered name at trace level
func traceEvents(loop *engine.Loop, log zerolog.Logger) {
	if log.GetLevel() > zerolog.TraceLevel {
		return
	}
	loop.Subscribe(func(ev event.GameEvent) {
		log.Trace().Str("event", event.GetEventName(ev.Type)).Int64("frame", ev.Frame).Msg("dispatched")
	},
		event.EventScoreUpdate, event.EventTurnCommitted, event.EventGameOver,
		event.EventSlideStarted, event.EventSlideEnded, event.EventJumped,
	)
}

func runHeadless(loop *engine.Loop, machine *input.Machine, dt float64, log zerolog.Logger) error {
	script := &Script{}
	if *scriptPath != "" {
		s, err := LoadScript(*scriptPath)
		if err != nil {
			return err
		}
		script = s
		log.Info().Int("commands", s.Len()).Str("path", *scriptPath).Msg("script loaded")
	}

	for i := 0; i < *maxTicks; i++ {
		for _, intent := range script.Due(loop.Latest().Frame) {
			machine.Dispatch(intent)
		}
		if !loop.Step(dt) {
			break
		}
	}

	a := loop.Latest()
	fmt.Printf("run %s: score %d, %s after %.2fs\n", a.RunID, a.ReportedScore(), outcome(a), a.Elapsed)
	return nil
}

func outcome(a runner.Agent) string {
	if a.Alive {
		return "still running"
	}
	return "game over (" + a.Cause.String() + ")"
}

func runTerminal(loop *engine.Loop, machine *input.Machine, view *render.View, log zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	defer core.Recover()
	screen.HideCursor()
	view.SetScreen(screen)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	events := make(chan tcell.Event, 16)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	loopErr := make(chan error, 1)
	core.Go(func() { loopErr <- loop.Run(ctx) })

	ticker := time.NewTicker(renderInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-loopErr:
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("loop stopped")
				return err
			}
			// Game over: keep drawing until the player quits
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			switch machine.Handle(ev) {
			case input.IntentQuit:
				return nil
			case input.IntentPause:
				loop.TogglePause()
			}
		case <-ticker.C:
			view.RenderFrame(loop.Latest(), loop.Metrics())
		}
	}
}
