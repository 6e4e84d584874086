package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-runner/event"
	"github.com/lixenwraith/vi-runner/parameter"
	"github.com/lixenwraith/vi-runner/runner"
	"github.com/lixenwraith/vi-runner/status"
)

// Options configures a Loop
type Options struct {
	// Runner configures the controller; Sink and Logger are replaced by the loop's
	Runner runner.Options
	// Interval is the fixed tick; zero uses parameter.TickInterval
	Interval time.Duration
	Metrics  *status.Registry
	Logger   zerolog.Logger
}

// Loop drives one run on a fixed tick
// Inbound commands are applied at the start of each tick, outbound events are
// dispatched to subscribers on the tick goroutine after the controller step
type Loop struct {
	log      zerolog.Logger
	ctrl     *runner.Controller
	outbound *event.EventQueue
	router   *event.Router
	interval time.Duration

	paused  atomic.Bool
	running atomic.Bool
	latest  atomic.Pointer[runner.Agent]

	done     chan struct{}
	doneOnce sync.Once

	metrics *status.Registry
	statTicks,
	statTurns,
	statJumps,
	statSlides *atomic.Int64
	statScore,
	statSpeed,
	statHeight *status.AtomicFloat
	statAlive,
	statSliding,
	statPaused *atomic.Bool
	statHeading,
	statCause *status.AtomicLabel
}

// New creates the controller and wires its outbound events through the loop
func New(opts Options) (*Loop, error) {
	interval := opts.Interval
	if interval <= 0 {
		interval = parameter.TickInterval
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = status.NewRegistry()
	}

	outbound := event.NewEventQueue()
	ropts := opts.Runner
	ropts.Sink = outbound
	ropts.Logger = opts.Logger
	ctrl, err := runner.NewController(ropts)
	if err != nil {
		return nil, fmt.Errorf("creating loop: %w", err)
	}

	l := &Loop{
		log:         opts.Logger.With().Str("component", "engine").Logger(),
		ctrl:        ctrl,
		outbound:    outbound,
		router:      event.NewRouter(outbound),
		interval:    interval,
		done:        make(chan struct{}),
		metrics:     metrics,
		statTicks:   metrics.Ints.Get(status.KeyTicks),
		statTurns:   metrics.Ints.Get(status.KeyTurns),
		statJumps:   metrics.Ints.Get(status.KeyJumps),
		statSlides:  metrics.Ints.Get(status.KeySlides),
		statScore:   metrics.Floats.Get(status.KeyScore),
		statSpeed:   metrics.Floats.Get(status.KeySpeed),
		statHeight:  metrics.Floats.Get(status.KeyHeight),
		statAlive:   metrics.Bools.Get(status.KeyAlive),
		statSliding: metrics.Bools.Get(status.KeySliding),
		statPaused:  metrics.Bools.Get(status.KeyPaused),
		statHeading: metrics.Labels.Get(status.KeyHeading),
		statCause:   metrics.Labels.Get(status.KeyCause),
	}
	metrics.Labels.Get(status.KeyRunID).Store(ctrl.RunID().String()[:8])
	l.publish()
	return l, nil
}

// Commands is the queue input producers push command events into, safe from any goroutine
func (l *Loop) Commands() *event.EventQueue {
	return l.ctrl.Commands()
}

// Subscribe registers fn for outbound event types
// Handlers run on the tick goroutine; register before Run
func (l *Loop) Subscribe(fn func(event.GameEvent), types ...event.EventType) (unsubscribe func()) {
	return l.router.Subscribe(fn, types...)
}

// Step advances one tick of dt seconds and dispatches resulting events
// Returns false once the run has ended
func (l *Loop) Step(dt float64) bool {
	l.ctrl.Tick(dt)
	l.router.DispatchAll()
	l.publish()

	if !l.ctrl.Alive() {
		l.finish()
		return false
	}
	return true
}

// Run ticks at the fixed interval until ctx is cancelled or the run ends
// Returns ctx.Err() on cancellation and nil on game over
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return fmt.Errorf("loop already running")
	}
	defer l.running.Store(false)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	dt := l.interval.Seconds()

	l.log.Info().Dur("interval", l.interval).Msg("loop started")
	for {
		select {
		case <-ctx.Done():
			l.log.Info().Err(ctx.Err()).Msg("loop cancelled")
			return ctx.Err()
		case <-l.done:
			return nil
		case <-ticker.C:
			if l.paused.Load() {
				continue
			}
			if !l.Step(dt) {
				return nil
			}
		}
	}
}

// Pause stops ticking without dropping queued commands
func (l *Loop) Pause() {
	if l.paused.CompareAndSwap(false, true) {
		l.statPaused.Store(true)
		l.log.Debug().Msg("paused")
	}
}

func (l *Loop) Resume() {
	if l.paused.CompareAndSwap(true, false) {
		l.statPaused.Store(false)
		l.log.Debug().Msg("resumed")
	}
}

// TogglePause flips the pause state and returns the new value
func (l *Loop) TogglePause() bool {
	if l.paused.Load() {
		l.Resume()
		return false
	}
	l.Pause()
	return true
}

func (l *Loop) Paused() bool {
	return l.paused.Load()
}

// Done is closed when the run ends
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Latest returns the snapshot published after the last tick, safe from any goroutine
func (l *Loop) Latest() runner.Agent {
	return *l.latest.Load()
}

func (l *Loop) Metrics() *status.Registry {
	return l.metrics
}

func (l *Loop) publish() {
	a := l.ctrl.Snapshot()
	l.latest.Store(&a)

	l.statTicks.Store(a.Frame)
	l.statTurns.Store(int64(a.Stats.Turns))
	l.statJumps.Store(int64(a.Stats.Jumps))
	l.statSlides.Store(int64(a.Stats.Slides))
	l.statScore.Set(a.Score)
	l.statSpeed.Set(a.Speed)
	l.statHeight.Set(a.Position.Y())
	l.statAlive.Store(a.Alive)
	l.statSliding.Store(a.Sliding)
	l.statHeading.Store(a.Heading.String())
	if !a.Alive {
		l.statCause.Store(a.Cause.String())
	}
}

func (l *Loop) finish() {
	l.doneOnce.Do(func() {
		l.log.Info().EmbedObject(l.metrics).Msg("run finished")
		close(l.done)
	})
}
