package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"termpix/device"
	"termpix/events"
	"termpix/frame"
	"termpix/geometry"
	"termpix/screen"
)

// ErrInterrupted returned from OnEvent or Update asks the loop to shut down
// the same way a first Ctrl-C does.
var ErrInterrupted = errors.New("interrupted")

type EventHandler interface {
	OnEvent(event events.Event) (events.Event, error)
}

// Updater is called once per running cycle after OnEvent.
type Updater interface {
	Update() (events.Event, error)
}

// Clearer supplies the pixel painted where the widget has no content.
type Clearer interface {
	ClearPixel() frame.Pixel
}

type Widget interface {
	geometry.Geometry
	frame.Source
	EventHandler
}

type Config struct {
	// RefreshInterval is the pause between running cycles. Zero means none.
	RefreshInterval time.Duration
	// Clear is the fallback pixel for widgets that are not Clearers.
	Clear frame.Pixel
}

func DefaultConfig() Config {
	return Config{RefreshInterval: 30 * time.Millisecond, Clear: frame.Blank}
}

type State int

const (
	Running State = iota
	Interrupted
	Stopped
)

type Exit int

const (
	ExitGraceful Exit = 0
	ExitError    Exit = 1
	ExitForceful Exit = 2
)

type controller struct {
	dev       device.Device
	widget    Widget
	cfg       Config
	session   *session
	state     State
	queue     []events.Event
	cancelled bool
}

// Run drives widget until it stops, the user interrupts twice or an error
// occurs. The cursor is hidden for the duration of the run and shown again
// on every way out, panics included.
func Run(ctx context.Context, dev device.Device, widget Widget, cfg Config) (exit Exit, err error) {
	s, err := openSession(dev)
	if err != nil {
		return ExitError, fmt.Errorf("session: %w", err)
	}
	defer func() {
		if closeErr := s.close(); closeErr != nil && err == nil {
			exit, err = ExitError, fmt.Errorf("session: %w", closeErr)
		}
	}()

	c := &controller{dev: dev, widget: widget, cfg: cfg, session: s}
	for {
		result, done, cycleErr := c.cycle(ctx)
		if done {
			c.setState(Stopped)
			if cycleErr != nil {
				log.Printf("controller: %v", cycleErr)
			}
			return result, cycleErr
		}
	}
}

func (c *controller) cycle(ctx context.Context) (exit Exit, done bool, err error) {
	if c.state == Running {
		if err := c.render(); err != nil {
			return ExitError, true, fmt.Errorf("render: %w", err)
		}
	}

	// Poll on every cycle so a widget that keeps queueing events cannot
	// starve interrupts. Device input goes behind the queued events.
	raw, interrupted, err := c.poll(ctx)
	if err != nil {
		return ExitError, true, fmt.Errorf("poll: %w", err)
	}
	if interrupted {
		if c.state == Interrupted {
			log.Printf("controller: forceful stop")
			return ExitForceful, true, nil
		}
		if err := c.interrupt(); err != nil {
			return ExitError, true, fmt.Errorf("dispatch: %w", err)
		}
		return 0, false, nil
	}
	if raw != nil && c.state == Running {
		if _, resized := raw.(device.Resize); resized {
			c.session.cache.Invalidate()
		}
		c.queue = append(c.queue, events.Input{Raw: raw})
	}

	if len(c.queue) > 0 {
		if _, stop := c.queue[0].(events.Stop); stop {
			log.Printf("controller: graceful stop")
			return ExitGraceful, true, nil
		}
	}
	if c.state == Interrupted {
		return 0, false, nil
	}

	if err := c.dispatch(); err != nil {
		return ExitError, true, fmt.Errorf("dispatch: %w", err)
	}
	if c.state == Running {
		c.sleep(ctx)
	}
	return 0, false, nil
}

func (c *controller) render() error {
	fallback := c.cfg.Clear
	if clearer, ok := c.widget.(Clearer); ok {
		fallback = clearer.ClearPixel()
	}
	c.session.frame = frame.AppendFrame(c.session.frame, geometry.RectOf(c.widget), c.widget, fallback)
	updates := c.session.cache.Diff(c.session.frame)
	if len(updates) == 0 {
		return nil
	}
	if err := screen.Paint(c.dev, updates); err != nil {
		// Diff already recorded the updates as painted.
		c.session.cache.Invalidate()
		return err
	}
	return nil
}

// poll reads one device event. A cancelled context counts as one
// interrupt the first time it is seen.
func (c *controller) poll(ctx context.Context) (raw device.Event, interrupted bool, err error) {
	if !c.cancelled && ctx.Err() != nil {
		c.cancelled = true
		return nil, true, nil
	}
	raw, err = c.dev.TryNextEvent()
	if err != nil {
		return nil, false, err
	}
	return raw, device.IsInterrupt(raw), nil
}

// interrupt gives the widget its one chance to wind down. Whatever it
// returns, the next event is Stop.
func (c *controller) interrupt() error {
	c.setState(Interrupted)
	c.queue = append(c.queue[:0], events.Stop{})
	if _, err := c.widget.OnEvent(events.GracefulStop{}); err != nil && !errors.Is(err, ErrInterrupted) {
		return err
	}
	return nil
}

func (c *controller) dispatch() error {
	var event events.Event = events.NoInput{}
	if len(c.queue) > 0 {
		event = c.queue[0]
		c.queue = c.queue[1:]
	}

	next, err := c.widget.OnEvent(event)
	if err != nil {
		if errors.Is(err, ErrInterrupted) {
			return c.interrupt()
		}
		return err
	}
	c.enqueue(next)

	if updater, ok := c.widget.(Updater); ok {
		next, err := updater.Update()
		if err != nil {
			if errors.Is(err, ErrInterrupted) {
				return c.interrupt()
			}
			return err
		}
		c.enqueue(next)
	}
	return nil
}

func (c *controller) enqueue(event events.Event) {
	if !events.IsNoInput(event) {
		c.queue = append(c.queue, event)
	}
}

func (c *controller) sleep(ctx context.Context) {
	if c.cfg.RefreshInterval <= 0 {
		return
	}
	timer := time.NewTimer(c.cfg.RefreshInterval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (c *controller) setState(state State) {
	if c.state != state {
		log.Printf("controller: %s -> %s", c.state, state)
		c.state = state
	}
}

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Interrupted:
		return "Interrupted"
	case Stopped:
		return "Stopped"
	}
	return "UNKNOWN STATE"
}

func (e Exit) String() string {
	switch e {
	case ExitGraceful:
		return "ExitGraceful"
	case ExitError:
		return "ExitError"
	case ExitForceful:
		return "ExitForceful"
	}
	return "UNKNOWN EXIT"
}
