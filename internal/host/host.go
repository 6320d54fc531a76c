// Package host runs the event loop that feeds native events through the
// adapter into the output channel.
package host

import (
	"context"
	"log"
	"time"

	"inputwire/internal/input"
	"inputwire/internal/protocol"
)

// DefaultRefreshRate is the sleep between polls while no event is pending.
const DefaultRefreshRate = 10 * time.Millisecond

// Stream is the output side of the host: the channel in production.
type Stream interface {
	Send(ev protocol.Event) error
	Close() error
}

// Drainer is implemented by finite sources such as replay scripts.
type Drainer interface {
	Done() bool
}

// Options configures a Host.
type Options struct {
	// KeepAlive is the idle time before a keep-alive frame; zero disables.
	KeepAlive time.Duration

	// RefreshRate overrides DefaultRefreshRate.
	RefreshRate time.Duration

	// StopWhenDrained ends Run once a Drainer source has nothing left.
	StopWhenDrained bool
}

// Host owns the window state that gates forwarding and the stream
// lifecycle. It is driven from a single goroutine.
type Host struct {
	stream  Stream
	adapter *input.Adapter
	opts    Options

	width, height int
	lastSend      time.Time
	closed        bool

	now func() time.Time
}

// New returns a host writing to stream. The window starts with zero width,
// so nothing is forwarded until the first resize.
func New(stream Stream, opts Options) *Host {
	if opts.RefreshRate <= 0 {
		opts.RefreshRate = DefaultRefreshRate
	}
	h := &Host{
		stream: stream,
		opts:   opts,
		now:    time.Now,
	}
	h.adapter = input.NewAdapter(h)
	h.lastSend = h.now()
	return h
}

// Send implements input.Sink and records activity for keep-alives.
func (h *Host) Send(ev protocol.Event) error {
	h.lastSend = h.now()
	return h.stream.Send(ev)
}

// Size returns the current window size.
func (h *Host) Size() (width, height int) {
	return h.width, h.height
}

// Adapter exposes the adapter for its counters.
func (h *Host) Adapter() *input.Adapter {
	return h.adapter
}

// HandleEvent processes one native event. It returns true when the event
// asks the host to quit; the stream is shut down before it returns.
func (h *Host) HandleEvent(ev input.NativeEvent) bool {
	switch ev.Kind {
	case input.KindWindowResized:
		h.width, h.height = ev.Width, ev.Height
		return false
	case input.KindWindowExposed:
		return false
	case input.KindQuit:
		h.Shutdown()
		return true
	}
	h.adapter.Handle(ev, h.width)
	return false
}

// Idle sends a keep-alive when nothing was sent for the configured
// interval.
func (h *Host) Idle() {
	if h.opts.KeepAlive <= 0 || h.closed {
		return
	}
	if h.now().Sub(h.lastSend) >= h.opts.KeepAlive {
		_ = h.Send(protocol.KeepAlive{})
	}
}

// Run polls src until a quit event, a drained source (if configured) or
// context cancellation. The stream is always shut down on return.
func (h *Host) Run(ctx context.Context, src input.Source) error {
	defer h.Shutdown()

	ticker := time.NewTicker(h.opts.RefreshRate)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev, ok := src.Poll()
		if ok {
			if h.HandleEvent(ev) {
				return nil
			}
			continue
		}

		h.Idle()
		if d, ok := src.(Drainer); ok && h.opts.StopWhenDrained && d.Done() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Shutdown runs the stream close sequence once.
func (h *Host) Shutdown() {
	if h.closed {
		return
	}
	h.closed = true
	forwarded, dropped := h.adapter.Counts()
	log.Printf("Host: Shutting down (%d events forwarded, %d dropped)", forwarded, dropped)
	if err := h.stream.Close(); err != nil {
		log.Printf("Host: Warning: closing event stream: %v", err)
	}
}
