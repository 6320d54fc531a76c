// Package channel implements the output sink for the event stream: a
// disabled sink, a file, or the diagnostic stream, bracketed by connect and
// disconnect frames.
package channel

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"inputwire/internal/osutils"
	"inputwire/internal/protocol"
)

// DiagnosticMarker selects the diagnostic stream as destination.
const DiagnosticMarker = "-"

// DefaultDescription is sent in the lifecycle frames unless overridden.
const DefaultDescription = "inputwire"

var (
	ErrAlreadyOpen = errors.New("channel: already open")
	ErrOpenFailed  = errors.New("channel: cannot open destination")
)

// State is the lifecycle position of a Channel.
type State int

const (
	StateUninitialized State = iota
	StateOpening
	StateConnected
	StateWriting
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateOpening:
		return "opening"
	case StateConnected:
		return "connected"
	case StateWriting:
		return "writing"
	case StateClosing:
		return "closing"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Stats counts what a channel has written since it was created.
type Stats struct {
	Frames uint64
	Bytes  uint64
}

// Channel is a single writable sink for frames. Frames are written and
// flushed one at a time in call order.
type Channel struct {
	mu sync.Mutex

	state       State
	enc         protocol.Encoder
	description string
	diag        io.Writer
	logOut      io.Writer
	savedLog    io.Writer

	name   string
	w      *bufio.Writer
	closer io.Closer
	stats  Stats
}

// Option configures a Channel.
type Option func(*Channel)

// WithEncoder sets the frame encoder options.
func WithEncoder(enc protocol.Encoder) Option {
	return func(c *Channel) { c.enc = enc }
}

// WithDescription sets the text carried by the connect and disconnect
// frames.
func WithDescription(desc string) Option {
	return func(c *Channel) { c.description = desc }
}

// WithDiagnostic replaces stderr as the diagnostic stream.
func WithDiagnostic(w io.Writer) Option {
	return func(c *Channel) { c.diag = w }
}

// WithLogOutput sets where the process logger is moved while the
// diagnostic stream is also its output. Defaults to io.Discard.
func WithLogOutput(w io.Writer) Option {
	return func(c *Channel) { c.logOut = w }
}

// New returns a closed channel.
func New(opts ...Option) *Channel {
	c := &Channel{
		description: DefaultDescription,
		diag:        os.Stderr,
		logOut:      io.Discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open resolves dest and, unless it is disabled, emits the connect frame.
// A destination that cannot be opened is logged and leaves the channel
// disabled; the returned error is informational.
func (c *Channel) Open(dest string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active() {
		return ErrAlreadyOpen
	}

	d := ParseDestination(dest)
	switch d.Kind {
	case KindDisabled:
		log.Printf("Channel: No destination configured, event stream disabled")
		return nil
	case KindDiagnostic:
		// log lines interleaved with frames would corrupt the stream
		if log.Writer() == c.diag {
			c.savedLog = c.diag
			log.SetOutput(c.logOut)
		}
		if f, ok := c.diag.(*os.File); ok && osutils.IsTerminal(f) {
			log.Printf("Channel: Warning: writing binary frames to a terminal")
		}
		return c.connect(c.diag, nil, d.String())
	}

	c.state = StateOpening
	f, err := os.Create(d.Path)
	if err != nil {
		c.state = StateUninitialized
		log.Printf("Channel: Warning: failed to open %q for writing: %v", d.Path, err)
		return fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	return c.connect(f, f, d.String())
}

// OpenWriter attaches an arbitrary writer and emits the connect frame. The
// writer is not closed by Close.
func (c *Channel) OpenWriter(w io.Writer, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active() {
		return ErrAlreadyOpen
	}
	return c.connect(w, nil, name)
}

func (c *Channel) connect(w io.Writer, closer io.Closer, name string) error {
	c.state = StateOpening
	c.name = name
	c.w = bufio.NewWriter(w)
	c.closer = closer

	if err := c.write(protocol.ClientConnect{Description: c.description}); err != nil {
		return err
	}
	c.state = StateConnected
	log.Printf("Channel: Connected to %s", name)
	return nil
}

// Send writes one event and flushes it. It is a no-op on a channel that is
// not open. A failed write disables the channel.
func (c *Channel) Send(ev protocol.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active() {
		return nil
	}
	if err := c.write(ev); err != nil {
		return err
	}
	c.state = StateWriting
	return nil
}

// Close emits the disconnect frame, flushes and releases the destination.
// Closing a channel that is not open does nothing.
func (c *Channel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active() {
		return nil
	}
	c.state = StateClosing
	err := c.write(protocol.ClientDisconnect{Description: c.description})
	if c.state != StateClosing {
		// write already released the destination
		return err
	}
	if cerr := c.release(); err == nil {
		err = cerr
	}
	log.Printf("Channel: Closed %s after %d frames", c.name, c.stats.Frames)
	c.restoreLog()
	return err
}

// write encodes ev, writes and flushes. Must hold c.mu.
func (c *Channel) write(ev protocol.Event) error {
	n, err := c.enc.WriteFrame(c.w, ev)
	if err != nil {
		return c.fail(err)
	}
	if err := c.w.Flush(); err != nil {
		return c.fail(err)
	}
	c.stats.Frames++
	c.stats.Bytes += uint64(n)
	return nil
}

func (c *Channel) fail(err error) error {
	log.Printf("Channel: Warning: write to %s failed, disabling event stream: %v", c.name, err)
	c.release()
	c.restoreLog()
	return fmt.Errorf("channel: write %s: %w", c.name, err)
}

func (c *Channel) release() error {
	var err error
	if c.closer != nil {
		err = c.closer.Close()
	}
	c.w = nil
	c.closer = nil
	c.state = StateUninitialized
	return err
}

func (c *Channel) restoreLog() {
	if c.savedLog != nil {
		log.SetOutput(c.savedLog)
		c.savedLog = nil
	}
}

func (c *Channel) active() bool {
	return c.state == StateConnected || c.state == StateWriting
}

// Active reports whether frames are currently being written.
func (c *Channel) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active()
}

// State returns the lifecycle state.
func (c *Channel) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Stats returns the frame and byte counts.
func (c *Channel) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
