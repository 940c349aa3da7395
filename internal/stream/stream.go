// Package stream owns the sensor websocket lifecycle: dialing with
// bounded exponential backoff, the keepalive ticker, the in-order read
// loop, and the shutdown drain that guarantees a final flush before
// the connection is released.
package stream

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/oscillant-data/vibration.report/internal/retry"
)

// State is the connection lifecycle phase.
type State int32

const (
	Disconnected State = iota
	Connecting
	Connected
	Failed
	Closing
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Failed:
		return "failed"
	case Closing:
		return "closing"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Handler receives stream events. OnMessage is called from the
// manager's read goroutine strictly in arrival order; OnError and
// OnClose are called from the same goroutine, and OnClose always runs
// exactly once, before Run returns and before the socket is released.
type Handler interface {
	OnMessage(msg []byte)
	OnError(err error)
	OnClose()
}

// DefaultPingInterval is the keepalive cadence while connected.
const DefaultPingInterval = 30 * time.Second

// pingPayload is the literal fire-and-forget keepalive message; the
// gateway expects no application-level reply.
var pingPayload = []byte("ping")

// Config holds the stream manager wiring.
type Config struct {
	// URL is the websocket address of the sensor gateway.
	URL string

	// AuthLine, when non-empty, is sent as a text frame immediately
	// after the connection opens. The gateway answers with a control
	// string the pipeline validator drops.
	AuthLine string

	// PingInterval overrides DefaultPingInterval.
	PingInterval time.Duration

	// Dial is the connect backoff policy. Exhausting it is fatal: the
	// pipeline cannot run without its stream.
	Dial retry.Backoff

	// Handler receives messages and lifecycle events. Required.
	Handler Handler
}

// Manager drives one sensor stream through the lifecycle
// Disconnected → Connecting → Connected → (Failed|Closing) →
// Disconnected.
type Manager struct {
	cfg   Config
	state atomic.Int32

	// writeMu serialises socket writes: the keepalive ticker and the
	// auth send run on different goroutines and two frames must never
	// interleave mid-write.
	writeMu sync.Mutex
	conn    *websocket.Conn
}

// New creates a stream manager. It does not connect; call Run.
func New(cfg Config) *Manager {
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = DefaultPingInterval
	}
	return &Manager{cfg: cfg}
}

// State reports the current lifecycle phase. Safe from any goroutine.
func (m *Manager) State() State {
	return State(m.state.Load())
}

func (m *Manager) setState(s State) {
	m.state.Store(int32(s))
}

// Run connects and processes the stream until it ends or ctx is
// cancelled. Message handling happens on the calling goroutine, in
// arrival order. Run returns nil on a graceful close or cancellation
// and an error when the dial budget is exhausted or the stream fails.
func (m *Manager) Run(ctx context.Context) error {
	if err := m.cfg.Validate(); err != nil {
		return err
	}
	m.setState(Connecting)

	err := m.cfg.Dial.Run(ctx, "connect sensor stream", func(ctx context.Context) error {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, m.cfg.URL, nil)
		if err != nil {
			return err
		}
		m.conn = conn
		return nil
	})
	if err != nil {
		m.setState(Disconnected)
		return err
	}

	session := uuid.NewString()[:8]
	m.setState(Connected)
	log.Printf("stream %s connected to %s", session, m.cfg.URL)

	if m.cfg.AuthLine != "" {
		if err := m.write([]byte(m.cfg.AuthLine)); err != nil {
			m.release(session)
			return fmt.Errorf("send auth: %w", err)
		}
	}

	// Unblock the read loop when the context is cancelled: closing the
	// socket is the only way to interrupt a blocking ReadMessage.
	watchdog := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			m.conn.Close()
		case <-watchdog:
		}
	}()
	defer close(watchdog)

	pingCtx, stopPing := context.WithCancel(ctx)
	defer stopPing()
	go m.keepalive(pingCtx, session)

	readErr := m.readLoop(ctx)

	// Stop the keepalive before the drain closes the socket so a tick
	// cannot land on a dead connection and log a spurious failure.
	stopPing()
	m.release(session)

	if readErr != nil {
		return fmt.Errorf("stream %s: %w", session, readErr)
	}
	return nil
}

// release runs the shutdown drain: handler close (final flush) first,
// socket teardown second. The ordering is a hard guarantee, not
// best-effort.
func (m *Manager) release(session string) {
	m.setState(Closing)
	m.cfg.Handler.OnClose()
	m.conn.Close()
	m.setState(Disconnected)
	log.Printf("stream %s released", session)
}

func (m *Manager) readLoop(ctx context.Context) error {
	for {
		_, msg, err := m.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				// Cancellation closed the socket under us; this is the
				// graceful shutdown path.
				return nil
			}
			if websocket.IsCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived) {
				log.Printf("stream closed by gateway: %v", err)
				return nil
			}
			m.setState(Failed)
			m.cfg.Handler.OnError(err)
			return err
		}
		m.cfg.Handler.OnMessage(msg)
	}
}

// keepalive sends the literal ping payload on a fixed interval for as
// long as the stream is connected. It runs independently of message
// processing and never touches pipeline state.
func (m *Manager) keepalive(ctx context.Context, session string) {
	ticker := time.NewTicker(m.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := m.write(pingPayload); err != nil {
				log.Printf("stream %s keepalive failed: %v", session, err)
				return
			}
		}
	}
}

func (m *Manager) write(payload []byte) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	return m.conn.WriteMessage(websocket.TextMessage, payload)
}

// ErrNoHandler is returned by Validate when the config lacks a handler.
var ErrNoHandler = errors.New("stream: handler is required")

// Validate checks the config before Run.
func (c Config) Validate() error {
	if c.Handler == nil {
		return ErrNoHandler
	}
	if c.URL == "" {
		return errors.New("stream: url is required")
	}
	return nil
}
