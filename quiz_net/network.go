package quiz_net

import (
	"context"
	"errors"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Host           string
	Port           int
	ConnectTimeout time.Duration
	KeepAlive      time.Duration
	ReadBufferSize int
}

func DefaultConfig() Config {
	return Config{
		Host:           "127.0.0.1",
		Port:           12345,
		ConnectTimeout: 600 * time.Second,
		KeepAlive:      15 * time.Second,
		ReadBufferSize: DefaultReadBufferSize,
	}
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// NetHandler owns the single TCP connection to the quiz server.
// Connect, SendLine, Reset and State are meant to be called from the game loop.
type NetHandler struct {
	cfg   Config
	queue *MsgQueue

	mu      sync.Mutex
	conn    net.Conn
	state   ConnState
	failure error
	done    chan struct{}

	wg sync.WaitGroup
}

func NewNetHandler(cfg Config) *NetHandler {
	return &NetHandler{
		cfg:   cfg,
		queue: NewMsgQueue(),
		state: StateDisconnected,
	}
}

// Connect dials the configured address. The connect phase is bounded by
// Config.ConnectTimeout; once connected the socket has no deadline at all.
// On success the receiver goroutine is started.
func (nh *NetHandler) Connect(ctx context.Context) error {
	nh.mu.Lock()
	if nh.state != StateDisconnected {
		nh.mu.Unlock()
		return ErrAlreadyConnected
	}
	nh.state = StateConnecting
	nh.failure = nil
	nh.mu.Unlock()

	addr := nh.cfg.Addr()
	log.Info().Str("addr", addr).Dur("timeout", nh.cfg.ConnectTimeout).Msg("connecting to quiz server")

	dialer := net.Dialer{
		Timeout:   nh.cfg.ConnectTimeout,
		KeepAlive: nh.cfg.KeepAlive,
	}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		connErr := classifyDialError(addr, err)
		nh.mu.Lock()
		nh.state = StateFailed
		nh.failure = connErr
		nh.mu.Unlock()

		log.Error().Err(err).Str("addr", addr).Bool("timeout", connErr.Timeout()).Msg("connect failed")
		return connErr
	}

	if tcp, ok := conn.(*net.TCPConn); ok {
		if err := tcp.SetKeepAlive(true); err != nil {
			log.Warn().Err(err).Msg("could not enable TCP keepalive")
		}
	}
	// blocking mode from here on: no read or write deadline
	if err := conn.SetDeadline(time.Time{}); err != nil {
		log.Warn().Err(err).Msg("could not clear connection deadline")
	}

	nh.mu.Lock()
	nh.conn = conn
	nh.state = StateConnected
	nh.done = make(chan struct{})
	done := nh.done
	nh.mu.Unlock()

	log.Info().Str("addr", addr).Str("local", conn.LocalAddr().String()).Msg("connected to quiz server")

	acceptor := NewMsgAcceptor(conn, nh.queue, nh.cfg.ReadBufferSize)
	nh.wg.Add(1)
	go func() {
		defer nh.wg.Done()
		defer close(done)
		reason := acceptor.AcceptMessages()
		log.Info().Str("reason", reason.String()).Msg("receiver stopped")
		nh.receiverStopped(conn, reason, acceptor.Err())
	}()

	return nil
}

// receiverStopped records why the receiver of conn ended. A connection that
// Close already took, or that a later Connect replaced, is left alone.
func (nh *NetHandler) receiverStopped(conn net.Conn, reason StopReason, readErr error) {
	if reason == StopLocalClose {
		return
	}

	nh.mu.Lock()
	if nh.conn != conn {
		nh.mu.Unlock()
		return
	}
	nh.conn = nil
	if reason == StopReadError {
		nh.state = StateFailed
		nh.failure = readErr
	} else {
		nh.state = StateDisconnected
	}
	nh.mu.Unlock()

	if err := conn.Close(); err != nil {
		log.Debug().Err(err).Msg("closing stopped connection")
	}
}

func classifyDialError(addr string, err error) *ConnectError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &ConnectError{Kind: ConnectTimeout, Addr: addr, Err: err}
	}
	return &ConnectError{Kind: ConnectOther, Addr: addr, Err: err}
}

// SendLine writes line plus a newline terminator. It blocks while the
// socket send buffer is full.
func (nh *NetHandler) SendLine(line string) error {
	nh.mu.Lock()
	conn := nh.conn
	nh.mu.Unlock()

	if conn == nil {
		return ErrNotConnected
	}

	if _, err := conn.Write([]byte(line + "\n")); err != nil {
		log.Error().Err(err).Msg("write to server failed")
		return err
	}

	log.Debug().Int("bytes", len(line)+1).Msg("line sent")
	return nil
}

func (nh *NetHandler) Drain() []string {
	return nh.queue.Drain()
}

func (nh *NetHandler) Queue() *MsgQueue {
	return nh.queue
}

func (nh *NetHandler) State() ConnState {
	nh.mu.Lock()
	defer nh.mu.Unlock()
	return nh.state
}

// Failure returns the error that moved the handler into StateFailed.
func (nh *NetHandler) Failure() error {
	nh.mu.Lock()
	defer nh.mu.Unlock()
	return nh.failure
}

// Done is closed once the receiver goroutine has stopped. It is nil before
// the first successful Connect.
func (nh *NetHandler) Done() <-chan struct{} {
	nh.mu.Lock()
	defer nh.mu.Unlock()
	return nh.done
}

// Reset makes a failed handler usable for a manual retry.
func (nh *NetHandler) Reset() {
	nh.mu.Lock()
	defer nh.mu.Unlock()
	if nh.state == StateFailed {
		nh.state = StateDisconnected
	}
}

// Close shuts the socket. The receiver stops on its own once its blocked
// read returns.
func (nh *NetHandler) Close() error {
	nh.mu.Lock()
	conn := nh.conn
	nh.conn = nil
	if conn != nil {
		nh.state = StateDisconnected
	}
	nh.mu.Unlock()

	if conn == nil {
		return nil
	}

	log.Info().Msg("closing connection")
	err := conn.Close()
	nh.wg.Wait()
	return err
}
