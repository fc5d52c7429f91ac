package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	qnet "quiz-client/quiz_net"
)

const (
	DefaultDispatchInterval = 100 * time.Millisecond
	DefaultTimerInterval    = time.Second

	msgConnectTimeout = "Timed out connecting to the server. Try again."
)

// Link is the game loop's view of the server connection.
type Link interface {
	Source
	LineWriter
	Connect(ctx context.Context) error
	Reset()
}

type UserInputEvent any

type EvtNicknameEntered struct {
	Text string
}

type EvtAnswerSubmitted struct {
	Text string
}

// EvtRetryConnect is a manual reconnect attempt after a failed connect.
type EvtRetryConnect struct{}

// EvtSnapshot asks the loop for a copy of the session without racing it.
type EvtSnapshot struct {
	Reply chan<- SessionSnapshot
}

type SessionSnapshot struct {
	Phase                 Phase
	NicknameConfirmed     bool
	AwaitingNicknameRetry bool
	InGame                bool
	TimeLeft              int
	NicknamePrompted      bool
	AnswerInputEnabled    bool
}

type LoopConfig struct {
	DispatchInterval  time.Duration
	TimerInterval     time.Duration
	CarryPartialLines bool
	Vocabulary        Vocabulary
}

func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		DispatchInterval: DefaultDispatchInterval,
		TimerInterval:    DefaultTimerInterval,
		Vocabulary:       DefaultVocabulary(),
	}
}

// Loop is the single goroutine that owns the session. It runs the
// dispatcher, the countdown and every user action, so none of them need locks.
type Loop struct {
	cfg       LoopConfig
	clock     clockwork.Clock
	link      Link
	presenter Presenter

	session    *Session
	dispatcher *Dispatcher
	countdown  *Countdown
	sender     *Sender

	inputs chan UserInputEvent
}

type Option func(*Loop)

// WithClock swaps the real clock, tests pass a clockwork.FakeClock.
func WithClock(clock clockwork.Clock) Option {
	return func(l *Loop) { l.clock = clock }
}

func NewLoop(cfg LoopConfig, link Link, presenter Presenter, opts ...Option) *Loop {
	session := NewSession()
	l := &Loop{
		cfg:        cfg,
		clock:      clockwork.NewRealClock(),
		link:       link,
		presenter:  presenter,
		session:    session,
		dispatcher: NewDispatcher(session, presenter, link, cfg.Vocabulary, cfg.CarryPartialLines),
		countdown:  NewCountdown(session, presenter),
		sender:     NewSender(session, presenter, link),
		inputs:     make(chan UserInputEvent, 16),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loop) Inputs() chan<- UserInputEvent {
	return l.inputs
}

// Run connects and then serves ticks and user input until ctx is done.
// A failed connect is reported to the user but does not stop the loop.
func (l *Loop) Run(ctx context.Context) error {
	log.Info().
		Dur("dispatch_interval", l.cfg.DispatchInterval).
		Dur("timer_interval", l.cfg.TimerInterval).
		Bool("carry_partial_lines", l.cfg.CarryPartialLines).
		Msg("game loop started")

	l.connect(ctx)

	dispatchTicker := l.clock.NewTicker(l.cfg.DispatchInterval)
	defer dispatchTicker.Stop()
	timerTicker := l.clock.NewTicker(l.cfg.TimerInterval)
	defer timerTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("game loop stopped")
			return ctx.Err()

		case <-dispatchTicker.Chan():
			l.dispatcher.Tick()

		case <-timerTicker.Chan():
			l.countdown.Tick()

		case input := <-l.inputs:
			l.handleInput(ctx, input)
		}
	}
}

func (l *Loop) connect(ctx context.Context) {
	err := l.link.Connect(ctx)
	if err == nil {
		return
	}

	var connErr *qnet.ConnectError
	if errors.As(err, &connErr) && connErr.Timeout() {
		l.presenter.Present(ShowError{Text: msgConnectTimeout})
		return
	}
	l.presenter.Present(ShowError{Text: fmt.Sprintf("Could not connect to the server: %v", err)})
}

func (l *Loop) handleInput(ctx context.Context, input UserInputEvent) {
	switch evt := input.(type) {
	case EvtNicknameEntered:
		if err := l.sender.SubmitNickname(evt.Text); err != nil {
			log.Debug().Err(err).Msg("nickname not sent")
		}

	case EvtAnswerSubmitted:
		if err := l.sender.SubmitAnswer(evt.Text); err != nil {
			log.Debug().Err(err).Msg("answer not sent")
		}

	case EvtRetryConnect:
		l.link.Reset()
		l.connect(ctx)

	case EvtSnapshot:
		evt.Reply <- l.snapshot()

	default:
		log.Warn().Str("type", fmt.Sprintf("%T", input)).Msg("unknown user input")
	}
}

func (l *Loop) snapshot() SessionSnapshot {
	s := l.session
	return SessionSnapshot{
		Phase:                 s.Phase(),
		NicknameConfirmed:     s.NicknameConfirmed,
		AwaitingNicknameRetry: s.AwaitingNicknameRetry,
		InGame:                s.InGame,
		TimeLeft:              s.TimeLeft(),
		NicknamePrompted:      s.NicknamePrompted(),
		AnswerInputEnabled:    s.AnswerInputEnabled(),
	}
}
