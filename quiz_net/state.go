package quiz_net

import (
	"errors"
	"fmt"
)

type ConnState int

const (
	StateDisconnected ConnState = iota
	StateConnecting
	StateConnected
	StateFailed
)

func (s ConnState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	ErrNotConnected     = errors.New("not connected to server")
	ErrAlreadyConnected = errors.New("connection already in progress or established")
)

type ConnectErrorKind int

const (
	ConnectTimeout ConnectErrorKind = iota
	ConnectOther
)

// ConnectError is returned by NetHandler.Connect for any failed attempt.
type ConnectError struct {
	Kind ConnectErrorKind
	Addr string
	Err  error
}

func (e *ConnectError) Error() string {
	if e.Kind == ConnectTimeout {
		return fmt.Sprintf("connect to %s: timed out", e.Addr)
	}
	return fmt.Sprintf("connect to %s: %v", e.Addr, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

func (e *ConnectError) Timeout() bool {
	return e.Kind == ConnectTimeout
}
