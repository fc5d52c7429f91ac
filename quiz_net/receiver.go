package quiz_net

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/rs/zerolog/log"
)

const DefaultReadBufferSize = 1024

type StopReason int

const (
	StopPeerClosed StopReason = iota
	StopReadError
	StopLocalClose
)

func (r StopReason) String() string {
	switch r {
	case StopPeerClosed:
		return "peer closed"
	case StopReadError:
		return "read error"
	case StopLocalClose:
		return "closed locally"
	default:
		return "unknown"
	}
}

// MsgAcceptor is the receiving side of a connection. It only ever talks to
// the rest of the client by pushing decoded text into its queue.
type MsgAcceptor struct {
	conn    io.Reader
	queue   *MsgQueue
	bufSize int
	err     error
}

func NewMsgAcceptor(conn io.Reader, queue *MsgQueue, bufSize int) *MsgAcceptor {
	if bufSize <= 0 {
		bufSize = DefaultReadBufferSize
	}
	return &MsgAcceptor{conn: conn, queue: queue, bufSize: bufSize}
}

// AcceptMessages blocks until the stream ends. One successful read becomes
// exactly one queued chunk; invalid UTF-8 sequences are dropped.
func (a *MsgAcceptor) AcceptMessages() StopReason {
	log.Debug().Int("buffer", a.bufSize).Msg("receiver started")
	buffer := make([]byte, a.bufSize)
	var total int

	for {
		bytesRead, err := a.conn.Read(buffer)

		if bytesRead > 0 {
			total += bytesRead
			a.queue.Push(strings.ToValidUTF8(string(buffer[:bytesRead]), ""))
		}

		if err == nil {
			if bytesRead == 0 {
				// a zero-length read without an error is treated like EOF
				log.Info().Int("bytes_total", total).Msg("receiver: server closed the stream")
				return StopPeerClosed
			}
			continue
		}

		switch {
		case errors.Is(err, io.EOF):
			log.Info().Int("bytes_total", total).Msg("receiver: server closed the stream")
			return StopPeerClosed

		case errors.Is(err, net.ErrClosed), errors.Is(err, io.ErrClosedPipe):
			log.Debug().Int("bytes_total", total).Msg("receiver: connection closed locally")
			return StopLocalClose

		default:
			log.Error().Err(err).Int("bytes_total", total).Msg("receiver: read failed")
			a.err = err
			// newline on both sides so a pending partial line is released on its own
			a.queue.Push(fmt.Sprintf("\nReceiver error: %v\n", err))
			return StopReadError
		}
	}
}

// Err returns the read error behind StopReadError. It is only valid once
// AcceptMessages has returned.
func (a *MsgAcceptor) Err() error {
	return a.err
}
