package game

import (
	"context"
	"sync"
	"testing"
	"time"
)

// recorder is a Presenter that remembers every command it was given.
type recorder struct {
	mu   sync.Mutex
	cmds []UICommand
}

func (r *recorder) Present(cmd UICommand) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cmds = append(r.cmds, cmd)
}

func (r *recorder) Commands() []UICommand {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]UICommand, len(r.cmds))
	copy(out, r.cmds)
	return out
}

func (r *recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cmds = nil
}

// fakeLink stands in for the network handler.
type fakeLink struct {
	mu         sync.Mutex
	pending    []string
	lines      []string
	writeErr   error
	connectErr error
	connects   int
	resets     int
}

func (f *fakeLink) Push(chunks ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = append(f.pending, chunks...)
}

func (f *fakeLink) Drain() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.pending
	f.pending = nil
	return out
}

func (f *fakeLink) SendLine(line string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.lines = append(f.lines, line)
	return nil
}

func (f *fakeLink) Connect(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connects++
	return f.connectErr
}

func (f *fakeLink) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets++
}

func (f *fakeLink) Lines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.lines))
	copy(out, f.lines)
	return out
}

func (f *fakeLink) Counts() (connects, resets int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connects, f.resets
}

type fixture struct {
	session    *Session
	rec        *recorder
	link       *fakeLink
	dispatcher *Dispatcher
	countdown  *Countdown
	sender     *Sender
}

func newFixture(carryPartialLines bool) *fixture {
	f := &fixture{
		session: NewSession(),
		rec:     &recorder{},
		link:    &fakeLink{},
	}
	f.dispatcher = NewDispatcher(f.session, f.rec, f.link, DefaultVocabulary(), carryPartialLines)
	f.countdown = NewCountdown(f.session, f.rec)
	f.sender = NewSender(f.session, f.rec, f.link)
	return f
}

// feed queues chunks and runs one dispatcher tick.
func (f *fixture) feed(chunks ...string) int {
	f.link.Push(chunks...)
	return f.dispatcher.Tick()
}

// trySnapshot asks the loop for a snapshot without failing the test, so it
// is safe inside Eventually conditions.
func trySnapshot(l *Loop, within time.Duration) (SessionSnapshot, bool) {
	reply := make(chan SessionSnapshot, 1)
	select {
	case l.Inputs() <- EvtSnapshot{Reply: reply}:
	case <-time.After(within):
		return SessionSnapshot{}, false
	}
	select {
	case snap := <-reply:
		return snap, true
	case <-time.After(within):
		return SessionSnapshot{}, false
	}
}

func recvSnapshot(t *testing.T, l *Loop, within time.Duration) SessionSnapshot {
	t.Helper()
	snap, ok := trySnapshot(l, within)
	if !ok {
		t.Fatalf("timed out waiting for snapshot")
	}
	return snap
}
