package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qnet "quiz-client/quiz_net"
)

type runningLoop struct {
	loop   *Loop
	clock  *clockwork.FakeClock
	link   *fakeLink
	rec    *recorder
	cancel context.CancelFunc
	errCh  chan error
}

func startLoop(t *testing.T, link *fakeLink) *runningLoop {
	t.Helper()

	clock := clockwork.NewFakeClock()
	rec := &recorder{}
	loop := NewLoop(DefaultLoopConfig(), link, rec, WithClock(clock))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(ctx) }()

	waitCtx, waitCancel := context.WithTimeout(ctx, time.Second)
	defer waitCancel()
	// both tickers registered means the loop is past connect and selecting
	require.NoError(t, clock.BlockUntilContext(waitCtx, 2))

	rl := &runningLoop{loop: loop, clock: clock, link: link, rec: rec, cancel: cancel, errCh: errCh}
	t.Cleanup(rl.stop)
	return rl
}

func (rl *runningLoop) stop() {
	rl.cancel()
	select {
	case <-rl.errCh:
	case <-time.After(time.Second):
	}
}

func (rl *runningLoop) waitCommands(t *testing.T, n int) []UICommand {
	t.Helper()
	require.Eventually(t, func() bool { return len(rl.rec.Commands()) >= n }, time.Second, 5*time.Millisecond)
	return rl.rec.Commands()
}

func TestLoop_DispatchesOnEachTick(t *testing.T) {
	rl := startLoop(t, &fakeLink{})

	rl.link.Push("Question: Capital of France?\n")
	assert.Empty(t, rl.rec.Commands())

	rl.clock.Advance(DefaultDispatchInterval)

	cmds := rl.waitCommands(t, 2)
	assert.Equal(t, []UICommand{
		ShowQuestion{Text: "Question: Capital of France?"},
		SetAnswerInputEnabled{Enabled: true, ClearAnswer: true},
	}, cmds)
}

func TestLoop_CountdownFollowsResync(t *testing.T) {
	rl := startLoop(t, &fakeLink{})

	rl.link.Push("TIME_LEFT=42\n")
	rl.clock.Advance(DefaultDispatchInterval)
	require.Eventually(t, func() bool {
		snap, ok := trySnapshot(rl.loop, 100*time.Millisecond)
		return ok && snap.TimeLeft == 42
	}, time.Second, 5*time.Millisecond)

	rl.clock.Advance(DefaultTimerInterval - DefaultDispatchInterval)

	require.Eventually(t, func() bool {
		snap, ok := trySnapshot(rl.loop, 100*time.Millisecond)
		return ok && snap.TimeLeft == 41
	}, time.Second, 5*time.Millisecond)
	assert.Contains(t, rl.rec.Commands(), UICommand(SetTimeLeft{Seconds: 41}))
}

func TestLoop_NicknameRoundTrip(t *testing.T) {
	rl := startLoop(t, &fakeLink{})

	rl.link.Push("Podaj swój pseudonim:\n")
	rl.clock.Advance(DefaultDispatchInterval)
	assert.Equal(t, []UICommand{PromptNickname{}}, rl.waitCommands(t, 1))

	rl.loop.Inputs() <- EvtNicknameEntered{Text: "alice"}
	require.Eventually(t, func() bool { return len(rl.link.Lines()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"alice"}, rl.link.Lines())

	rl.link.Push("Zalogowano pomyślnie!\n")
	rl.clock.Advance(DefaultDispatchInterval)
	require.Eventually(t, func() bool {
		snap, ok := trySnapshot(rl.loop, 100*time.Millisecond)
		return ok && snap.Phase == PhasePlaying
	}, time.Second, 5*time.Millisecond)
}

func TestLoop_AnswerSubmission(t *testing.T) {
	rl := startLoop(t, &fakeLink{})

	rl.loop.Inputs() <- EvtAnswerSubmitted{Text: "too early"}
	// inputs are served in order, so the snapshot reply means it was handled
	require.False(t, recvSnapshot(t, rl.loop, time.Second).AnswerInputEnabled)
	assert.Empty(t, rl.link.Lines())

	rl.link.Push("IN_GAME=1\n")
	rl.clock.Advance(DefaultDispatchInterval)
	rl.waitCommands(t, 1)

	rl.loop.Inputs() <- EvtAnswerSubmitted{Text: "Paryż"}
	require.Eventually(t, func() bool { return len(rl.link.Lines()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"Paryż"}, rl.link.Lines())

	snap := recvSnapshot(t, rl.loop, time.Second)
	assert.False(t, snap.AnswerInputEnabled)
	assert.True(t, snap.InGame)
}

func TestLoop_ConnectTimeoutIsReported(t *testing.T) {
	link := &fakeLink{connectErr: &qnet.ConnectError{Kind: qnet.ConnectTimeout, Addr: "127.0.0.1:12345"}}
	rl := startLoop(t, link)

	assert.Equal(t, []UICommand{ShowError{Text: msgConnectTimeout}}, rl.rec.Commands())

	// the loop keeps serving ticks after a failed connect
	rl.clock.Advance(DefaultTimerInterval)
	cmds := rl.waitCommands(t, 2)
	assert.Equal(t, SetTimeLeft{Seconds: 0}, cmds[len(cmds)-1])
}

func TestLoop_ConnectFailureAndManualRetry(t *testing.T) {
	link := &fakeLink{connectErr: &qnet.ConnectError{
		Kind: qnet.ConnectOther,
		Addr: "127.0.0.1:12345",
		Err:  errors.New("connection refused"),
	}}
	rl := startLoop(t, link)

	assert.Equal(t, []UICommand{
		ShowError{Text: "Could not connect to the server: connect to 127.0.0.1:12345: connection refused"},
	}, rl.rec.Commands())

	rl.loop.Inputs() <- EvtRetryConnect{}
	require.Eventually(t, func() bool {
		connects, resets := link.Counts()
		return connects == 2 && resets == 1
	}, time.Second, 5*time.Millisecond)
}

func TestLoop_StopsOnCancel(t *testing.T) {
	rl := startLoop(t, &fakeLink{})

	rl.cancel()

	select {
	case err := <-rl.errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
}
