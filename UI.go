package main

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"

	"quiz-client/board"
	"quiz-client/game"
	qnet "quiz-client/quiz_net"
	w "quiz-client/window"
)

const (
	answerBoxID = "Game_AnswerBox"
	sendBtnID   = "Game_SendBtn"
	retryBtnID  = "Game_RetryBtn"
)

func buildUI(ctx *ProgCtx) {
	ctx.UI.Board = buildBoardScreen(ctx)
	ctx.UI.Nickname = buildNicknameDialog(ctx)
}

// readBoard runs fn with the board read-locked.
func readBoard[T any](ctx *ProgCtx, fn func(b *board.Board) T) func() T {
	return func() T {
		ctx.BoardMutex.RLock()
		defer ctx.BoardMutex.RUnlock()
		return fn(ctx.Board)
	}
}

func buildBoardScreen(ctx *ProgCtx) UIElement {
	screen := w.NewVStack(10)

	messages := w.NewLogBox(func() ([]w.LogLine, int) {
		return messageLines(ctx.Board.Messages), ctx.Board.MessagesRevision
	}, &ctx.BoardMutex, 18, rl.NewColor(40, 40, 48, 255))

	question := w.NewBoundLabel(readBoard(ctx, func(b *board.Board) string { return b.Question }), 24, rl.White)
	timeLeft := w.NewBoundLabel(readBoard(ctx, func(b *board.Board) string { return b.TimeLabel }), 22, rl.Gold)

	answerEnabled := readBoard(ctx, func(b *board.Board) bool { return b.AnswerEnabled })
	answerBox := w.NewTextBoxComponent(answerBoxID, &ctx.Board.AnswerText, &ctx.BoardMutex, 256).
		WithEnabled(answerEnabled)
	sendBtn := w.NewButtonComponent(sendBtnID, "Send answer").WithEnabled(answerEnabled)
	retryBtn := w.NewButtonComponent(retryBtnID, "Reconnect").WithEnabled(func() bool {
		return ctx.NetHandler.State() == qnet.StateFailed
	})

	answerRow := w.NewHStack(5)
	answerRow.AddWeighted(w.NewPanelComponent(rl.RayWhite, answerBox), 4)
	answerRow.AddChild(w.NewFixedSize(200, 50, sendBtn))
	answerRow.AddChild(w.NewFixedSize(200, 50, retryBtn))

	ranking := w.NewLogBox(func() ([]w.LogLine, int) {
		return rankingLines(ctx.Board.Ranking), ctx.Board.RankingRevision
	}, &ctx.BoardMutex, 18, rl.NewColor(30, 30, 36, 255))

	screen.AddWeighted(messages, 2)
	screen.AddChild(question)
	screen.AddChild(timeLeft)
	screen.AddChild(answerRow)
	screen.AddWeighted(ranking, 5)

	panel := w.NewPanelComponent(rl.DarkGray, screen)
	return UIElement{dirty: true, component: w.NewBoundsBox(0.95, 0.95, panel)}
}

func buildNicknameDialog(ctx *ProgCtx) UIElement {
	dialog := w.NewNicknameDialog(
		&ctx.Board.NicknameText,
		&ctx.BoardMutex,
		readBoard(ctx, func(b *board.Board) bool { return b.NicknamePrompt }),
	)
	return UIElement{dirty: true, component: dialog}
}

func messageLines(lines []board.Line) []w.LogLine {
	out := make([]w.LogLine, 0, len(lines))
	for _, line := range lines {
		color := rl.White
		if line.Error {
			color = rl.NewColor(255, 120, 120, 255)
		}
		out = append(out, w.LogLine{Text: line.Text, Centered: line.Centered, Color: color})
	}
	return out
}

func rankingLines(lines []string) []w.LogLine {
	out := make([]w.LogLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, w.LogLine{Text: line, Color: rl.RayWhite})
	}
	return out
}

func handleUIEvent(ctx *ProgCtx, event w.UIEvent) {
	switch {
	case event.SourceID == sendBtnID && event.Type == w.EventClick,
		event.SourceID == answerBoxID && event.Type == w.EventSubmit:
		ctx.BoardMutex.RLock()
		answer := ctx.Board.AnswerText
		ctx.BoardMutex.RUnlock()
		sendInput(ctx, game.EvtAnswerSubmitted{Text: answer})

	case event.SourceID == w.NicknameSubmitID && event.Type == w.EventClick,
		event.SourceID == w.NicknameBoxID && event.Type == w.EventSubmit:
		ctx.BoardMutex.Lock()
		nickname := ctx.Board.TakeNickname()
		ctx.BoardMutex.Unlock()
		sendInput(ctx, game.EvtNicknameEntered{Text: nickname})

	case event.SourceID == retryBtnID && event.Type == w.EventClick:
		sendInput(ctx, game.EvtRetryConnect{})
	}
}

// sendInput never blocks the render loop on a busy game loop.
func sendInput(ctx *ProgCtx, evt game.UserInputEvent) {
	select {
	case ctx.Inputs <- evt:
	default:
		log.Warn().Msg("game loop busy, input dropped")
		ctx.Popup.AddPopup("Busy, please try again", 2*time.Second)
	}
}
