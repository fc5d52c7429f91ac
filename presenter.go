package main

import (
	"time"

	"github.com/rs/zerolog/log"

	"quiz-client/game"
)

const errorPopupDuration = 4 * time.Second

// boardPresenter is the game loop's Presenter. Commands land on the board
// under its mutex, the render loop picks them up on the next frame.
type boardPresenter struct {
	ctx *ProgCtx
}

func (p boardPresenter) Present(cmd game.UICommand) {
	log.Debug().Str("command", commandName(cmd)).Msg("presenting")

	p.ctx.BoardMutex.Lock()
	p.ctx.Board.Apply(cmd)
	p.ctx.BoardMutex.Unlock()
}

// drainAlerts turns board errors into popups. Render thread only.
func drainAlerts(ctx *ProgCtx) {
	ctx.BoardMutex.Lock()
	alerts := ctx.Board.TakeAlerts()
	ctx.BoardMutex.Unlock()

	for _, text := range alerts {
		ctx.Popup.AddPopup(text, errorPopupDuration)
	}
}

func commandName(cmd game.UICommand) string {
	switch cmd.(type) {
	case game.ResetBoard:
		return "reset_board"
	case game.PromptNickname:
		return "prompt_nickname"
	case game.ShowError:
		return "show_error"
	case game.ShowMessage:
		return "show_message"
	case game.AppendRanking:
		return "append_ranking"
	case game.ShowQuestion:
		return "show_question"
	case game.SetTimeLeft:
		return "set_time_left"
	case game.SetAnswerInputEnabled:
		return "set_answer_input_enabled"
	default:
		return "unknown"
	}
}

var _ game.Presenter = boardPresenter{}
