package board

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"quiz-client/game"
)

const (
	QuestionPlaceholder = "Waiting for question..."
	TimePlaceholder     = "Time left: --"
)

type Line struct {
	Text     string
	Centered bool
	Error    bool
}

// Board is what the window draws. It is not safe for concurrent use, the
// caller guards it the same way it guards every other piece of UI state.
type Board struct {
	Messages []Line
	Ranking  []string

	Question  string
	TimeLabel string

	AnswerEnabled bool
	AnswerText    string

	NicknamePrompt bool
	NicknameText   string

	// bumped on every change to their list so each log box scrolls on its own
	MessagesRevision int
	RankingRevision  int

	alerts []string
}

func New() *Board {
	return &Board{
		Question:  QuestionPlaceholder,
		TimeLabel: TimePlaceholder,
	}
}

func FormatTimeLeft(seconds int) string {
	return fmt.Sprintf("Time left: %ds", seconds)
}

func (b *Board) Apply(cmd game.UICommand) {
	switch c := cmd.(type) {
	case game.ResetBoard:
		b.Messages = nil
		b.Ranking = nil
		b.Question = QuestionPlaceholder
		b.TimeLabel = TimePlaceholder
		b.MessagesRevision++
		b.RankingRevision++

	case game.PromptNickname:
		b.NicknamePrompt = true

	case game.ShowError:
		b.Messages = append(b.Messages, Line{Text: c.Text, Error: true})
		b.alerts = append(b.alerts, c.Text)
		b.MessagesRevision++

	case game.ShowMessage:
		b.Messages = []Line{{Text: c.Text, Centered: c.Centered}}
		b.MessagesRevision++

	case game.AppendRanking:
		b.Ranking = append(b.Ranking, c.Text)
		b.RankingRevision++

	case game.ShowQuestion:
		b.Question = c.Text

	case game.SetTimeLeft:
		b.TimeLabel = FormatTimeLeft(c.Seconds)

	case game.SetAnswerInputEnabled:
		b.AnswerEnabled = c.Enabled
		if c.ClearAnswer {
			b.AnswerText = ""
		}

	default:
		log.Warn().Str("type", fmt.Sprintf("%T", cmd)).Msg("board: unknown command")
	}
}

// TakeNickname closes the nickname dialog and hands back what was typed.
func (b *Board) TakeNickname() string {
	text := b.NicknameText
	b.NicknameText = ""
	b.NicknamePrompt = false
	return text
}

// TakeAlerts returns the errors raised since the last call.
func (b *Board) TakeAlerts() []string {
	out := b.alerts
	b.alerts = nil
	return out
}
