package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-client/game"
)

func TestBoard_Placeholders(t *testing.T) {
	b := New()

	assert.Equal(t, "Waiting for question...", b.Question)
	assert.Equal(t, "Time left: --", b.TimeLabel)
	assert.False(t, b.AnswerEnabled)
	assert.False(t, b.NicknamePrompt)
}

func TestBoard_ShowMessageReplacesHistory(t *testing.T) {
	b := New()

	b.Apply(game.ShowMessage{Text: "first"})
	b.Apply(game.ShowMessage{Text: "Pseudonim zajęty", Centered: true})

	assert.Equal(t, []Line{{Text: "Pseudonim zajęty", Centered: true}}, b.Messages)
}

func TestBoard_ShowErrorAppendsAndAlerts(t *testing.T) {
	b := New()
	b.Apply(game.ShowMessage{Text: "Zalogowano pomyślnie!", Centered: true})

	b.Apply(game.ShowError{Text: "You cannot send an empty answer!"})

	assert.Equal(t, []Line{
		{Text: "Zalogowano pomyślnie!", Centered: true},
		{Text: "You cannot send an empty answer!", Error: true},
	}, b.Messages)
	assert.Equal(t, []string{"You cannot send an empty answer!"}, b.TakeAlerts())
	assert.Empty(t, b.TakeAlerts())
}

func TestBoard_RankingIsAppendOnly(t *testing.T) {
	b := New()
	rev := b.RankingRevision
	messagesRev := b.MessagesRevision

	b.Apply(game.AppendRanking{Text: "Runda 1 zakończona, wyniki:"})
	b.Apply(game.AppendRanking{Text: "1. bob, Punkty za pytanie: 10"})

	assert.Equal(t, []string{"Runda 1 zakończona, wyniki:", "1. bob, Punkty za pytanie: 10"}, b.Ranking)
	assert.Greater(t, b.RankingRevision, rev)
	assert.Equal(t, messagesRev, b.MessagesRevision)
}

func TestBoard_MessageKeepsRankingRevision(t *testing.T) {
	b := New()
	b.Apply(game.AppendRanking{Text: "Runda 1 zakończona, wyniki:"})
	rankingRev := b.RankingRevision
	messagesRev := b.MessagesRevision

	b.Apply(game.ShowMessage{Text: "Koniec pytań"})
	b.Apply(game.ShowError{Text: "You cannot send an empty answer!"})

	assert.Equal(t, rankingRev, b.RankingRevision)
	assert.Equal(t, messagesRev+2, b.MessagesRevision)

	b.Apply(game.ResetBoard{})
	assert.Greater(t, b.RankingRevision, rankingRev)
}

func TestBoard_QuestionAndTime(t *testing.T) {
	b := New()

	b.Apply(game.ShowQuestion{Text: "Pytanie: Stolica Polski?"})
	b.Apply(game.SetTimeLeft{Seconds: 41})

	assert.Equal(t, "Pytanie: Stolica Polski?", b.Question)
	assert.Equal(t, "Time left: 41s", b.TimeLabel)
}

func TestBoard_ResetKeepsAnswerState(t *testing.T) {
	b := New()
	b.Apply(game.ShowMessage{Text: "hello"})
	b.Apply(game.AppendRanking{Text: "Ranking"})
	b.Apply(game.ShowQuestion{Text: "Pytanie: 2+2?"})
	b.Apply(game.SetTimeLeft{Seconds: 9})
	b.Apply(game.SetAnswerInputEnabled{Enabled: true})
	b.AnswerText = "4"

	b.Apply(game.ResetBoard{})

	assert.Empty(t, b.Messages)
	assert.Empty(t, b.Ranking)
	assert.Equal(t, QuestionPlaceholder, b.Question)
	assert.Equal(t, TimePlaceholder, b.TimeLabel)
	assert.True(t, b.AnswerEnabled)
	assert.Equal(t, "4", b.AnswerText)
}

func TestBoard_AnswerInput(t *testing.T) {
	b := New()
	b.Apply(game.SetAnswerInputEnabled{Enabled: true, ClearAnswer: true})
	b.AnswerText = "Paryż"

	b.Apply(game.SetAnswerInputEnabled{Enabled: true})
	assert.Equal(t, "Paryż", b.AnswerText)

	b.Apply(game.SetAnswerInputEnabled{Enabled: false, ClearAnswer: true})
	assert.False(t, b.AnswerEnabled)
	assert.Empty(t, b.AnswerText)
}

func TestBoard_NicknameDialog(t *testing.T) {
	b := New()

	b.Apply(game.PromptNickname{})
	require.True(t, b.NicknamePrompt)
	b.NicknameText = "alice"

	assert.Equal(t, "alice", b.TakeNickname())
	assert.False(t, b.NicknamePrompt)
	assert.Empty(t, b.NicknameText)
}
