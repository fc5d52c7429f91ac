package game

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	qnet "quiz-client/quiz_net"
)

const msgNicknameReasked = "Server re-asked for nickname"

// Source hands over every chunk received since the previous call.
type Source interface {
	Drain() []string
}

// Dispatcher turns received text into session updates and UI commands.
type Dispatcher struct {
	session   *Session
	presenter Presenter
	source    Source
	vocab     Vocabulary

	// nil means every chunk is split on its own
	assembler *qnet.LineAssembler
}

func NewDispatcher(session *Session, presenter Presenter, source Source, vocab Vocabulary, carryPartialLines bool) *Dispatcher {
	d := &Dispatcher{
		session:   session,
		presenter: presenter,
		source:    source,
		vocab:     vocab,
	}
	if carryPartialLines {
		d.assembler = &qnet.LineAssembler{}
	}
	return d
}

// Tick drains the source and handles every line in arrival order.
// It returns the number of lines handled.
func (d *Dispatcher) Tick() int {
	handled := 0
	for _, chunk := range d.source.Drain() {
		for _, line := range d.lines(chunk) {
			d.HandleLine(line)
			handled++
		}
	}
	return handled
}

func (d *Dispatcher) lines(chunk string) []string {
	if d.assembler != nil {
		return d.assembler.Feed(chunk)
	}
	return qnet.SplitLines(chunk)
}

// HandleLine applies the first matching rule for a single trimmed line.
func (d *Dispatcher) HandleLine(line string) Rule {
	rule := d.vocab.Classify(line)
	log.Debug().Str("rule", rule.String()).Str("line", line).Msg("dispatch")

	switch rule {
	case RuleNewGame:
		d.emit(ResetBoard{})

	case RuleNicknameRequest:
		if !d.session.NicknameConfirmed {
			d.emit(PromptNickname{})
		} else {
			log.Warn().Str("line", line).Msg("server asked for a nickname after login")
			d.emit(ShowError{Text: msgNicknameReasked})
		}

	case RuleNicknameTaken:
		d.emit(ShowMessage{Text: line, Centered: true})
		d.session.NicknameConfirmed = false
		d.session.AwaitingNicknameRetry = true
		d.emit(PromptNickname{})

	case RuleQuestion:
		d.emit(ShowQuestion{Text: line})
		d.emit(SetAnswerInputEnabled{Enabled: true, ClearAnswer: true})

	case RuleTimeLeft:
		d.resyncTimeLeft(line)

	case RuleRoundClosed:
		d.session.InGame = false
		d.emit(SetAnswerInputEnabled{Enabled: false, ClearAnswer: true})

	case RuleRoundOpen:
		d.session.InGame = true
		d.emit(SetAnswerInputEnabled{Enabled: true})

	case RuleRanking:
		d.emit(AppendRanking{Text: line})

	case RuleLoginOK:
		d.session.NicknameConfirmed = true
		d.session.AwaitingNicknameRetry = false
		d.emit(ShowMessage{Text: line, Centered: true})

	default:
		d.emit(ShowMessage{Text: line})
	}

	return rule
}

// resyncTimeLeft accepts exactly one integer after the prefix. Anything
// else is ignored and the current countdown keeps running.
func (d *Dispatcher) resyncTimeLeft(line string) {
	value := strings.TrimPrefix(line, d.vocab.TimeLeft)
	if strings.Contains(value, "=") {
		return
	}

	seconds, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return
	}

	if d.session.ResyncTimeLeft(seconds) {
		log.Debug().Int("seconds", seconds).Msg("time left resynced")
	}
}

func (d *Dispatcher) emit(cmd UICommand) {
	d.session.record(cmd)
	d.presenter.Present(cmd)
}
