package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyNickname       = errors.New("nickname is empty")
	ErrNoNicknamePrompt    = errors.New("no nickname prompt is pending")
	ErrEmptyAnswer         = errors.New("answer is empty")
	ErrAnswerInputDisabled = errors.New("answer input is disabled")
)

const (
	msgNicknameRequired = "You must provide a nickname to join the game!"
	msgEmptyAnswer      = "You cannot send an empty answer!"
)

// LineWriter sends a single newline-terminated line to the server.
type LineWriter interface {
	SendLine(line string) error
}

// Sender writes user actions to the server.
type Sender struct {
	session   *Session
	presenter Presenter
	writer    LineWriter
}

func NewSender(session *Session, presenter Presenter, writer LineWriter) *Sender {
	return &Sender{session: session, presenter: presenter, writer: writer}
}

// SubmitNickname answers a pending nickname prompt. Empty input is refused
// locally and the prompt is issued again.
func (s *Sender) SubmitNickname(text string) error {
	if !s.session.nicknamePrompted {
		return ErrNoNicknamePrompt
	}

	nickname := strings.TrimSpace(text)
	if nickname == "" {
		s.emit(ShowError{Text: msgNicknameRequired})
		s.emit(PromptNickname{})
		return ErrEmptyNickname
	}

	if err := s.writer.SendLine(nickname); err != nil {
		s.emit(ShowError{Text: fmt.Sprintf("Could not send nickname: %v", err)})
		return fmt.Errorf("send nickname: %w", err)
	}

	log.Info().Str("nickname", nickname).Msg("nickname sent")
	s.session.nicknamePrompted = false
	s.session.AwaitingNicknameRetry = false
	return nil
}

// SubmitAnswer sends one answer for the open round and then locks the input
// until the server opens it again.
func (s *Sender) SubmitAnswer(text string) error {
	if strings.TrimSpace(text) == "" {
		s.emit(ShowError{Text: msgEmptyAnswer})
		return ErrEmptyAnswer
	}

	if !s.session.answerInputEnabled {
		return ErrAnswerInputDisabled
	}

	if err := s.writer.SendLine(text); err != nil {
		s.emit(ShowError{Text: fmt.Sprintf("Could not send answer: %v", err)})
		return fmt.Errorf("send answer: %w", err)
	}

	log.Info().Int("length", len(text)).Msg("answer sent")
	s.emit(SetAnswerInputEnabled{Enabled: false, ClearAnswer: true})
	return nil
}

func (s *Sender) emit(cmd UICommand) {
	s.session.record(cmd)
	s.presenter.Present(cmd)
}
