package game

type Phase int

const (
	PhaseAwaitingNickname Phase = iota
	PhaseNicknameRejected
	PhasePlaying
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingNickname:
		return "awaiting_nickname"
	case PhaseNicknameRejected:
		return "nickname_rejected"
	case PhasePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Session is the client's view of the game. It is owned by the game loop
// goroutine and is never shared with the receiver.
type Session struct {
	NicknameConfirmed     bool
	AwaitingNicknameRetry bool
	InGame                bool

	timeLeft int

	// mirrors of what the presentation layer was last told
	nicknamePrompted   bool
	answerInputEnabled bool
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Phase() Phase {
	switch {
	case s.NicknameConfirmed:
		return PhasePlaying
	case s.AwaitingNicknameRetry:
		return PhaseNicknameRejected
	default:
		return PhaseAwaitingNickname
	}
}

// RoundOpen reports the Playing sub-state.
func (s *Session) RoundOpen() bool {
	return s.InGame
}

func (s *Session) TimeLeft() int {
	return s.timeLeft
}

// ResyncTimeLeft overwrites the countdown with a server value. Negative
// values are refused and the previous value is kept.
func (s *Session) ResyncTimeLeft(seconds int) bool {
	if seconds < 0 {
		return false
	}
	s.timeLeft = seconds
	return true
}

// tickDown decrements the countdown, stopping at zero.
func (s *Session) tickDown() int {
	if s.timeLeft > 0 {
		s.timeLeft--
	}
	return s.timeLeft
}

func (s *Session) NicknamePrompted() bool {
	return s.nicknamePrompted
}

func (s *Session) AnswerInputEnabled() bool {
	return s.answerInputEnabled
}

// record keeps the presentation mirrors in step with an outgoing command.
func (s *Session) record(cmd UICommand) {
	switch c := cmd.(type) {
	case PromptNickname:
		s.nicknamePrompted = true
	case SetAnswerInputEnabled:
		s.answerInputEnabled = c.Enabled
	}
}
