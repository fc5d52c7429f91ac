package game

// UICommand is an effect the presentation layer has to carry out.
// The game loop emits them and never looks at them again.
type UICommand interface{ isUICommand() }

// ResetBoard clears message and ranking history and puts the question and
// time labels back to their placeholders.
type ResetBoard struct{}

func (ResetBoard) isUICommand() {}

// PromptNickname asks the user for a nickname. The answer comes back as
// EvtNicknameEntered.
type PromptNickname struct{}

func (PromptNickname) isUICommand() {}

// ShowError is appended to the message history without clearing it.
type ShowError struct {
	Text string
}

func (ShowError) isUICommand() {}

// ShowMessage replaces the message history with a single line.
type ShowMessage struct {
	Text     string
	Centered bool
}

func (ShowMessage) isUICommand() {}

type AppendRanking struct {
	Text string
}

func (AppendRanking) isUICommand() {}

type ShowQuestion struct {
	Text string
}

func (ShowQuestion) isUICommand() {}

type SetTimeLeft struct {
	Seconds int
}

func (SetTimeLeft) isUICommand() {}

// SetAnswerInputEnabled toggles the answer field and send button.
// ClearAnswer also wipes whatever the user had typed.
type SetAnswerInputEnabled struct {
	Enabled     bool
	ClearAnswer bool
}

func (SetAnswerInputEnabled) isUICommand() {}

// Presenter receives commands on the game loop goroutine. Implementations
// must not block for long.
type Presenter interface {
	Present(cmd UICommand)
}

type PresenterFunc func(cmd UICommand)

func (f PresenterFunc) Present(cmd UICommand) { f(cmd) }
