package game

import "strings"

// Rule is the outcome of classifying one protocol line. Lower values win
// when a line matches more than one rule.
type Rule int

const (
	RuleNewGame Rule = iota + 1
	RuleNicknameRequest
	RuleNicknameTaken
	RuleQuestion
	RuleTimeLeft
	RuleRoundClosed
	RuleRoundOpen
	RuleRanking
	RuleLoginOK
	RuleMessage
)

func (r Rule) String() string {
	switch r {
	case RuleNewGame:
		return "new_game"
	case RuleNicknameRequest:
		return "nickname_request"
	case RuleNicknameTaken:
		return "nickname_taken"
	case RuleQuestion:
		return "question"
	case RuleTimeLeft:
		return "time_left"
	case RuleRoundClosed:
		return "round_closed"
	case RuleRoundOpen:
		return "round_open"
	case RuleRanking:
		return "ranking"
	case RuleLoginOK:
		return "login_ok"
	case RuleMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Vocabulary holds the server's line sentinels.
type Vocabulary struct {
	NewGame         []string `mapstructure:"new_game"`         // whole line
	NicknameRequest []string `mapstructure:"nickname_request"` // prefix
	NicknameTaken   []string `mapstructure:"nickname_taken"`   // prefix
	Question        []string `mapstructure:"question"`         // prefix
	TimeLeft        string   `mapstructure:"time_left"`        // prefix, integer follows
	RoundClosed     string   `mapstructure:"round_closed"`     // prefix
	RoundOpen       string   `mapstructure:"round_open"`       // prefix
	Ranking         []string `mapstructure:"ranking"`          // substring
	LoginOK         []string `mapstructure:"login_ok"`         // substring
}

func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		NewGame:         []string{"Nowa gra rozpoczęta!", "New game started!"},
		NicknameRequest: []string{"Podaj swój pseudonim", "Provide your nickname"},
		NicknameTaken:   []string{"Pseudonim zajęty", "Nickname taken"},
		Question:        []string{"Pytanie:", "Question:"},
		TimeLeft:        "TIME_LEFT=",
		RoundClosed:     "IN_GAME=0",
		RoundOpen:       "IN_GAME=1",
		Ranking:         []string{"Ranking", "wyniki", "Punkty za pytanie", "results", "points for question"},
		LoginOK:         []string{"Zalogowano pomyślnie!", "Logged in successfully"},
	}
}

func (v Vocabulary) Classify(line string) Rule {
	switch {
	case equalsAny(line, v.NewGame):
		return RuleNewGame
	case hasAnyPrefix(line, v.NicknameRequest):
		return RuleNicknameRequest
	case hasAnyPrefix(line, v.NicknameTaken):
		return RuleNicknameTaken
	case hasAnyPrefix(line, v.Question):
		return RuleQuestion
	case v.TimeLeft != "" && strings.HasPrefix(line, v.TimeLeft):
		return RuleTimeLeft
	case v.RoundClosed != "" && strings.HasPrefix(line, v.RoundClosed):
		return RuleRoundClosed
	case v.RoundOpen != "" && strings.HasPrefix(line, v.RoundOpen):
		return RuleRoundOpen
	case containsAny(line, v.Ranking):
		return RuleRanking
	case containsAny(line, v.LoginOK):
		return RuleLoginOK
	default:
		return RuleMessage
	}
}

func equalsAny(line string, candidates []string) bool {
	for _, c := range candidates {
		if c != "" && line == c {
			return true
		}
	}
	return false
}

func hasAnyPrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

func containsAny(line string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(line, n) {
			return true
		}
	}
	return false
}
