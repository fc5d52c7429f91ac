package window

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jonboulle/clockwork"
)

const margin float32 = 5

type PopupComponent interface {
	RGComponent
	Update() bool // Returns true if the popup is still-alive
}

type TimedPopup struct {
	bounds    rl.Rectangle
	text      string
	color     rl.Color
	clock     clockwork.Clock
	duration  time.Duration
	startTime time.Time
}

func NewTimedPopup(text string, duration time.Duration, clock clockwork.Clock) *TimedPopup {
	return &TimedPopup{
		text:      text,
		color:     rl.NewColor(120, 30, 30, 240),
		clock:     clock,
		duration:  duration,
		startTime: clock.Now(),
	}
}

func (p *TimedPopup) Text() string {
	return p.text
}

func (p *TimedPopup) Update() bool {
	return p.clock.Since(p.startTime) < p.duration
}

// Calculate sizes the popup to its text and pins it to the top-right
// corner of screenBounds.
func (p *TimedPopup) Calculate(screenBounds rl.Rectangle) {
	textSize := rl.MeasureTextEx(rl.GetFontDefault(), p.text, 20, 1)

	p.bounds.Width = textSize.X + 2*margin
	p.bounds.Height = textSize.Y + 2*margin

	p.bounds.X = screenBounds.X + screenBounds.Width - p.bounds.Width - margin
	p.bounds.Y = screenBounds.Y + margin
}

func (p *TimedPopup) Draw(eventChannel chan<- UIEvent) {
	rl.DrawRectangleRec(p.bounds, p.color)
	rl.DrawRectangleLinesEx(p.bounds, 2, rl.White)

	rl.DrawTextEx(
		rl.GetFontDefault(),
		p.text,
		rl.Vector2{
			X: p.bounds.X + margin,
			Y: p.bounds.Y + margin,
		},
		20,
		1,
		rl.White,
	)
}

func (p *TimedPopup) GetBounds() rl.Rectangle {
	return p.bounds
}
