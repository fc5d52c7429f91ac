package window

import (
	rg "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type ButtonComponent struct {
	bounds  rl.Rectangle
	ID      string
	Text    string
	enabled func() bool
}

func NewButtonComponent(id string, text string) *ButtonComponent {
	return &ButtonComponent{ID: id, Text: text}
}

// WithEnabled greys the button out whenever enabled reports false.
func (b *ButtonComponent) WithEnabled(enabled func() bool) *ButtonComponent {
	b.enabled = enabled
	return b
}

func (b *ButtonComponent) Calculate(bounds rl.Rectangle) {
	b.bounds = bounds
}

func (b *ButtonComponent) Draw(eventChannel chan<- UIEvent) {
	enabled := b.enabled == nil || b.enabled()
	if !enabled {
		rg.Disable()
		defer rg.Enable()
	}

	if rg.Button(b.bounds, b.Text) && enabled {
		emit(eventChannel, UIEvent{SourceID: b.ID, Type: EventClick})
	}
}

func (b *ButtonComponent) GetBounds() rl.Rectangle {
	return b.bounds
}
