package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Align int

const (
	AlignCenter Align = iota
	AlignLeft
)

type LabelComponent struct {
	bounds   rl.Rectangle
	text     func() string
	FontSize int32
	Color    rl.Color
	Align    Align
}

func NewLabelComponent(text string, fontSize int32, color rl.Color) *LabelComponent {
	return NewBoundLabel(func() string { return text }, fontSize, color)
}

// NewBoundLabel reads its text on every frame, so it follows the model.
func NewBoundLabel(text func() string, fontSize int32, color rl.Color) *LabelComponent {
	return &LabelComponent{
		text:     text,
		FontSize: fontSize,
		Color:    color,
	}
}

func (l *LabelComponent) Calculate(bounds rl.Rectangle) {
	l.bounds = bounds
}

func (l *LabelComponent) Draw(eventChannel chan<- UIEvent) {
	text := l.text()
	x := l.bounds.X + margin
	if l.Align == AlignCenter {
		textWidth := rl.MeasureText(text, l.FontSize)
		x = l.bounds.X + (l.bounds.Width/2 - float32(textWidth)/2)
	}
	y := l.bounds.Y + (l.bounds.Height/2 - float32(l.FontSize)/2)
	rl.DrawText(text, int32(x), int32(y), l.FontSize, l.Color)
}

func (l *LabelComponent) GetBounds() rl.Rectangle {
	return l.bounds
}
