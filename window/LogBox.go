package window

import (
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type LogLine struct {
	Text     string
	Centered bool
	Color    rl.Color
}

// LogBox draws a read-only list of lines and keeps the newest one in view
// whenever the source revision moves.
type LogBox struct {
	bounds   rl.Rectangle
	source   func() ([]LogLine, int)
	mutex    *sync.RWMutex
	fontSize int32
	bg       rl.Color

	revision int
	offset   int // index of the first visible line
}

func NewLogBox(source func() ([]LogLine, int), mutex *sync.RWMutex, fontSize int32, bg rl.Color) *LogBox {
	return &LogBox{
		source:   source,
		mutex:    mutex,
		fontSize: fontSize,
		bg:       bg,
		revision: -1,
	}
}

func (b *LogBox) Calculate(bounds rl.Rectangle) {
	b.bounds = bounds
}

func (b *LogBox) GetBounds() rl.Rectangle {
	return b.bounds
}

func (b *LogBox) visibleRows() int {
	lineHeight := float32(b.fontSize) + margin
	rows := int((b.bounds.Height - 2*margin) / lineHeight)
	return max(rows, 1)
}

func (b *LogBox) Draw(eventChannel chan<- UIEvent) {
	b.mutex.RLock()
	lines, revision := b.source()
	b.mutex.RUnlock()

	rows := b.visibleRows()
	if revision != b.revision {
		b.revision = revision
		b.offset = scrollToEnd(len(lines), rows)
	}
	wheel := 0
	if rl.CheckCollisionPointRec(rl.GetMousePosition(), b.bounds) {
		wheel = -int(rl.GetMouseWheelMove())
	}
	b.offset = scrollBy(b.offset, wheel, len(lines), rows)

	rl.DrawRectangleRec(b.bounds, b.bg)
	rl.DrawRectangleLinesEx(b.bounds, 1, rl.Gray)

	rl.BeginScissorMode(int32(b.bounds.X), int32(b.bounds.Y), int32(b.bounds.Width), int32(b.bounds.Height))
	defer rl.EndScissorMode()

	y := b.bounds.Y + margin
	for _, line := range lines[b.offset:min(b.offset+rows, len(lines))] {
		x := b.bounds.X + margin
		if line.Centered {
			textWidth := rl.MeasureText(line.Text, b.fontSize)
			x = b.bounds.X + (b.bounds.Width/2 - float32(textWidth)/2)
		}
		rl.DrawText(line.Text, int32(x), int32(y), b.fontSize, line.Color)
		y += float32(b.fontSize) + margin
	}
}

func scrollToEnd(count, rows int) int {
	return max(count-rows, 0)
}

func scrollBy(offset, delta, count, rows int) int {
	offset += delta
	return min(max(offset, 0), scrollToEnd(count, rows))
}
