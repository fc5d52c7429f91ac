package window

import (
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

// probe records the bounds it was laid out with.
type probe struct {
	bounds rl.Rectangle
}

func (p *probe) Calculate(bounds rl.Rectangle)    { p.bounds = bounds }
func (p *probe) GetBounds() rl.Rectangle          { return p.bounds }
func (p *probe) Draw(eventChannel chan<- UIEvent) {}

func TestSplitWeighted(t *testing.T) {
	tests := []struct {
		name    string
		length  float32
		padding float32
		weights []float32
		want    []float32
	}{
		{"even", 100, 0, []float32{1, 1}, []float32{50, 50}},
		{"weighted", 110, 10, []float32{1, 3}, []float32{25, 75}},
		{"no room", 5, 10, []float32{1, 1}, []float32{0, 0}},
		{"empty", 100, 10, nil, []float32{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitWeighted(tt.length, tt.padding, tt.weights))
		})
	}
}

func TestVStack_Calculate(t *testing.T) {
	top, bottom := &probe{}, &probe{}
	stack := NewVStack(10)
	stack.AddChild(top)
	stack.AddWeighted(bottom, 2)

	stack.Calculate(rl.Rectangle{X: 0, Y: 0, Width: 120, Height: 130})

	assert.Equal(t, float32(10), top.bounds.X)
	assert.Equal(t, float32(10), top.bounds.Y)
	assert.Equal(t, float32(100), top.bounds.Width)
	assert.InDelta(t, 33.33, top.bounds.Height, 0.01)
	assert.InDelta(t, 53.33, bottom.bounds.Y, 0.01)
	assert.InDelta(t, 66.67, bottom.bounds.Height, 0.01)
}

func TestHStack_Calculate(t *testing.T) {
	left, right := &probe{}, &probe{}
	stack := NewHStack(0)
	stack.AddChild(left)
	stack.AddChild(right)

	stack.Calculate(rl.Rectangle{X: 20, Y: 5, Width: 200, Height: 40})

	assert.Equal(t, rl.Rectangle{X: 20, Y: 5, Width: 100, Height: 40}, left.bounds)
	assert.Equal(t, rl.Rectangle{X: 120, Y: 5, Width: 100, Height: 40}, right.bounds)
}

func TestBoundsBoxAndFixedSize(t *testing.T) {
	inner := &probe{}
	NewBoundsBox(0.5, 0.5, inner).Calculate(rl.Rectangle{Width: 200, Height: 100})
	assert.Equal(t, rl.Rectangle{X: 50, Y: 25, Width: 100, Height: 50}, inner.bounds)

	btn := &probe{}
	NewFixedSize(150, 40, btn).Calculate(rl.Rectangle{X: 10, Y: 10, Width: 100, Height: 100})
	assert.Equal(t, rl.Rectangle{X: 10, Y: 40, Width: 100, Height: 40}, btn.bounds)
}

func TestScrolling(t *testing.T) {
	assert.Equal(t, 0, scrollToEnd(3, 5))
	assert.Equal(t, 7, scrollToEnd(12, 5))

	assert.Equal(t, 0, scrollBy(2, -5, 12, 5))
	assert.Equal(t, 7, scrollBy(6, 3, 12, 5))
	assert.Equal(t, 4, scrollBy(6, -2, 12, 5))
}

func TestTimedPopup_Expires(t *testing.T) {
	clock := clockwork.NewFakeClock()
	popup := NewTimedPopup("Could not send answer", 3*time.Second, clock)

	assert.True(t, popup.Update())
	clock.Advance(2 * time.Second)
	assert.True(t, popup.Update())
	clock.Advance(time.Second)
	assert.False(t, popup.Update())
}
