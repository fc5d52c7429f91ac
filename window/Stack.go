package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// Stack lays its children out along one axis. Each child gets a share of
// the free space proportional to its weight.
type Stack struct {
	bounds   rl.Rectangle
	axis     Axis
	padding  float32
	children []RGComponent
	weights  []float32
}

func NewVStack(padding float32) *Stack {
	return &Stack{axis: Vertical, padding: padding}
}

func NewHStack(padding float32) *Stack {
	return &Stack{axis: Horizontal, padding: padding}
}

func (s *Stack) AddChild(child RGComponent) {
	s.AddWeighted(child, 1)
}

func (s *Stack) AddWeighted(child RGComponent, weight float32) {
	if weight <= 0 {
		weight = 1
	}
	s.children = append(s.children, child)
	s.weights = append(s.weights, weight)
}

func (s *Stack) GetBounds() rl.Rectangle {
	return s.bounds
}

func (s *Stack) Calculate(bounds rl.Rectangle) {
	s.bounds = bounds
	if len(s.children) == 0 {
		return
	}

	inner := rl.Rectangle{
		X:      bounds.X + s.padding,
		Y:      bounds.Y + s.padding,
		Width:  bounds.Width - s.padding*2,
		Height: bounds.Height - s.padding*2,
	}

	length := inner.Height
	if s.axis == Horizontal {
		length = inner.Width
	}
	sizes := splitWeighted(length, s.padding, s.weights)

	cursor := inner.Y
	if s.axis == Horizontal {
		cursor = inner.X
	}
	for i, child := range s.children {
		childBounds := inner
		if s.axis == Horizontal {
			childBounds.X = cursor
			childBounds.Width = sizes[i]
		} else {
			childBounds.Y = cursor
			childBounds.Height = sizes[i]
		}
		child.Calculate(childBounds)
		cursor += sizes[i] + s.padding
	}
}

func (s *Stack) Draw(eventChannel chan<- UIEvent) {
	// rl.DrawRectangleLinesEx(s.bounds, 1, rl.Red) // Debug draw
	for _, child := range s.children {
		child.Draw(eventChannel)
	}
}

// splitWeighted divides length minus the gaps between len(weights) slots.
func splitWeighted(length, padding float32, weights []float32) []float32 {
	sizes := make([]float32, len(weights))
	if len(weights) == 0 {
		return sizes
	}

	var total float32
	for _, w := range weights {
		total += w
	}

	available := length - padding*float32(len(weights)-1)
	if available < 0 {
		available = 0
	}
	for i, w := range weights {
		sizes[i] = available * w / total
	}
	return sizes
}
