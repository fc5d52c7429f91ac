package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type EventType int

const (
	EventClick EventType = iota
	EventValueChange
	EventSubmit // Enter pressed inside a text box
)

type UIEvent struct {
	SourceID string
	Type     EventType
}

type RGComponent interface {
	Draw(eventChannel chan<- UIEvent)
	Calculate(bounds rl.Rectangle)
	GetBounds() rl.Rectangle
}

// emit never blocks the render loop, a full channel drops the event.
func emit(eventChannel chan<- UIEvent, event UIEvent) {
	select {
	case eventChannel <- event:
	default:
	}
}
