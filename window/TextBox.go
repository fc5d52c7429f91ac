package window

import (
	"sync"

	rg "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type TextBoxComponent struct {
	bounds    rl.Rectangle
	ID        string
	Text      *string // Pointer to the model string
	TextMutex *sync.RWMutex
	maxChars  int
	editMode  bool
	enabled   func() bool
}

func NewTextBoxComponent(id string, text *string, mutex *sync.RWMutex, maxChars int) *TextBoxComponent {
	return &TextBoxComponent{
		ID:        id,
		Text:      text,
		TextMutex: mutex,
		maxChars:  maxChars,
	}
}

func (t *TextBoxComponent) WithEnabled(enabled func() bool) *TextBoxComponent {
	t.enabled = enabled
	return t
}

// Focus puts the box in edit mode, used when a dialog opens.
func (t *TextBoxComponent) Focus() {
	t.editMode = true
}

func (t *TextBoxComponent) Calculate(bounds rl.Rectangle) {
	t.bounds = bounds
}

func (t *TextBoxComponent) Draw(eventChannel chan<- UIEvent) {
	enabled := t.enabled == nil || t.enabled()
	if !enabled {
		t.editMode = false
		rg.Disable()
		defer rg.Enable()
	} else if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		t.editMode = rl.CheckCollisionPointRec(rl.GetMousePosition(), t.bounds)
	}

	t.TextMutex.Lock()
	changed := rg.TextBox(t.bounds, t.Text, t.maxChars, t.editMode)
	t.TextMutex.Unlock()

	if !changed || !enabled {
		return
	}
	if t.editMode && rl.IsKeyPressed(rl.KeyEnter) {
		emit(eventChannel, UIEvent{SourceID: t.ID, Type: EventSubmit})
		return
	}
	emit(eventChannel, UIEvent{SourceID: t.ID, Type: EventValueChange})
}

func (t *TextBoxComponent) GetBounds() rl.Rectangle {
	return t.bounds
}
