package window

import (
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	NicknameBoxID    = "Nickname_Box"
	NicknameSubmitID = "Nickname_SubmitBtn"
)

// NicknameDialog is a modal asking for a nickname. It draws nothing while
// visible reports false and swallows the screen otherwise.
type NicknameDialog struct {
	bounds  rl.Rectangle
	visible func() bool
	wasOpen bool

	textBox *TextBoxComponent
	body    RGComponent
}

func NewNicknameDialog(text *string, mutex *sync.RWMutex, visible func() bool) *NicknameDialog {
	textBox := NewTextBoxComponent(NicknameBoxID, text, mutex, 32)

	layout := NewVStack(10)
	layout.AddChild(NewLabelComponent("Nickname", 24, rl.White))
	layout.AddChild(NewLabelComponent("Provide your nickname:", 18, rl.LightGray))
	layout.AddChild(NewPanelComponent(rl.RayWhite, textBox))
	layout.AddChild(NewFixedSize(150, 40, NewButtonComponent(NicknameSubmitID, "OK")))

	return &NicknameDialog{
		visible: visible,
		textBox: textBox,
		body:    NewBoundsBox(0.4, 0.4, NewPanelComponent(rl.DarkGray, layout)),
	}
}

func (d *NicknameDialog) Calculate(bounds rl.Rectangle) {
	d.bounds = bounds
	d.body.Calculate(bounds)
}

func (d *NicknameDialog) Draw(eventChannel chan<- UIEvent) {
	open := d.visible()
	if open && !d.wasOpen {
		d.textBox.Focus()
	}
	d.wasOpen = open
	if !open {
		return
	}

	rl.DrawRectangleRec(d.bounds, rl.NewColor(0, 0, 0, 160))
	d.body.Draw(eventChannel)
}

func (d *NicknameDialog) GetBounds() rl.Rectangle {
	return d.bounds
}
