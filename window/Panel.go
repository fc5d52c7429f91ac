package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type PanelComponent struct {
	bounds rl.Rectangle
	Color  rl.Color
	Border rl.Color
	child  RGComponent
}

func NewPanelComponent(color rl.Color, child RGComponent) *PanelComponent {
	return &PanelComponent{Color: color, Border: rl.LightGray, child: child}
}

func (p *PanelComponent) Calculate(bounds rl.Rectangle) {
	p.bounds = bounds
	if p.child != nil {
		p.child.Calculate(bounds)
	}
}

func (p *PanelComponent) Draw(eventChannel chan<- UIEvent) {
	rl.DrawRectangleRec(p.bounds, p.Color)
	rl.DrawRectangleLinesEx(p.bounds, 1, p.Border)

	if p.child != nil {
		p.child.Draw(eventChannel)
	}
}

func (p *PanelComponent) GetBounds() rl.Rectangle {
	return p.bounds
}
