package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoundsBox gives its child a centered fraction of the space it is handed.
type BoundsBox struct {
	bounds      rl.Rectangle
	widthRatio  float32
	heightRatio float32
	child       RGComponent
}

func NewBoundsBox(widthRatio float32, heightRatio float32, child RGComponent) *BoundsBox {
	return &BoundsBox{
		widthRatio:  widthRatio,
		heightRatio: heightRatio,
		child:       child,
	}
}

func (b *BoundsBox) GetBounds() rl.Rectangle {
	return b.bounds
}

func (b *BoundsBox) Calculate(bounds rl.Rectangle) {
	b.bounds = shrink(bounds, b.widthRatio, b.heightRatio)
	b.child.Calculate(b.bounds)
}

func (b *BoundsBox) Draw(eventChannel chan<- UIEvent) {
	b.child.Draw(eventChannel)
}

func shrink(outer rl.Rectangle, widthRatio, heightRatio float32) rl.Rectangle {
	width := outer.Width * widthRatio
	height := outer.Height * heightRatio
	return rl.Rectangle{
		X:      outer.X + (outer.Width-width)/2,
		Y:      outer.Y + (outer.Height-height)/2,
		Width:  width,
		Height: height,
	}
}

// FixedSize caps its child at a width and height and centers it.
type FixedSize struct {
	bounds rl.Rectangle
	width  float32
	height float32
	child  RGComponent
}

func NewFixedSize(width, height float32, child RGComponent) *FixedSize {
	return &FixedSize{width: width, height: height, child: child}
}

func (f *FixedSize) GetBounds() rl.Rectangle {
	return f.bounds
}

func (f *FixedSize) Calculate(bounds rl.Rectangle) {
	width := min(f.width, bounds.Width)
	height := min(f.height, bounds.Height)
	f.bounds = rl.Rectangle{
		X:      bounds.X + (bounds.Width-width)/2,
		Y:      bounds.Y + (bounds.Height-height)/2,
		Width:  width,
		Height: height,
	}
	f.child.Calculate(f.bounds)
}

func (f *FixedSize) Draw(eventChannel chan<- UIEvent) {
	f.child.Draw(eventChannel)
}
