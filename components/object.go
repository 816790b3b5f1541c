package components

import (
	"github.com/automoto/superbros/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData holds an entity's bounding box. The resolv object is the
// single source of truth for position and size.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the current bounding box.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// MoveTo places the object and refreshes its space cells.
func (o *ObjectData) MoveTo(x, y float64) {
	o.X = x
	o.Y = y
	if o.Space != nil {
		o.Update()
	}
}

var Object = donburi.NewComponentType[ObjectData]()
