// Package dimension parses the TMX maps that back the selectable battle
// dimensions. It has no dependencies on ebitengine, donburi, or resolv: pure data only.
package dimension

import "image/color"

// Dimension is a parsed battle backdrop.
type Dimension struct {
	ID      string
	Name    string
	Width   int
	Height  int
	Top     color.RGBA // gradient start
	Bottom  color.RGBA // gradient end
	Overlay color.RGBA
	Props   []Prop
}

// Prop is a decorative shape from the "Props" object group.
type Prop struct {
	Kind    string
	X, Y    float64
	W, H    float64
	Ellipse bool
	Color   color.RGBA
}
