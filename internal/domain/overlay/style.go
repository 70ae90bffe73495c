package overlay

import (
	"fmt"
	"math"
	"strconv"
)

// Color is an RGB triple with alpha in [0,1].
type Color struct {
	R, G, B uint8
	A       float64
}

// RGBA builds a Color. Alpha is kept to two decimals.
func RGBA(r, g, b uint8, a float64) Color { return Color{R: r, G: g, B: b, A: alpha(a)} }

// WithAlpha returns the same color with a different alpha.
func (c Color) WithAlpha(a float64) Color {
	c.A = alpha(a)
	return c
}

func alpha(a float64) float64 {
	return math.Round(a*100) / 100
}

// CSS renders the color as rgba().
func (c Color) CSS() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// Shape is the marker symbol.
type Shape string

const (
	ShapeCircle   Shape = "circle"
	ShapeSquare   Shape = "square"
	ShapeDiamond  Shape = "diamond"
	ShapeCross    Shape = "cross"
	ShapeTriangle Shape = "triangle"
)

// Dash is the line or outline pattern.
type Dash string

const (
	DashSolid Dash = "solid"
	DashDash  Dash = "dash"
	DashDot   Dash = "dot"
)

// Style is the visual encoding of an element.
type Style struct {
	Fill         Color
	Outline      Color
	OutlineWidth float64
	// Size is the marker size in points; unused for polygons and lines.
	Size  float64
	Shape Shape
	Dash  Dash
}
