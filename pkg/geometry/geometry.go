// Package geometry provides the 2D primitives shared by the state engine:
// points, sizes, rectangles and 1D ranges, all in logical pixel coordinates.
package geometry

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in logical pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the component-wise difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Length returns the Euclidean length of the offset viewed as a vector.
func (o Offset) Length() float64 {
	return math.Hypot(o.X, o.Y)
}

// Distance returns the Euclidean distance to another point.
func (o Offset) Distance(other Offset) float64 {
	return o.Sub(other).Length()
}

// Normalized returns the unit vector in the direction of o.
// Returns the zero offset if o has zero length.
func (o Offset) Normalized() Offset {
	l := o.Length()
	if l <= 0 {
		return Offset{}
	}
	return Offset{X: o.X / l, Y: o.Y / l}
}

// Dot returns the dot product of two vectors.
func (o Offset) Dot(other Offset) float64 {
	return o.X*other.X + o.Y*other.Y
}

// Direction vectors for focus navigation and similar queries.
var (
	Up    = Offset{X: 0, Y: -1}
	Down  = Offset{X: 0, Y: 1}
	Left  = Offset{X: -1, Y: 0}
	Right = Offset{X: 1, Y: 0}
)

// Size represents width and height dimensions in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromMinSize constructs a Rect from its top-left corner and size.
func RectFromMinSize(min Offset, size Size) Rect {
	return RectFromLTWH(min.X, min.Y, size.Width, size.Height)
}

// Everything returns the rectangle covering the entire plane. It is used
// as a placeholder for widgets whose geometry is not yet known.
func Everything() Rect {
	return Rect{
		Left:   math.Inf(-1),
		Top:    math.Inf(-1),
		Right:  math.Inf(1),
		Bottom: math.Inf(1),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Min returns the top-left corner.
func (r Rect) Min() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Offset {
	return Offset{X: r.Right, Y: r.Bottom}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Contains reports whether the point lies inside the rectangle.
// Edges count as inside.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Expand grows the rectangle by margin on every side. A negative margin
// shrinks it.
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		Left:   r.Left - margin,
		Top:    r.Top - margin,
		Right:  r.Right + margin,
		Bottom: r.Bottom + margin,
	}
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{} // Empty
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return r.Left <= other.Left && r.Top <= other.Top &&
		r.Right >= other.Right && r.Bottom >= other.Bottom
}

// XRange returns the horizontal extent of the rectangle.
func (r Rect) XRange() Range {
	return Range{Min: r.Left, Max: r.Right}
}

// YRange returns the vertical extent of the rectangle.
func (r Rect) YRange() Range {
	return Range{Min: r.Top, Max: r.Bottom}
}

// Range is a 1D interval, used when comparing rectangle extents.
type Range struct {
	Min float64
	Max float64
}

// Span returns the length of the interval, or 0 if it is inverted.
func (rg Range) Span() float64 {
	if rg.Max < rg.Min {
		return 0
	}
	return rg.Max - rg.Min
}

// Center returns the midpoint of the interval.
func (rg Range) Center() float64 {
	return (rg.Min + rg.Max) * 0.5
}

// Intersection returns the overlap of two intervals. The result is
// inverted (Span 0) if they do not overlap.
func (rg Range) Intersection(other Range) Range {
	return Range{
		Min: math.Max(rg.Min, other.Min),
		Max: math.Min(rg.Max, other.Max),
	}
}

// ApproxEqual reports whether two rectangles match within epsilon on
// every edge.
func (r Rect) ApproxEqual(other Rect) bool {
	return floatEqual(r.Left, other.Left) && floatEqual(r.Top, other.Top) &&
		floatEqual(r.Right, other.Right) && floatEqual(r.Bottom, other.Bottom)
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
