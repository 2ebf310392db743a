// Package core provides fundamental types and utilities for the tag
// simulation. It contains no external dependencies (especially no Bubble Tea)
// to keep simulation logic pure and testable.
package core

// Position is an integer coordinate pair on the field.
type Position struct {
	X, Y int
}

// Field is the immutable bound of the playing area. Valid positions satisfy
// 0 <= x < W and 0 <= y < H.
type Field struct {
	W, H int
}

// NewField creates a field with the given dimensions.
func NewField(w, h int) Field {
	return Field{W: w, H: h}
}

// Cells returns the number of cells on the field.
func (f Field) Cells() int {
	return f.W * f.H
}

// Contains returns true if the position is inside the field bounds.
func (f Field) Contains(p Position) bool {
	return p.X >= 0 && p.X < f.W && p.Y >= 0 && p.Y < f.H
}

// ClampInto restricts a position to the nearest in-bounds cell.
func (f Field) ClampInto(p Position) Position {
	return Position{
		X: Clamp(p.X, 0, f.W-1),
		Y: Clamp(p.Y, 0, f.H-1),
	}
}

// SqDist returns the squared Euclidean distance between two positions.
// Kept squared so comparisons stay exact integer arithmetic.
func SqDist(a, b Position) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
