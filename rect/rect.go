// Package rect provides a rectangle value with an area computation.
package rect

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension is returned by New for non-positive dimensions.
var ErrInvalidDimension = errors.New("rectangle dimensions must be positive")

// Rect is an immutable rectangle.
type Rect struct {
	width  float64
	height float64
}

// New creates a rectangle from two positive dimensions.
func New(width, height float64) (Rect, error) {
	if width <= 0 {
		return Rect{}, fmt.Errorf("width %v: %w", width, ErrInvalidDimension)
	}
	if height <= 0 {
		return Rect{}, fmt.Errorf("height %v: %w", height, ErrInvalidDimension)
	}
	return Rect{width: width, height: height}, nil
}

// Width returns the rectangle's width.
func (r Rect) Width() float64 { return r.width }

// Height returns the rectangle's height.
func (r Rect) Height() float64 { return r.height }

// Area returns width × height.
func (r Rect) Area() float64 { return r.width * r.height }
