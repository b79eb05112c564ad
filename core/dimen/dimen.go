// Package dimen implements pixel dimensions, points and rectangles.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"fmt"
	"image"
	"regexp"
	"strconv"
)

// Length is a signed pixel length. Lengths and deltas share a type; negative
// values are legal for deltas and offsets, but final sizes get clamped to 0.
type Length int32

// Zero is the null length.
const Zero Length = 0

// Stringer implementation.
func (l Length) String() string {
	return fmt.Sprintf("%dpx", int32(l))
}

// Max returns the larger of two lengths.
func Max(x, y Length) Length {
	if x < y {
		return y
	}
	return x
}

// Clamp clamps a length to 0 if it is negative.
func Clamp(l Length) Length {
	return Max(l, 0)
}

// Point is a point on a surface. Points may have negative coordinates, to
// allow relative offsetting.
type Point struct {
	X, Y Length
}

// Origin is origin
var Origin = Point{0, 0}

// Shift a point along a vector.
func (p *Point) Shift(vector Point) *Point {
	p.X += vector.X
	p.Y += vector.Y
	return p
}

// Offset returns a copy of p, moved by (dx, dy).
func (p Point) Offset(dx, dy Length) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// ToRect lifts p to a rectangle of the given size, with p forming the given
// anchor of the new rectangle.
func (p Point) ToRect(size Size, anchor Anchor) Rect {
	return Rect{
		TopLeft: p.Offset(-anchor.X.Offset(size.W), -anchor.Y.Offset(size.H)),
		Size:    size,
	}
}

// ImagePoint converts p to an image.Point.
func (p Point) ImagePoint() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is a two-dimensional extent.
type Size struct {
	W Length `toml:"w" yaml:"w"`
	H Length `toml:"h" yaml:"h"`
}

// Grow grows the size in both dimensions by amount. To shrink, grow by a
// negative amount. Neither dimension will shrink past 0.
func (s Size) Grow(amount Length) Size {
	return Size{W: Clamp(s.W + amount), H: Clamp(s.H + amount)}
}

// StackVertically returns a size that is the maximum of s and other
// horizontally, and their sum vertically.
func (s Size) StackVertically(other Size) Size {
	return Size{W: Max(s.W, other.W), H: s.H + other.H}
}

// StackHorizontally returns a size that is the maximum of s and other
// vertically, and their sum horizontally.
func (s Size) StackHorizontally(other Size) Size {
	return Size{W: s.W + other.W, H: Max(s.H, other.H)}
}

// IsZero is true if either dimension is zero or negative.
func (s Size) IsZero() bool {
	return s.W <= 0 || s.H <= 0
}

// IsNormal is true if both dimensions are non-negative.
func (s Size) IsNormal() bool {
	return 0 <= s.W && 0 <= s.H
}

// Clamp clamps negative dimensions to zero.
func (s Size) Clamp() Size {
	return s.Grow(0)
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Rect is a rectangle, given by its top-left corner and its size.
type Rect struct {
	TopLeft Point
	Size    Size
}

// NewRect makes a rectangle with top-left at (x, y), width w and height h.
func NewRect(x, y, w, h Length) Rect {
	return Rect{TopLeft: Point{x, y}, Size: Size{w, h}}
}

// RectFromPoints makes a rectangle spanning from topL to botR. If botR is not
// to the bottom-right of topL, the rectangle will become zero-sized.
func RectFromPoints(topL, botR Point) Rect {
	size := Size{W: botR.X - topL.X, H: botR.Y - topL.Y}
	return Rect{TopLeft: topL, Size: size.Clamp()}
}

// Width returns the width of a rectangle.
func (r Rect) Width() Length {
	return r.Size.W
}

// Height returns the height of a rectangle.
func (r Rect) Height() Length {
	return r.Size.H
}

// X resolves an x-coordinate within r, given an offset dx from anchor.
func (r Rect) X(dx Length, anchor XAnchor) Length {
	return r.TopLeft.X + dx + anchor.Offset(r.Size.W)
}

// Y resolves a y-coordinate within r, given an offset dy from anchor.
func (r Rect) Y(dy Length, anchor YAnchor) Length {
	return r.TopLeft.Y + dy + anchor.Offset(r.Size.H)
}

// Point resolves a point within r, given an offset (dx, dy) from anchor.
func (r Rect) Point(dx, dy Length, anchor Anchor) Point {
	return Point{X: r.X(dx, anchor.X), Y: r.Y(dy, anchor.Y)}
}

// Anchor is shorthand for getting an anchor point of r.
func (r Rect) Anchor(anchor Anchor) Point {
	return r.Point(0, 0, anchor)
}

// Grow grows r by amount on each side. To shrink, grow by a negative amount.
func (r Rect) Grow(amount Length) Rect {
	return Rect{
		TopLeft: r.TopLeft.Offset(-amount, -amount),
		Size:    r.Size.Grow(amount * 2),
	}
}

// ImageRect converts r to an image.Rectangle. Negative sizes are clamped.
func (r Rect) ImageRect() image.Rectangle {
	s := r.Size.Clamp()
	x, y := int(r.TopLeft.X), int(r.TopLeft.Y)
	return image.Rect(x, y, x+int(s.W), y+int(s.H))
}

func (r Rect) String() string {
	return fmt.Sprintf("[%s %s]", r.TopLeft, r.Size)
}

// ---------------------------------------------------------------------------

var lengthPattern = regexp.MustCompile(`^([+\-]?[0-9]+)(px|PX)?$`)

// ParseLength parses a string to return a pixel length. The unit suffix
// `px` is optional.
//
func ParseLength(s string) (Length, error) {
	l := lengthPattern.FindStringSubmatch(s)
	if len(l) < 2 {
		return 0, errors.New("format error parsing length")
	}
	n, err := strconv.ParseInt(l[1], 10, 32)
	if err != nil {
		return 0, err
	}
	return Length(n), nil
}
