package dimen

import "strings"

// XAnchor is an anchor for the x-coordinate.
//
// Left is the zero value, as rendering in left-to-right scripts naturally
// proceeds from the left.
type XAnchor int8

// Horizontal anchors.
const (
	Left XAnchor = iota
	Right
)

// Offset calculates the offset from left of this anchor in an object of
// width w.
func (a XAnchor) Offset(w Length) Length {
	if a == Right {
		return w
	}
	return 0
}

func (a XAnchor) String() string {
	if a == Right {
		return "right"
	}
	return "left"
}

// ParseXAnchor parses "left" or "right" (case-insensitive).
func ParseXAnchor(s string) (XAnchor, bool) {
	switch strings.ToLower(s) {
	case "left", "l", "":
		return Left, true
	case "right", "r":
		return Right, true
	}
	return Left, false
}

// YAnchor is an anchor for the y-coordinate. Top is the zero value.
type YAnchor int8

// Vertical anchors.
const (
	Top YAnchor = iota
	Bottom
)

// Offset calculates the offset from top of this anchor in an object of
// height h.
func (a YAnchor) Offset(h Length) Length {
	if a == Bottom {
		return h
	}
	return 0
}

func (a YAnchor) String() string {
	if a == Bottom {
		return "bottom"
	}
	return "top"
}

// Anchor is a two-dimensional anchor. The zero value is top-left.
type Anchor struct {
	X XAnchor
	Y YAnchor
}

// Pre-defined anchors
var (
	TopLeft     = Anchor{Left, Top}
	TopRight    = Anchor{Right, Top}
	BottomLeft  = Anchor{Left, Bottom}
	BottomRight = Anchor{Right, Bottom}
)
