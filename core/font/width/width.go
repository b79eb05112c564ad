/*
Package width compiles class-based width overrides.

Glyphs of a pixel font sit in a fixed grid. Proportional fonts shrink some
characters below the grid width by assigning classes of characters a smaller
width.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package width

import (
	"fmt"
	"sort"

	"github.com/npillmayer/pixtype/core/dimen"
)

// Spec maps classes of characters to width overrides. Every character of a
// class receives the class's width.
type Spec map[string]dimen.Length

// OverlyLargeOverrideError is returned if an override exceeds the grid width.
type OverlyLargeOverrideError struct {
	GridWidth     dimen.Length
	OverrideWidth dimen.Length
}

func (e OverlyLargeOverrideError) Error() string {
	return fmt.Sprintf("width override %s exceeds grid width %s", e.OverrideWidth, e.GridWidth)
}

// NegativeOverrideError is returned if an override is less than zero.
type NegativeOverrideError struct {
	Class         string
	OverrideWidth dimen.Length
}

func (e NegativeOverrideError) Error() string {
	return fmt.Sprintf("width override %s for %q is negative", e.OverrideWidth, e.Class)
}

// Check validates spec against a grid width.
func (spec Spec) Check(gridWidth dimen.Length) error {
	for _, class := range spec.classes() {
		w := spec[class]
		if w < 0 {
			return NegativeOverrideError{Class: class, OverrideWidth: w}
		}
		if gridWidth < w {
			return OverlyLargeOverrideError{GridWidth: gridWidth, OverrideWidth: w}
		}
	}
	return nil
}

// Map maps characters to their widths.
type Map struct {
	overrides map[rune]dimen.Length
	gridWidth dimen.Length
}

// Compile checks spec and expands it into a per-character width map.
// If a character is a member of more than one class, the lexically last
// class wins.
func Compile(spec Spec, gridWidth dimen.Length) (Map, error) {
	if err := spec.Check(gridWidth); err != nil {
		return Map{}, err
	}
	m := Map{overrides: make(map[rune]dimen.Length), gridWidth: gridWidth}
	for _, class := range spec.classes() {
		for _, c := range class {
			m.overrides[c] = spec[class]
		}
	}
	return m, nil
}

// Get gets the width of c.
func (m Map) Get(c rune) dimen.Length {
	if w, ok := m.overrides[c]; ok {
		return w
	}
	return m.gridWidth
}

// Each calls f for every overridden character, in no particular order.
func (m Map) Each(f func(c rune, w dimen.Length)) {
	for c, w := range m.overrides {
		f(c, w)
	}
}

// Len is the number of overridden characters.
func (m Map) Len() int {
	return len(m.overrides)
}

func (spec Spec) classes() []string {
	classes := make([]string, 0, len(spec))
	for c := range spec {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	return classes
}
