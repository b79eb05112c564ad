/*
Package kerning compiles class-based kerning specifications.

A kerning specification groups characters into named classes: left classes
hold characters by how they space to their right, right classes hold
characters by how they space to their left. Pairs of a left and a right class
carry a spacing which replaces the font's default spacing between any two
characters of these classes.

Kerning is directional. A pair (L, R) never implies the mirror pair (R, L).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package kerning

import (
	"fmt"
	"sort"

	"github.com/npillmayer/pixtype/core/dimen"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pixtype.font'
func tracer() tracing.Trace {
	return tracing.Select("pixtype.font")
}

// Class identifies a kerning class.
type Class = string

// ClassTable maps class identifiers to character sets.
type ClassTable map[Class]string

// PairTable maps a left class and a right class to an absolute spacing.
// Spacings are not adjustments; they replace the default spacing.
type PairTable map[Class]map[Class]dimen.Length

// Spec is a complete kerning specification.
type Spec struct {
	Left  ClassTable `toml:"left" yaml:"left"`
	Right ClassTable `toml:"right" yaml:"right"`
	Pairs PairTable  `toml:"pairs" yaml:"pairs"`
}

// Direction tells on which side of a pair a class is used.
type Direction int8

// Directions of kerning classes.
const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// MissingClassError is returned if a kerning pair refers to an undefined class.
type MissingClassError struct {
	Direction Direction
	Class     Class
}

func (e MissingClassError) Error() string {
	return fmt.Sprintf("missing %s kerning class %q", e.Direction, e.Class)
}

// Map holds the rightward kerning overrides of every left character.
type Map map[rune]map[rune]dimen.Length

// Spacing gets the spacing between left and right, or def if no override exists.
func (m Map) Spacing(left, right rune, def dimen.Length) dimen.Length {
	if l, ok := m[left][right]; ok {
		return l
	}
	return def
}

// Compile expands spec into a per-character kerning map.
//
// Pairs are expanded in sorted class order, so if a character pair is
// covered by more than one class pair, the lexically last one wins.
func Compile(spec Spec) (Map, error) {
	m := make(Map)
	for _, lclass := range sortedKeys(spec.Pairs) {
		lefts, err := spec.class(Left, lclass)
		if err != nil {
			return nil, err
		}
		row := spec.Pairs[lclass]
		for _, rclass := range sortedKeys(row) {
			rights, err := spec.class(Right, rclass)
			if err != nil {
				return nil, err
			}
			length := row[rclass]
			for _, l := range lefts {
				lmap, ok := m[l]
				if !ok {
					lmap = make(map[rune]dimen.Length, len(rights))
					m[l] = lmap
				}
				for _, r := range rights {
					lmap[r] = length
				}
			}
		}
	}
	tracer().Debugf("kerning: compiled overrides for %d left characters", len(m))
	return m, nil
}

func (spec Spec) class(dir Direction, class Class) (string, error) {
	table := spec.Left
	if dir == Right {
		table = spec.Right
	}
	chars, ok := table[class]
	if !ok {
		return "", MissingClassError{Direction: dir, Class: class}
	}
	return chars, nil
}

func sortedKeys[V any](m map[Class]V) []Class {
	keys := make([]Class, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
