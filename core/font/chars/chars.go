/*
Package chars implements character tables for pixel fonts.

A character table holds the advance width and kerning of every character.
ASCII characters are looked up by direct indexing; all other characters go
through an ordered fallback map. Characters not configured in either place
share the table's default entry.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chars

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/pixtype/core/dimen"
	"github.com/npillmayer/pixtype/core/font/kerning"
	"github.com/npillmayer/pixtype/core/font/width"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pixtype.font'
func tracer() tracing.Trace {
	return tracing.Select("pixtype.font")
}

// NumASCII is the number of characters in the fast-path array.
const NumASCII = 128

// Entry holds the metrics of a single character.
type Entry struct {
	Width          dimen.Length          // advance width, never negative
	Rights         map[rune]dimen.Length // spacing overrides for right neighbours, may be nil
	DefaultKerning dimen.Length          // spacing to all other right neighbours
}

// Kerning gets the spacing between this character and right.
func (e *Entry) Kerning(right rune) dimen.Length {
	if k, ok := e.Rights[right]; ok {
		return k
	}
	return e.DefaultKerning
}

// Table is a total map from characters to entries.
type Table struct {
	ascii [NumASCII]Entry
	other *treemap.Map // rune -> *Entry
	def   Entry
}

// New creates a table which maps every character to def.
func New(def Entry) *Table {
	t := &Table{
		other: treemap.NewWith(utils.RuneComparator),
		def:   def,
	}
	for i := range t.ascii {
		t.ascii[i] = def
	}
	return t
}

// Compile builds a character table from width overrides and a kerning
// specification. gridWidth is the width of a cell in the glyph grid,
// spacing is the default spacing between characters.
func Compile(widths width.Spec, kern kerning.Spec, gridWidth, spacing dimen.Length) (*Table, error) {
	wmap, err := width.Compile(widths, gridWidth)
	if err != nil {
		return nil, err
	}
	kmap, err := kerning.Compile(kern)
	if err != nil {
		return nil, err
	}
	t := New(Entry{Width: gridWidth, DefaultKerning: spacing})
	for l, rights := range kmap {
		e := t.entry(l)
		e.Rights = make(map[rune]dimen.Length, len(rights))
		for r, k := range rights {
			e.Rights[r] = k
		}
	}
	wmap.Each(func(c rune, w dimen.Length) {
		t.entry(c).Width = w
	})
	tracer().Debugf("character table: %d width overrides, %d kerned characters, %d non-ASCII entries",
		wmap.Len(), len(kmap), t.other.Size())
	return t, nil
}

// Get gets the entry for c. It never returns nil; a nil table yields an
// all-zero entry.
func (t *Table) Get(c rune) *Entry {
	if t == nil {
		return &Entry{}
	}
	if 0 <= c && c < NumASCII {
		return &t.ascii[c]
	}
	if e, ok := t.other.Get(c); ok {
		return e.(*Entry)
	}
	return &t.def
}

// Set sets the entry for c.
func (t *Table) Set(c rune, e Entry) {
	*t.entry(c) = e
}

// Default returns the entry of all unconfigured characters.
func (t *Table) Default() Entry {
	return t.def
}

// Width is shorthand for the width of c.
func (t *Table) Width(c rune) dimen.Length {
	return t.Get(c).Width
}

// entry gets a mutable entry for c, creating one from the default if needed.
func (t *Table) entry(c rune) *Entry {
	if 0 <= c && c < NumASCII {
		return &t.ascii[c]
	}
	if e, ok := t.other.Get(c); ok {
		return e.(*Entry)
	}
	e := t.def
	t.other.Put(c, &e)
	return &e
}
