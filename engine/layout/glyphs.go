package layout

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/pixtype/core/dimen"
)

// GlyphSet groups destination deltas by source rectangle.
//
// Sources iterate in the order they were first added, deltas in the order
// they were added. The zero value is an empty set.
type GlyphSet struct {
	m *linkedhashmap.Map // dimen.Rect -> *instances
}

type instances struct {
	dsts []dimen.Point
}

// Add records a glyph instance of src at delta.
func (gs *GlyphSet) Add(src dimen.Rect, delta dimen.Point) {
	if gs.m == nil {
		gs.m = linkedhashmap.New()
	}
	if v, ok := gs.m.Get(src); ok {
		inst := v.(*instances)
		inst.dsts = append(inst.dsts, delta)
		return
	}
	gs.m.Put(src, &instances{dsts: []dimen.Point{delta}})
}

// Dsts gets the deltas of all instances of src.
func (gs GlyphSet) Dsts(src dimen.Rect) []dimen.Point {
	if gs.m == nil {
		return nil
	}
	if v, ok := gs.m.Get(src); ok {
		return v.(*instances).dsts
	}
	return nil
}

// Each calls f for every source rectangle and its deltas. f must not
// modify dsts.
func (gs GlyphSet) Each(f func(src dimen.Rect, dsts []dimen.Point)) {
	if gs.m == nil {
		return
	}
	it := gs.m.Iterator()
	for it.Next() {
		f(it.Key().(dimen.Rect), it.Value().(*instances).dsts)
	}
}

// Len is the number of distinct source rectangles.
func (gs GlyphSet) Len() int {
	if gs.m == nil {
		return 0
	}
	return gs.m.Size()
}

// Count is the number of glyph instances.
func (gs GlyphSet) Count() int {
	n := 0
	gs.Each(func(_ dimen.Rect, dsts []dimen.Point) {
		n += len(dsts)
	})
	return n
}

// IsEmpty is true if the set holds no glyphs.
func (gs GlyphSet) IsEmpty() bool {
	return gs.Len() == 0
}

// shift moves every delta right by dx.
func (gs GlyphSet) shift(dx dimen.Length) {
	gs.Each(func(_ dimen.Rect, dsts []dimen.Point) {
		for i := range dsts {
			dsts[i].X += dx
		}
	})
}

// merge adds all instances of other to gs.
func (gs *GlyphSet) merge(other GlyphSet) {
	other.Each(func(src dimen.Rect, dsts []dimen.Point) {
		for _, d := range dsts {
			gs.Add(src, d)
		}
	})
}
