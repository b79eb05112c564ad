package layout

import (
	"testing"

	"github.com/npillmayer/pixtype/core/dimen"
	"github.com/npillmayer/pixtype/core/font"
	"github.com/npillmayer/pixtype/core/font/kerning"
	"github.com/npillmayer/pixtype/core/font/width"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// bigFont is a 9x9 font with 1px padding, where 'i' and 'I' are 1px wide
// and 'T' kerns against 'o' with a spacing of -2.
func bigFont(t *testing.T) *font.Metrics {
	m, err := font.MetricsSpec{
		Char:           dimen.Size{W: 9, H: 9},
		Pad:            dimen.Size{W: 1, H: 1},
		WidthOverrides: width.Spec{"iI": 1},
		Kerning: kerning.Spec{
			Left:  kerning.ClassTable{"tee": "T"},
			Right: kerning.ClassTable{"round": "o"},
			Pairs: kerning.PairTable{"tee": {"round": -2}},
		},
	}.Compile()
	if err != nil {
		t.Fatalf("cannot compile metrics: %v", err)
	}
	return m
}

func TestWidthOverrides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixtype.layout")
	defer teardown()
	//
	m := bigFont(t)
	// 3*9 normal + 2*1 overrides + 4*1 padding
	assert.Equal(t, dimen.Length(33), SpanWStr(m, "Icing"))
	s := Layout(m, "Icing", dimen.Origin)
	assert.Equal(t, dimen.Size{W: 33, H: 9}, s.Bounds.Size)
	assert.Equal(t, "Icing", s.Str)
	assert.Equal(t, []dimen.Point{{X: 2, Y: 0}}, s.Glyphs.Dsts(m.GlyphRect('c')))
	assert.Equal(t, []dimen.Point{{X: 24, Y: 0}}, s.Glyphs.Dsts(m.GlyphRect('g')))
}

func TestEmptyString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixtype.layout")
	defer teardown()
	//
	m := bigFont(t)
	s := Layout(m, "", dimen.Point{X: 10, Y: 20})
	assert.Equal(t, dimen.Size{}, s.Bounds.Size)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Glyphs.Count())
	assert.Equal(t, dimen.Rect{}, DryRun(m, ""))
	assert.Equal(t, dimen.Length(0), SpanWStr(m, ""))
}

func TestDryRunEquivalence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixtype.layout")
	defer teardown()
	//
	m := bigFont(t)
	for _, str := range []string{
		"", "a", "Icing", "To", "foo\nbar", "foo\n", "\n", "\n\n",
		"abc\rde", "T\ro", "longer line\nshort\n\nlast", "€uro",
	} {
		for _, align := range []dimen.XAnchor{dimen.Left, dimen.Right} {
			s := LayoutWithAlignment(m, str, align)
			assert.Equal(t, s.Bounds.Size, DryRun(m, str).Size, "string %q", str)
		}
	}
}

func TestMultiLineStacking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixtype.layout")
	defer teardown()
	//
	m := bigFont(t)
	s := Layout(m, "foo\nbar", dimen.Origin)
	assert.Equal(t, 2*m.PaddedH()-m.Pad.H, s.Bounds.Height())
	assert.Equal(t, dimen.Max(SpanWStr(m, "foo"), SpanWStr(m, "bar")), s.Bounds.Width())
	assert.Equal(t, []dimen.Point{{X: 0, Y: 10}}, s.Glyphs.Dsts(m.GlyphRect('b')))
	//
	// a trailing line feed commits an empty line
	assert.Equal(t, dimen.Size{W: 29, H: 19}, DryRun(m, "foo\n").Size)
	assert.Equal(t, dimen.Size{W: 0, H: 9}, DryRun(m, "\r").Size)
}

func TestRightAlignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixtype.layout")
	defer teardown()
	//
	m := bigFont(t)
	s := LayoutWithAlignment(m, "Icing\nfoo\nIi", dimen.Right)
	total := s.Bounds.Width()
	assert.Equal(t, dimen.Length(33), total)
	rightmost := make(map[dimen.Length]dimen.Length) // line y -> rightmost glyph x
	lastWidth := make(map[dimen.Length]dimen.Length) // line y -> width of that glyph
	s.Glyphs.Each(func(src dimen.Rect, dsts []dimen.Point) {
		for _, d := range dsts {
			if x, ok := rightmost[d.Y]; !ok || d.X > x {
				rightmost[d.Y] = d.X
				lastWidth[d.Y] = src.Width()
			}
		}
	})
	assert.Len(t, rightmost, 3)
	for y, x := range rightmost {
		assert.Equal(t, total-lastWidth[y], x, "line at y=%d", y)
	}
	assert.Equal(t, []dimen.Point{{X: 14, Y: 10}, {X: 24, Y: 10}}, s.Glyphs.Dsts(m.GlyphRect('o')))
}

func TestLeftAlignmentIsDefault(t *testing.T) {
	m := bigFont(t)
	assert.Equal(t, LayoutWithAlignment(m, "Icing\nfoo", dimen.Left), Layout(m, "Icing\nfoo", dimen.Origin))
}

func TestGlyphDeduplication(t *testing.T) {
	m := bigFont(t)
	s := Layout(m, "foo\nof", dimen.Origin)
	assert.Equal(t, 2, s.Glyphs.Len())
	assert.Equal(t, 5, s.Glyphs.Count())
	var order []dimen.Rect
	s.Glyphs.Each(func(src dimen.Rect, _ []dimen.Point) {
		order = append(order, src)
	})
	assert.Equal(t, []dimen.Rect{m.GlyphRect('f'), m.GlyphRect('o')}, order)
}

func TestKerning(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixtype.layout")
	defer teardown()
	//
	m := bigFont(t)
	s := Layout(m, "To", dimen.Origin)
	assert.Equal(t, dimen.Length(16), s.Bounds.Width())
	assert.Equal(t, []dimen.Point{{X: 7, Y: 0}}, s.Glyphs.Dsts(m.GlyphRect('o')))
	// kerning is directional
	assert.Equal(t, dimen.Length(19), SpanWStr(m, "oT"))
}

func TestCarriageReturn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixtype.layout")
	defer teardown()
	//
	m := bigFont(t)
	s := Layout(m, "abc\rde", dimen.Origin)
	assert.Equal(t, dimen.Size{W: 29, H: 9}, s.Bounds.Size)
	assert.Equal(t, []dimen.Point{{X: 0, Y: 0}}, s.Glyphs.Dsts(m.GlyphRect('d')))
	// no kerning across a carriage return
	s = Layout(m, "T\ro", dimen.Origin)
	assert.Equal(t, dimen.Length(9), s.Bounds.Width())
	assert.Equal(t, []dimen.Point{{X: 0, Y: 0}}, s.Glyphs.Dsts(m.GlyphRect('o')))
}

func TestPositionAndTranslate(t *testing.T) {
	m := bigFont(t)
	pos := dimen.Point{X: 5, Y: 7}
	s := Layout(m, "ab", pos)
	assert.Equal(t, dimen.NewRect(5, 7, 19, 9), s.Bounds)
	assert.Equal(t, []dimen.Point{{X: 10, Y: 0}}, s.Glyphs.Dsts(m.GlyphRect('b')))
	s.Translate(dimen.Point{X: -5, Y: 3})
	assert.Equal(t, dimen.Point{X: 0, Y: 10}, s.Bounds.TopLeft)
	assert.Equal(t, []dimen.Point{{X: 10, Y: 0}}, s.Glyphs.Dsts(m.GlyphRect('b')))
	assert.Equal(t, pos, DryRun(m, "ab").TopLeft.Offset(5, 7))
}

func TestXAnchorOfStr(t *testing.T) {
	m := bigFont(t)
	assert.Equal(t, dimen.Length(0), XAnchorOfStr(m, "Icing", dimen.Left))
	assert.Equal(t, dimen.Length(33), XAnchorOfStr(m, "Icing", dimen.Right))
}

func TestNilMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixtype.layout")
	defer teardown()
	//
	s := Layout(nil, "abc", dimen.Origin)
	assert.Equal(t, dimen.Size{}, s.Bounds.Size)
	assert.Equal(t, 3, s.Glyphs.Count())
}
