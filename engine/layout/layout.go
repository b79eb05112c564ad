package layout

import (
	"github.com/npillmayer/pixtype/core/dimen"
	"github.com/npillmayer/pixtype/core/font"
	"github.com/npillmayer/pixtype/core/font/chars"
)

// String is a laid-out string.
//
// The zero value is an empty string with zero bounds and no glyphs.
type String struct {
	Str    string     // the string that has been laid out
	Bounds dimen.Rect // the bounding box
	Glyphs GlyphSet   // glyph deltas, relative to Bounds.TopLeft
}

// Translate moves the string by delta. Glyph deltas are relative to the
// bounds and do not change.
func (s *String) Translate(delta dimen.Point) {
	s.Bounds.TopLeft.Shift(delta)
}

// IsEmpty is true for strings without glyphs.
func (s String) IsEmpty() bool {
	return s.Glyphs.IsEmpty()
}

// Layout lays out str with metrics m, with its top-left corner at pos.
func Layout(m *font.Metrics, str string, pos dimen.Point) String {
	return NewBuilder(m).At(pos).Build(str)
}

// LayoutWithAlignment lays out str at the origin, aligning its lines
// horizontally.
func LayoutWithAlignment(m *font.Metrics, str string, align dimen.XAnchor) String {
	return NewBuilder(m).Align(align).Build(str)
}

// DryRun calculates the bounding box of str at the origin, without
// recording glyphs. Its size always equals that of Layout's bounds.
func DryRun(m *font.Metrics, str string) dimen.Rect {
	return NewBuilder(m).DryRun(str)
}

// SpanWStr is the exact width of str, respecting proportions and kerning.
func SpanWStr(m *font.Metrics, str string) dimen.Length {
	return DryRun(m, str).Width()
}

// XAnchorOfStr is the x-coordinate of anchor, relative to the left of str.
func XAnchorOfStr(m *font.Metrics, str string, anchor dimen.XAnchor) dimen.Length {
	if anchor == dimen.Left {
		return 0
	}
	return anchor.Offset(SpanWStr(m, str))
}

// Builder lays out strings. Builders may be re-used.
type Builder struct {
	metrics *font.Metrics
	pos     dimen.Point
	align   dimen.XAnchor
}

// NewBuilder creates a builder for metrics m, laying out left-aligned at
// the origin.
func NewBuilder(m *font.Metrics) *Builder {
	if m == nil {
		tracer().Errorf("layout without font metrics, using empty metrics")
		m = &font.Metrics{}
	}
	return &Builder{metrics: m}
}

// At sets the top-left position of laid-out strings.
func (b *Builder) At(pos dimen.Point) *Builder {
	b.pos = pos
	return b
}

// Align sets the horizontal alignment of lines.
func (b *Builder) Align(align dimen.XAnchor) *Builder {
	b.align = align
	return b
}

// Build lays out str.
func (b *Builder) Build(str string) String {
	if str == "" {
		return String{}
	}
	st := b.run(str, true)
	s := String{Str: str, Bounds: dimen.Rect{TopLeft: b.pos, Size: st.size}}
	for _, l := range st.lines {
		if b.align != dimen.Left {
			l.glyphs.shift(b.align.Offset(st.size.W) - b.align.Offset(l.width))
		}
		s.Glyphs.merge(l.glyphs)
	}
	return s
}

// DryRun calculates the bounds str would have if laid out.
func (b *Builder) DryRun(str string) dimen.Rect {
	if str == "" {
		return dimen.Rect{}
	}
	st := b.run(str, false)
	return dimen.Rect{TopLeft: b.pos, Size: st.size}
}

func (b *Builder) run(str string, record bool) *state {
	st := &state{metrics: b.metrics, record: record}
	for _, r := range str {
		switch r {
		case '\r':
			st.carriageReturn()
		case '\n':
			st.lineFeed()
		default:
			st.layoutChar(r)
		}
	}
	st.lineFeed()
	return st
}

// --- Layout state machine --------------------------------------------------

type line struct {
	glyphs GlyphSet
	width  dimen.Length
}

type state struct {
	metrics *font.Metrics
	record  bool
	size    dimen.Size   // size of all finished lines
	lines   []line       // finished lines
	current line         // line in progress
	cursor  dimen.Point  // top-left of the next glyph
	segment dimen.Length // width since the last carriage return
	last    *chars.Entry // previous character in the current segment
}

func (st *state) layoutChar(r rune) {
	e := st.metrics.Chars.Get(r)
	if st.last != nil {
		k := st.last.Kerning(r)
		st.cursor.X += st.last.Width + k
		st.segment += k
	}
	st.segment += e.Width
	st.current.width = dimen.Max(st.current.width, st.segment)
	if st.record {
		src := dimen.Rect{
			TopLeft: st.metrics.GlyphTopLeft(r),
			Size:    dimen.Size{W: e.Width, H: st.metrics.Char.H},
		}
		st.current.glyphs.Add(src, st.cursor)
	}
	st.last = e
}

func (st *state) carriageReturn() {
	st.cursor.X = 0
	st.segment = 0
	st.last = nil
}

func (st *state) lineFeed() {
	size := dimen.Size{W: st.current.width, H: st.metrics.Char.H}
	if len(st.lines) > 0 {
		size.H += st.metrics.Pad.H
	}
	st.size = st.size.StackVertically(size)
	st.lines = append(st.lines, st.current)
	st.current = line{}
	st.carriageReturn()
	st.cursor.Y += st.metrics.PaddedH()
}
