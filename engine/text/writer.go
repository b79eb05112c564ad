package text

import (
	"strings"

	"github.com/npillmayer/pixtype/core/dimen"
	"github.com/npillmayer/pixtype/core/font"
	"github.com/npillmayer/pixtype/core/resource"
	"github.com/npillmayer/pixtype/engine/layout"
)

// Renderer is implemented by backends which are able to draw laid-out strings.
type Renderer[F, C comparable] interface {
	// FontMetrics gets the metrics of all fonts known to the renderer.
	FontMetrics() resource.Map[F, *font.Metrics]
	// Write draws a laid-out string in font spec.
	Write(spec font.Spec[F, C], s layout.String) error
}

// Writer is a helper for positioned writing of strings.
type Writer[F, C comparable] struct {
	renderer Renderer[F, C]
	spec     font.Spec[F, C]
	pos      dimen.Point   // anchor point of the string
	align    dimen.XAnchor // which side of the string pos is on
	str      string
	laid     layout.String
	next     dimen.Point
	dirty    bool
}

// NewWriter creates a writer for a renderer. The writer initially points to
// the origin and aligns left.
func NewWriter[F, C comparable](r Renderer[F, C]) *Writer[F, C] {
	return &Writer[F, C]{renderer: r}
}

// WithFont sets the font spec of the writer.
func (w *Writer[F, C]) WithFont(spec font.Spec[F, C]) *Writer[F, C] {
	return w.WithFontID(spec.ID).WithColour(spec.Colour)
}

// WithFontID changes the font of the writer.
func (w *Writer[F, C]) WithFontID(id F) *Writer[F, C] {
	if w.spec.ID != id {
		w.spec.ID = id
		w.dirty = true
	}
	return w
}

// WithColour changes the foreground colour of the writer. The layout is
// kept, as colours do not change metrics.
func (w *Writer[F, C]) WithColour(c C) *Writer[F, C] {
	w.spec.Colour = c
	return w
}

// WithPos moves the writer to pos.
func (w *Writer[F, C]) WithPos(pos dimen.Point) *Writer[F, C] {
	if w.pos != pos {
		w.pos = pos
		w.dirty = true
	}
	return w
}

// Align changes the alignment of the writer. For dimen.Right, the writer's
// position is the right edge of the string.
func (w *Writer[F, C]) Align(align dimen.XAnchor) *Writer[F, C] {
	if w.align != align {
		w.align = align
		w.dirty = true
	}
	return w
}

// SetString sets the string to write.
func (w *Writer[F, C]) SetString(s string) *Writer[F, C] {
	if w.str != s {
		w.str = s
		w.dirty = true
	}
	return w
}

// Spec is the font spec of the writer.
func (w *Writer[F, C]) Spec() font.Spec[F, C] {
	return w.spec
}

// Pos is the anchor point of the writer.
func (w *Writer[F, C]) Pos() dimen.Point {
	return w.pos
}

// End is the position after the last glyph of the current string, padding
// included. It is where a subsequent left-aligned write should continue.
func (w *Writer[F, C]) End() dimen.Point {
	w.Layout()
	return w.next
}

// Layout gets the layout of the current string, laying it out again only
// if something changed.
func (w *Writer[F, C]) Layout() layout.String {
	if !w.dirty {
		return w.laid
	}
	m := w.renderer.FontMetrics().Get(w.spec.ID)
	topLeft := w.pos.Offset(-layout.XAnchorOfStr(m, w.str, w.align), 0)
	w.laid = layout.NewBuilder(m).At(topLeft).Align(w.align).Build(w.str)
	w.next = w.nextPos(m, topLeft)
	w.dirty = false
	tracer().Debugf("writer laid out %q at %s", w.str, w.laid.Bounds)
	return w.laid
}

// Render draws the current string.
func (w *Writer[F, C]) Render() error {
	laid := w.Layout()
	if laid.IsEmpty() {
		return nil
	}
	if err := w.renderer.Write(w.spec, laid); err != nil {
		tracer().Errorf("writer cannot render %q: %v", w.str, err)
		return err
	}
	return nil
}

// Write renders p as a string and moves the writer past it.
func (w *Writer[F, C]) Write(p []byte) (int, error) {
	return w.WriteString(string(p))
}

// WriteString renders s and moves the writer past it.
func (w *Writer[F, C]) WriteString(s string) (int, error) {
	if err := w.SetString(s).Render(); err != nil {
		return 0, err
	}
	w.WithPos(w.next)
	return len(s), nil
}

// nextPos is just after the end of the last line, padding included. An
// empty last line has no padding to skip.
func (w *Writer[F, C]) nextPos(m *font.Metrics, topLeft dimen.Point) dimen.Point {
	if w.str == "" {
		return w.pos
	}
	lines := strings.Count(w.str, "\n")
	last := w.str[strings.LastIndexByte(w.str, '\n')+1:]
	dy := m.SpanH(dimen.Length(lines))
	if last == "" { // a trailing newline leaves the writer at the start of a fresh line
		return topLeft.Offset(w.align.Offset(w.laid.Bounds.Width()), dy)
	}
	end := layout.SpanWStr(m, last)
	if w.align == dimen.Right {
		end = w.laid.Bounds.Width()
	}
	return topLeft.Offset(end+m.Pad.W, dy)
}
