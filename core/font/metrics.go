package font

import (
	"github.com/npillmayer/pixtype/core"
	"github.com/npillmayer/pixtype/core/dimen"
	"github.com/npillmayer/pixtype/core/font/chars"
	"github.com/npillmayer/pixtype/core/font/kerning"
	"github.com/npillmayer/pixtype/core/font/width"
)

// NumCols is the number of glyph columns in a font texture.
const NumCols = 32

// MetricsSpec is the on-disk shape of font metrics.
type MetricsSpec struct {
	// Char is the size of a character without padding, which is also the
	// size of a cell in the glyph grid.
	Char dimen.Size `toml:"char" yaml:"char"`
	// Pad is the padding between characters and between lines.
	Pad dimen.Size `toml:"pad" yaml:"pad"`
	// WidthOverrides narrow classes of characters below Char.W.
	WidthOverrides width.Spec `toml:"width_overrides" yaml:"width_overrides"`
	// Kerning holds class-based spacing overrides.
	Kerning kerning.Spec `toml:"kerning" yaml:"kerning"`
	// Encoding names the code page of the glyph grid, default latin1.
	Encoding string `toml:"encoding" yaml:"encoding"`
}

// Compile checks ms and expands it into a metrics set.
func (ms MetricsSpec) Compile() (*Metrics, error) {
	if !ms.Char.IsNormal() || !ms.Pad.IsNormal() {
		return nil, core.Error(core.EINVALID, "font metrics must not have negative sizes: char=%s, pad=%s",
			ms.Char, ms.Pad)
	}
	enc, err := ParseEncoding(ms.Encoding)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot compile font metrics")
	}
	table, err := chars.Compile(ms.WidthOverrides, ms.Kerning, ms.Char.W, ms.Pad.W)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot compile font metrics")
	}
	return &Metrics{Char: ms.Char, Pad: ms.Pad, Chars: table, Encoding: enc}, nil
}

// Metrics is a compiled metrics set. It is read-only after compilation.
//
// The zero value has all sizes zero and is only useful to keep callers
// going when metrics are missing.
type Metrics struct {
	Char     dimen.Size   // size of a character without padding
	Pad      dimen.Size   // padding between characters and lines
	Chars    *chars.Table // per-character widths and kerning
	Encoding Encoding     // maps characters to grid cells
}

// PaddedW is the padded width of a grid cell.
func (m *Metrics) PaddedW() dimen.Length {
	return m.Char.W + m.Pad.W
}

// PaddedH is the padded height of a grid cell.
func (m *Metrics) PaddedH() dimen.Length {
	return m.Char.H + m.Pad.H
}

// SpanW is the width of a span of n grid cells. It ignores proportions and
// kerning, so it may overestimate widths of proportional text.
// If n is negative, so is the result.
func (m *Metrics) SpanW(n dimen.Length) dimen.Length {
	return m.PaddedW() * n
}

// SpanH is the height of a span of n grid rows.
func (m *Metrics) SpanH(n dimen.Length) dimen.Length {
	return m.PaddedH() * n
}

// SpanWChar is the width of r, taking width overrides into account.
func (m *Metrics) SpanWChar(r rune) dimen.Length {
	return m.Chars.Get(r).Width
}

// TextSize converts a size in characters into a size in pixels.
func (m *Metrics) TextSize(wChars, hChars dimen.Length) dimen.Size {
	return dimen.Size{W: m.SpanW(wChars), H: m.SpanH(hChars)}
}

// GlyphTopLeft is the top-left corner of the glyph cell for r in the font
// texture. Characters which cannot be encoded map to the cell of code 0.
func (m *Metrics) GlyphTopLeft(r rune) dimen.Point {
	code, ok := m.Encoding.Code(r)
	if !ok {
		return dimen.Origin
	}
	// promote the index before multiplying, large fonts would overflow a byte
	col, row := dimen.Length(code%NumCols), dimen.Length(code/NumCols)
	return dimen.Point{X: col * m.PaddedW(), Y: row * m.PaddedH()}
}

// GlyphRect is the source rectangle of r in the font texture, narrowed to
// the character's width.
func (m *Metrics) GlyphRect(r rune) dimen.Rect {
	return dimen.Rect{
		TopLeft: m.GlyphTopLeft(r),
		Size:    dimen.Size{W: m.Chars.Get(r).Width, H: m.Char.H},
	}
}
