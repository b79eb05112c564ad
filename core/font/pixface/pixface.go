/*
Package pixface adapts pixel fonts to golang.org/x/image/font.

A Face draws glyphs straight from a font texture, using the texture's alpha
channel as the glyph mask. All glyphs sit on the baseline; pixel fonts have
no descenders of their own, so the ascent equals the character height.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pixface

import (
	"image"

	"github.com/npillmayer/pixtype/core/dimen"
	"github.com/npillmayer/pixtype/core/font"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// tracer writes to trace with key 'pixtype.font'
func tracer() tracing.Trace {
	return tracing.Select("pixtype.font")
}

// Face is a font.Face for a pixel font.
type Face struct {
	metrics *font.Metrics
	texture image.Image
}

var _ xfont.Face = &Face{}

// NewFace creates a face for a font texture and its metrics.
func NewFace(metrics *font.Metrics, texture image.Image) *Face {
	if metrics == nil {
		metrics = &font.Metrics{}
	}
	tracer().Debugf("new pixel face, char=%s, pad=%s", metrics.Char, metrics.Pad)
	return &Face{metrics: metrics, texture: texture}
}

// Close is a no-op.
func (f *Face) Close() error {
	return nil
}

// Glyph returns the texture as mask, positioned at the glyph cell for r.
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	//
	if _, ok = f.metrics.Encoding.Code(r); !ok {
		return
	}
	src := f.metrics.GlyphRect(r)
	x, y := dot.X.Round(), dot.Y.Round()-int(f.metrics.Char.H)
	dr = image.Rect(x, y, x+int(src.Size.W), y+int(src.Size.H))
	return dr, f.texture, src.TopLeft.ImagePoint(), f.advance(r), true
}

// GlyphBounds returns the bounds of r relative to the dot.
func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	if _, ok = f.metrics.Encoding.Code(r); !ok {
		return
	}
	w := f.metrics.Chars.Get(r).Width
	bounds = fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: 0, Y: -fixedLength(f.metrics.Char.H)},
		Max: fixed.Point26_6{X: fixedLength(w), Y: 0},
	}
	return bounds, f.advance(r), true
}

// GlyphAdvance is the width of r plus its default spacing.
func (f *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	if _, ok = f.metrics.Encoding.Code(r); !ok {
		return
	}
	return f.advance(r), true
}

// Kern is the deviation of the spacing between r0 and r1 from r0's
// default spacing.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 {
	e := f.metrics.Chars.Get(r0)
	return fixedLength(e.Kerning(r1) - e.DefaultKerning)
}

// Metrics returns the metrics of this face.
func (f *Face) Metrics() xfont.Metrics {
	h := fixedLength(f.metrics.Char.H)
	return xfont.Metrics{
		Height:    fixedLength(f.metrics.PaddedH()),
		Ascent:    h,
		Descent:   0,
		XHeight:   h,
		CapHeight: h,
		// CaretSlope (0, 1) is upright
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}

func (f *Face) advance(r rune) fixed.Int26_6 {
	e := f.metrics.Chars.Get(r)
	return fixedLength(e.Width + e.DefaultKerning)
}

func fixedLength(l dimen.Length) fixed.Int26_6 {
	return fixed.I(int(l))
}
