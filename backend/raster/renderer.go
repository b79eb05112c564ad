package raster

import (
	"image"

	"github.com/npillmayer/pixtype/core/colour"
	"github.com/npillmayer/pixtype/core/dimen"
	"github.com/npillmayer/pixtype/core/font"
	"github.com/npillmayer/pixtype/core/font/fontregistry"
	"github.com/npillmayer/pixtype/core/resource"
	"github.com/npillmayer/pixtype/engine/layout"
	"github.com/npillmayer/pixtype/engine/text"
	"golang.org/x/image/draw"
)

// Renderer draws laid-out strings into a target image.
type Renderer[F, C comparable] struct {
	target  draw.Image
	fonts   *fontregistry.Registry[F, C, *image.NRGBA]
	metrics resource.Map[F, *font.Metrics]
	scale   int
}

var _ text.Renderer[int, int] = &Renderer[int, int]{}

// NewRenderer creates a renderer for target, loading the metrics of all
// fonts in the registry.
func NewRenderer[F, C comparable](target draw.Image, fonts *fontregistry.Registry[F, C, *image.NRGBA]) (
	*Renderer[F, C], error) {
	//
	mm, err := fonts.Metrics()
	if err != nil {
		tracer().Errorf("renderer cannot load font metrics: %v", err)
		return nil, err
	}
	return &Renderer[F, C]{target: target, fonts: fonts, metrics: mm, scale: 1}, nil
}

// WithScale sets an integer scale factor. Factors below 1 are ignored.
func (r *Renderer[F, C]) WithScale(scale int) *Renderer[F, C] {
	if scale >= 1 {
		r.scale = scale
	}
	return r
}

// Target is the image the renderer draws into.
func (r *Renderer[F, C]) Target() draw.Image {
	return r.target
}

// FontMetrics gets the metrics of all fonts known to the renderer.
func (r *Renderer[F, C]) FontMetrics() resource.Map[F, *font.Metrics] {
	return r.metrics
}

// Write draws a laid-out string in font spec.
func (r *Renderer[F, C]) Write(spec font.Spec[F, C], s layout.String) error {
	tex, err := r.fonts.Data(spec)
	if err != nil {
		return err
	}
	topLeft := s.Bounds.TopLeft
	s.Glyphs.Each(func(src dimen.Rect, dsts []dimen.Point) {
		sr := src.ImageRect()
		for _, d := range dsts {
			dst := dimen.Rect{TopLeft: topLeft, Size: src.Size}
			dst.TopLeft.Shift(d)
			r.blit(tex, sr, dst)
		}
	})
	return nil
}

// WriteString lays out str at pos and draws it. It returns the position
// right after the string's bounds, padding included.
func (r *Renderer[F, C]) WriteString(pos dimen.Point, spec font.Spec[F, C], str string) (dimen.Point, error) {
	m := r.metrics.Get(spec.ID)
	s := layout.Layout(m, str, pos)
	if err := r.Write(spec, s); err != nil {
		return pos, err
	}
	if s.IsEmpty() {
		return pos, nil
	}
	return s.Bounds.Point(m.Pad.W, 0, dimen.TopRight), nil
}

// Fill fills rect with colour c.
func (r *Renderer[F, C]) Fill(rect dimen.Rect, c colour.Definition) error {
	draw.Draw(r.target, r.scaled(rect), image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}

// Clear fills the whole target with colour c.
func (r *Renderer[F, C]) Clear(c colour.Definition) error {
	draw.Draw(r.target, r.target.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}

func (r *Renderer[F, C]) blit(tex image.Image, sr image.Rectangle, dst dimen.Rect) {
	if r.scale == 1 {
		draw.Draw(r.target, dst.ImageRect(), tex, sr.Min, draw.Over)
		return
	}
	draw.NearestNeighbor.Scale(r.target, r.scaled(dst), tex, sr, draw.Over, nil)
}

func (r *Renderer[F, C]) scaled(rect dimen.Rect) image.Rectangle {
	ir := rect.ImageRect()
	return image.Rectangle{Min: ir.Min.Mul(r.scale), Max: ir.Max.Mul(r.scale)}
}
