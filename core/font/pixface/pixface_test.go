package pixface

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/npillmayer/pixtype/core/dimen"
	"github.com/npillmayer/pixtype/core/font"
	"github.com/npillmayer/pixtype/core/font/kerning"
	"github.com/npillmayer/pixtype/core/font/width"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func bigFace(t *testing.T) *Face {
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
		t.Fatal(err)
	}
	return NewFace(m, image.NewNRGBA(image.Rect(0, 0, 320, 80)))
}

func TestMeasureString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixtype.font")
	defer teardown()
	//
	face := bigFace(t)
	// advances include the trailing spacing of the last glyph
	assert.Equal(t, fixed.I(34), xfont.MeasureString(face, "Icing"))
	assert.Equal(t, fixed.I(-3), face.Kern('T', 'o'))
	assert.Equal(t, fixed.I(0), face.Kern('o', 'T'))
	assert.Equal(t, fixed.I(17), xfont.MeasureString(face, "To"))
}

func TestGlyphBounds(t *testing.T) {
	face := bigFace(t)
	b, adv, ok := face.GlyphBounds('i')
	assert.True(t, ok)
	assert.Equal(t, fixed.I(2), adv)
	assert.Equal(t, fixed.I(-9), b.Min.Y)
	assert.Equal(t, fixed.I(1), b.Max.X)
	_, ok = face.GlyphAdvance('€')
	assert.False(t, ok)
	assert.Equal(t, fixed.I(10), face.Metrics().Height)
	assert.Equal(t, fixed.I(9), face.Metrics().Ascent)
}

func TestGlyphMask(t *testing.T) {
	face := bigFace(t)
	dr, mask, maskp, adv, ok := face.Glyph(fixed.P(20, 30), 'A')
	assert.True(t, ok)
	assert.Equal(t, image.Rect(20, 21, 29, 30), dr)
	assert.Equal(t, image.Pt(10, 20), maskp)
	assert.Equal(t, fixed.I(10), adv)
	assert.Equal(t, face.texture, mask)
}

func TestDrawWithTestFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixtype.font")
	defer teardown()
	//
	f := font.At("../../../testdata/fonts/tiny")
	m, err := f.Metrics()
	assert.NoError(t, err)
	file, err := os.Open(f.TexturePath())
	if !assert.NoError(t, err) {
		return
	}
	defer file.Close()
	tex, err := png.Decode(file)
	assert.NoError(t, err)
	//
	dst := image.NewNRGBA(image.Rect(0, 0, 40, 10))
	red := color.NRGBA{R: 0xff, A: 0xff}
	d := xfont.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(red),
		Face: NewFace(m, tex),
		Dot:  fixed.P(1, 8),
	}
	d.DrawString("AB")
	assert.Equal(t, red, dst.NRGBAAt(1, 1))
	assert.Equal(t, red, dst.NRGBAAt(5, 7))
	assert.Equal(t, color.NRGBA{}, dst.NRGBAAt(3, 4)) // hollow centre
	assert.Equal(t, color.NRGBA{}, dst.NRGBAAt(6, 4)) // padding between glyphs
	assert.Equal(t, red, dst.NRGBAAt(7, 1))
	assert.Equal(t, fixed.I(13), d.Dot.X)
}
