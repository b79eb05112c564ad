package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"

	"github.com/npillmayer/pixtype/core"
	"github.com/npillmayer/pixtype/core/colour"
	"github.com/npillmayer/pixtype/core/font/fontregistry"
	"golang.org/x/image/draw"
)

// TextureLoadError is returned if a font texture cannot be decoded.
type TextureLoadError struct {
	Path string
	Err  error
}

func (e TextureLoadError) Error() string {
	return fmt.Sprintf("cannot load font texture %s: %v", e.Path, e.Err)
}

func (e TextureLoadError) Unwrap() error {
	return e.Err
}

// ErrNoTexture is returned when colourising a missing texture.
var ErrNoTexture = errors.New("no texture")

// Loader loads font textures from PNG files.
type Loader struct{}

var _ fontregistry.Loader[*image.NRGBA] = Loader{}

// Load decodes the PNG at path into an NRGBA image.
func (Loader) Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		code := core.EDECODE
		if errors.Is(err, fs.ErrNotExist) {
			code = core.EMISSING
		}
		return nil, core.WrapError(TextureLoadError{Path: path, Err: err}, code, "cannot open font texture")
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, core.WrapError(TextureLoadError{Path: path, Err: err}, core.EDECODE, "cannot decode font texture")
	}
	tracer().Debugf("decoded texture %s, %v", path, img.Bounds())
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba, nil
	}
	nrgba := image.NewNRGBA(img.Bounds())
	draw.Draw(nrgba, nrgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return nrgba, nil
}

// Colourise tints a texture in place, multiplying every channel with the
// corresponding channel of fg.
func (Loader) Colourise(tex *image.NRGBA, fg colour.Definition) (*image.NRGBA, error) {
	if tex == nil {
		return nil, core.WrapError(ErrNoTexture, core.EINVALID, "cannot colourise")
	}
	mul := [4]uint16{uint16(fg.R), uint16(fg.G), uint16(fg.B), uint16(fg.A)}
	b := tex.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := tex.Pix[tex.PixOffset(b.Min.X, y):tex.PixOffset(b.Max.X, y)]
		for i := range row {
			row[i] = uint8(uint16(row[i]) * mul[i%4] / 0xff)
		}
	}
	return tex, nil
}
