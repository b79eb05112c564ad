/*
Package colour provides true-colour definitions and palettes to look them up.

Colour definitions are plain non-premultiplied RGBA values. Fonts are tinted
with a foreground definition when loaded; backgrounds are used for fills.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package colour

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/pixtype/core/resource"
)

// Definition is a true-colour definition.
type Definition = color.NRGBA

// RGB constructs an opaque colour from red, green and blue bytes.
func RGB(r, g, b uint8) Definition {
	return Definition{R: r, G: g, B: b, A: 0xff}
}

// Hex parses a CSS-style hex colour: #rgb, #rgba, #rrggbb or #rrggbbaa.
// The leading '#' is optional.
func Hex(hex string) (Definition, error) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	var c [4]uint8
	c[3] = 0xff
	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			v, ok := hexDigit(hex[i])
			if !ok {
				return Definition{}, fmt.Errorf("invalid hex colour %q", hex)
			}
			c[i] = v * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := hexDigit(hex[i])
			lo, ok2 := hexDigit(hex[i+1])
			if !ok1 || !ok2 {
				return Definition{}, fmt.Errorf("invalid hex colour %q", hex)
			}
			c[i/2] = hi<<4 | lo
		}
	default:
		return Definition{}, fmt.Errorf("invalid hex colour %q", hex)
	}
	return Definition{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Map is a total map from colour identifiers to definitions.
type Map[C comparable] resource.Map[C, Definition]

// FgOrWhite gets the foreground at id, substituting bright white if id is
// not in the map.
func FgOrWhite[C comparable](m resource.PartialMap[C, Definition], id C) Definition {
	if d, ok := m.Lookup(id); ok {
		return d
	}
	return EGA.Bright.White
}

// BgOrBlack gets the background at id, substituting black if id is not in
// the map.
func BgOrBlack[C comparable](m resource.PartialMap[C, Definition], id C) Definition {
	if d, ok := m.Lookup(id); ok {
		return d
	}
	return EGA.Dark.Black
}
