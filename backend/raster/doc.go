/*
Package raster renders pixel fonts into in-memory images.

Font textures are decoded from PNG into NRGBA images, then tinted with their
foreground colour by multiplying every channel. Glyphs are copied from the
tinted texture into a target image, optionally scaled up by an integer
factor with nearest-neighbour sampling to keep pixels crisp.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package raster

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pixtype.raster'.
func tracer() tracing.Trace {
	return tracing.Select("pixtype.raster")
}
