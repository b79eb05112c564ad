/*
Package text composes text for rendering.

A Writer keeps a position, an alignment and a font, and lays out strings
with them. Layouts are cached until string, font or alignment change.
Writers implement io.Writer, so formatted output works as expected:

	w := text.NewWriter[FontID, ColourID](renderer).WithPos(p).Align(dimen.Right)
	fmt.Fprintf(w, "%d points", score)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package text

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pixtype.text'.
func tracer() tracing.Trace {
	return tracing.Select("pixtype.text")
}
