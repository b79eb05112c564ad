/*
Package layout lays out strings in pixel fonts.

Overview

Layout takes font metrics and a string and computes where every character
goes: a source rectangle in the font texture, and one or more destination
deltas relative to the top-left corner of the laid-out string. Glyphs are
grouped by source rectangle, so a renderer may draw all instances of a
character in one batch.

Strings may span several lines, separated by '\n'. A '\r' returns to the
start of the current line without advancing. Lines stack with the font's
vertical padding between them; a line is as high as a character, so a
string of n lines is n character heights plus n-1 paddings high.

Lines may be aligned to the right edge of the widest line. Alignment happens
after all lines have been laid out.

Layout never fails once metrics have been compiled.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pixtype.layout'.
func tracer() tracing.Trace {
	return tracing.Select("pixtype.layout")
}
