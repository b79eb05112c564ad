/*
Package fontregistry manages a registry for loaded fonts.

The registry maps a font specification, i.e. a font identifier together with
a foreground colour, to backend data such as a decoded and tinted texture.
Loading happens on first request only; the registry never evicts. It is
meant for sessions with a small, closed set of fonts. Long-running clients
should wrap it with an eviction policy of their own.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'pixtype.font'
func tracer() tracing.Trace {
	return tracing.Select("pixtype.font")
}
