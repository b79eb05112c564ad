/*
Package resources resolves resources, such as fonts, for an application.

As resource loading may be a time-consuming task, functions in this package
work in an async/await fashion by returning a promise. Functions named

   Resolve…(…)

will return a resource-specific promise type, which the client will call later
to receive the resource. The call to the promise-function will then block
until resolving has completed.

Fonts are searched in the directories of configuration key "fontpath" (a
list separated by the OS path list separator) first. If a font cannot be
found there, fonts packaged with this module are extracted to the user's
cache directory and used instead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'pixtype.resources'.
func tracer() tracing.Trace {
	return tracing.Select("pixtype.resources")
}
