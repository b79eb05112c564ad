/*
Package resource defines maps from lightweight identifiers to resources,
such as font directories, font metrics and colour definitions.

Identifiers are expected to be small comparable values (enums, ints,
short strings). Clients may bring their own map implementations; the
DefaultingMap provided here covers the common case.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resource

// Map is a total map from identifiers to resources: every identifier yields
// some resource, usually a default one if nothing was stored for it.
type Map[K comparable, V any] interface {
	Get(k K) V
}

// PartialMap is a map which can report missing identifiers.
type PartialMap[K comparable, V any] interface {
	Lookup(k K) (V, bool)
}

// DefaultingMap is a hash map with a default value attached, which is
// returned when a requested key is not available.
//
// The zero value is an empty map with the zero value of V as its default.
type DefaultingMap[K comparable, V any] struct {
	m   map[K]V
	def V
}

// NewDefaultingMap wraps m (which may be nil) and supplies the default def.
func NewDefaultingMap[K comparable, V any](m map[K]V, def V) *DefaultingMap[K, V] {
	if m == nil {
		m = make(map[K]V)
	}
	return &DefaultingMap[K, V]{m: m, def: def}
}

// Get returns the resource at k, or the default if k is unset.
func (dm *DefaultingMap[K, V]) Get(k K) V {
	if v, ok := dm.Lookup(k); ok {
		return v
	}
	return dm.Default()
}

// Lookup returns the resource explicitly stored at k.
func (dm *DefaultingMap[K, V]) Lookup(k K) (V, bool) {
	if dm == nil || dm.m == nil {
		var zero V
		return zero, false
	}
	v, ok := dm.m[k]
	return v, ok
}

// Default returns the fallback resource.
func (dm *DefaultingMap[K, V]) Default() V {
	if dm == nil {
		var zero V
		return zero
	}
	return dm.def
}

// Set stores v at k.
func (dm *DefaultingMap[K, V]) Set(k K, v V) {
	if dm.m == nil {
		dm.m = make(map[K]V)
	}
	dm.m[k] = v
}

// Len is the number of explicitly stored resources.
func (dm *DefaultingMap[K, V]) Len() int {
	if dm == nil {
		return 0
	}
	return len(dm.m)
}

// Each calls f for every explicitly stored resource, in no particular order.
// f may stop the iteration by returning an error, which is passed on.
func (dm *DefaultingMap[K, V]) Each(f func(K, V) error) error {
	if dm == nil {
		return nil
	}
	for k, v := range dm.m {
		if err := f(k, v); err != nil {
			return err
		}
	}
	return nil
}

var _ Map[int, string] = &DefaultingMap[int, string]{}
var _ PartialMap[int, string] = &DefaultingMap[int, string]{}
