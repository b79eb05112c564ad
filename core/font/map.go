package font

import (
	"github.com/npillmayer/pixtype/core"
	"github.com/npillmayer/pixtype/core/resource"
)

// MetricsMap maps font identifiers to compiled metrics.
type MetricsMap[F comparable] interface {
	resource.Map[F, *Metrics]
}

// Map maps font identifiers to font directories.
type Map[F comparable] interface {
	resource.PartialMap[F, Font]
	// LoadMetrics loads the metrics of every font in the map.
	LoadMetrics() (*resource.DefaultingMap[F, *Metrics], error)
}

// PathMap is the default font map, holding font directories in a hash map.
type PathMap[F comparable] struct {
	paths *resource.DefaultingMap[F, Font]
}

// NewPathMap creates a font map from a map of directories.
func NewPathMap[F comparable](dirs map[F]string) *PathMap[F] {
	pm := &PathMap[F]{paths: resource.NewDefaultingMap[F, Font](nil, Font{})}
	for id, dir := range dirs {
		pm.paths.Set(id, At(dir))
	}
	return pm
}

// Set adds or replaces the font at id.
func (pm *PathMap[F]) Set(id F, f Font) {
	pm.paths.Set(id, f)
}

// Lookup gets the font at id.
func (pm *PathMap[F]) Lookup(id F) (Font, bool) {
	return pm.paths.Lookup(id)
}

// Get gets the font at id, failing with UnknownFontError.
func (pm *PathMap[F]) Get(id F) (Font, error) {
	if f, ok := pm.paths.Lookup(id); ok {
		return f, nil
	}
	return Font{}, core.WrapError(UnknownFontError{ID: id}, core.EMISSING, "font %v not configured", id)
}

// Len is the number of fonts in the map.
func (pm *PathMap[F]) Len() int {
	return pm.paths.Len()
}

// LoadMetrics loads the metrics of every font in the map. The first error
// stops loading. The resulting map yields zero metrics for unknown fonts.
func (pm *PathMap[F]) LoadMetrics() (*resource.DefaultingMap[F, *Metrics], error) {
	mm := resource.NewDefaultingMap[F, *Metrics](nil, &Metrics{})
	err := pm.paths.Each(func(id F, f Font) error {
		m, err := f.Metrics()
		if err != nil {
			return err
		}
		mm.Set(id, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded metrics for %d fonts", mm.Len())
	return mm, nil
}

var _ Map[string] = &PathMap[string]{}
var _ MetricsMap[string] = &resource.DefaultingMap[string, *Metrics]{}
