package fontregistry

import (
	"errors"
	"sync"

	"github.com/npillmayer/pixtype/core"
	"github.com/npillmayer/pixtype/core/colour"
	"github.com/npillmayer/pixtype/core/font"
	"github.com/npillmayer/pixtype/core/resource"
	"github.com/npillmayer/schuko/tracing"
)

// Index is a handle for data loaded into a registry.
type Index int

// NoIndex is the handle of an unresolved font.
const NoIndex Index = -1

// ErrBadHandle is returned for handles the registry did not hand out.
var ErrBadHandle = errors.New("bad font handle")

// Loader is implemented by rendering backends to turn font textures into
// backend data of type D.
type Loader[D any] interface {
	// Load loads the texture at path.
	Load(path string) (D, error)
	// Colourise tints data for a foreground colour. It may change data in
	// place and return it.
	Colourise(data D, fg colour.Definition) (D, error)
}

// Registry is a type for holding loaded fonts for a renderer.
//
// Every spec is loaded at most once. Registry is safe for concurrent use;
// loading happens while holding the lock, so concurrent requests for an
// unloaded spec wait for the first one to finish.
type Registry[F, C comparable, D any] struct {
	sync.Mutex
	slots   map[font.Spec[F, C]]Index
	cache   []D
	fonts   font.Map[F]
	colours resource.Map[C, colour.Definition]
	loader  Loader[D]
	metrics *resource.DefaultingMap[F, *font.Metrics]
}

// NewRegistry creates an empty registry over a font map and a colour map.
func NewRegistry[F, C comparable, D any](fonts font.Map[F], colours resource.Map[C, colour.Definition],
	loader Loader[D]) *Registry[F, C, D] {
	//
	return &Registry[F, C, D]{
		slots:   make(map[font.Spec[F, C]]Index),
		fonts:   fonts,
		colours: colours,
		loader:  loader,
	}
}

// Data gets the data for spec, loading it if it has not been loaded before.
func (fr *Registry[F, C, D]) Data(spec font.Spec[F, C]) (D, error) {
	fr.Lock()
	defer fr.Unlock()
	i, err := fr.fetch(spec)
	if err != nil {
		var zero D
		return zero, err
	}
	return fr.cache[i], nil
}

// Fetch makes sure spec is loaded and returns its handle.
func (fr *Registry[F, C, D]) Fetch(spec font.Spec[F, C]) (Index, error) {
	fr.Lock()
	defer fr.Unlock()
	return fr.fetch(spec)
}

func (fr *Registry[F, C, D]) fetch(spec font.Spec[F, C]) (Index, error) {
	if i, ok := fr.slots[spec]; ok {
		tracer().Debugf("registry found font %s at slot %d", spec, i)
		return i, nil
	}
	f, ok := fr.fonts.Lookup(spec.ID)
	if !ok {
		err := core.WrapError(font.UnknownFontError{ID: spec.ID}, core.EMISSING,
			"registry does not know font %v", spec.ID)
		tracer().Errorf(err.Error())
		return NoIndex, err
	}
	data, err := fr.loader.Load(f.TexturePath())
	if err != nil {
		tracer().Errorf("cannot load font %s: %v", spec, err)
		return NoIndex, err
	}
	if data, err = fr.loader.Colourise(data, fr.colours.Get(spec.Colour)); err != nil {
		tracer().Errorf("cannot colourise font %s: %v", spec, err)
		return NoIndex, err
	}
	i := Index(len(fr.cache))
	fr.cache = append(fr.cache, data)
	fr.slots[spec] = i
	tracer().Infof("registry loaded font %s into slot %d", spec, i)
	return i, nil
}

// Index gets the handle of spec, if it has been loaded.
func (fr *Registry[F, C, D]) Index(spec font.Spec[F, C]) (Index, bool) {
	fr.Lock()
	defer fr.Unlock()
	if i, ok := fr.slots[spec]; ok {
		return i, true
	}
	return NoIndex, false
}

// At gets the data at a handle.
func (fr *Registry[F, C, D]) At(i Index) (D, error) {
	fr.Lock()
	defer fr.Unlock()
	if i < 0 || int(i) >= len(fr.cache) {
		var zero D
		return zero, core.WrapError(ErrBadHandle, core.EINVALID, "no font at slot %d", i)
	}
	return fr.cache[i], nil
}

// Len is the number of loaded specs.
func (fr *Registry[F, C, D]) Len() int {
	fr.Lock()
	defer fr.Unlock()
	return len(fr.cache)
}

// Metrics gets the metrics of all fonts, loading them on first call.
func (fr *Registry[F, C, D]) Metrics() (*resource.DefaultingMap[F, *font.Metrics], error) {
	fr.Lock()
	defer fr.Unlock()
	if fr.metrics != nil {
		return fr.metrics, nil
	}
	mm, err := fr.fonts.LoadMetrics()
	if err != nil {
		return nil, err
	}
	fr.metrics = mm
	return mm, nil
}

// LogFontList is a helper function to dump the list of loaded fonts to
// the trace (level Info).
func (fr *Registry[F, C, D]) LogFontList() {
	fr.Lock()
	defer fr.Unlock()
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	specs := make([]font.Spec[F, C], len(fr.cache))
	for spec, i := range fr.slots {
		specs[i] = spec
	}
	for i, spec := range specs {
		tracer().Infof("slot %d = %s", i, spec)
	}
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}
