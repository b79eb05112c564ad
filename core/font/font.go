package font

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/pixtype/core"
	"github.com/npillmayer/schuko/gconf"
	"gopkg.in/yaml.v3"
)

// Fixed file names within a font directory.
const (
	TextureFile = "font.png"
	MetricsBase = "metrics"
)

// Format is a metrics file format.
type Format int8

// Supported metrics formats.
const (
	TOML Format = iota
	YAML
)

// Ext is the file extension of a format, without a dot.
func (f Format) Ext() string {
	if f == YAML {
		return "yaml"
	}
	return "toml"
}

func (f Format) String() string {
	return f.Ext()
}

// ParseFormat parses a format name or file extension.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "toml":
		return TOML, true
	case "yaml", "yml":
		return YAML, true
	}
	return TOML, false
}

// Font is a font directory.
type Font struct {
	Dir string
}

// At is shorthand for a font at directory dir.
func At(dir string) Font {
	return Font{Dir: dir}
}

// Name is the normalized name of the font directory.
func (f Font) Name() string {
	return NormalizeFontname(filepath.Base(f.Dir))
}

// TexturePath is the path to the font's glyph texture.
func (f Font) TexturePath() string {
	return filepath.Join(f.Dir, TextureFile)
}

// MetricsPath locates the font's metrics file. If configuration key
// "metrics-format" names a format, it is tried first; otherwise TOML is
// preferred over YAML.
func (f Font) MetricsPath() (string, Format, error) {
	formats := []Format{TOML, YAML}
	if pref, ok := ParseFormat(gconf.GetString("metrics-format")); ok && pref == YAML {
		formats = []Format{YAML, TOML}
	}
	for _, format := range formats {
		path := filepath.Join(f.Dir, MetricsBase+"."+format.Ext())
		if _, err := os.Stat(path); err == nil {
			return path, format, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", format, core.WrapError(err, core.EMISSING, "cannot access font metrics %s", path)
		}
	}
	return "", TOML, core.WrapError(ErrNoMetrics, core.EMISSING, "no metrics in font directory %s", f.Dir)
}

// Metrics locates, decodes and compiles the font's metrics.
func (f Font) Metrics() (*Metrics, error) {
	path, format, err := f.MetricsPath()
	if err != nil {
		tracer().Errorf(err.Error())
		return nil, err
	}
	spec, err := LoadMetricsSpec(path, format)
	if err != nil {
		tracer().Errorf(err.Error())
		return nil, err
	}
	m, err := spec.Compile()
	if err != nil {
		tracer().Errorf("font %s: %v", f.Dir, err)
		return nil, err
	}
	tracer().Infof("compiled metrics for font %s: char=%s, pad=%s, encoding=%s", f.Name(), m.Char, m.Pad, m.Encoding)
	return m, nil
}

func (f Font) String() string {
	return fmt.Sprintf("font(%s)", f.Dir)
}

// LoadMetricsSpec reads a metrics file of the given format.
func LoadMetricsSpec(path string, format Format) (MetricsSpec, error) {
	file, err := os.Open(path)
	if err != nil {
		return MetricsSpec{}, core.WrapError(err, core.EMISSING, "cannot open font metrics %s", path)
	}
	defer file.Close()
	spec, err := DecodeMetricsSpec(file, format)
	if err != nil {
		return spec, core.WrapError(MetricsParseError{Path: path, Err: err}, core.EDECODE,
			"cannot decode font metrics %s", path)
	}
	return spec, nil
}

// DecodeMetricsSpec decodes a metrics specification from r.
func DecodeMetricsSpec(r io.Reader, format Format) (MetricsSpec, error) {
	var spec MetricsSpec
	switch format {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&spec); err != nil && err != io.EOF {
			return spec, err
		}
	default:
		md, err := toml.NewDecoder(r).Decode(&spec)
		if err != nil {
			return spec, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			tracer().Debugf("font metrics: ignoring keys %v", undecoded)
		}
	}
	return spec, nil
}

// NormalizeFontname normalizes a font name to lower case without spaces
// and file extensions.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	return strings.ToLower(fname)
}
