package font

import (
	"errors"
	"fmt"
)

// MetricsParseError is returned if a metrics file cannot be decoded.
type MetricsParseError struct {
	Path string
	Err  error
}

func (e MetricsParseError) Error() string {
	return fmt.Sprintf("cannot parse font metrics %s: %v", e.Path, e.Err)
}

func (e MetricsParseError) Unwrap() error {
	return e.Err
}

// UnknownFontError is returned if a font identifier is not in a font map.
type UnknownFontError struct {
	ID interface{}
}

func (e UnknownFontError) Error() string {
	return fmt.Sprintf("unknown font %v", e.ID)
}

// ErrNoMetrics is returned if a font directory holds no metrics file.
var ErrNoMetrics = errors.New("font has no metrics file")
