package font

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Encoding maps characters to cells of the glyph grid.
//
// The zero value is Latin-1, where the first 256 code points address
// cells directly.
type Encoding struct {
	name string
	cm   *charmap.Charmap
}

// Latin1 is the default encoding.
var Latin1 = Encoding{}

// ParseEncoding finds an encoding by name. The empty name selects Latin-1.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "")) {
	case "", "latin1", "iso88591":
		return Latin1, nil
	case "cp437", "ibm437":
		return Encoding{name: "cp437", cm: charmap.CodePage437}, nil
	case "cp850", "ibm850":
		return Encoding{name: "cp850", cm: charmap.CodePage850}, nil
	case "cp1252", "windows1252":
		return Encoding{name: "cp1252", cm: charmap.Windows1252}, nil
	}
	return Latin1, fmt.Errorf("unknown font encoding %q", name)
}

// Code gets the grid cell of r. ok is false if r cannot be encoded.
func (e Encoding) Code(r rune) (code byte, ok bool) {
	if e.cm == nil {
		if 0 <= r && r < 256 {
			return byte(r), true
		}
		return 0, false
	}
	return e.cm.EncodeRune(r)
}

func (e Encoding) String() string {
	if e.name == "" {
		return "latin1"
	}
	return e.name
}
