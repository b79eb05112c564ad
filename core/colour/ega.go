package colour

// EgaBase is an EGA base palette without intensity.
type EgaBase struct {
	Black, Blue, Green, Cyan, Red, Magenta, Yellow, White Definition
}

// Ega is the EGA palette with intensity.
type Ega struct {
	Dark, Bright EgaBase
}

// EGA is the default EGA palette.
var EGA = Ega{
	Dark: EgaBase{
		Black:   RGB(0x00, 0x00, 0x00),
		Blue:    RGB(0x00, 0x00, 0xAA),
		Green:   RGB(0x00, 0xAA, 0x00),
		Cyan:    RGB(0x00, 0xAA, 0xAA),
		Red:     RGB(0xAA, 0x00, 0x00),
		Magenta: RGB(0xAA, 0x00, 0xAA),
		Yellow:  RGB(0xAA, 0x55, 0x00),
		White:   RGB(0xAA, 0xAA, 0xAA),
	},
	Bright: EgaBase{
		Black:   RGB(0x55, 0x55, 0x55),
		Blue:    RGB(0x55, 0x55, 0xFF),
		Green:   RGB(0x55, 0xFF, 0x55),
		Cyan:    RGB(0x55, 0xFF, 0xFF),
		Red:     RGB(0xFF, 0x55, 0x55),
		Magenta: RGB(0xFF, 0x55, 0xFF),
		Yellow:  RGB(0xFF, 0xFF, 0x55),
		White:   RGB(0xFF, 0xFF, 0xFF),
	},
}

// EgaHue identifies one of the eight EGA base colours.
type EgaHue uint8

// EGA base colours. White is the zero value, as identifiers usually
// address foregrounds.
const (
	White EgaHue = iota
	Black
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
)

// EgaID identifies an EGA colour. The zero value is bright white.
type EgaID struct {
	Hue  EgaHue
	Dark bool
}

// Bright returns the bright variant of hue.
func Bright(hue EgaHue) EgaID {
	return EgaID{Hue: hue}
}

// Dark returns the dark variant of hue.
func Dark(hue EgaHue) EgaID {
	return EgaID{Hue: hue, Dark: true}
}

// Get makes the EGA palette usable as a colour map.
func (e Ega) Get(id EgaID) Definition {
	base := e.Bright
	if id.Dark {
		base = e.Dark
	}
	return base.get(id.Hue)
}

// Lookup is like Get, but fails for unknown hues.
func (e Ega) Lookup(id EgaID) (Definition, bool) {
	if id.Hue > Yellow {
		return Definition{}, false
	}
	return e.Get(id), true
}

func (b EgaBase) get(hue EgaHue) Definition {
	switch hue {
	case Black:
		return b.Black
	case Blue:
		return b.Blue
	case Green:
		return b.Green
	case Cyan:
		return b.Cyan
	case Red:
		return b.Red
	case Magenta:
		return b.Magenta
	case Yellow:
		return b.Yellow
	}
	return b.White
}

var _ Map[EgaID] = EGA
