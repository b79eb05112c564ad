package colour

import (
	"testing"

	"github.com/npillmayer/pixtype/core/resource"
	"github.com/stretchr/testify/assert"
)

func TestHex(t *testing.T) {
	c, err := Hex("#0a0B0c")
	assert.NoError(t, err)
	assert.Equal(t, Definition{R: 10, G: 11, B: 12, A: 255}, c)
	c, err = Hex("f80")
	assert.NoError(t, err)
	assert.Equal(t, RGB(0xff, 0x88, 0x00), c)
	c, err = Hex("#ffffff80")
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x80), c.A)
	_, err = Hex("#ggg")
	assert.Error(t, err)
	_, err = Hex("#12345")
	assert.Error(t, err)
}

func TestEgaMap(t *testing.T) {
	assert.Equal(t, RGB(0xff, 0xff, 0xff), EGA.Get(EgaID{}))
	assert.Equal(t, RGB(0xAA, 0x00, 0x00), EGA.Get(Dark(Red)))
	assert.Equal(t, RGB(0x55, 0x55, 0xFF), EGA.Get(Bright(Blue)))
	_, ok := EGA.Lookup(EgaID{Hue: 42})
	assert.False(t, ok)
}

func TestFallbacks(t *testing.T) {
	m := resource.NewDefaultingMap(map[string]Definition{"fg": RGB(1, 2, 3)}, Definition{})
	assert.Equal(t, RGB(1, 2, 3), FgOrWhite[string](m, "fg"))
	assert.Equal(t, EGA.Bright.White, FgOrWhite[string](m, "nope"))
	assert.Equal(t, EGA.Dark.Black, BgOrBlack[string](m, "nope"))
}
