package width

import (
	"errors"
	"testing"

	"github.com/npillmayer/pixtype/core/dimen"
	"github.com/stretchr/testify/assert"
)

func TestCompileOverrides(t *testing.T) {
	m, err := Compile(Spec{"iI": 1, "fjrt": 4}, 9)
	assert.NoError(t, err)
	assert.Equal(t, 6, m.Len())
	assert.Equal(t, dimen.Length(1), m.Get('I'))
	assert.Equal(t, dimen.Length(4), m.Get('r'))
	assert.Equal(t, dimen.Length(9), m.Get('c'))
	assert.Equal(t, dimen.Length(9), m.Get('ß'))
}

func TestCompileLastClassWins(t *testing.T) {
	m, err := Compile(Spec{"ab": 2, "bc": 3}, 9)
	assert.NoError(t, err)
	assert.Equal(t, dimen.Length(2), m.Get('a'))
	assert.Equal(t, dimen.Length(3), m.Get('b'))
}

func TestCheckRejectsLargeOverride(t *testing.T) {
	_, err := Compile(Spec{"iI": 1, "W": 10}, 9)
	var e OverlyLargeOverrideError
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, OverlyLargeOverrideError{GridWidth: 9, OverrideWidth: 10}, e)
	assert.NoError(t, Spec{"W": 9}.Check(9))
}

func TestCheckRejectsNegativeOverride(t *testing.T) {
	err := Spec{"x": -1}.Check(9)
	assert.Equal(t, NegativeOverrideError{Class: "x", OverrideWidth: -1}, err)
}
