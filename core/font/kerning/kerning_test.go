package kerning

import (
	"errors"
	"testing"

	"github.com/npillmayer/pixtype/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func testSpec() Spec {
	return Spec{
		Left:  ClassTable{"tee": "TF", "vee": "VW"},
		Right: ClassTable{"round": "ao", "vee": "VW"},
		Pairs: PairTable{
			"tee": {"round": -1},
			"vee": {"round": 0},
		},
	}
}

func TestCompileExpandsClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixtype.font")
	defer teardown()
	//
	m, err := Compile(testSpec())
	assert.NoError(t, err)
	assert.Len(t, m, 4)
	assert.Equal(t, dimen.Length(-1), m.Spacing('T', 'o', 1))
	assert.Equal(t, dimen.Length(-1), m.Spacing('F', 'a', 1))
	assert.Equal(t, dimen.Length(0), m.Spacing('W', 'a', 1))
	assert.Equal(t, dimen.Length(1), m.Spacing('T', 'x', 1))
}

func TestCompileIsDirectional(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixtype.font")
	defer teardown()
	//
	m, err := Compile(testSpec())
	assert.NoError(t, err)
	assert.Equal(t, dimen.Length(-1), m.Spacing('T', 'a', 1))
	assert.Equal(t, dimen.Length(1), m.Spacing('a', 'T', 1))
}

func TestCompileMissingClass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pixtype.font")
	defer teardown()
	//
	spec := testSpec()
	spec.Pairs["tee"]["square"] = 2
	_, err := Compile(spec)
	var mce MissingClassError
	assert.True(t, errors.As(err, &mce))
	assert.Equal(t, MissingClassError{Direction: Right, Class: "square"}, mce)
	//
	spec = testSpec()
	spec.Pairs["hook"] = map[Class]dimen.Length{"round": 0}
	_, err = Compile(spec)
	assert.Equal(t, MissingClassError{Direction: Left, Class: "hook"}, err)
}

func TestCompileEmpty(t *testing.T) {
	m, err := Compile(Spec{})
	assert.NoError(t, err)
	assert.Empty(t, m)
	assert.Equal(t, dimen.Length(3), m.Spacing('a', 'b', 3))
}
