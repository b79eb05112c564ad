package core

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrorKeepsChain(t *testing.T) {
	err := WrapError(fs.ErrNotExist, EMISSING, "font %q not found", "small")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, `font "small" not found`, UserMessage(err))
}

func TestCodeDefaults(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "internal error", UserMessage(errors.New("plain")))
	assert.Equal(t, EINVALID, Code(Error(EINVALID, "bad")))
}
