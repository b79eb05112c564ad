package resources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"
)

func TestCacheDirPath(t *testing.T) {
	teardown := testconfig.QuickConfig(t, map[string]string{
		"app-key": "pixtype-test",
	})
	defer teardown()
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)
	//
	cachedir, err := CacheDirPath("fonts", "extra")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "pixtype-test", "fonts", "extra"), cachedir)
	fi, err := os.Stat(cachedir)
	assert.NoError(t, err)
	assert.True(t, fi.IsDir())
}
