package resources

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/npillmayer/pixtype/core"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"
)

func TestResolveFontOnFontPath(t *testing.T) {
	teardown := testconfig.QuickConfig(t, map[string]string{
		"fontpath": filepath.Join(t.TempDir(), "nothing-here") + string(os.PathListSeparator) + "../../../testdata/fonts",
	})
	defer teardown()
	//
	f, err := ResolveFont("TinyYAML").Font()
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join("../../../testdata/fonts", "tinyyaml"), f.Dir)
	m, err := f.Metrics()
	assert.NoError(t, err)
	assert.Equal(t, "cp437", m.Encoding.String())
}

func TestResolveFontAsPath(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	f, err := ResolveFont("../../../testdata/fonts/tiny").Font()
	assert.NoError(t, err)
	assert.Equal(t, "tiny", f.Name())
}

func TestResolvePackagedFont(t *testing.T) {
	teardown := testconfig.QuickConfig(t, map[string]string{
		"app-key": "pixtype-test",
	})
	defer teardown()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	//
	f, err := ResolveFont("tiny").Font()
	assert.NoError(t, err)
	_, err = os.Stat(f.TexturePath())
	assert.NoError(t, err)
	m, err := f.Metrics()
	if assert.NoError(t, err) {
		assert.Equal(t, "latin1", m.Encoding.String())
	}
	// second resolve finds the extracted copy
	g, err := ResolveFont("tiny").Font()
	assert.NoError(t, err)
	assert.Equal(t, f, g)
}

func TestFontNotFound(t *testing.T) {
	teardown := testconfig.QuickConfig(t, map[string]string{
		"fontpath": "../../../testdata/fonts",
	})
	defer teardown()
	//
	_, err := ResolveFont("huge").Await(context.Background())
	assert.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Equal(t, "font not found: huge", core.UserMessage(err))
}

func TestAwaitCancelled(t *testing.T) {
	teardown := testconfig.QuickConfig(t, map[string]string{
		"fontpath": "../../../testdata/fonts",
	})
	defer teardown()
	//
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := ResolveFont("tiny")
	_, err := p.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	// giving up does not consume the result
	f, err := p.Font()
	assert.NoError(t, err)
	assert.Equal(t, "tiny", f.Name())
}

func TestPromiseIsRepeatable(t *testing.T) {
	teardown := testconfig.QuickConfig(t, map[string]string{
		"fontpath": "../../../testdata/fonts",
	})
	defer teardown()
	//
	found := ResolveFont("../../../testdata/fonts/tiny")
	for i := 0; i < 3; i++ {
		f, err := found.Font()
		assert.NoError(t, err)
		assert.Equal(t, "../../../testdata/fonts/tiny", f.Dir, "call %d", i)
	}
	missing := ResolveFont("huge")
	for i := 0; i < 3; i++ {
		_, err := missing.Await(context.Background())
		assert.Equal(t, core.EMISSING, core.Code(err), "call %d", i)
	}
}

func TestPromiseConcurrentCallers(t *testing.T) {
	teardown := testconfig.QuickConfig(t, map[string]string{
		"fontpath": "../../../testdata/fonts",
	})
	defer teardown()
	//
	p := ResolveFont("tinyyaml")
	var wg sync.WaitGroup
	dirs := make([]string, 8)
	for i := range dirs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f, _ := p.Font()
			dirs[i] = f.Dir
		}(i)
	}
	wg.Wait()
	for _, dir := range dirs {
		assert.Equal(t, filepath.Join("../../../testdata/fonts", "tinyyaml"), dir)
	}
}
