package resources

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/npillmayer/pixtype/core"
	"github.com/npillmayer/pixtype/core/font"
	"github.com/npillmayer/schuko/gconf"
)

type resourceType int

// resource types
const (
	unknownResourceType resourceType = iota
	fontResourceType
)

// NotFound returns an application error for a missing resource.
func NotFound(res string, rtype resourceType) error {
	e := fmt.Errorf("resource missing: %v", res)
	var s string
	switch rtype {
	case fontResourceType:
		s = fmt.Sprintf("font not found: %s", res)
	default:
		s = fmt.Sprintf("resource not found: %s", res)
	}
	return core.WrapError(e, core.EMISSING, "%s", s)
}

//go:embed packaged/*
var packaged embed.FS

// FontPath is the list of font directories, as configured with key
// "fontpath".
func FontPath() []string {
	fp := gconf.GetString("fontpath")
	if fp == "" {
		return nil
	}
	return filepath.SplitList(fp)
}

// --- Fonts -----------------------------------------------------------------

type fontPlusErr struct {
	font font.Font
	err  error
}

// FontPromise is a font being resolved.
type FontPromise interface {
	// Font blocks until the font has been resolved.
	Font() (font.Font, error)
	// Await is like Font, but gives up when ctx is done.
	Await(ctx context.Context) (font.Font, error)
}

type fontLoader struct {
	await func(ctx context.Context) (font.Font, error)
}

func (loader fontLoader) Font() (font.Font, error) {
	return loader.await(context.Background())
}

func (loader fontLoader) Await(ctx context.Context) (font.Font, error) {
	return loader.await(ctx)
}

// ResolveFont resolves a font directory by name. name may also be a path to
// a font directory.
//
// The promise may be called any number of times; every call which does not
// give up returns the same result.
func ResolveFont(name string) FontPromise {
	ch := make(chan fontPlusErr, 1)
	go func(ch chan<- fontPlusErr) {
		f, err := findFont(name)
		ch <- fontPlusErr{font: f, err: err}
		close(ch)
	}(ch)
	var result fontPlusErr
	done := make(chan struct{})
	return fontLoader{
		await: func(ctx context.Context) (font.Font, error) {
			if err := ctx.Err(); err != nil {
				return font.Font{}, err
			}
			select {
			case <-ctx.Done():
				return font.Font{}, ctx.Err()
			case r, ok := <-ch:
				if ok { // exactly one caller receives the result
					result = r
					close(done)
				} else {
					<-done
				}
				return result.font, result.err
			case <-done:
				return result.font, result.err
			}
		},
	}
}

func findFont(name string) (font.Font, error) {
	if isFontDir(name) {
		tracer().Debugf("font %s given as path", name)
		return font.At(name), nil
	}
	wanted := font.NormalizeFontname(name)
	for _, dir := range FontPath() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			tracer().Debugf("skipping font path entry %s: %v", dir, err)
			continue
		}
		for _, e := range entries {
			if !e.IsDir() || font.NormalizeFontname(e.Name()) != wanted {
				continue
			}
			if fdir := filepath.Join(dir, e.Name()); isFontDir(fdir) {
				tracer().Debugf("found font %s in %s", name, dir)
				return font.At(fdir), nil
			}
		}
	}
	packagedFonts, _ := packaged.ReadDir("packaged/fonts")
	for _, e := range packagedFonts {
		if e.IsDir() && font.NormalizeFontname(e.Name()) == wanted {
			tracer().Debugf("found font %s as packaged font", name)
			fdir, err := extractPackaged(path.Join("packaged/fonts", e.Name()), "fonts")
			if err != nil {
				return font.Font{}, core.WrapError(err, core.EINTERNAL, "cannot extract packaged font %s", name)
			}
			return font.At(fdir), nil
		}
	}
	tracer().Infof("font %s not found", name)
	return font.Font{}, NotFound(name, fontResourceType)
}

// isFontDir is true for directories holding a font texture.
func isFontDir(dir string) bool {
	fi, err := os.Stat(filepath.Join(dir, font.TextureFile))
	return err == nil && !fi.IsDir()
}
