package resources

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/npillmayer/schuko/gconf"
)

// CacheDirPath checks and possibly creates a folder in the user's cache
// directory. The base cache directory is taken from `os.UserCacheDir()`, plus
// an application specific key, taken as `app-key` from the global configuration.
// Clients may specify a sequence of folder names, which will be appended to
// the base cache path. Non-existing sub-folders will be created as necessary
// (with permissions 755).
func CacheDirPath(subfolders ...string) (string, error) {
	appkey := gconf.GetString("app-key")
	tracer().Debugf("config[%s] = %s", "app-key", appkey)
	if appkey == "" {
		tracer().Infof("application key is not set, using 'pixtype'")
		appkey = "pixtype"
	}
	cachedir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	cachedir = filepath.Join(append([]string{cachedir, appkey}, subfolders...)...)
	tracer().Infof("caching in %s", cachedir)
	if _, err = os.Stat(cachedir); os.IsNotExist(err) {
		if err = os.MkdirAll(cachedir, 0755); err != nil {
			return "", err
		}
	}
	return cachedir, nil
}

// extractPackaged copies the packaged directory dir into the cache
// directory, unless it is already there. It returns the path of the copy.
func extractPackaged(dir string, subfolders ...string) (string, error) {
	cachedir, err := CacheDirPath(subfolders...)
	if err != nil {
		return "", err
	}
	target := filepath.Join(cachedir, path.Base(dir))
	if _, err := os.Stat(target); err == nil {
		tracer().Debugf("packaged resource %s already cached", dir)
		return target, nil
	}
	tracer().Infof("extracting packaged resource %s to %s", dir, target)
	err = fs.WalkDir(packaged, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(filepath.FromSlash(dir), filepath.FromSlash(p))
		dst := filepath.Join(target, rel)
		if d.IsDir() {
			return os.MkdirAll(dst, 0755)
		}
		content, err := packaged.ReadFile(p)
		if err != nil {
			return err
		}
		return os.WriteFile(dst, content, 0644)
	})
	if err != nil {
		os.RemoveAll(target)
		return "", err
	}
	return target, nil
}
