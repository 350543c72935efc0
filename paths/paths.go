// Package paths locates and opens the files a conversion reads and writes.
package paths

import (
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Companion resolves ref, a file name found inside the file at referrer,
// relative to the directory containing referrer. Absolute refs are returned
// cleaned but otherwise unchanged.
//
// For example, Companion("art/hero.anim", "hero.sprites") returns
// "art/hero.sprites".
func Companion(referrer, ref string) string {
	if filepath.IsAbs(ref) {
		return filepath.Clean(ref)
	}
	p := filepath.Join(filepath.Dir(referrer), filepath.FromSlash(ref))
	glog.V(2).Infof("paths.Companion(%q, %q)=%s", referrer, ref, p)
	return p
}

// Open opens the file at path for reading.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dfeatlas/paths/Open(%q): failed to open", path)
	}
	return f, nil
}

// WriteFile replaces the file at path with data.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "dfeatlas/paths/WriteFile(%q): failed to write", path)
	}
	return nil
}
