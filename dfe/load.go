package dfe

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/dfeatlas/paths"
)

// LoadSheet opens and parses the sprite sheet definition at path.
func LoadSheet(path string) (*Sheet, error) {
	f, err := paths.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet, err := ReadSheet(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing sprite sheet %q", path)
	}
	glog.V(2).Infof("loaded sheet %q (image %q, %sx%s)", path, sheet.Name, sheet.W, sheet.H)
	return sheet, nil
}

// LoadAnimationSet opens and parses the animation file at path, then loads
// the sprite sheet it refers to. The sheet path is returned along with the
// sheet so that callers can locate the sheet's image.
func LoadAnimationSet(path string) (set *AnimationSet, sheet *Sheet, sheetPath string, err error) {
	f, err := paths.Open(path)
	if err != nil {
		return nil, nil, "", err
	}
	defer f.Close()

	set, err = ReadAnimationSet(f)
	if err != nil {
		return nil, nil, "", errors.Wrapf(err, "parsing animation set %q", path)
	}
	if set.SpriteSheet == "" {
		return nil, nil, "", errors.Wrapf(&AttrError{Elem: set.XMLName.Local, Attr: "spriteSheet", Err: ErrMissingAttribute}, "animation set %q", path)
	}

	sheetPath = paths.Companion(path, set.SpriteSheet)
	sheet, err = LoadSheet(sheetPath)
	if err != nil {
		return nil, nil, "", errors.Wrapf(err, "sprite sheet of animation set %q", path)
	}
	return set, sheet, sheetPath, nil
}
