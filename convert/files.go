package convert

import (
	"github.com/golang/glog"

	"badc0de.net/pkg/dfeatlas/atlas"
	"badc0de.net/pkg/dfeatlas/dfe"
)

// Result describes a finished file conversion.
type Result struct {
	SheetPath string
	Sheet     *dfe.Sheet
	Frames    []atlas.NamedFrame // in emission order
}

// SheetFile converts the sheet definition at in and writes the document to
// out. With hash set, frames are keyed by name instead of listed. Nothing is
// written if any step fails.
func SheetFile(in, out string, hash bool, opts Options) (*Result, error) {
	sheet, err := dfe.LoadSheet(in)
	if err != nil {
		return nil, err
	}

	sprites, err := WalkSheet(sheet, opts.Reporter)
	if err != nil {
		return nil, err
	}
	arr := arrayDocument(sheet, sprites, opts.App)
	frames := arr.Frames

	var doc interface{} = arr
	if hash {
		doc = hashDocument(sheet, sprites, opts.App)
	}
	if err := atlas.WriteFile(out, doc); err != nil {
		return nil, err
	}
	glog.Infof("wrote %d frames from %s to %s", len(frames), in, out)
	return &Result{SheetPath: in, Sheet: sheet, Frames: frames}, nil
}

// AnimFile converts the animation set at in, together with the sprite sheet
// it refers to, and writes the document to out. Nothing is written if any
// step fails, including an unknown sprite reference.
func AnimFile(in, out string, opts Options) (*Result, error) {
	set, sheet, sheetPath, err := dfe.LoadAnimationSet(in)
	if err != nil {
		return nil, err
	}

	frames, doc, err := animations(set, sheet, opts)
	if err != nil {
		return nil, err
	}
	if err := atlas.WriteFile(out, doc); err != nil {
		return nil, err
	}
	glog.Infof("wrote %d frames of %d animations from %s to %s", len(doc.Frames), len(set.Anim), in, out)

	res := &Result{SheetPath: sheetPath, Sheet: sheet}
	for _, f := range frames {
		res.Frames = append(res.Frames, atlas.NamedFrame{Filename: f.Key, Frame: f.Frame})
	}
	return res, nil
}
