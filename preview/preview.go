// Package preview shows converted frames on the terminal, cut out of the
// sheet image they refer to.
package preview

import (
	"fmt"
	"image"
	_ "image/png"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/dfeatlas/atlas"
	"badc0de.net/pkg/dfeatlas/imageprint"
	"badc0de.net/pkg/dfeatlas/paths"
)

type Options struct {
	Mode   imageprint.Mode
	Blanks bool
}

// LoadImage decodes the sheet image named imageName, found next to the sheet
// definition at sheetPath.
func LoadImage(sheetPath, imageName string) (image.Image, error) {
	p := paths.Companion(sheetPath, imageName)
	f, err := paths.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding sheet image %q", p)
	}
	glog.V(1).Infof("decoded %s sheet image %q (%v)", format, p, img.Bounds().Size())
	return img, nil
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Crop returns the part of img covered by r. Parts of r outside the image
// are dropped.
func Crop(img image.Image, r atlas.Rect) (image.Image, error) {
	si, ok := img.(subImager)
	if !ok {
		return nil, errors.Errorf("image type %T cannot be cropped", img)
	}
	b := img.Bounds()
	rect := image.Rect(b.Min.X+r.X, b.Min.Y+r.Y, b.Min.X+r.X+r.W, b.Min.Y+r.Y+r.H).Intersect(b)
	if rect.Empty() {
		return nil, errors.Errorf("frame %+v lies outside the %v image", r, b.Size())
	}
	return si.SubImage(rect), nil
}

// Frames prints each frame under its name. Frames that cannot be cut out
// of img are reported and skipped.
func Frames(img image.Image, frames []atlas.NamedFrame, opts Options) {
	var maxW, maxH uint
	if ts, err := imageprint.GetTermSize(); err == nil {
		maxW, maxH = ts.MaxSize(opts.Mode == imageprint.ModeAuto || opts.Mode == imageprint.ModeGraphics)
	} else {
		glog.V(1).Infof("terminal size unknown: %v", err)
	}

	for _, f := range frames {
		sub, err := Crop(img, f.Frame.Frame)
		if err != nil {
			glog.Errorf("previewing %s: %v", f.Filename, err)
			continue
		}
		fmt.Printf("%s %dx%d\n", f.Filename, f.Frame.Frame.W, f.Frame.Frame.H)
		imageprint.Print(imageprint.Fit(sub, maxW, maxH), opts.Mode, opts.Blanks)
	}
}

// File loads the sheet image and prints frames from it.
func File(sheetPath, imageName string, frames []atlas.NamedFrame, opts Options) error {
	img, err := LoadImage(sheetPath, imageName)
	if err != nil {
		return err
	}
	Frames(img, frames, opts)
	return nil
}
