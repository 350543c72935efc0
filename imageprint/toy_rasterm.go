//go:build go1.13 && !windows
// +build go1.13,!windows

package imageprint

import (
	"fmt"
	"image"
	"os"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
	"github.com/golang/glog"
)

// PrintRasTerm draws an image using the RasTerm library: kitty graphics,
// iTerm2 inline images or sixels, whichever the terminal supports. It
// reports whether anything was drawn.
func PrintRasTerm(i image.Image) bool {
	var err error
	switch {
	case rasterm.IsTermKitty():
		err = rasterm.Settings{}.KittyWriteImage(os.Stdout, i)
	case rasterm.IsTermItermWez():
		err = rasterm.Settings{}.ItermWriteImage(os.Stdout, i)
	default:
		capable, cerr := rasterm.IsSixelCapable()
		if !capable || cerr != nil {
			return false
		}
		palettedImage := image.NewPaletted(i.Bounds(), nil)
		quantizer := gogif.MedianCutQuantizer{NumColor: 64}
		quantizer.Quantize(palettedImage, i.Bounds(), i, i.Bounds().Min)
		err = rasterm.Settings{}.SixelWriteImage(os.Stdout, palettedImage)
	}
	if err != nil {
		glog.Errorf("printing image: %v", err)
		return false
	}
	fmt.Printf("\n")
	return true
}
