package imageprint

import (
	"image"

	"github.com/nfnt/resize"
)

type TermSize struct {
	WSRow, WSCol       uint
	WSXPixel, WSYPixel uint
}

// MaxSize returns the largest image that fits in half the terminal. Pixel
// dimensions are used when graphics output is possible and the terminal
// reports them; otherwise every pixel is assumed to take two columns and
// one row.
func (ts TermSize) MaxSize(graphics bool) (w, h uint) {
	if graphics && ts.WSXPixel != 0 && ts.WSYPixel != 0 {
		return ts.WSXPixel / 2, ts.WSYPixel / 2
	}
	return ts.WSCol / 4, ts.WSRow / 2
}

// Fit shrinks i to at most maxW x maxH pixels, keeping its aspect ratio.
// Images that already fit, and zero limits, leave i untouched.
func Fit(i image.Image, maxW, maxH uint) image.Image {
	if maxW == 0 || maxH == 0 {
		return i
	}
	sz := i.Bounds().Size()
	if uint(sz.X) <= maxW && uint(sz.Y) <= maxH {
		return i
	}
	return resize.Thumbnail(maxW, maxH, i, resize.Lanczos3)
}
