//go:build !go1.13 || windows
// +build !go1.13 windows

package imageprint

import (
	"image"
)

// PrintRasTerm is unavailable on this platform and never draws anything.
func PrintRasTerm(i image.Image) bool {
	return false
}
