// Package imageprint prints images on a terminal.
//
// It is used to preview converted frames. Output always goes to stdout.
package imageprint

import (
	"fmt"
	"image"
	ic "image/color"

	"github.com/gookit/color"
	"github.com/pkg/errors"
)

// Mode selects how pixels reach the terminal.
type Mode int

const (
	// ModeAuto uses terminal graphics when available, then falls back to
	// 24-bit colour blocks.
	ModeAuto Mode = iota
	// ModeGraphics uses kitty, iTerm2 or sixel graphics only.
	ModeGraphics
	ModeTrueColor
	Mode256Color
	ModeNoColor
)

// ParseMode maps a flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "auto":
		return ModeAuto, nil
	case "graphics", "rasterm":
		return ModeGraphics, nil
	case "24bit":
		return ModeTrueColor, nil
	case "256":
		return Mode256Color, nil
	case "none":
		return ModeNoColor, nil
	}
	return ModeAuto, errors.Errorf("unknown preview mode %q (want auto, graphics, 24bit, 256 or none)", s)
}

// Print draws i using mode. With blanks unset, coloured modes draw
// brightness-dependent characters instead of plain blocks.
func Print(i image.Image, mode Mode, blanks bool) {
	switch mode {
	case ModeAuto:
		if !PrintRasTerm(i) {
			Print24bit(i, blanks)
		}
	case ModeGraphics:
		if !PrintRasTerm(i) {
			fmt.Printf("(terminal has no graphics support)\n")
		}
	case ModeTrueColor:
		Print24bit(i, blanks)
	case Mode256Color:
		Print256Color(i, blanks)
	default:
		PrintNoColor(i, false)
	}
}

type dumper interface {
	Printf(s string, arg ...interface{})
}
type fmtDumperT struct{}

func (fmtDumperT) Printf(s string, arg ...interface{}) {
	fmt.Printf(s, arg...)
}

var fmtDumper fmtDumperT

func shade(col ic.Color, escapesTrueColor, blanks, noColor bool) {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		fmt.Printf("\x1b[0m  ")
		return
	}

	var d dumper
	switch {
	case noColor:
		d = &fmtDumper
	case escapesTrueColor:
		fmt.Printf("\x1b[48;2;%d;%d;%dm", uint8(cR>>8), uint8(cG>>8), uint8(cB>>8))
		d = &fmtDumper
	default:
		d = color.RGB(uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), true)
	}

	if blanks {
		d.Printf("  ")
	} else {
		a := ((cR + cG + cB) / 3) >> 8
		switch {
		case a < 32:
			d.Printf("..")
		case a < 64:
			d.Printf("--")
		case a < 128:
			d.Printf("==")
		default:
			d.Printf("##")
		}
	}

	if escapesTrueColor && !noColor {
		fmt.Printf("\x1b[0m")
	}
}

func printRows(i image.Image, escapesTrueColor, blanks, noColor bool) {
	b := i.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			shade(i.At(x, y), escapesTrueColor, blanks, noColor)
		}
		if !noColor {
			fmt.Printf("\x1b[0m")
		}
		fmt.Printf("\n")
	}
}

// Print256Color draws an image using 256color'd ascii art.
func Print256Color(i image.Image, blanks bool) {
	printRows(i, false, blanks, false)
}

// Print24bit draws an image using 24bit color escape sequences by changing background.
func Print24bit(i image.Image, blanks bool) {
	printRows(i, true, blanks, false)
}

// PrintNoColor draws an image without using color escape sequences. Only makes sense with blanks=false, since blanks are invisible without colour.
func PrintNoColor(i image.Image, blanks bool) {
	printRows(i, false, blanks, true)
}
