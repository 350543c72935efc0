// Binary dfeanim converts a darkFunction Editor animation set, together with
// the sprite sheet it refers to, into sprite-atlas JSON.
//
// Usage:
//
//	dfeanim [flags] anim output
//
// Every cell becomes a frame named "{anim}{index}", its spriteSourceSize
// grown by the cell's offset.
package main

import (
	"flag"
	"fmt"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/dfeatlas/config"
	"badc0de.net/pkg/dfeatlas/convert"
	"badc0de.net/pkg/dfeatlas/imageprint"
	"badc0de.net/pkg/dfeatlas/preview"
	"badc0de.net/pkg/dfeatlas/report"
)

var (
	framerate   int
	app         = flag.String("app", "", "meta.app value; defaults to $"+config.AppEnv+" or "+config.DefaultApp)
	showPreview = flag.Bool("preview", false, "whether to print every animation frame on the terminal after converting")
	previewMode = flag.String("preview_mode", "auto", "how to print previews: auto, graphics, 24bit, 256 or none")
	blanks      = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art in previews")
	quiet       = flag.Bool("quiet", false, "whether to suppress the per-frame progress lines")
)

func init() {
	// Accepted for compatibility; the atlas format has nowhere to put it.
	flag.IntVar(&framerate, "framerate", 20, "animation frame rate (unused)")
	flag.IntVar(&framerate, "f", 20, "shorthand for -framerate")
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] anim output\n\n", os.Args[0])
	fmt.Fprintf(flag.CommandLine.Output(), "  anim\tthe darkFunction Editor .anim file\n  output\tthe json file to save to\n\nflags:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	mode, err := imageprint.ParseMode(*previewMode)
	if err != nil {
		glog.Exit(err)
	}
	glog.V(1).Infof("framerate %d (not written to the output)", framerate)
	config.LoadEnv()

	opts := convert.Options{App: config.App(*app)}
	if !*quiet {
		opts.Reporter = report.NewConsole(os.Stdout)
	}
	res, err := convert.AnimFile(flag.Arg(0), flag.Arg(1), opts)
	if err != nil {
		glog.Exitf("converting %s: %v", flag.Arg(0), err)
	}

	if *showPreview {
		if err := preview.File(res.SheetPath, res.Sheet.Name, res.Frames, preview.Options{Mode: mode, Blanks: *blanks}); err != nil {
			glog.Errorf("preview: %v", err)
		}
	}
}
