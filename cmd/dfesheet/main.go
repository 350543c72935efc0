// Binary dfesheet converts a darkFunction Editor sprite sheet definition
// into sprite-atlas JSON.
//
// Usage:
//
//	dfesheet [flags] sprite output
//
// Frames are listed in the order the sheet's directory tree is walked and
// named "{dir}_{sprite}". With -hash they are keyed by that name instead.
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
	hash        = flag.Bool("hash", false, "whether to key frames by name instead of listing them")
	app         = flag.String("app", "", "meta.app value; defaults to $"+config.AppEnv+" or "+config.DefaultApp)
	showPreview = flag.Bool("preview", false, "whether to print every frame on the terminal after converting")
	previewMode = flag.String("preview_mode", "auto", "how to print previews: auto, graphics, 24bit, 256 or none")
	blanks      = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art in previews")
	quiet       = flag.Bool("quiet", false, "whether to suppress the per-frame progress lines")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] sprite output\n\n", os.Args[0])
	fmt.Fprintf(flag.CommandLine.Output(), "  sprite\tthe darkFunction Editor .sprites file\n  output\tthe json file to save to\n\nflags:\n")
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
	config.LoadEnv()

	opts := convert.Options{App: config.App(*app)}
	if !*quiet {
		opts.Reporter = report.NewConsole(os.Stdout)
	}
	res, err := convert.SheetFile(flag.Arg(0), flag.Arg(1), *hash, opts)
	if err != nil {
		glog.Exitf("converting %s: %v", flag.Arg(0), err)
	}

	if *showPreview {
		if err := preview.File(res.SheetPath, res.Sheet.Name, res.Frames, preview.Options{Mode: mode, Blanks: *blanks}); err != nil {
			glog.Errorf("preview: %v", err)
		}
	}
}
