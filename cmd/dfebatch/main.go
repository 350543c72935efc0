// Binary dfebatch runs the sheet and animation conversions listed in a YAML
// manifest. See package batch for the manifest format.
//
// Usage:
//
//	dfebatch [flags] manifest.yml
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/dfeatlas/batch"
	"badc0de.net/pkg/dfeatlas/config"
	"badc0de.net/pkg/dfeatlas/convert"
	"badc0de.net/pkg/dfeatlas/report"
)

var (
	jobs  = flag.Int("j", 4, "number of conversions to run at once")
	app   = flag.String("app", "", "meta.app value for manifests that set none; defaults to $"+config.AppEnv+" or "+config.DefaultApp)
	quiet = flag.Bool("quiet", false, "whether to suppress the per-frame progress lines")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] manifest.yml\n\nflags:\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	config.LoadEnv()

	m, err := batch.LoadManifest(flag.Arg(0))
	if err != nil {
		glog.Exit(err)
	}

	opts := batch.RunOptions{App: config.App(*app), Parallelism: *jobs}
	if !*quiet {
		console := report.NewConsole(os.Stdout)
		opts.Reporters = func(j batch.Job) convert.Reporter {
			return console.WithPrefix("[" + filepath.Base(j.Input) + "] ")
		}
	}
	if err := batch.Run(context.Background(), m, opts); err != nil {
		glog.Exit(err)
	}
	glog.Infof("%d jobs done", len(m.Jobs))
}
