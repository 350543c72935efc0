package batch

import (
	"context"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"badc0de.net/pkg/dfeatlas/convert"
)

// Reporters hands out a progress reporter per job. It may return nil.
type Reporters func(Job) convert.Reporter

type RunOptions struct {
	App         string // used when the manifest sets none
	Parallelism int    // at most this many jobs at once; <= 0 means 1
	Reporters   Reporters
}

// Run converts every job of m. Each job is an independent single-pass
// conversion. The first failure stops jobs that have not started yet and is
// returned; jobs already finished keep their output.
func Run(ctx context.Context, m *Manifest, opts RunOptions) error {
	if err := m.Validate(); err != nil {
		return err
	}
	app := opts.App
	if m.App != "" {
		app = m.App
	}
	n := opts.Parallelism
	if n <= 0 {
		n = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(n)
	for _, job := range m.Jobs {
		job := job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				glog.V(1).Infof("skipping %v: %v", job, err)
				return err
			}
			copts := convert.Options{App: app}
			if opts.Reporters != nil {
				copts.Reporter = opts.Reporters(job)
			}
			if err := runJob(job, copts); err != nil {
				return errors.Wrapf(err, "%v", job)
			}
			glog.Infof("done: %v", job)
			return nil
		})
	}
	return g.Wait()
}

func runJob(job Job, opts convert.Options) error {
	var err error
	switch job.Kind {
	case KindSheet:
		_, err = convert.SheetFile(job.Input, job.Output, job.Hash, opts)
	case KindAnim:
		_, err = convert.AnimFile(job.Input, job.Output, opts)
	default:
		err = errors.Errorf("unknown kind %q", job.Kind)
	}
	return err
}
