package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned. If one worker stops before ctx is cancelled, the others are
// cancelled too and Run returns ErrWorkerStopped. Cancellation of ctx itself
// is a normal shutdown and yields nil.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for i, worker := range w.workers {
		g.Go(func() error {
			worker.Run(gctx)
			if gctx.Err() == nil {
				return fmt.Errorf("%w: worker %d (%T)", ErrWorkerStopped, i, worker)
			}
			return nil
		})
	}

	return g.Wait()
}
