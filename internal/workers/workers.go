// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-presence-keeper/internal/app"
	"github.com/MKhiriev/go-presence-keeper/internal/logger"
	"golang.org/x/sync/errgroup"
)

// Workers runs a set of workers concurrently. A worker that returns an error
// or panics is reported as an unhandled rejection at warning level; it never
// stops the other workers.
type Workers struct {
	workers []Worker

	logger *logger.Logger
}

// NewWorkers returns a Workers aggregate over workers.
func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Add appends a worker. It must not be called concurrently with Run.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Run starts every worker on its own goroutine and blocks until all of them
// returned.
func (w *Workers) Run(ctx context.Context) {
	var g errgroup.Group
	for _, worker := range w.workers {
		g.Go(func() error {
			w.guard(ctx, worker)
			return nil
		})
	}
	_ = g.Wait()
}

func (w *Workers) guard(ctx context.Context, worker Worker) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Warn().Err(fmt.Errorf("panic: %v", r)).Msg(app.MsgUnhandledRejection)
		}
	}()

	if err := worker.Run(ctx); err != nil {
		w.logger.Warn().Err(err).Msg(app.MsgUnhandledRejection)
	}
}
