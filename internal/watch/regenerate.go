package watch

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/conduit-lang/enumgen/internal/generate"
)

// Reporter receives the outcome of every regeneration
type Reporter func(summary *generate.Summary, err error)

// Regenerator reruns generation for watched changes
type Regenerator struct {
	runner *generate.Runner
	logger *zap.Logger
	report Reporter
}

// NewRegenerator creates a regenerator. report may be nil.
func NewRegenerator(runner *generate.Runner, logger *zap.Logger, report Reporter) *Regenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if report == nil {
		report = func(*generate.Summary, error) {}
	}
	return &Regenerator{runner: runner, logger: logger, report: report}
}

// Apply handles one batch: outputs of removed declarations are deleted,
// then the tree is regenerated. Unchanged files come from the result cache.
func (r *Regenerator) Apply(ctx context.Context, change Change) (*generate.Summary, error) {
	for _, path := range change.Removed {
		if _, err := r.runner.Remove(path); err != nil {
			r.logger.Warn("failed to remove output", zap.String("source", path), zap.Error(err))
		}
	}

	r.logger.Debug("regenerating",
		zap.Strings("modified", change.Modified), zap.Strings("removed", change.Removed))
	return r.runner.Run(ctx)
}

// Run generates once, then regenerates on every batch from fw until ctx
// is cancelled
func (r *Regenerator) Run(ctx context.Context, fw *FileWatcher) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	watchErr := make(chan error, 1)
	go func() {
		watchErr <- fw.Run(ctx)
	}()

	r.report(r.runner.Run(ctx))

	for {
		select {
		case change := <-fw.Changes():
			summary, err := r.Apply(ctx, change)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			r.report(summary, err)

		case err := <-watchErr:
			return err

		case <-ctx.Done():
			return <-watchErr
		}
	}
}
