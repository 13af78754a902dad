package stile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fernhollow/stile/pkg/build"
	"github.com/fernhollow/stile/pkg/drift"
	"github.com/fernhollow/stile/pkg/site"
	"github.com/fernhollow/stile/pkg/validate"
	"github.com/fernhollow/stile/pkg/watch"
)

// Version exposes the version of the library.
const Version = "0.4.0"

// options holds the internal configuration for a pipeline run.
type options struct {
	logger *slog.Logger
	config *site.Config
}

// Option defines a functional option for configuring a run.
type Option func(*options)

// WithLogger sets the logger for the run.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithConfig injects a site config, skipping the stile.yaml lookup.
func WithConfig(cfg site.Config) Option {
	return func(o *options) {
		o.config = &cfg
	}
}

func setup(root string, opts ...Option) (site.Layout, *slog.Logger, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var layout site.Layout
	if o.config != nil {
		layout = site.NewLayout(root, *o.config)
	} else {
		var err error
		layout, err = site.Load(root)
		if err != nil {
			return site.Layout{}, nil, err
		}
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	// Every run gets an id so interleaved logs stay attributable.
	logger = logger.With("run_id", uuid.NewString())

	return layout, logger, nil
}

// Build compiles all content sections under root and writes the canonical
// documents.
func Build(root string, opts ...Option) (build.Summary, error) {
	layout, logger, err := setup(root, opts...)
	if err != nil {
		return build.Summary{}, err
	}
	return build.New(layout, logger).Run()
}

// Validate checks all content sections under root without writing anything.
func Validate(root string, opts ...Option) (*validate.Report, error) {
	layout, logger, err := setup(root, opts...)
	if err != nil {
		return nil, err
	}
	return validate.New(layout, logger).Run()
}

// CheckDrift rebuilds the generated documents in memory and returns the
// relative paths of committed documents that no longer match their sources.
func CheckDrift(root string, opts ...Option) ([]string, error) {
	layout, logger, err := setup(root, opts...)
	if err != nil {
		return nil, err
	}
	return drift.New(layout, logger).Run()
}

// Watch rebuilds on every source change until ctx is cancelled.
func Watch(ctx context.Context, root string, opts ...Option) error {
	layout, logger, err := setup(root, opts...)
	if err != nil {
		return err
	}
	return watch.New(layout, logger).Run(ctx)
}
