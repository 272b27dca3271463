package fit

import (
	"fmt"
	"log/slog"

	"github.com/survlab/survfit/internal/lm"
	"github.com/survlab/survfit/internal/options"
)

// config holds the fitting configuration assembled from functional options.
type config struct {
	initial       Params
	epsilon       float64
	maxIterations int
	logger        *slog.Logger
}

func newConfig(opts ...Option) (config, error) {
	cfg := config{
		initial:       DefaultInitialGuess,
		epsilon:       lm.DefaultConfig().Epsilon,
		maxIterations: lm.DefaultConfig().MaxIterations,
		logger:        slog.Default(),
	}
	if err := options.Apply(&cfg, opts...); err != nil {
		return config{}, err
	}

	return cfg, nil
}

// Option is a functional option for the fitting pipeline.
type Option = options.Option[*config]

// WithInitialGuess overrides the shared initial parameter pair.
func WithInitialGuess(p Params) Option {
	return options.NoError(func(cfg *config) {
		cfg.initial = p
	})
}

// WithEpsilon sets the solver's relative convergence threshold.
func WithEpsilon(eps float64) Option {
	return options.New(func(cfg *config) error {
		if eps <= 0 {
			return fmt.Errorf("epsilon must be positive, got %g", eps)
		}
		cfg.epsilon = eps

		return nil
	})
}

// WithMaxIterations caps the solver's iteration count.
func WithMaxIterations(n int) Option {
	return options.New(func(cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("max iterations must be positive, got %d", n)
		}
		cfg.maxIterations = n

		return nil
	})
}

// WithLogger sets the logger used by AnalyzeAll to report per-category
// failures and per-model diagnostics. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return options.New(func(cfg *config) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		cfg.logger = logger

		return nil
	})
}
