package mathsets

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config contains the analyser configuration parameters.
type Config struct {
	Logger           *zap.Logger
	CoalesceAdjacent bool
}

func defaultConfig() *Config {
	return &Config{
		Logger:           zap.NewNop(),
		CoalesceAdjacent: false,
	}
}

func (c *Config) applyOptions(opts []Option) (*Config, error) {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Option is a function that takes a config struct and modifies it
type Option func(c *Config) error

// WithLogger sets the logger used to trace intersection steps and runs.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			return errors.New("nil logger")
		}
		c.Logger = logger
		return nil
	}
}

// CoalesceAdjacent allows to enable/disable merging of result intervals sharing a bound,
// e.g. (0, 5) and (5, 10) into (0, 10). It only applies when two or more sets are intersected.
func CoalesceAdjacent(enable bool) Option {
	return func(c *Config) error {
		c.CoalesceAdjacent = enable
		return nil
	}
}
