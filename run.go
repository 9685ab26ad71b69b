package mathsets

import (
	"context"

	"go.uber.org/zap"

	"github.com/ostafen/mathsets/config"
	"github.com/ostafen/mathsets/output"
	"github.com/ostafen/mathsets/source"
)

// Report describes a completed run.
type Report struct {
	Sets   int
	Result output.Result
	Path   string
}

// Run reads the sets named by cfg, computes the intersection, locates the point in affiliation
// mode and writes the result. Nothing is written when the sets do not intersect.
func (a *Analyser) Run(ctx context.Context, cfg *config.Config) (*Report, error) {
	sets, err := source.Read(ctx, cfg.InputFormat(), cfg.Input.Path)
	if err != nil {
		return nil, err
	}
	a.log.Info("math sets loaded",
		zap.String("path", cfg.Input.Path),
		zap.String("format", string(cfg.InputFormat())),
		zap.Int("sets", len(sets)))

	atoms, err := a.ComputeIntersection(sets)
	if err != nil {
		return nil, err
	}

	mode := string(cfg.Mode())
	res := output.NewIntersection(mode, atoms)
	if cfg.Mode() == config.ModeAffiliation {
		aff, err := a.ComputeAffiliation(cfg.Point(), atoms)
		if err != nil {
			return nil, err
		}
		res = output.NewAffiliation(mode, cfg.Point(), atoms, aff)
	}

	path, err := output.NewWriter(a.log).Write(ctx, cfg.OutputFormat(), cfg.Output.Path, res)
	if err != nil {
		return nil, err
	}

	a.log.Info("run completed",
		zap.String("mode", mode),
		zap.Int("sets", len(sets)),
		zap.Int("atoms", len(atoms)),
		zap.String("output", path))
	return &Report{Sets: len(sets), Result: res, Path: path}, nil
}
