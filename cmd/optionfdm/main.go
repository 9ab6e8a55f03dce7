// Command optionfdm prices a European or Asian call on a finite-difference
// grid, compares the result with its reference and writes the comparison.
//
// Usage:
//
//	optionfdm -t vanilla --scheme implicit -s 150 -m 1 -i 0.05 -v 0.01 --smax 350
//	optionfdm -t asian -s 150 -m 1 -i 0.05 -v 0.01 --smax 350 --amax 200
//	optionfdm --compare
//
// With --compare the vanilla section is priced with both schemes on the same
// grid and the error and time of each are logged; nothing is written.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/optionfdm/analytic"
	"github.com/katalvlaran/optionfdm/config"
	"github.com/katalvlaran/optionfdm/fdm"
	"github.com/katalvlaran/optionfdm/market"
	"github.com/katalvlaran/optionfdm/report"
	"github.com/katalvlaran/optionfdm/surface"
)

// errCompareKind is returned when --compare is combined with a non-vanilla type.
var errCompareKind = errors.New("optionfdm: --compare prices vanilla contracts only")

const flagCompare = "compare"

func newFlagSet(handling pflag.ErrorHandling) *pflag.FlagSet {
	fs := pflag.NewFlagSet("optionfdm", handling)
	config.RegisterFlags(fs)
	fs.Bool(flagCompare, false, "price the vanilla section with both schemes and compare")

	return fs
}

func main() {
	fs := newFlagSet(pflag.ExitOnError)
	_ = fs.Parse(os.Args[1:])

	cfg, compare, err := load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if compare {
		err = runCompare(cfg, logger)
	} else {
		err = run(cfg, logger)
	}
	if err != nil {
		logger.WithError(err).Error("optionfdm failed")
		os.Exit(1)
	}
}

// load reads the configuration for parsed flags. With --compare the type is
// forced to vanilla before the per-section flags are bound.
func load(fs *pflag.FlagSet) (*config.Config, bool, error) {
	compare, _ := fs.GetBool(flagCompare)
	if compare {
		if f := fs.Lookup(config.FlagType); f.Changed {
			kind, err := market.ParseKind(f.Value.String())
			if err != nil {
				return nil, false, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
			}
			if kind != market.Vanilla {
				return nil, false, fmt.Errorf("%w: got --type %s", errCompareKind, kind)
			}
		}
		if err := fs.Set(config.FlagType, market.Vanilla.String()); err != nil {
			return nil, false, err
		}
	}
	cfg, err := config.Load(fs)
	if err != nil {
		return nil, false, err
	}

	return cfg, compare, nil
}

// run prices the configured contract, writes the table and logs the summary.
func run(cfg *config.Config, logger *logrus.Logger) error {
	r, err := cfg.Build(fdm.WithLogger(logger))
	if err != nil {
		return err
	}
	log := logger.WithFields(logrus.Fields{"type": r.Kind, "scheme": r.Scheme})

	start := time.Now()
	s, err := r.Engine.ComputePrices(r.Market, r.Contract, r.Grid)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	table, summary, err := compareWithReference(r, s, cfg.Output.Points)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	path, err := report.Write(cfg.Output.ResultsPath, table, format, cfg.Output.Precision)
	if err != nil {
		return err
	}

	log.WithFields(summary.Fields()).Info("compared with reference")
	log.WithFields(logrus.Fields{"path": path, "rows": len(table.Rows)}).Info("results written")
	log.WithField("elapsed", elapsed).Info("executing time")

	return nil
}

// compareWithReference builds the output table and error summary for a surface.
func compareWithReference(r *config.Run, s surface.Surface, points int) (*report.Table, report.Summary, error) {
	switch v := s.(type) {
	case *surface.Vanilla:
		bs, err := analytic.NewBlackScholes(r.Market, r.Contract)
		if err != nil {
			return nil, report.Summary{}, err
		}
		table, err := report.VanillaTable(v, bs, points)
		if err != nil {
			return nil, report.Summary{}, err
		}
		summary, err := report.VanillaSummary(v, bs)

		return table, summary, err
	case *surface.Asian:
		averages, _ := r.Grid.AveragePrice()
		ref, err := analytic.ZeroVolatilityAsian(r.Grid.AssetPrice().Nodes(), averages.Nodes(), r.Market, r.Contract)
		if err != nil {
			return nil, report.Summary{}, err
		}
		table, err := report.AsianTable(v, ref, points)
		if err != nil {
			return nil, report.Summary{}, err
		}
		summary, err := report.AsianSummary(v, ref)

		return table, summary, err
	default:
		return nil, report.Summary{}, fmt.Errorf("%w: surface %T", fdm.ErrUnsupportedCombination, s)
	}
}

// runCompare prices the vanilla section with each scheme in turn.
func runCompare(cfg *config.Config, logger *logrus.Logger) error {
	for _, scheme := range []fdm.Scheme{fdm.Explicit, fdm.Implicit} {
		r, err := cfg.BuildScheme(scheme, fdm.WithLogger(logger))
		if err != nil {
			return err
		}
		start := time.Now()
		s, err := r.Engine.ComputePrices(r.Market, r.Contract, r.Grid)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		_, summary, err := compareWithReference(r, s, cfg.Output.Points)
		if err != nil {
			return err
		}
		logger.WithFields(summary.Fields()).
			WithFields(logrus.Fields{"scheme": scheme, "elapsed": elapsed}).
			Info("scheme compared")
	}

	return nil
}
