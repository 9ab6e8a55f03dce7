package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag names registered by RegisterFlags.
const (
	FlagConfig     = "config"
	FlagEnvFile    = "env-file"
	FlagType       = "type"
	FlagScheme     = "scheme"
	FlagStrike     = "strike"
	FlagMaturity   = "maturity"
	FlagInterest   = "interest"
	FlagVolatility = "volatility"
	FlagSMax       = "smax"
	FlagAMax       = "amax"
	FlagResults    = "results"
	FlagFormat     = "format"
	FlagLogLevel   = "log-level"
)

// RegisterFlags adds the configuration flags to fs. Flag defaults are never
// used as values: an unset flag leaves the file, environment or built-in
// default in place.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "path to a TOML config file (default: optionfdm.toml in . or ./configs)")
	fs.String(FlagEnvFile, ".env", "dotenv file loaded into the environment if present")
	fs.StringP(FlagType, "t", "vanilla", "option type: vanilla or asian")
	fs.String(FlagScheme, "explicit", "finite-difference scheme: explicit or implicit")
	fs.Float64P(FlagStrike, "s", 0, "strike price")
	fs.Float64P(FlagMaturity, "m", 0, "maturity in years")
	fs.Float64P(FlagInterest, "i", 0, "risk-free interest rate")
	fs.Float64P(FlagVolatility, "v", 0, "volatility")
	fs.Float64(FlagSMax, 0, "upper bound of the asset price axis")
	fs.Float64(FlagAMax, 0, "upper bound of the average price axis (asian only)")
	fs.String(FlagResults, "", "directory the results table is written to")
	fs.String(FlagFormat, "", "results format: xlsx or csv")
	fs.String(FlagLogLevel, "", "log level: debug, info, warn, error")
}

// bindFlags binds the per-section flags to the section of the selected kind.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, section string) error {
	bindings := map[string]string{
		FlagScheme:     section + ".scheme",
		FlagStrike:     section + ".strike",
		FlagMaturity:   section + ".maturity",
		FlagInterest:   section + ".interest_rate",
		FlagVolatility: section + ".volatility",
		FlagSMax:       section + ".asset_price_max",
		FlagAMax:       "asian.average_price_max",
		FlagResults:    "output.results_path",
		FlagFormat:     "output.format",
		FlagLogLevel:   "log.level",
	}
	for name, key := range bindings {
		f := fs.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind --%s: %w", name, err)
		}
	}

	return nil
}
