package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/optionfdm/fdm"
	"github.com/katalvlaran/optionfdm/grid"
	"github.com/katalvlaran/optionfdm/market"
	"github.com/katalvlaran/optionfdm/report"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "OPTIONFDM"

// Section describes one option kind: contract, market, grid and scheme.
// The average_* keys and Workers are read for Asian runs only.
type Section struct {
	Scheme              string  `mapstructure:"scheme"`
	Strike              float64 `mapstructure:"strike"`
	Maturity            float64 `mapstructure:"maturity"`
	InterestRate        float64 `mapstructure:"interest_rate"`
	Volatility          float64 `mapstructure:"volatility"`
	TimeNodes           int     `mapstructure:"time_nodes"`
	AssetPriceMin       float64 `mapstructure:"asset_price_min"`
	AssetPriceMax       float64 `mapstructure:"asset_price_max"`
	AssetPriceNodes     int     `mapstructure:"asset_price_nodes"`
	AveragePriceMin     float64 `mapstructure:"average_price_min"`
	AveragePriceMax     float64 `mapstructure:"average_price_max"`
	AveragePriceNodes   int     `mapstructure:"average_price_nodes"`
	AverageDifferencing string  `mapstructure:"average_differencing"`
	Workers             int     `mapstructure:"workers"`
}

// Output controls the exported comparison table.
type Output struct {
	ResultsPath string `mapstructure:"results_path"`
	Format      string `mapstructure:"format"`
	Points      int    `mapstructure:"points"`
	Precision   int32  `mapstructure:"precision"`
}

// Log controls the logger.
type Log struct {
	Level string `mapstructure:"level"`
}

// Config is the complete, validated configuration.
type Config struct {
	Type    string  `mapstructure:"type"`
	Vanilla Section `mapstructure:"vanilla"`
	Asian   Section `mapstructure:"asian"`
	Output  Output  `mapstructure:"output"`
	Log     Log     `mapstructure:"log"`
}

// setDefaults registers every key, which also lets AutomaticEnv see them
// during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("type", "vanilla")

	for _, s := range []string{"vanilla", "asian"} {
		v.SetDefault(s+".scheme", "explicit")
		v.SetDefault(s+".strike", 100.0)
		v.SetDefault(s+".maturity", 1.0)
		v.SetDefault(s+".interest_rate", 0.05)
		v.SetDefault(s+".volatility", 0.2)
		v.SetDefault(s+".asset_price_min", 0.0)
		v.SetDefault(s+".asset_price_max", 200.0)
		v.SetDefault(s+".asset_price_nodes", 41)
		v.SetDefault(s+".average_price_min", 0.0)
		v.SetDefault(s+".average_price_max", 200.0)
		v.SetDefault(s+".average_price_nodes", 41)
		v.SetDefault(s+".average_differencing", "upwind")
		v.SetDefault(s+".workers", 1)
	}
	v.SetDefault("vanilla.time_nodes", 100)
	v.SetDefault("asian.time_nodes", 120)

	v.SetDefault("output.results_path", "results")
	v.SetDefault("output.format", string(report.XLSX))
	v.SetDefault("output.points", 100)
	v.SetDefault("output.precision", report.DefaultPrecision)

	v.SetDefault("log.level", "info")
}

// Load reads the configuration for flags already parsed into fs.
// fs must have been set up with RegisterFlags.
//
// A missing .env file is ignored. A missing config file is ignored only when
// --config was not given.
func Load(fs *pflag.FlagSet) (*Config, error) {
	envFile, _ := fs.GetString(FlagEnvFile)
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readFile(v, fs); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("type", fs.Lookup(FlagType)); err != nil {
		return nil, err
	}
	kind, err := market.ParseKind(v.GetString("type"))
	if err != nil {
		return nil, fmt.Errorf("%w: type: %w", ErrInvalidConfig, err)
	}
	if err = bindFlags(v, fs, kind.String()); err != nil {
		return nil, err
	}

	var cfg Config
	if err = v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg.Type = kind.String()
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readFile(v *viper.Viper, fs *pflag.FlagSet) error {
	path, _ := fs.GetString(FlagConfig)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}

		return nil
	}

	v.SetConfigName("optionfdm")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("configs")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("config: %w", err)
		}
	}

	return nil
}

// Validate checks the keys that are not validated by grid or market.
func (c *Config) Validate() error {
	if _, err := market.ParseKind(c.Type); err != nil {
		return fmt.Errorf("%w: type: %w", ErrInvalidConfig, err)
	}
	for name, s := range map[string]Section{"vanilla": c.Vanilla, "asian": c.Asian} {
		if _, err := fdm.ParseScheme(s.Scheme); err != nil {
			return fmt.Errorf("%w: %s.scheme: %w", ErrInvalidConfig, name, err)
		}
		if _, err := fdm.ParseAverageDifferencing(s.AverageDifferencing); err != nil {
			return fmt.Errorf("%w: %s.average_differencing: %w", ErrInvalidConfig, name, err)
		}
		if s.Workers < 1 {
			return fmt.Errorf("%w: %s.workers must be >= 1, got %d", ErrInvalidConfig, name, s.Workers)
		}
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: output.format: %w", ErrInvalidConfig, err)
	}
	if c.Output.Points < 2 {
		return fmt.Errorf("%w: output.points must be >= 2, got %d", ErrInvalidConfig, c.Output.Points)
	}
	if c.Output.Precision < 0 || c.Output.Precision > 15 {
		return fmt.Errorf("%w: output.precision must be in [0, 15], got %d", ErrInvalidConfig, c.Output.Precision)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Kind returns the option kind selected by Type.
func (c *Config) Kind() market.Kind {
	k, _ := market.ParseKind(c.Type)
	return k
}

// Section returns the section for kind.
func (c *Config) Section(kind market.Kind) Section {
	if kind == market.Asian {
		return c.Asian
	}

	return c.Vanilla
}

// Run is everything needed to price one configured contract.
type Run struct {
	Kind     market.Kind
	Scheme   fdm.Scheme
	Market   market.Market
	Contract market.Contract
	Grid     *grid.Grid
	Engine   fdm.Engine
}

// Build validates the market, contract and grid of the selected section and
// selects its engine. opts are passed to the engine after the section's own
// worker and differencing settings.
func (c *Config) Build(opts ...fdm.Option) (*Run, error) {
	return c.BuildScheme(-1, opts...)
}

// BuildScheme is Build with the section's scheme replaced by scheme.
// A negative scheme keeps the configured one.
func (c *Config) BuildScheme(scheme fdm.Scheme, opts ...fdm.Option) (*Run, error) {
	kind := c.Kind()
	s := c.Section(kind)

	if scheme < 0 {
		var err error
		if scheme, err = fdm.ParseScheme(s.Scheme); err != nil {
			return nil, fmt.Errorf("%w: %s.scheme: %w", ErrInvalidConfig, kind, err)
		}
	}
	m, err := market.New(s.InterestRate, s.Volatility)
	if err != nil {
		return nil, err
	}
	contract, err := market.NewContract(kind, s.Strike, s.Maturity)
	if err != nil {
		return nil, err
	}

	specs := []grid.AxisSpec{
		{Name: grid.Time, Min: 0, Max: s.Maturity, Nodes: s.TimeNodes},
		{Name: grid.AssetPrice, Min: s.AssetPriceMin, Max: s.AssetPriceMax, Nodes: s.AssetPriceNodes},
	}
	if kind == market.Asian {
		specs = append(specs, grid.AxisSpec{
			Name: grid.AveragePrice, Min: s.AveragePriceMin, Max: s.AveragePriceMax, Nodes: s.AveragePriceNodes,
		})
	}
	g, err := grid.New(specs...)
	if err != nil {
		return nil, err
	}

	diff, err := fdm.ParseAverageDifferencing(s.AverageDifferencing)
	if err != nil {
		return nil, fmt.Errorf("%w: %s.average_differencing: %w", ErrInvalidConfig, kind, err)
	}
	if s.Workers < 1 {
		return nil, fmt.Errorf("%w: %s.workers must be >= 1, got %d", ErrInvalidConfig, kind, s.Workers)
	}
	all := append([]fdm.Option{fdm.WithWorkers(s.Workers), fdm.WithAverageDifferencing(diff)}, opts...)
	eng, err := fdm.New(kind, scheme, all...)
	if err != nil {
		return nil, err
	}

	return &Run{Kind: kind, Scheme: scheme, Market: m, Contract: contract, Grid: g, Engine: eng}, nil
}

// NewLogger returns a text logger with full timestamps at the configured level.
func (c *Config) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(level)

	return logger, nil
}
