package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidDistractorCount      = errors.New("distractor count must be non-negative")
	ErrUnknownSource               = errors.New("unknown record source")
)

// Recognized record source implementations.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config holds application configuration loaded from command line flags,
// config files and environment variables.
type Config struct {
	Env         string `mapstructure:"env"`         // current application environment (local, dev, prod etc)
	DataPath    string `mapstructure:"data_path"`   // path to CSV file with brand/generic pairs
	OutputPath  string `mapstructure:"output_path"` // destination for the generated quiz JSON
	Distractors int    `mapstructure:"distractors"` // wrong options per multiple-choice question
	Seed        int64  `mapstructure:"seed"`        // random seed for reproducible shuffling
	Source      string `mapstructure:"source"`      // record source (csv or postgres)
	DB          DB     `mapstructure:"database"`    // database configuration section
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // connection string loaded from environment
	Table           string        `mapstructure:"table"`             // table holding brand/generic pairs
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from command line flags, an optional config file
// and environment variables. Changed flags win over file and environment
// values; flag defaults apply last.
func Load(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("quizgen", pflag.ContinueOnError)
	flags.String("data", "data/top_200_drugs.csv", "path to CSV of brand/generic pairs")
	flags.String("output", "quizzes.json", "where to write the generated JSON")
	flags.Int("distractors", 3, "number of distractors for multiple-choice questions")
	flags.Int64("seed", 2024, "random seed for reproducible shuffling")
	flags.String("source", SourceCSV, "record source: csv or postgres")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for keys without a flag.
	v.SetDefault("env", "local")
	v.SetDefault("database.table", "drugs")
	v.SetDefault("database.max_connections", 4)
	v.SetDefault("database.max_conn_lifetime", "30s")

	// Bind CLI flags to configuration keys.
	for key, flag := range map[string]string{
		"data_path":   "data",
		"output_path": "output",
		"distractors": "distractors",
		"seed":        "seed",
		"source":      "source",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.DB.URL = v.GetString("database_url")

	if cfg.Distractors < 0 {
		return nil, ErrInvalidDistractorCount
	}

	switch cfg.Source {
	case SourceCSV:
	case SourcePostgres:
		if cfg.DB.URL == "" {
			return nil, ErrMissingEnvironmentVariables
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, cfg.Source)
	}

	return &cfg, nil
}
