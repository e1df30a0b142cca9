package contract

import (
	"fmt"
	"math"
	"strings"

	"github.com/pathfinder-ke/pathfinder/schema"
)

// Default values for configuration.
const (
	DefaultTopN       = 5
	MaxTopN           = 50
	DefaultPrecision  = 3
	DefaultSampleJobs = 3
	DefaultListenAddr = ":8390"
)

// Config holds the runtime configuration for a recommendation pass.
// This struct remains the "final, validated" config.
type Config struct {
	TopN       int
	Alpha      float64
	Beta       float64
	Preset     schema.WeightPreset
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool
	Detail     bool
	Explain    bool

	SampleJobs int

	// Reference data paths. Empty values fall back to the embedded defaults.
	DemandPath       string
	CatalogPath      string
	RequirementsPath string
	JobsPath         string
	KeywordsPath     string
	TranscriptPath   string

	RunBackend   schema.DatabaseBackend
	RunDBConnect string // Please use env var as this is plaintext

	ListenAddr string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	TopN       int     `mapstructure:"top-n"`
	Alpha      float64 `mapstructure:"alpha"`
	Beta       float64 `mapstructure:"beta"`
	Preset     string  `mapstructure:"preset"`
	Precision  int     `mapstructure:"precision"`
	Output     string  `mapstructure:"output"`
	OutputFile string  `mapstructure:"output-file"`
	Width      int     `mapstructure:"width"`
	Color      string  `mapstructure:"color"`
	Detail     bool    `mapstructure:"detail"`
	Explain    bool    `mapstructure:"explain"`

	SampleJobs int `mapstructure:"sample-jobs"`

	DemandPath       string `mapstructure:"demand-file"`
	CatalogPath      string `mapstructure:"catalog-file"`
	RequirementsPath string `mapstructure:"requirements-file"`
	JobsPath         string `mapstructure:"jobs-file"`
	KeywordsPath     string `mapstructure:"keywords-file"`
	TranscriptPath   string `mapstructure:"transcript"`

	RunBackend   string `mapstructure:"run-backend"`
	RunDBConnect string `mapstructure:"run-db-connect"`

	ListenAddr string `mapstructure:"listen"`
}

// ProcessAndValidate converts raw input into a validated Config.
// Weight presets resolve to their alpha/beta pairs unless the user selected
// the custom preset, in which case the explicit weights are validated instead.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- Ranking limits ---
	cfg.TopN = input.TopN
	if cfg.TopN <= 0 {
		cfg.TopN = DefaultTopN
	}
	if cfg.TopN > MaxTopN {
		cfg.TopN = MaxTopN
	}

	// --- Weighting policy ---
	preset := schema.WeightPreset(input.Preset)
	if _, ok := schema.ValidWeightPresets[preset]; !ok {
		return fmt.Errorf("invalid preset %q. Must be balanced, passion-first, market-priority, or custom", input.Preset)
	}
	cfg.Preset = preset
	if preset == schema.CustomPreset {
		if input.Alpha < 0 || input.Alpha > 1 || input.Beta < 0 || input.Beta > 1 {
			return fmt.Errorf("weights must lie in [0,1]: alpha=%.3f beta=%.3f", input.Alpha, input.Beta)
		}
		if math.Abs(input.Alpha+input.Beta-1.0) > 0.01 {
			return fmt.Errorf("alpha and beta must sum to 1, got %.3f", input.Alpha+input.Beta)
		}
		cfg.Alpha = input.Alpha
		cfg.Beta = input.Beta
	} else {
		w := schema.GetPresetWeights(preset)
		cfg.Alpha = w.Alpha
		cfg.Beta = w.Beta
	}

	// --- Output ---
	output := schema.OutputMode(input.Output)
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q. Must be text, csv, or json", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile
	cfg.Precision = input.Precision
	if cfg.Precision < 0 {
		cfg.Precision = DefaultPrecision
	}
	cfg.Width = input.Width
	cfg.UseColors = input.Color != "no"
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain

	cfg.SampleJobs = input.SampleJobs
	if cfg.SampleJobs < 0 {
		cfg.SampleJobs = 0
	}

	// --- Reference data ---
	cfg.DemandPath = input.DemandPath
	cfg.CatalogPath = input.CatalogPath
	cfg.RequirementsPath = input.RequirementsPath
	cfg.JobsPath = input.JobsPath
	cfg.KeywordsPath = input.KeywordsPath
	cfg.TranscriptPath = input.TranscriptPath

	// --- Run persistence ---
	backend := schema.DatabaseBackend(input.RunBackend)
	if _, ok := schema.ValidRunBackends[backend]; !ok {
		return fmt.Errorf("invalid run backend %q. Must be sqlite, mysql, postgresql, or none", input.RunBackend)
	}
	cfg.RunBackend = backend
	cfg.RunDBConnect = input.RunDBConnect

	cfg.ListenAddr = input.ListenAddr
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}

	return ValidateDatabaseConnectionString(cfg.RunBackend, cfg.RunDBConnect)
}

// ValidateDatabaseConnectionString performs basic sanity checks on a backend
// connection string before any driver sees it. SQLite accepts an empty string
// (default file path) and none needs no connection at all.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("run-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("run-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
	}
	return nil
}
