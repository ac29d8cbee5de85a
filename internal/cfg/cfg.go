// Package cfg holds the app-specific configuration for the sift CLI and
// the dashboard server.
package cfg

import (
	"errors"
	"flag"
	"fmt"

	"github.com/linnemanlabs/sift/internal/alert"
	"github.com/linnemanlabs/sift/internal/score"
)

// Config adds triage-specific configuration fields shared by both binaries.
// Scoring knobs default to the built-in weight tables and are individually
// overridable.
type Config struct {
	InputPath             string
	HTMLOut               string
	TopN                  int
	APIPort               int
	DrainSeconds          int
	ShutdownBudgetSeconds int

	WeightSeverityLow    float64
	WeightSeverityMedium float64
	WeightSeverityHigh   float64
	WeightAssetStandard  float64
	WeightAssetImportant float64
	WeightAssetCritical  float64
	FrequencyFactor      float64
	RiskThreshold        float64
}

// RegisterFlags binds Config fields to the given FlagSet with defaults inline
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.InputPath, "input", "", "path to the alert batch file (.json or .csv)")
	fs.StringVar(&c.HTMLOut, "html-out", "triage_report.html", "path for the standalone HTML report")
	fs.IntVar(&c.TopN, "top", 10, "number of top alerts in the CLI summary (0..1000)")
	fs.IntVar(&c.APIPort, "http-port", 8080, "dashboard listen TCP port (1..65535)")
	fs.IntVar(&c.DrainSeconds, "drain-seconds", 60, "seconds to wait for in-flight requests to drain before shutdown (1..300)")
	fs.IntVar(&c.ShutdownBudgetSeconds, "shutdown-budget-seconds", 90, "total seconds for component shutdown after drain (1..300)")

	fs.Float64Var(&c.WeightSeverityLow, "weight-severity-low", score.DefaultSeverityWeights[alert.SeverityLow], "scoring weight for low severity (>=0)")
	fs.Float64Var(&c.WeightSeverityMedium, "weight-severity-medium", score.DefaultSeverityWeights[alert.SeverityMedium], "scoring weight for medium severity (>=0)")
	fs.Float64Var(&c.WeightSeverityHigh, "weight-severity-high", score.DefaultSeverityWeights[alert.SeverityHigh], "scoring weight for high severity (>=0)")
	fs.Float64Var(&c.WeightAssetStandard, "weight-asset-standard", score.DefaultAssetWeights[alert.AssetStandard], "scoring weight for standard assets (>=0)")
	fs.Float64Var(&c.WeightAssetImportant, "weight-asset-important", score.DefaultAssetWeights[alert.AssetImportant], "scoring weight for important assets (>=0)")
	fs.Float64Var(&c.WeightAssetCritical, "weight-asset-critical", score.DefaultAssetWeights[alert.AssetCritical], "scoring weight for critical assets (>=0)")
	fs.Float64Var(&c.FrequencyFactor, "frequency-factor", score.DefaultFrequencyFactor, "linear score boost per alert occurrence (>=0)")
	fs.Float64Var(&c.RiskThreshold, "risk-threshold", score.DefaultRiskThreshold, "default actionable-score filter cut (0..100)")
}

// Validate checks all configuration fields for correctness.
// It returns an error if any field is invalid, or nil if all fields are valid.
func (c *Config) Validate() error {
	var errs []error

	// Input file is the one required field
	if c.InputPath == "" {
		errs = append(errs, errors.New("INPUT is required"))
	}

	if c.TopN < 0 || c.TopN > 1000 {
		errs = append(errs, fmt.Errorf("invalid TOP %d (must be 0..1000)", c.TopN))
	}

	// API port must be valid TCP port number
	if c.APIPort <= 0 || c.APIPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid HTTP_PORT %d (must be 1..65535)", c.APIPort))
	}

	// Drain and shutdown budgets
	if c.DrainSeconds <= 0 || c.DrainSeconds > 300 {
		errs = append(errs, fmt.Errorf("invalid DRAIN_SECONDS %d (must be 1..300)", c.DrainSeconds))
	}
	if c.ShutdownBudgetSeconds <= 0 || c.ShutdownBudgetSeconds > 300 {
		errs = append(errs, fmt.Errorf("invalid SHUTDOWN_BUDGET_SECONDS %d (must be 1..300)", c.ShutdownBudgetSeconds))
	}

	// Shutdown budget must be greater than drain time
	if c.ShutdownBudgetSeconds <= c.DrainSeconds {
		errs = append(errs, fmt.Errorf("SHUTDOWN_BUDGET_SECONDS %d must be greater than DRAIN_SECONDS %d", c.ShutdownBudgetSeconds, c.DrainSeconds))
	}

	// Scoring knobs get their authoritative validation in score.NewEngine;
	// the range checks here surface flag typos with flag-style messages.
	for name, w := range map[string]float64{
		"WEIGHT_SEVERITY_LOW":    c.WeightSeverityLow,
		"WEIGHT_SEVERITY_MEDIUM": c.WeightSeverityMedium,
		"WEIGHT_SEVERITY_HIGH":   c.WeightSeverityHigh,
		"WEIGHT_ASSET_STANDARD":  c.WeightAssetStandard,
		"WEIGHT_ASSET_IMPORTANT": c.WeightAssetImportant,
		"WEIGHT_ASSET_CRITICAL":  c.WeightAssetCritical,
	} {
		if w < 0 {
			errs = append(errs, fmt.Errorf("invalid %s %v (must be >= 0)", name, w))
		}
	}
	if c.FrequencyFactor < 0 {
		errs = append(errs, fmt.Errorf("invalid FREQUENCY_FACTOR %v (must be >= 0)", c.FrequencyFactor))
	}
	if c.RiskThreshold < 0 || c.RiskThreshold > 100 {
		errs = append(errs, fmt.Errorf("invalid RISK_THRESHOLD %v (must be 0..100)", c.RiskThreshold))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ScoringConfig assembles the score.Config the flags describe.
func (c *Config) ScoringConfig() score.Config {
	return score.Config{
		SeverityWeights: map[string]float64{
			alert.SeverityLow:    c.WeightSeverityLow,
			alert.SeverityMedium: c.WeightSeverityMedium,
			alert.SeverityHigh:   c.WeightSeverityHigh,
		},
		AssetWeights: map[string]float64{
			alert.AssetStandard:  c.WeightAssetStandard,
			alert.AssetImportant: c.WeightAssetImportant,
			alert.AssetCritical:  c.WeightAssetCritical,
		},
		FrequencyFactor:    c.FrequencyFactor,
		FrequencyFactorSet: true,
		RiskThreshold:      c.RiskThreshold,
		RiskThresholdSet:   true,
	}
}
