// Package score computes risk scores and priority tiers for normalized
// alerts. The formula is deterministic and auditable: severity and asset
// weights are averaged, then boosted linearly by occurrence frequency.
package score

import (
	"fmt"
	"math"
	"strings"

	"github.com/linnemanlabs/sift/internal/alert"
)

// Priority tiers, highest first. Tiers are a total, contiguous partition of
// the [0,100] score range with fixed boundaries at 60, 40, and 20.
const (
	PriorityCritical = "Critical"
	PriorityHigh     = "High"
	PriorityMedium   = "Medium"
	PriorityLow      = "Low"
)

// Priorities lists all tiers in descending order of urgency.
var Priorities = []string{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}

// Default weight tables and factors, on a 0-100 scale.
var (
	DefaultSeverityWeights = map[string]float64{
		alert.SeverityLow:    20,
		alert.SeverityMedium: 50,
		alert.SeverityHigh:   90,
	}
	DefaultAssetWeights = map[string]float64{
		alert.AssetStandard:  10,
		alert.AssetImportant: 50,
		alert.AssetCritical:  100,
	}
)

const (
	// DefaultFrequencyFactor is the linear boost per occurrence.
	DefaultFrequencyFactor = 0.1

	// DefaultRiskThreshold is the default "actionable" cut used by filters.
	// It does not affect tier boundaries.
	DefaultRiskThreshold = 60.0
)

// Config holds the tunable scoring parameters. Zero-value fields fall back
// to the defaults above, so callers override only what they need.
type Config struct {
	SeverityWeights map[string]float64
	AssetWeights    map[string]float64
	FrequencyFactor float64
	RiskThreshold   float64

	// FrequencyFactorSet and RiskThresholdSet distinguish an explicit zero
	// from an unset field. Flag-driven callers set these.
	FrequencyFactorSet bool
	RiskThresholdSet   bool
}

// ConfigError reports an invalid scoring configuration. It is returned from
// NewEngine before any alert is scored.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "scoring config: " + e.Reason
}

// Scored is an alert with its computed risk fields attached.
type Scored struct {
	alert.Alert
	RiskScore   float64 `json:"risk_score"`
	Priority    string  `json:"priority"`
	Explanation string  `json:"explanation"`
}

// Engine scores alerts against a validated configuration. Construct with
// NewEngine; the zero value is not usable.
type Engine struct {
	severityWeights map[string]float64
	assetWeights    map[string]float64
	frequencyFactor float64
	riskThreshold   float64
}

// NewEngine validates cfg and returns a ready engine. Weight tables must
// cover every severity and asset type the normalizer can produce; a missing
// key is a *ConfigError here rather than a per-alert failure later.
func NewEngine(cfg Config) (*Engine, error) {
	e := &Engine{
		severityWeights: cfg.SeverityWeights,
		assetWeights:    cfg.AssetWeights,
		frequencyFactor: cfg.FrequencyFactor,
		riskThreshold:   cfg.RiskThreshold,
	}
	if e.severityWeights == nil {
		e.severityWeights = DefaultSeverityWeights
	}
	if e.assetWeights == nil {
		e.assetWeights = DefaultAssetWeights
	}
	if !cfg.FrequencyFactorSet && e.frequencyFactor == 0 {
		e.frequencyFactor = DefaultFrequencyFactor
	}
	if !cfg.RiskThresholdSet && e.riskThreshold == 0 {
		e.riskThreshold = DefaultRiskThreshold
	}

	for _, sev := range alert.Severities {
		w, ok := e.severityWeights[sev]
		if !ok {
			return nil, &ConfigError{Reason: fmt.Sprintf("severity weights missing %q", sev)}
		}
		if w < 0 {
			return nil, &ConfigError{Reason: fmt.Sprintf("severity weight for %q is negative", sev)}
		}
	}
	for _, at := range alert.AssetTypes {
		w, ok := e.assetWeights[at]
		if !ok {
			return nil, &ConfigError{Reason: fmt.Sprintf("asset weights missing %q", at)}
		}
		if w < 0 {
			return nil, &ConfigError{Reason: fmt.Sprintf("asset weight for %q is negative", at)}
		}
	}
	if e.frequencyFactor < 0 {
		return nil, &ConfigError{Reason: "frequency factor must be >= 0"}
	}
	if e.riskThreshold < 0 || e.riskThreshold > 100 {
		return nil, &ConfigError{Reason: "risk threshold must be in [0,100]"}
	}
	return e, nil
}

// RiskThreshold returns the configured actionable-score cut.
func (e *Engine) RiskThreshold() float64 {
	return e.riskThreshold
}

// Score computes the risk score, priority tier, and explanation for one
// normalized alert. Scores are rounded half-up to one decimal place before
// classification so every presenter sees identical values.
func (e *Engine) Score(a *alert.Alert) Scored {
	severityWeight := e.severityWeights[a.Severity]
	assetWeight := e.assetWeights[a.AssetType]

	baseScore := (severityWeight + assetWeight) / 2
	frequencyBoost := float64(a.Frequency) * e.frequencyFactor
	riskScore := math.Min(100, baseScore+frequencyBoost)
	riskScore = math.Round(riskScore*10) / 10

	return Scored{
		Alert:       *a,
		RiskScore:   riskScore,
		Priority:    Classify(riskScore),
		Explanation: explain(a, severityWeight, assetWeight),
	}
}

// Classify maps a risk score to its priority tier. Boundaries are fixed:
// >=60 Critical, >=40 High, >=20 Medium, otherwise Low.
func Classify(riskScore float64) string {
	switch {
	case riskScore >= 60:
		return PriorityCritical
	case riskScore >= 40:
		return PriorityHigh
	case riskScore >= 20:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Rank orders priorities for presenters: Critical=0 .. Low=3. Unknown
// strings sort last.
func Rank(priority string) int {
	for i, p := range Priorities {
		if p == priority {
			return i
		}
	}
	return len(Priorities)
}

// explain builds the human-readable score rationale: which factors pushed
// the alert up, or "Low-risk alert" when none did.
func explain(a *alert.Alert, severityWeight, assetWeight float64) string {
	var factors []string

	if severityWeight >= 80 {
		factors = append(factors, "high severity")
	} else if severityWeight >= 40 {
		factors = append(factors, "medium severity")
	}

	if assetWeight >= 80 {
		factors = append(factors, "critical asset")
	} else if assetWeight >= 40 {
		factors = append(factors, "important asset")
	}

	if a.Frequency >= 3 {
		factors = append(factors, fmt.Sprintf("high frequency (%d occurrences)", a.Frequency))
	}

	if len(factors) == 0 {
		return "Low-risk alert"
	}
	return "Alert triggered due to " + strings.Join(factors, ", ")
}
