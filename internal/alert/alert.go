// Package alert defines the canonical alert record and the normalization
// step that turns raw loaded records into score-ready alerts.
package alert

// Severity levels recognized by the scoring engine.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Asset type categories recognized by the scoring engine.
const (
	AssetStandard  = "standard"
	AssetImportant = "important"
	AssetCritical  = "critical"
)

// Severities lists every severity the normalizer can produce.
var Severities = []string{SeverityLow, SeverityMedium, SeverityHigh}

// AssetTypes lists every asset type the normalizer can produce.
var AssetTypes = []string{AssetStandard, AssetImportant, AssetCritical}

// Alert is a single security event record in canonical form. Every field is
// guaranteed valid after Normalize: Severity and AssetType are members of the
// recognized sets above and Frequency is non-negative.
type Alert struct {
	ID        string `json:"alert_id"`
	Source    string `json:"source"`
	Severity  string `json:"severity"`
	AssetType string `json:"asset_type"`
	Frequency int    `json:"frequency"`
	Timestamp string `json:"timestamp"`
}

// Raw is an alert record as delivered by a loader, before normalization.
// JSON loading produces typed values; CSV loading produces all strings.
type Raw = map[string]any
