package alert

import (
	"fmt"
	"strconv"
	"strings"
)

// Defaults substituted when a raw record omits or mangles a field.
const (
	DefaultSource    = "unknown"
	DefaultSeverity  = SeverityLow
	DefaultAssetType = AssetStandard
)

// ValidationError reports a raw record that cannot be normalized. The only
// unrecoverable condition is a missing or empty alert_id; everything else is
// corrected by default substitution.
type ValidationError struct {
	AlertID string // best-known ID, "?" when absent
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("alert %s: %s", e.AlertID, e.Reason)
}

// Normalize converts a raw record into a canonical Alert. It is total for
// every record carrying a non-empty alert_id: unrecognized severities fall
// back to low, unrecognized asset types to standard, and missing or
// unparseable frequencies to 0. A missing alert_id returns *ValidationError.
func Normalize(raw Raw) (*Alert, error) {
	id := stringField(raw, "alert_id")
	if id == "" {
		return nil, &ValidationError{AlertID: "?", Reason: "missing alert_id"}
	}

	a := &Alert{
		ID:        id,
		Source:    stringField(raw, "source"),
		Severity:  canonical(stringField(raw, "severity"), Severities, DefaultSeverity),
		AssetType: canonical(stringField(raw, "asset_type"), AssetTypes, DefaultAssetType),
		Frequency: frequencyField(raw),
		Timestamp: stringField(raw, "timestamp"),
	}
	if a.Source == "" {
		a.Source = DefaultSource
	}
	return a, nil
}

// canonical lower-cases and trims v, returning fallback when the result is
// not a member of allowed.
func canonical(v string, allowed []string, fallback string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return fallback
}

func stringField(raw Raw, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// frequencyField coerces the frequency field to a non-negative int. JSON
// numbers arrive as float64, CSV values as strings; anything unparseable or
// negative becomes 0.
func frequencyField(raw Raw) int {
	v, ok := raw["frequency"]
	if !ok || v == nil {
		return 0
	}

	var n int
	switch f := v.(type) {
	case int:
		n = f
	case int64:
		n = int(f)
	case float64:
		n = int(f)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			// tolerate float-formatted strings like "3.0"
			fv, ferr := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if ferr != nil {
				return 0
			}
			parsed = int(fv)
		}
		n = parsed
	default:
		return 0
	}

	if n < 0 {
		return 0
	}
	return n
}
