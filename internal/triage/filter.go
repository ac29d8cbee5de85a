package triage

import (
	"strings"

	"github.com/linnemanlabs/sift/internal/score"
)

// Filter is a set of post-processing predicates over a scored batch. The
// dimensions compose by logical AND; an empty allowed-set for a dimension
// means no restriction on it. Applying filters in any order yields the same
// result set.
type Filter struct {
	MinScore   float64
	Severities []string
	AssetTypes []string
	Priorities []string
	Sources    []string
}

// Apply returns the alerts matching every filter dimension. The input order
// is preserved and the input slice is never mutated.
func (f Filter) Apply(alerts []score.Scored) []score.Scored {
	out := make([]score.Scored, 0, len(alerts))
	for _, a := range alerts {
		if f.Match(a) {
			out = append(out, a)
		}
	}
	return out
}

// Match reports whether a single alert passes every dimension.
func (f Filter) Match(a score.Scored) bool {
	if a.RiskScore < f.MinScore {
		return false
	}
	if !member(f.Severities, a.Severity) {
		return false
	}
	if !member(f.AssetTypes, a.AssetType) {
		return false
	}
	if !member(f.Priorities, a.Priority) {
		return false
	}
	if !member(f.Sources, a.Source) {
		return false
	}
	return true
}

// member is case-insensitive set membership with an empty set meaning
// "allow everything".
func member(set []string, v string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
