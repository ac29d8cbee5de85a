package triage

import "github.com/linnemanlabs/sift/internal/score"

// Summary holds the aggregate statistics presenters show above the alert
// table: tier counts, average risk, and how many alerts clear the
// actionable threshold.
type Summary struct {
	Total       int            `json:"total"`
	ByPriority  map[string]int `json:"by_priority"`
	AverageRisk float64        `json:"average_risk"`
	Actionable  int            `json:"actionable"`
}

// Summarize computes aggregate statistics over a (possibly filtered) scored
// batch. Every tier appears in ByPriority even when its count is zero.
// AverageRisk is 0 for an empty set.
func Summarize(alerts []score.Scored, riskThreshold float64) Summary {
	s := Summary{
		Total:      len(alerts),
		ByPriority: make(map[string]int, len(score.Priorities)),
	}
	for _, p := range score.Priorities {
		s.ByPriority[p] = 0
	}

	var sum float64
	for _, a := range alerts {
		s.ByPriority[a.Priority]++
		sum += a.RiskScore
		if a.RiskScore >= riskThreshold {
			s.Actionable++
		}
	}
	if len(alerts) > 0 {
		s.AverageRisk = sum / float64(len(alerts))
	}
	return s
}
