package score

import (
	"errors"
	"strings"
	"testing"

	"github.com/linnemanlabs/sift/internal/alert"
)

func defaultEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(Config{})
	if err != nil {
		t.Fatalf("NewEngine(defaults): %v", err)
	}
	return e
}

func TestNewEngine_Defaults(t *testing.T) {
	t.Parallel()

	e := defaultEngine(t)
	if e.frequencyFactor != DefaultFrequencyFactor {
		t.Errorf("frequencyFactor = %v, want %v", e.frequencyFactor, DefaultFrequencyFactor)
	}
	if e.RiskThreshold() != DefaultRiskThreshold {
		t.Errorf("RiskThreshold() = %v, want %v", e.RiskThreshold(), DefaultRiskThreshold)
	}
}

func TestNewEngine_PartialOverride(t *testing.T) {
	t.Parallel()

	e, err := NewEngine(Config{FrequencyFactor: 0.5, FrequencyFactorSet: true})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if e.frequencyFactor != 0.5 {
		t.Errorf("frequencyFactor = %v, want 0.5", e.frequencyFactor)
	}
	// untouched fields keep defaults
	if e.severityWeights[alert.SeverityHigh] != 90 {
		t.Errorf("severity high weight = %v, want 90", e.severityWeights[alert.SeverityHigh])
	}
}

func TestNewEngine_ExplicitZeroFactor(t *testing.T) {
	t.Parallel()

	e, err := NewEngine(Config{FrequencyFactorSet: true})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if e.frequencyFactor != 0 {
		t.Errorf("frequencyFactor = %v, want 0", e.frequencyFactor)
	}

	s := e.Score(&alert.Alert{ID: "A", Severity: alert.SeverityHigh, AssetType: alert.AssetCritical, Frequency: 100})
	if s.RiskScore != 95 {
		t.Errorf("RiskScore = %v, want 95 (no frequency boost)", s.RiskScore)
	}
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			"severity weights missing key",
			Config{SeverityWeights: map[string]float64{"low": 20, "high": 90}},
			`severity weights missing "medium"`,
		},
		{
			"asset weights missing key",
			Config{AssetWeights: map[string]float64{"standard": 10, "important": 50}},
			`asset weights missing "critical"`,
		},
		{
			"negative severity weight",
			Config{SeverityWeights: map[string]float64{"low": -1, "medium": 50, "high": 90}},
			"negative",
		},
		{
			"negative frequency factor",
			Config{FrequencyFactor: -0.1, FrequencyFactorSet: true},
			"frequency factor",
		},
		{
			"risk threshold above 100",
			Config{RiskThreshold: 150, RiskThresholdSet: true},
			"risk threshold",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewEngine(tt.cfg)
			if err == nil {
				t.Fatal("expected config error")
			}
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("error type = %T, want *ConfigError", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestScore_WorkedExamples(t *testing.T) {
	t.Parallel()

	e := defaultEngine(t)

	// (90+100)/2 + 5*0.1 = 95.5
	a1 := e.Score(&alert.Alert{
		ID: "A1", Source: "IDS", Severity: alert.SeverityHigh,
		AssetType: alert.AssetCritical, Frequency: 5,
		Timestamp: "2024-01-01T00:00:00Z",
	})
	if a1.RiskScore != 95.5 {
		t.Errorf("A1 RiskScore = %v, want 95.5", a1.RiskScore)
	}
	if a1.Priority != PriorityCritical {
		t.Errorf("A1 Priority = %q, want %q", a1.Priority, PriorityCritical)
	}
	for _, want := range []string{"high severity", "critical asset", "high frequency (5 occurrences)"} {
		if !strings.Contains(a1.Explanation, want) {
			t.Errorf("A1 Explanation = %q, want substring %q", a1.Explanation, want)
		}
	}

	// (20+10)/2 + 0 = 15
	a2 := e.Score(&alert.Alert{ID: "A2", Severity: alert.SeverityLow, AssetType: alert.AssetStandard})
	if a2.RiskScore != 15 {
		t.Errorf("A2 RiskScore = %v, want 15", a2.RiskScore)
	}
	if a2.Priority != PriorityLow {
		t.Errorf("A2 Priority = %q, want %q", a2.Priority, PriorityLow)
	}
	if a2.Explanation != "Low-risk alert" {
		t.Errorf("A2 Explanation = %q, want %q", a2.Explanation, "Low-risk alert")
	}
}

func TestScore_ClampedAt100(t *testing.T) {
	t.Parallel()

	e := defaultEngine(t)
	s := e.Score(&alert.Alert{ID: "X", Severity: alert.SeverityHigh, AssetType: alert.AssetCritical, Frequency: 1000})
	if s.RiskScore != 100 {
		t.Errorf("RiskScore = %v, want 100", s.RiskScore)
	}
	if s.Priority != PriorityCritical {
		t.Errorf("Priority = %q, want %q", s.Priority, PriorityCritical)
	}
}

func TestScore_BoundedForAllCombinations(t *testing.T) {
	t.Parallel()

	e := defaultEngine(t)
	for _, sev := range alert.Severities {
		for _, at := range alert.AssetTypes {
			for _, freq := range []int{0, 1, 3, 50, 10000} {
				s := e.Score(&alert.Alert{ID: "X", Severity: sev, AssetType: at, Frequency: freq})
				if s.RiskScore < 0 || s.RiskScore > 100 {
					t.Errorf("score(%s,%s,%d) = %v, out of [0,100]", sev, at, freq, s.RiskScore)
				}
			}
		}
	}
}

func TestScore_MonotonicInFrequency(t *testing.T) {
	t.Parallel()

	e := defaultEngine(t)
	prev := -1.0
	for freq := 0; freq <= 2000; freq += 25 {
		s := e.Score(&alert.Alert{ID: "X", Severity: alert.SeverityMedium, AssetType: alert.AssetImportant, Frequency: freq})
		if s.RiskScore < prev {
			t.Fatalf("score decreased at frequency %d: %v < %v", freq, s.RiskScore, prev)
		}
		prev = s.RiskScore
	}
}

func TestScore_MonotonicInWeights(t *testing.T) {
	t.Parallel()

	e := defaultEngine(t)

	sevOrder := []string{alert.SeverityLow, alert.SeverityMedium, alert.SeverityHigh}
	prev := -1.0
	for _, sev := range sevOrder {
		s := e.Score(&alert.Alert{ID: "X", Severity: sev, AssetType: alert.AssetStandard})
		if s.RiskScore < prev {
			t.Fatalf("score decreased at severity %q: %v < %v", sev, s.RiskScore, prev)
		}
		prev = s.RiskScore
	}

	assetOrder := []string{alert.AssetStandard, alert.AssetImportant, alert.AssetCritical}
	prev = -1.0
	for _, at := range assetOrder {
		s := e.Score(&alert.Alert{ID: "X", Severity: alert.SeverityLow, AssetType: at})
		if s.RiskScore < prev {
			t.Fatalf("score decreased at asset type %q: %v < %v", at, s.RiskScore, prev)
		}
		prev = s.RiskScore
	}
}

func TestClassify_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  string
	}{
		{100, PriorityCritical},
		{60, PriorityCritical},
		{59.99, PriorityHigh},
		{40, PriorityHigh},
		{39.99, PriorityMedium},
		{20, PriorityMedium},
		{19.99, PriorityLow},
		{0, PriorityLow},
	}
	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestRank_Ordering(t *testing.T) {
	t.Parallel()

	if !(Rank(PriorityCritical) < Rank(PriorityHigh) &&
		Rank(PriorityHigh) < Rank(PriorityMedium) &&
		Rank(PriorityMedium) < Rank(PriorityLow)) {
		t.Error("priority ranks are not strictly ordered")
	}
	if Rank("bogus") <= Rank(PriorityLow) {
		t.Error("unknown priority should rank after Low")
	}
}

func TestScore_Rounding(t *testing.T) {
	t.Parallel()

	// factor 0.01 and frequency 5 gives 15.05, which rounds half-up to 15.1
	e, err := NewEngine(Config{FrequencyFactor: 0.01, FrequencyFactorSet: true})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	s := e.Score(&alert.Alert{ID: "X", Severity: alert.SeverityLow, AssetType: alert.AssetStandard, Frequency: 5})
	if s.RiskScore != 15.1 {
		t.Errorf("RiskScore = %v, want 15.1", s.RiskScore)
	}
}
