package load

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFile_JSONArray(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "alerts.json", `[
		{"alert_id": "A1", "source": "IDS", "severity": "high", "asset_type": "critical", "frequency": 5, "timestamp": "2024-01-01T00:00:00Z"},
		{"alert_id": "A2", "severity": "low"}
	]`)

	records, err := File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}
	if records[0]["alert_id"] != "A1" {
		t.Errorf("alert_id = %v, want A1", records[0]["alert_id"])
	}
	// JSON numbers decode as float64
	if records[0]["frequency"] != float64(5) {
		t.Errorf("frequency = %v (%T), want float64 5", records[0]["frequency"], records[0]["frequency"])
	}
}

func TestFile_JSONSingleObject(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "one.json", `{"alert_id": "A1", "severity": "high"}`)

	records, err := File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len = %d, want 1", len(records))
	}
	if records[0]["alert_id"] != "A1" {
		t.Errorf("alert_id = %v, want A1", records[0]["alert_id"])
	}
}

func TestFile_CSV(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "alerts.csv",
		"alert_id,source,severity,asset_type,frequency,timestamp\n"+
			"A1,IDS,high,critical,5,2024-01-01T00:00:00Z\n"+
			"A2,EDR,low,standard,0,2024-01-02T00:00:00Z\n")

	records, err := File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}
	// CSV values arrive as strings
	if records[0]["frequency"] != "5" {
		t.Errorf("frequency = %v (%T), want string \"5\"", records[0]["frequency"], records[0]["frequency"])
	}
	if records[1]["source"] != "EDR" {
		t.Errorf("source = %v, want EDR", records[1]["source"])
	}
}

func TestFile_CSVEmptyField(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "alerts.csv",
		"alert_id,severity\nA1,\n")

	records, err := File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if records[0]["severity"] != "" {
		t.Errorf("severity = %v, want empty string", records[0]["severity"])
	}
}

func TestFile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantSub string
	}{
		{
			"missing file",
			func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
			"load",
		},
		{
			"unsupported extension",
			func(t *testing.T) string { return writeFile(t, "alerts.yaml", "a: 1") },
			"unsupported format",
		},
		{
			"bad json",
			func(t *testing.T) string { return writeFile(t, "bad.json", "{nope") },
			"parse json",
		},
		{
			"empty csv",
			func(t *testing.T) string { return writeFile(t, "empty.csv", "") },
			"missing header",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := File(tt.path(t))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error = %q, want substring %q", err, tt.wantSub)
			}
		})
	}
}
