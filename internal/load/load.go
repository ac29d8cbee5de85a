// Package load reads alert batches from flat files. JSON files carry an
// array of objects (or a single object); CSV files carry a header row and
// one record per line, with every value arriving as a string for the
// normalizer to coerce.
package load

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/linnemanlabs/sift/internal/alert"
)

// File loads raw alert records from path, dispatching on the file
// extension (.json or .csv, case-insensitive). Any failure here is fatal
// for the invocation: no partial batch is returned.
func File(path string) ([]alert.Raw, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return jsonFile(path)
	case ".csv":
		return csvFile(path)
	default:
		return nil, fmt.Errorf("load %s: unsupported format %q (want .json or .csv)", path, ext)
	}
}

func jsonFile(path string) ([]alert.Raw, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is operator-supplied config, not remote input
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	var records []alert.Raw
	if err := json.Unmarshal(data, &records); err != nil {
		// tolerate a single top-level object as a one-record batch
		var one alert.Raw
		if oerr := json.Unmarshal(data, &one); oerr != nil {
			return nil, fmt.Errorf("load %s: parse json: %w", path, err)
		}
		records = []alert.Raw{one}
	}
	return records, nil
}

func csvFile(path string) ([]alert.Raw, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is operator-supplied config, not remote input
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("load %s: parse csv: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("load %s: parse csv: missing header row", path)
	}

	header := rows[0]
	records := make([]alert.Raw, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(alert.Raw, len(header))
		for i, key := range header {
			if i < len(row) {
				rec[key] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
