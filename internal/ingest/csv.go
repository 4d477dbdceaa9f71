package ingest

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
)

// parseCSV reads a header-keyed CSV into row maps. Headers are trimmed,
// fully empty lines are skipped, and short records are tolerated (missing
// trailing cells read as absent).
func parseCSV(data []byte) ([]map[string]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		empty := true
		for i, h := range header {
			if h == "" || i >= len(record) {
				continue
			}
			v := strings.TrimSpace(record[i])
			if v != "" {
				empty = false
			}
			row[h] = v
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
