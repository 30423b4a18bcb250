// cmm.go
//
// A flat-file quality audit desk service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of qadesk.
// qadesk is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// qadesk is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with qadesk.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package parse reads the measurement and bulk-input upload formats.
package parse

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/localnerve/qadesk/internal/models"
)

// ErrParse marks a malformed or unsupported upload. No partial result is
// returned alongside it.
var ErrParse = errors.New("parse failure")

// ParseCMM parses an uploaded CMM measurement file by extension: generic
// CSV or the fixed-column DFQ subset.
func ParseCMM(data []byte, filename string) ([]models.Measurement, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".csv"):
		return parseCMMCSV(data)
	case strings.HasSuffix(name, ".dfq"):
		return parseDFQ(data)
	}
	return nil, fmt.Errorf("%w: unsupported file type %q", ErrParse, filename)
}

// parseCMMCSV reads a CSV with a Characteristic/Nominal/Measured/Deviation/
// Status header. Column order is free; unknown columns are ignored.
func parseCMMCSV(data []byte) ([]models.Measurement, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	lines, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: no measurement rows", ErrParse)
	}

	columns := make(map[string]int)
	for i, col := range lines[0] {
		columns[strings.ToLower(strings.TrimSpace(col))] = i
	}
	if _, ok := columns["characteristic"]; !ok {
		return nil, fmt.Errorf("%w: missing Characteristic column", ErrParse)
	}

	field := func(line []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(line) {
			return ""
		}
		return strings.TrimSpace(line[i])
	}

	rows := make([]models.Measurement, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, models.Measurement{
			Characteristic: field(line, "characteristic"),
			Nominal:        field(line, "nominal"),
			Measured:       field(line, "measured"),
			Deviation:      field(line, "deviation"),
			Status:         field(line, "status"),
		})
	}
	return rows, nil
}

// parseDFQ reads the simplified fixed-column subset of the CMM vendor
// format: only comma-separated lines prefixed "CC" carry characteristics.
// Fields 1..4 map to characteristic/nominal/measured/deviation; field 7 is
// the status when present, else "?". Lines with fewer than 6 fields are
// skipped.
func parseDFQ(data []byte) ([]models.Measurement, error) {
	var rows []models.Measurement

	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, "CC") {
			continue
		}

		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if len(parts) < 6 {
			continue
		}

		status := "?"
		if len(parts) > 7 {
			status = parts[7]
		}
		rows = append(rows, models.Measurement{
			Characteristic: parts[1],
			Nominal:        parts[2],
			Measured:       parts[3],
			Deviation:      parts[4],
			Status:         status,
		})
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no CC records found", ErrParse)
	}
	return rows, nil
}
