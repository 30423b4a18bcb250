// suppliers.go
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

package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sync"

	"github.com/localnerve/qadesk/internal/models"
)

// supplierHeader is the suppliers.csv column set. The Polish column names
// are the wire format of the original desk and are kept for compatibility
// with existing files and their consumers.
var supplierHeader = []string{"Dostawca", "Audytor", "Data", "Jakość", "Dostawy", "Dokumentacja", "Komentarze"}

// SupplierLog is the append-only table of supplier evaluations, persisted
// as CSV with the same whole-file rewrite contract as the audit ledger.
type SupplierLog struct {
	mu   sync.Mutex
	path string
}

// NewSupplierLog creates a log backed by the given file path.
func NewSupplierLog(path string) *SupplierLog {
	return &SupplierLog{path: path}
}

// Append concatenates new evaluations onto the existing log and rewrites
// the full store.
func (l *SupplierLog) Append(records []models.SupplierEvaluation) error {
	if len(records) == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.load()
	if err != nil {
		return err
	}
	return l.save(append(rows, records...))
}

// List returns all evaluations in stored order, or only rows for the given
// supplier when the filter is non-empty.
func (l *SupplierLog) List(supplier string) ([]models.SupplierEvaluation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.load()
	if err != nil {
		return nil, err
	}
	if supplier == "" {
		return rows, nil
	}

	filtered := make([]models.SupplierEvaluation, 0, len(rows))
	for _, row := range rows {
		if row.Supplier == supplier {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

// ExportCSV returns the log contents in the on-disk CSV format for the
// download endpoint.
func (l *SupplierLog) ExportCSV() ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.load()
	if err != nil {
		return nil, err
	}
	return encodeSupplierLog(rows)
}

func (l *SupplierLog) load() ([]models.SupplierEvaluation, error) {
	data, err := readStoreFile(l.path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []models.SupplierEvaluation{}, nil
	}

	reader := csv.NewReader(bytes.NewReader(data))
	lines, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse supplier log %s: %w", l.path, err)
	}
	if len(lines) == 0 {
		return []models.SupplierEvaluation{}, nil
	}
	if !equalColumns(lines[0], supplierHeader) {
		return nil, fmt.Errorf("unexpected supplier log header in %s: %v", l.path, lines[0])
	}

	rows := make([]models.SupplierEvaluation, 0, len(lines)-1)
	for n, line := range lines[1:] {
		date, err := models.ParseDate(line[2])
		if err != nil {
			return nil, fmt.Errorf("supplier log %s row %d: %w", l.path, n+1, err)
		}
		rows = append(rows, models.SupplierEvaluation{
			Supplier:      line[0],
			EvaluatedBy:   line[1],
			Date:          date,
			Quality:       line[3],
			Delivery:      line[4],
			Documentation: line[5],
			Comments:      line[6],
		})
	}
	return rows, nil
}

func (l *SupplierLog) save(rows []models.SupplierEvaluation) error {
	data, err := encodeSupplierLog(rows)
	if err != nil {
		return err
	}
	return writeStoreFile(l.path, data)
}

func encodeSupplierLog(rows []models.SupplierEvaluation) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(supplierHeader); err != nil {
		return nil, fmt.Errorf("failed to encode supplier log: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Supplier,
			row.EvaluatedBy,
			row.Date.String(),
			row.Quality,
			row.Delivery,
			row.Documentation,
			row.Comments,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to encode supplier log: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to encode supplier log: %w", err)
	}
	return buf.Bytes(), nil
}
