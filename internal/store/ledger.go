// ledger.go
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

	"github.com/google/uuid"
	"github.com/localnerve/qadesk/internal/models"
)

// ledgerHeader is the audits.csv column set. The id column carries a
// generated UUID per row so edits can address rows by stable identity
// instead of file position.
var ledgerHeader = []string{"id", "auditor", "date", "user", "component", "question", "result", "comment", "version"}

// legacyLedgerHeader is the column set written by earlier desk variants,
// accepted on read. Rows from a legacy file are assigned fresh IDs on load;
// the next rewrite persists them.
var legacyLedgerHeader = []string{"auditor", "date", "user", "component", "question", "result", "comment", "version"}

// AuditLedger is the append-only table of audit answers, persisted as CSV.
// Rows are never updated or deleted except through the result patch paths.
type AuditLedger struct {
	mu   sync.Mutex
	path string
}

// NewAuditLedger creates a ledger backed by the given file path.
func NewAuditLedger(path string) *AuditLedger {
	return &AuditLedger{path: path}
}

// Append concatenates new records onto the existing ledger, preserving both
// orders (existing rows first, new rows in submission order), and rewrites
// the full store.
func (l *AuditLedger) Append(records []models.AuditRecord) error {
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

// List returns all rows in stored order, or only rows whose component
// equals the filter when it is non-empty.
func (l *AuditLedger) List(component string) ([]models.AuditRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.load()
	if err != nil {
		return nil, err
	}
	if component == "" {
		return rows, nil
	}

	filtered := make([]models.AuditRecord, 0, len(rows))
	for _, row := range rows {
		if row.Component == component {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

// PatchResult overwrites the result field of the row at the given zero-based
// position. An out-of-range index fails with ErrIndexOutOfRange and leaves
// the ledger file byte-identical. Administrative edit path only; new callers
// should use PatchResultByID.
func (l *AuditLedger) PatchResult(index int, result string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.load()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(rows) {
		return fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, index, len(rows))
	}

	rows[index].Result = result
	return l.save(rows)
}

// PatchResultByID overwrites the result field of the row with the given ID.
func (l *AuditLedger) PatchResultByID(id, result string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.load()
	if err != nil {
		return err
	}
	for i := range rows {
		if rows[i].ID == id {
			rows[i].Result = result
			return l.save(rows)
		}
	}
	return fmt.Errorf("%w: audit record %q", ErrNotFound, id)
}

// ExportCSV returns the ledger contents in the on-disk CSV format for the
// download endpoint.
func (l *AuditLedger) ExportCSV() ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.load()
	if err != nil {
		return nil, err
	}
	return encodeLedger(rows)
}

func (l *AuditLedger) load() ([]models.AuditRecord, error) {
	data, err := readStoreFile(l.path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []models.AuditRecord{}, nil
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	lines, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse audit ledger %s: %w", l.path, err)
	}
	if len(lines) == 0 {
		return []models.AuditRecord{}, nil
	}

	withID, err := ledgerColumns(lines[0], l.path)
	if err != nil {
		return nil, err
	}

	rows := make([]models.AuditRecord, 0, len(lines)-1)
	for n, line := range lines[1:] {
		row, err := decodeLedgerRow(line, withID)
		if err != nil {
			return nil, fmt.Errorf("audit ledger %s row %d: %w", l.path, n+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (l *AuditLedger) save(rows []models.AuditRecord) error {
	data, err := encodeLedger(rows)
	if err != nil {
		return err
	}
	return writeStoreFile(l.path, data)
}

// ledgerColumns validates the header line and reports whether the file
// carries the id column.
func ledgerColumns(header []string, path string) (withID bool, err error) {
	if equalColumns(header, ledgerHeader) {
		return true, nil
	}
	if equalColumns(header, legacyLedgerHeader) {
		return false, nil
	}
	return false, fmt.Errorf("unexpected audit ledger header in %s: %v", path, header)
}

func equalColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func decodeLedgerRow(line []string, withID bool) (models.AuditRecord, error) {
	var row models.AuditRecord

	if withID {
		if len(line) != len(ledgerHeader) {
			return row, fmt.Errorf("%w: expected %d fields, got %d", ErrInvalidRecord, len(ledgerHeader), len(line))
		}
		row.ID = line[0]
		line = line[1:]
	} else {
		if len(line) != len(legacyLedgerHeader) {
			return row, fmt.Errorf("%w: expected %d fields, got %d", ErrInvalidRecord, len(legacyLedgerHeader), len(line))
		}
		row.ID = uuid.NewString()
	}

	date, err := models.ParseDate(line[1])
	if err != nil {
		return row, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	row.Auditor = line[0]
	row.Date = date
	row.User = line[2]
	row.Component = line[3]
	row.Question = line[4]
	row.Result = line[5]
	row.Comment = line[6]
	row.Version = line[7]
	return row, nil
}

func encodeLedger(rows []models.AuditRecord) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(ledgerHeader); err != nil {
		return nil, fmt.Errorf("failed to encode audit ledger: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.ID,
			row.Auditor,
			row.Date.String(),
			row.User,
			row.Component,
			row.Question,
			row.Result,
			row.Comment,
			row.Version,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to encode audit ledger: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to encode audit ledger: %w", err)
	}
	return buf.Bytes(), nil
}
