// certificates.go
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
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/localnerve/qadesk/internal/models"
)

// CertificateStore is the ordered list of certificate records, persisted as
// a JSON array. Records are append-only; no update or delete path exists.
type CertificateStore struct {
	mu   sync.Mutex
	path string
}

// NewCertificateStore creates a store backed by the given file path.
func NewCertificateStore(path string) *CertificateStore {
	return &CertificateStore{path: path}
}

// List returns all records in persisted order.
func (s *CertificateStore) List() ([]models.CertificateRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Find returns the record with the given ID.
func (s *CertificateStore) Find(id string) (models.CertificateRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return models.CertificateRecord{}, err
	}
	for _, record := range records {
		if record.ID == id {
			return record, nil
		}
	}
	return models.CertificateRecord{}, fmt.Errorf("%w: certificate %q", ErrNotFound, id)
}

// Add appends a record, assigning it an ID, and persists. Expires is not
// required to be after issued; such records simply read as Expiring.
func (s *CertificateStore) Add(record models.CertificateRecord) (models.CertificateRecord, error) {
	if !models.ValidCertType(record.Type) {
		return record, fmt.Errorf("%w: unknown certificate type %q", ErrInvalidRecord, record.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return record, err
	}

	record.ID = uuid.NewString()
	if err := s.save(append(records, record)); err != nil {
		return record, err
	}
	return record, nil
}

func (s *CertificateStore) load() ([]models.CertificateRecord, error) {
	data, err := readStoreFile(s.path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []models.CertificateRecord{}, nil
	}

	var records []models.CertificateRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse certificate registry %s: %w", s.path, err)
	}
	return records, nil
}

func (s *CertificateStore) save(records []models.CertificateRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode certificate registry: %w", err)
	}
	return writeStoreFile(s.path, append(data, '\n'))
}
