package services

import (
	"time"

	"github.com/localnerve/qadesk/internal/models"
	"github.com/localnerve/qadesk/internal/store"
)

// CertificateService annotates registry entries with their derived expiry
// status. The clock is injected so reads are deterministic under test.
type CertificateService struct {
	Store      *store.CertificateStore
	WindowDays int
	Now        func() time.Time
}

// NewCertificateService creates a service over the given store with a
// wall-clock Now.
func NewCertificateService(s *store.CertificateStore, windowDays int) *CertificateService {
	return &CertificateService{Store: s, WindowDays: windowDays, Now: time.Now}
}

// List returns all certificates with their status computed at call time.
func (s *CertificateService) List() ([]models.CertificateWithStatus, error) {
	records, err := s.Store.List()
	if err != nil {
		return nil, err
	}

	annotated := make([]models.CertificateWithStatus, 0, len(records))
	for _, record := range records {
		annotated = append(annotated, models.CertificateWithStatus{
			CertificateRecord: record,
			Status:            s.Status(record),
		})
	}
	return annotated, nil
}

// Find returns one certificate with its status.
func (s *CertificateService) Find(id string) (models.CertificateWithStatus, error) {
	record, err := s.Store.Find(id)
	if err != nil {
		return models.CertificateWithStatus{}, err
	}
	return models.CertificateWithStatus{CertificateRecord: record, Status: s.Status(record)}, nil
}

// Status reports "Expiring" when the certificate expires within the warning
// window, today inclusive on both ends, else "OK".
func (s *CertificateService) Status(record models.CertificateRecord) string {
	today := s.Now().UTC().Truncate(24 * time.Hour)
	cutoff := today.AddDate(0, 0, s.WindowDays)
	// expires <= today + window, boundary inclusive
	if !record.Expires.After(cutoff) {
		return models.StatusExpiring
	}
	return models.StatusOK
}
