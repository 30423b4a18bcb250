package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/localnerve/qadesk/internal/models"
	"github.com/localnerve/qadesk/internal/store"
)

// fixedToday is the injected clock for status tests.
var fixedToday = time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC)

func newTestCertService(t *testing.T) *CertificateService {
	t.Helper()
	certStore := store.NewCertificateStore(filepath.Join(t.TempDir(), "certificates.json"))
	svc := NewCertificateService(certStore, 30)
	svc.Now = func() time.Time { return fixedToday }
	return svc
}

func addCert(t *testing.T, svc *CertificateService, name string, expires models.Date) models.CertificateRecord {
	t.Helper()
	record, err := svc.Store.Add(models.CertificateRecord{
		Name:    name,
		Type:    models.CertISO9001,
		Issued:  models.NewDate(2023, time.March, 1),
		Expires: expires,
	})
	if err != nil {
		t.Fatalf("Add %s failed: %v", name, err)
	}
	return record
}

func TestCertificateStatus(t *testing.T) {
	svc := newTestCertService(t)
	today := fixedToday.Truncate(24 * time.Hour)

	cases := []struct {
		name    string
		expires time.Time
		want    string
	}{
		{"expires in 10 days", today.AddDate(0, 0, 10), models.StatusExpiring},
		{"expires in 365 days", today.AddDate(0, 0, 365), models.StatusOK},
		{"expires exactly at window boundary", today.AddDate(0, 0, 30), models.StatusExpiring},
		{"expires in 31 days", today.AddDate(0, 0, 31), models.StatusOK},
		{"already expired", today.AddDate(0, 0, -5), models.StatusExpiring},
	}

	for _, tc := range cases {
		record := models.CertificateRecord{
			Name:    tc.name,
			Type:    models.CertISO9001,
			Expires: models.Date{Time: tc.expires},
		}
		if got := svc.Status(record); got != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestCertificateListAnnotates(t *testing.T) {
	svc := newTestCertService(t)
	today := fixedToday.Truncate(24 * time.Hour)

	addCert(t, svc, "ISO 9001 site A", models.Date{Time: today.AddDate(0, 0, 10)})
	addCert(t, svc, "ISO 9001 site B", models.Date{Time: today.AddDate(0, 0, 365)})

	certs, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(certs) != 2 {
		t.Fatalf("Expected 2 certificates, got %d", len(certs))
	}
	if certs[0].Status != models.StatusExpiring {
		t.Errorf("Expected first certificate Expiring, got %s", certs[0].Status)
	}
	if certs[1].Status != models.StatusOK {
		t.Errorf("Expected second certificate OK, got %s", certs[1].Status)
	}
	if certs[0].ID == "" {
		t.Error("Expected an assigned certificate ID")
	}
}

func TestCertificateRejectsUnknownType(t *testing.T) {
	svc := newTestCertService(t)

	_, err := svc.Store.Add(models.CertificateRecord{Name: "X", Type: "ISO 27001"})
	if err == nil {
		t.Error("Expected unknown certificate type to be rejected")
	}
}
