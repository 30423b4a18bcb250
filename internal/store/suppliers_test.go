package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/localnerve/qadesk/internal/models"
)

func TestSupplierLogRoundTrip(t *testing.T) {
	log := NewSupplierLog(filepath.Join(t.TempDir(), "suppliers.csv"))

	records := []models.SupplierEvaluation{
		{
			Supplier:      "Stalmet",
			EvaluatedBy:   "quality@example.com",
			Date:          models.NewDate(2026, time.January, 20),
			Quality:       models.QualityHigh,
			Delivery:      models.DeliveryOnTime,
			Documentation: models.DocumentationFull,
			Comments:      "no findings",
		},
		{
			Supplier:      "AluPro",
			EvaluatedBy:   "quality@example.com",
			Date:          models.NewDate(2026, time.February, 3),
			Quality:       models.QualityMedium,
			Delivery:      models.DeliverySometimesLate,
			Documentation: models.DocumentationGaps,
		},
	}

	if err := log.Append(records[:1]); err != nil {
		t.Fatalf("First append failed: %v", err)
	}
	if err := log.Append(records[1:]); err != nil {
		t.Fatalf("Second append failed: %v", err)
	}

	rows, err := log.List("")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Supplier != "Stalmet" || rows[1].Supplier != "AluPro" {
		t.Errorf("Rows out of order: %+v", rows)
	}
	if rows[1].Quality != models.QualityMedium || rows[1].Comments != "" {
		t.Errorf("Second row fields wrong: %+v", rows[1])
	}

	filtered, err := log.List("Stalmet")
	if err != nil {
		t.Fatalf("Filtered list failed: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Supplier != "Stalmet" {
		t.Errorf("Filter wrong: %+v", filtered)
	}
}

// TestSupplierLogHeader pins the Polish wire-format header.
func TestSupplierLogHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suppliers.csv")
	log := NewSupplierLog(path)

	record := models.SupplierEvaluation{
		Supplier:      "Stalmet",
		EvaluatedBy:   "quality@example.com",
		Date:          models.NewDate(2026, time.January, 20),
		Quality:       models.QualityHigh,
		Delivery:      models.DeliveryOnTime,
		Documentation: models.DocumentationFull,
	}
	if err := log.Append([]models.SupplierEvaluation{record}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	firstLine := strings.SplitN(string(data), "\n", 2)[0]
	if firstLine != "Dostawca,Audytor,Data,Jakość,Dostawy,Dokumentacja,Komentarze" {
		t.Errorf("Unexpected header: %q", firstLine)
	}
}
