package report

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/localnerve/qadesk/internal/models"
)

func TestTruncate(t *testing.T) {
	short := "Is the documentation current?"
	if got := truncate(short, 60); got != short {
		t.Errorf("Short text should pass through, got %q", got)
	}

	// Multi-byte Polish text longer than the limit must stay valid UTF-8.
	long := strings.Repeat("Czy dokumentacja stanowiskowa jest aktualna i zatwierdzona? ", 3)
	got := truncate(long, 60)
	if !utf8.ValidString(got) {
		t.Errorf("Truncated text is not valid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 60 {
		t.Errorf("Expected 60 runes, got %d", n)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Expected ellipsis suffix, got %q", got)
	}
}

func TestAuditReportRenders(t *testing.T) {
	records := []models.AuditRecord{{
		ID:        "r1",
		Auditor:   "J. Kowalski",
		Date:      models.NewDate(2026, time.March, 14),
		User:      "auditor@example.com",
		Component: "Bracket-A",
		Question:  strings.Repeat("Czy przyrządy pomiarowe są w okresie ważności kalibracji? ", 3),
		Result:    models.ResultYes,
	}}

	pdf, err := AuditReport("Bracket-A", records)
	if err != nil {
		t.Fatalf("AuditReport failed: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("Expected a PDF document")
	}
}
