package store

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/localnerve/qadesk/internal/models"
)

func newTestLedger(t *testing.T) *AuditLedger {
	t.Helper()
	return NewAuditLedger(filepath.Join(t.TempDir(), "audits.csv"))
}

func testRecord(component, question string) models.AuditRecord {
	return models.AuditRecord{
		ID:        uuid.NewString(),
		Auditor:   "J. Kowalski",
		Date:      models.NewDate(2026, time.March, 14),
		User:      "auditor@example.com",
		Component: component,
		Question:  question,
		Result:    models.ResultYes,
		Comment:   "ok",
		Version:   "rev2",
	}
}

func TestLedgerAppendOrderAndFilter(t *testing.T) {
	ledger := newTestLedger(t)

	first := []models.AuditRecord{
		testRecord("Bracket-A", "Q1"),
		testRecord("Bracket-A", "Q2"),
		testRecord("Bracket-A", "Q3"),
	}
	second := []models.AuditRecord{
		testRecord("Shaft-12", "Q1"),
		testRecord("Shaft-12", "Q2"),
	}

	if err := ledger.Append(first); err != nil {
		t.Fatalf("First append failed: %v", err)
	}
	if err := ledger.Append(second); err != nil {
		t.Fatalf("Second append failed: %v", err)
	}

	rows, err := ledger.List("")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(rows) != len(first)+len(second) {
		t.Fatalf("Expected %d rows, got %d", len(first)+len(second), len(rows))
	}
	for i, want := range append(append([]models.AuditRecord{}, first...), second...) {
		if rows[i].ID != want.ID {
			t.Errorf("Row %d out of order: got %s, want %s", i, rows[i].ID, want.ID)
		}
	}

	// Filter by a component only present in the first batch
	filtered, err := ledger.List("Bracket-A")
	if err != nil {
		t.Fatalf("Filtered list failed: %v", err)
	}
	if len(filtered) != len(first) {
		t.Fatalf("Expected %d filtered rows, got %d", len(first), len(filtered))
	}
	for _, row := range filtered {
		if row.Component != "Bracket-A" {
			t.Errorf("Filter returned foreign component %q", row.Component)
		}
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	ledger := newTestLedger(t)

	records := []models.AuditRecord{
		testRecord("Bracket-A", "Is the documentation current?"),
		testRecord("Bracket-A", `Comment with "quotes", and commas`),
	}
	records[1].Result = models.ResultNA
	records[1].Comment = "line with, comma"

	if err := ledger.Append(records); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	rows, err := ledger.List("")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(rows) != len(records) {
		t.Fatalf("Expected %d rows, got %d", len(records), len(rows))
	}
	for i, want := range records {
		got := rows[i]
		if got.ID != want.ID || got.Auditor != want.Auditor || got.User != want.User ||
			got.Component != want.Component || got.Question != want.Question ||
			got.Result != want.Result || got.Comment != want.Comment || got.Version != want.Version {
			t.Errorf("Row %d mismatch:\n got %+v\nwant %+v", i, got, want)
		}
		if got.Date.String() != want.Date.String() {
			t.Errorf("Row %d date mismatch: got %s, want %s", i, got.Date, want.Date)
		}
	}
}

func TestLedgerPatchResult(t *testing.T) {
	ledger := newTestLedger(t)

	if err := ledger.Append([]models.AuditRecord{testRecord("Bracket-A", "Q1")}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if err := ledger.PatchResult(0, models.ResultNo); err != nil {
		t.Fatalf("PatchResult failed: %v", err)
	}
	rows, _ := ledger.List("")
	if rows[0].Result != models.ResultNo {
		t.Errorf("Expected patched result No, got %q", rows[0].Result)
	}
}

// TestLedgerPatchOutOfRange verifies a failed patch leaves the ledger file
// byte-identical.
func TestLedgerPatchOutOfRange(t *testing.T) {
	ledger := newTestLedger(t)

	if err := ledger.Append([]models.AuditRecord{testRecord("Bracket-A", "Q1")}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	before, err := os.ReadFile(ledger.path)
	if err != nil {
		t.Fatalf("Failed to read ledger file: %v", err)
	}

	if err := ledger.PatchResult(5, models.ResultYes); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Expected ErrIndexOutOfRange, got %v", err)
	}

	after, err := os.ReadFile(ledger.path)
	if err != nil {
		t.Fatalf("Failed to re-read ledger file: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Error("Ledger file changed after failed patch")
	}
}

func TestLedgerPatchByID(t *testing.T) {
	ledger := newTestLedger(t)

	records := []models.AuditRecord{testRecord("Bracket-A", "Q1"), testRecord("Bracket-A", "Q2")}
	if err := ledger.Append(records); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if err := ledger.PatchResultByID(records[1].ID, models.ResultNA); err != nil {
		t.Fatalf("PatchResultByID failed: %v", err)
	}
	rows, _ := ledger.List("")
	if rows[0].Result != models.ResultYes || rows[1].Result != models.ResultNA {
		t.Errorf("Wrong row patched: %q / %q", rows[0].Result, rows[1].Result)
	}

	if err := ledger.PatchResultByID("no-such-id", models.ResultYes); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// TestLedgerLegacyHeader verifies files written before the id column was
// introduced still load.
func TestLedgerLegacyHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audits.csv")
	legacy := "auditor,date,user,component,question,result,comment,version\n" +
		"J. Kowalski,2025-11-02,auditor@example.com,Bracket-A,Q1,Yes,,rev1\n"
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("Failed to seed legacy file: %v", err)
	}

	ledger := NewAuditLedger(path)
	rows, err := ledger.List("")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].ID == "" {
		t.Error("Legacy row should receive a generated ID")
	}
	if rows[0].Component != "Bracket-A" || rows[0].Result != "Yes" {
		t.Errorf("Legacy row fields wrong: %+v", rows[0])
	}
}
