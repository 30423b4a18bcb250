package parse

import (
	"errors"
	"testing"
)

func TestParseCMMCSV(t *testing.T) {
	data := []byte("Characteristic,Nominal,Measured,Deviation,Status\n" +
		"Bore diameter,12.000,12.012,0.012,OK\n" +
		"Flatness,0.050,0.061,0.011,NOK\n")

	rows, err := ParseCMM(data, "report.CSV")
	if err != nil {
		t.Fatalf("ParseCMM failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Characteristic != "Bore diameter" || rows[0].Status != "OK" {
		t.Errorf("First row wrong: %+v", rows[0])
	}
	if rows[1].Deviation != "0.011" || rows[1].Status != "NOK" {
		t.Errorf("Second row wrong: %+v", rows[1])
	}
}

func TestParseCMMCSVColumnOrder(t *testing.T) {
	data := []byte("Status,Characteristic,Extra,Measured\n" +
		"OK,Bore diameter,ignored,12.012\n")

	rows, err := ParseCMM(data, "report.csv")
	if err != nil {
		t.Fatalf("ParseCMM failed: %v", err)
	}
	if rows[0].Characteristic != "Bore diameter" || rows[0].Measured != "12.012" {
		t.Errorf("Reordered columns not mapped: %+v", rows[0])
	}
	if rows[0].Nominal != "" {
		t.Errorf("Missing column should be empty, got %q", rows[0].Nominal)
	}
}

func TestParseCMMCSVMissingCharacteristic(t *testing.T) {
	data := []byte("Nominal,Measured\n1,2\n")
	if _, err := ParseCMM(data, "report.csv"); !errors.Is(err, ErrParse) {
		t.Errorf("Expected ErrParse, got %v", err)
	}
}

func TestParseDFQ(t *testing.T) {
	data := []byte("K0001 header line\n" +
		"CC,Bore diameter,12.000,12.012,0.012,mm,probe1,NOK\n" +
		"CC,short,line\n" +
		"CC,Flatness,0.050,0.061,0.011,mm\n" +
		"XX,Not a characteristic,1,2,3,4,5,6\n")

	rows, err := ParseCMM(data, "part.dfq")
	if err != nil {
		t.Fatalf("ParseCMM failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Characteristic != "Bore diameter" || rows[0].Status != "NOK" {
		t.Errorf("First row wrong: %+v", rows[0])
	}
	// Status column absent, defaults to "?"
	if rows[1].Characteristic != "Flatness" || rows[1].Status != "?" {
		t.Errorf("Second row wrong: %+v", rows[1])
	}
}

func TestParseDFQNoRecords(t *testing.T) {
	if _, err := ParseCMM([]byte("K0001 only headers\n"), "part.dfq"); !errors.Is(err, ErrParse) {
		t.Errorf("Expected ErrParse, got %v", err)
	}
}

func TestParseCMMUnsupportedExtension(t *testing.T) {
	if _, err := ParseCMM([]byte("anything"), "scan.pdf"); !errors.Is(err, ErrParse) {
		t.Errorf("Expected ErrParse, got %v", err)
	}
}
