package services

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateEmissionsSingleCategory(t *testing.T) {
	contributions, total, err := CalculateEmissions(map[string]float64{
		"electricity_kwh": 100,
		"steel_kg":        0,
		"diesel_liters":   0,
		"vehicle_km":      0,
	})
	if err != nil {
		t.Fatalf("CalculateEmissions failed: %v", err)
	}

	want := 100 * emissionFactors["electricity_kwh"]
	if math.Abs(total-want) > 1e-9 {
		t.Errorf("Expected total %v, got %v", want, total)
	}

	for _, c := range contributions {
		if c.Category != "electricity_kwh" && c.Emission != 0 {
			t.Errorf("Category %s should contribute nothing, got %v", c.Category, c.Emission)
		}
	}
}

func TestCalculateEmissionsTotalIsSum(t *testing.T) {
	quantities := map[string]float64{
		"electricity_kwh": 120.5,
		"heating_kwh":     300,
		"transport_tkm":   42,
	}
	contributions, total, err := CalculateEmissions(quantities)
	if err != nil {
		t.Fatalf("CalculateEmissions failed: %v", err)
	}
	if len(contributions) != len(quantities) {
		t.Fatalf("Expected %d contributions, got %d", len(quantities), len(contributions))
	}

	var sum float64
	for _, c := range contributions {
		if math.Abs(c.Emission-c.Quantity*c.Factor) > 1e-9 {
			t.Errorf("Contribution %s is not quantity*factor: %+v", c.Category, c)
		}
		sum += c.Emission
	}
	if math.Abs(total-sum) > 1e-9 {
		t.Errorf("Total %v does not equal sum %v", total, sum)
	}
}

func TestCalculateEmissionsNegativeQuantity(t *testing.T) {
	_, _, err := CalculateEmissions(map[string]float64{"waste_kg": -1})
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("Expected ErrInvalidQuantity, got %v", err)
	}
}

func TestCalculateEmissionsUnknownCategory(t *testing.T) {
	_, _, err := CalculateEmissions(map[string]float64{"uranium_kg": 3})
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Expected ErrUnknownCategory, got %v", err)
	}
}
