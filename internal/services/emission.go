package services

import (
	"errors"
	"fmt"
	"sort"
)

// Emission calculation errors.
var (
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrUnknownCategory = errors.New("unknown category")
)

// emissionFactors is the canonical factor table, kg CO2-equivalent per
// unit. The desk variants disagreed on several values; this table is the
// single set this service computes with (see DESIGN.md for the selection).
var emissionFactors = map[string]float64{
	"electricity_kwh": 0.65,  // kg / kWh
	"heating_kwh":     0.27,  // kg / kWh
	"vehicle_km":      0.17,  // kg / km
	"flight_hours":    90.0,  // kg / h
	"waste_kg":        0.45,  // kg / kg
	"diesel_liters":   2.68,  // kg / l
	"steel_kg":        1.85,  // kg / kg
	"aluminum_kg":     8.24,  // kg / kg
	"transport_tkm":   0.062, // kg / tonne-km
}

// EmissionContribution is one category line of a calculation result.
type EmissionContribution struct {
	Category string  `json:"category"`
	Quantity float64 `json:"quantity"`
	Factor   float64 `json:"factor"`
	Emission float64 `json:"emission_kg"`
}

// EmissionFactors returns a copy of the factor table for the factors
// endpoint.
func EmissionFactors() map[string]float64 {
	factors := make(map[string]float64, len(emissionFactors))
	for category, factor := range emissionFactors {
		factors[category] = factor
	}
	return factors
}

// CalculateEmissions maps input quantities to per-category CO2-equivalent
// contributions and their total. Pure arithmetic: no state, no I/O.
// Negative quantities fail with ErrInvalidQuantity, categories outside the
// factor table with ErrUnknownCategory; on failure no partial result is
// returned.
func CalculateEmissions(quantities map[string]float64) ([]EmissionContribution, float64, error) {
	categories := make([]string, 0, len(quantities))
	for category := range quantities {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	contributions := make([]EmissionContribution, 0, len(categories))
	var total float64

	for _, category := range categories {
		quantity := quantities[category]
		factor, ok := emissionFactors[category]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
		}
		if quantity < 0 {
			return nil, 0, fmt.Errorf("%w: %s = %v", ErrInvalidQuantity, category, quantity)
		}

		emission := quantity * factor
		contributions = append(contributions, EmissionContribution{
			Category: category,
			Quantity: quantity,
			Factor:   factor,
			Emission: emission,
		})
		total += emission
	}

	return contributions, total, nil
}
