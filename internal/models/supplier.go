package models

// Supplier evaluation scales.
const (
	QualityHigh   = "High"
	QualityMedium = "Medium"
	QualityLow    = "Low"

	DeliveryOnTime         = "OnTime"
	DeliverySometimesLate  = "SometimesLate"
	DeliveryFrequentlyLate = "FrequentlyLate"

	DocumentationFull         = "Full"
	DocumentationGaps         = "Gaps"
	DocumentationNonCompliant = "NonCompliant"
)

// SupplierEvaluation is one row of the supplier evaluation log.
type SupplierEvaluation struct {
	Supplier      string `json:"supplier"`
	EvaluatedBy   string `json:"evaluated_by"`
	Date          Date   `json:"date"`
	Quality       string `json:"quality"`
	Delivery      string `json:"delivery"`
	Documentation string `json:"documentation"`
	Comments      string `json:"comments,omitempty"`
}

// ValidQuality reports whether q is a recognized quality grade.
func ValidQuality(q string) bool {
	switch q {
	case QualityHigh, QualityMedium, QualityLow:
		return true
	}
	return false
}

// ValidDelivery reports whether d is a recognized delivery grade.
func ValidDelivery(d string) bool {
	switch d {
	case DeliveryOnTime, DeliverySometimesLate, DeliveryFrequentlyLate:
		return true
	}
	return false
}

// ValidDocumentation reports whether d is a recognized documentation grade.
func ValidDocumentation(d string) bool {
	switch d {
	case DocumentationFull, DocumentationGaps, DocumentationNonCompliant:
		return true
	}
	return false
}
