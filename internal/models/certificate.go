package models

// Certificate types accepted by the registry.
const (
	CertISO9001  = "ISO 9001"
	CertAS9100   = "AS9100"
	CertISO14001 = "ISO 14001"
)

// Certificate status values derived at read time, never persisted.
const (
	StatusOK       = "OK"
	StatusExpiring = "Expiring"
)

// CertificateRecord is one entry of the certificate registry.
type CertificateRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Issued  Date   `json:"issued"`
	Expires Date   `json:"expires"`
}

// CertificateWithStatus is a registry entry annotated with its derived
// expiry status for API output.
type CertificateWithStatus struct {
	CertificateRecord
	Status string `json:"status"`
}

// ValidCertType reports whether t is a recognized certificate type.
func ValidCertType(t string) bool {
	switch t {
	case CertISO9001, CertAS9100, CertISO14001:
		return true
	}
	return false
}
