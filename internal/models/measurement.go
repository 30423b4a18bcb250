package models

// Measurement is one characteristic row of a parsed CMM measurement file.
// Values stay as strings; the report layer formats them verbatim.
type Measurement struct {
	Characteristic string `json:"characteristic"`
	Nominal        string `json:"nominal"`
	Measured       string `json:"measured"`
	Deviation      string `json:"deviation"`
	Status         string `json:"status"`
}
