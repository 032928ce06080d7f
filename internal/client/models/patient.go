package models

// Patient is the detail record of a single patient.
type Patient struct {
	Name              string  `json:"nombre"`
	Email             string  `json:"email"`
	Age               int     `json:"edad"`
	Weight            float64 `json:"peso"`
	Height            float64 `json:"altura"`
	PatientType       string  `json:"tipo_paciente"`
	ChronicConditions string  `json:"enfermedades_cronicas"`
}
