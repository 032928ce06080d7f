package models

import "time"

// Profile is the authenticated user's profile as returned by /Usuario/perfil.
type Profile struct {
	UserID    ID     `json:"user_id"`
	RoleID    *int   `json:"rol_id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Age       int    `json:"edad"`
	Location  string `json:"ubicacion"`
	Details   struct {
		Specialty string `json:"especialidad"`
	} `json:"datos_especificos"`
}

// Identity is who the current session belongs to.
type Identity struct {
	SubjectID string
	RoleID    int
	// ExpiresAt is zero when the token does not carry an expiry.
	ExpiresAt time.Time
	// Source names how the identity was resolved: "claims" or "profile".
	Source string
}
