package domain

import "time"

// Wizard is the owning side of the artifact relationship. Ownership itself
// lives on the Artifact as a foreign key; the artifact collection of a wizard
// is derived by query, never stored on the wizard.
type Wizard struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Birthday time.Time `json:"birthday"`
}
