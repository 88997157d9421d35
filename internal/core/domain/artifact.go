package domain

import "time"

// Artifact is a collectible item, optionally owned by a single wizard.
// OwnerID is nil while the artifact is unowned.
type Artifact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	OwnerID     *int      `json:"ownerId,omitempty"`
}
