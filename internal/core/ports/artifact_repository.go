package ports

import (
	"context"

	"github.com/masul-kr/artifact-keeper/internal/core/domain"
)

// ListArtifactsFilter carries all query parameters for listing artifacts.
type ListArtifactsFilter struct {
	ID          string // optional: exact id match
	Name        string // optional: case-insensitive contains
	Description string // optional: case-insensitive contains
	OwnerIDs    []int  // optional: restrict to these owners (resolved from owner name)
	Page        int    // 1-based
	Limit       int    // capped at 100 by the service
}

// ArtifactRepository defines persistence operations for artifacts.
type ArtifactRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Artifact, error)
	Create(ctx context.Context, artifact *domain.Artifact) error
	Update(ctx context.Context, artifact *domain.Artifact) error
	Delete(ctx context.Context, id string) error
	// List returns a page of artifacts matching filter, newest first, and the
	// total count.
	List(ctx context.Context, filter ListArtifactsFilter) ([]*domain.Artifact, int64, error)
	ListAll(ctx context.Context) ([]*domain.Artifact, error)
	// SetOwner updates only the owner reference of an artifact. A nil ownerID
	// detaches the artifact.
	SetOwner(ctx context.Context, id string, ownerID *int) error
	// DetachAllFromOwner clears the owner reference of every artifact owned by
	// the given wizard.
	DetachAllFromOwner(ctx context.Context, ownerID int) error
	CountByOwner(ctx context.Context, ownerID int) (int64, error)
	ListByOwner(ctx context.Context, ownerID int) ([]*domain.Artifact, error)
}
