package ports

import (
	"context"

	"github.com/masul-kr/artifact-keeper/internal/core/domain"
)

// ArtifactInput carries the mutable fields of an artifact.
type ArtifactInput struct {
	Name        string
	Description string
	ImageURL    string
}

// ArtifactDetail pairs an artifact with its resolved owner, if any.
type ArtifactDetail struct {
	Artifact *domain.Artifact
	Owner    *domain.Wizard
}

// SearchArtifactsInput carries the criteria of an artifact search.
type SearchArtifactsInput struct {
	ID          string
	Name        string
	Description string
	OwnerName   string
	Page        int
	Limit       int
}

// ListArtifactsResult is one page of artifacts.
type ListArtifactsResult struct {
	Items      []*ArtifactDetail
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ArtifactService implements artifact CRUD, criteria search and summarization.
type ArtifactService interface {
	FindByID(ctx context.Context, id string) (*ArtifactDetail, error)
	List(ctx context.Context, page, limit int) (*ListArtifactsResult, error)
	Search(ctx context.Context, in SearchArtifactsInput) (*ListArtifactsResult, error)
	Create(ctx context.Context, in ArtifactInput) (*domain.Artifact, error)
	Update(ctx context.Context, id string, in ArtifactInput) (*domain.Artifact, error)
	Delete(ctx context.Context, id string) error
	// Summarize asks the chat-completion provider for a short summary of all
	// stored artifacts.
	Summarize(ctx context.Context) (string, error)
}
