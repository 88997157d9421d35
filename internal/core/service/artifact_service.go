package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/masul-kr/artifact-keeper/internal/core/domain"
	"github.com/masul-kr/artifact-keeper/internal/core/ports"
)

// ArtifactService implements artifact CRUD, criteria search and
// summarization via the chat-completion provider.
type ArtifactService struct {
	artifacts ports.ArtifactRepository
	wizards   ports.WizardRepository
	chat      ports.ChatClient
	logger    zerolog.Logger
}

func NewArtifactService(artifacts ports.ArtifactRepository, wizards ports.WizardRepository, chat ports.ChatClient, logger zerolog.Logger) *ArtifactService {
	return &ArtifactService{artifacts: artifacts, wizards: wizards, chat: chat, logger: logger}
}

func (s *ArtifactService) FindByID(ctx context.Context, id string) (*ports.ArtifactDetail, error) {
	artifact, err := s.artifacts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withOwner(ctx, artifact)
}

func (s *ArtifactService) List(ctx context.Context, page, limit int) (*ports.ListArtifactsResult, error) {
	return s.list(ctx, ports.ListArtifactsFilter{Page: page, Limit: limit})
}

// Search resolves an owner-name criterion to wizard ids, then delegates the
// remaining criteria to the repository filter.
func (s *ArtifactService) Search(ctx context.Context, in ports.SearchArtifactsInput) (*ports.ListArtifactsResult, error) {
	filter := ports.ListArtifactsFilter{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Page:        in.Page,
		Limit:       in.Limit,
	}

	if in.OwnerName != "" {
		ownerIDs, err := s.wizards.FindIDsByName(ctx, in.OwnerName)
		if err != nil {
			return nil, err
		}
		if len(ownerIDs) == 0 {
			page, limit := normalizePage(in.Page, in.Limit)
			return &ports.ListArtifactsResult{Items: []*ports.ArtifactDetail{}, Page: page, Limit: limit}, nil
		}
		filter.OwnerIDs = ownerIDs
	}

	return s.list(ctx, filter)
}

func (s *ArtifactService) Create(ctx context.Context, in ports.ArtifactInput) (*domain.Artifact, error) {
	artifact := &domain.Artifact{
		ID:          generateArtifactID(),
		Name:        in.Name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.artifacts.Create(ctx, artifact); err != nil {
		return nil, err
	}

	s.logger.Info().Str("artifact_id", artifact.ID).Str("name", artifact.Name).Msg("artifact created")
	return artifact, nil
}

func (s *ArtifactService) Update(ctx context.Context, id string, in ports.ArtifactInput) (*domain.Artifact, error) {
	artifact, err := s.artifacts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	artifact.Name = in.Name
	artifact.Description = in.Description
	artifact.ImageURL = in.ImageURL

	if err := s.artifacts.Update(ctx, artifact); err != nil {
		return nil, err
	}
	return artifact, nil
}

func (s *ArtifactService) Delete(ctx context.Context, id string) error {
	if _, err := s.artifacts.FindByID(ctx, id); err != nil {
		return err
	}
	return s.artifacts.Delete(ctx, id)
}

// Summarize serializes every stored artifact and asks the chat-completion
// provider for a short summary of the collection.
func (s *ArtifactService) Summarize(ctx context.Context) (string, error) {
	artifacts, err := s.artifacts.ListAll(ctx)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(artifacts)
	if err != nil {
		return "", err
	}

	summary, err := s.chat.Generate(ctx, []ports.ChatMessage{
		{Role: "system", Content: "Summarize the following artifact collection in a short paragraph."},
		{Role: "user", Content: string(payload)},
	})
	if err != nil {
		return "", err
	}

	s.logger.Info().Int("artifact_count", len(artifacts)).Msg("artifacts summarized")
	return summary, nil
}

func (s *ArtifactService) list(ctx context.Context, filter ports.ListArtifactsFilter) (*ports.ListArtifactsResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	artifacts, total, err := s.artifacts.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*ports.ArtifactDetail, 0, len(artifacts))
	for _, a := range artifacts {
		detail, err := s.withOwner(ctx, a)
		if err != nil {
			return nil, err
		}
		items = append(items, detail)
	}

	return &ports.ListArtifactsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func (s *ArtifactService) withOwner(ctx context.Context, artifact *domain.Artifact) (*ports.ArtifactDetail, error) {
	detail := &ports.ArtifactDetail{Artifact: artifact}
	if artifact.OwnerID == nil {
		return detail, nil
	}

	owner, err := s.wizards.FindByID(ctx, *artifact.OwnerID)
	if err != nil {
		if domain.IsNotFound(err) {
			// Owner was deleted out from under the artifact; treat as unowned.
			return detail, nil
		}
		return nil, err
	}
	detail.Owner = owner
	return detail, nil
}

// generateArtifactID returns a random 18-digit decimal id. Artifact ids are
// assigned centrally rather than by the store.
func generateArtifactID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%018d", time.Now().UnixNano())
	}
	n := binary.BigEndian.Uint64(b[:]) % 1_000_000_000_000_000_000
	return fmt.Sprintf("%018d", n)
}
