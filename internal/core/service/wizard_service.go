package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/masul-kr/artifact-keeper/internal/core/domain"
	"github.com/masul-kr/artifact-keeper/internal/core/ports"
)

// WizardService implements wizard CRUD and artifact ownership assignment.
type WizardService struct {
	wizards   ports.WizardRepository
	artifacts ports.ArtifactRepository
	logger    zerolog.Logger
}

func NewWizardService(wizards ports.WizardRepository, artifacts ports.ArtifactRepository, logger zerolog.Logger) *WizardService {
	return &WizardService{wizards: wizards, artifacts: artifacts, logger: logger}
}

func (s *WizardService) FindByID(ctx context.Context, id int) (*ports.WizardDetail, error) {
	wizard, err := s.wizards.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withArtifactCount(ctx, wizard)
}

func (s *WizardService) ListAll(ctx context.Context) ([]*ports.WizardDetail, error) {
	wizards, err := s.wizards.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]*ports.WizardDetail, 0, len(wizards))
	for _, w := range wizards {
		detail, err := s.withArtifactCount(ctx, w)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *WizardService) Create(ctx context.Context, in ports.WizardInput) (*domain.Wizard, error) {
	wizard := &domain.Wizard{Name: in.Name, Birthday: in.Birthday}

	created, err := s.wizards.Create(ctx, wizard)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("wizard_id", created.ID).Str("name", created.Name).Msg("wizard created")
	return created, nil
}

func (s *WizardService) Update(ctx context.Context, id int, in ports.WizardInput) (*domain.Wizard, error) {
	wizard, err := s.wizards.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	wizard.Name = in.Name
	wizard.Birthday = in.Birthday

	if err := s.wizards.Update(ctx, wizard); err != nil {
		return nil, err
	}
	return wizard, nil
}

// Delete detaches every owned artifact before removing the wizard, so no
// artifact is left pointing at a missing owner.
func (s *WizardService) Delete(ctx context.Context, id int) error {
	if _, err := s.wizards.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.artifacts.DetachAllFromOwner(ctx, id); err != nil {
		return err
	}
	return s.wizards.Delete(ctx, id)
}

// AssignArtifact makes the wizard the sole owner of the artifact. The
// artifact is looked up first, the wizard second, so a missing artifact
// surfaces even when the wizard id is also invalid. The artifact is detached
// from its current owner before being attached, including when it is being
// re-assigned to the same wizard.
func (s *WizardService) AssignArtifact(ctx context.Context, wizardID int, artifactID string) error {
	artifact, err := s.artifacts.FindByID(ctx, artifactID)
	if err != nil {
		return err
	}

	wizard, err := s.wizards.FindByID(ctx, wizardID)
	if err != nil {
		return err
	}

	if artifact.OwnerID != nil {
		if err := s.artifacts.SetOwner(ctx, artifact.ID, nil); err != nil {
			return err
		}
	}

	if err := s.artifacts.SetOwner(ctx, artifact.ID, &wizard.ID); err != nil {
		return err
	}

	s.logger.Info().
		Str("artifact_id", artifact.ID).
		Int("wizard_id", wizard.ID).
		Msg("artifact assigned")
	return nil
}

func (s *WizardService) withArtifactCount(ctx context.Context, wizard *domain.Wizard) (*ports.WizardDetail, error) {
	count, err := s.artifacts.CountByOwner(ctx, wizard.ID)
	if err != nil {
		return nil, err
	}
	return &ports.WizardDetail{Wizard: wizard, NumberOfArtifacts: count}, nil
}
