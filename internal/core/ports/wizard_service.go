package ports

import (
	"context"
	"time"

	"github.com/masul-kr/artifact-keeper/internal/core/domain"
)

// WizardInput carries the mutable fields of a wizard.
type WizardInput struct {
	Name     string
	Birthday time.Time
}

// WizardDetail pairs a wizard with its derived artifact count.
type WizardDetail struct {
	Wizard            *domain.Wizard
	NumberOfArtifacts int64
}

// WizardService implements wizard CRUD and artifact ownership assignment.
type WizardService interface {
	FindByID(ctx context.Context, id int) (*WizardDetail, error)
	ListAll(ctx context.Context) ([]*WizardDetail, error)
	Create(ctx context.Context, in WizardInput) (*domain.Wizard, error)
	Update(ctx context.Context, id int, in WizardInput) (*domain.Wizard, error)
	// Delete detaches all owned artifacts before removing the wizard.
	Delete(ctx context.Context, id int) error
	// AssignArtifact makes the wizard the sole owner of the artifact. The
	// artifact is looked up before the wizard, and is detached from any
	// current owner before being attached.
	AssignArtifact(ctx context.Context, wizardID int, artifactID string) error
}
