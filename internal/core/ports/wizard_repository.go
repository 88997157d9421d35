package ports

import (
	"context"

	"github.com/masul-kr/artifact-keeper/internal/core/domain"
)

// WizardRepository defines persistence operations for wizards.
type WizardRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Wizard, error)
	// FindIDsByName returns the ids of wizards whose name matches
	// case-insensitively. Used to resolve owner-name search criteria.
	FindIDsByName(ctx context.Context, name string) ([]int, error)
	Create(ctx context.Context, wizard *domain.Wizard) (*domain.Wizard, error)
	Update(ctx context.Context, wizard *domain.Wizard) error
	Delete(ctx context.Context, id int) error
	ListAll(ctx context.Context) ([]*domain.Wizard, error)
}
