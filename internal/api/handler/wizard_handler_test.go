package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/masul-kr/artifact-keeper/internal/core/domain"
	"github.com/masul-kr/artifact-keeper/internal/core/ports"
)

type stubWizardService struct {
	findByIDFn       func(ctx context.Context, id int) (*ports.WizardDetail, error)
	listAllFn        func(ctx context.Context) ([]*ports.WizardDetail, error)
	createFn         func(ctx context.Context, in ports.WizardInput) (*domain.Wizard, error)
	updateFn         func(ctx context.Context, id int, in ports.WizardInput) (*domain.Wizard, error)
	deleteFn         func(ctx context.Context, id int) error
	assignArtifactFn func(ctx context.Context, wizardID int, artifactID string) error
}

func (s *stubWizardService) FindByID(ctx context.Context, id int) (*ports.WizardDetail, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubWizardService) ListAll(ctx context.Context) ([]*ports.WizardDetail, error) {
	return s.listAllFn(ctx)
}

func (s *stubWizardService) Create(ctx context.Context, in ports.WizardInput) (*domain.Wizard, error) {
	return s.createFn(ctx, in)
}

func (s *stubWizardService) Update(ctx context.Context, id int, in ports.WizardInput) (*domain.Wizard, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubWizardService) Delete(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

func (s *stubWizardService) AssignArtifact(ctx context.Context, wizardID int, artifactID string) error {
	return s.assignArtifactFn(ctx, wizardID, artifactID)
}

func TestWizardHandler_AssignArtifact_Success(t *testing.T) {
	var gotWizardID int
	var gotArtifactID string
	stub := &stubWizardService{
		assignArtifactFn: func(ctx context.Context, wizardID int, artifactID string) error {
			gotWizardID = wizardID
			gotArtifactID = artifactID
			return nil
		},
	}
	h := NewWizardHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "")
	c.SetParamNames("wizardId", "artifactId")
	c.SetParamValues("2", "12301")

	if err := h.AssignArtifact(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotWizardID != 2 || gotArtifactID != "12301" {
		t.Fatalf("unexpected args: %d %s", gotWizardID, gotArtifactID)
	}

	var resp Result
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Flag || resp.Message != "Assign artifact Success" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestWizardHandler_AssignArtifact_ArtifactNotFound(t *testing.T) {
	stub := &stubWizardService{
		assignArtifactFn: func(ctx context.Context, wizardID int, artifactID string) error {
			return domain.NotFound("artifact", artifactID)
		},
	}
	h := NewWizardHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "")
	c.SetParamNames("wizardId", "artifactId")
	c.SetParamValues("2", "99999")

	err := h.AssignArtifact(c)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.Resource != "artifact" {
		t.Fatalf("expected artifact not found, got %v", err)
	}
}

func TestWizardHandler_AssignArtifact_InvalidWizardID(t *testing.T) {
	stub := &stubWizardService{
		assignArtifactFn: func(ctx context.Context, wizardID int, artifactID string) error {
			t.Fatalf("service should not be called")
			return nil
		},
	}
	h := NewWizardHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "")
	c.SetParamNames("wizardId", "artifactId")
	c.SetParamValues("abc", "12301")

	err := h.AssignArtifact(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestWizardHandler_Create_InvalidBirthday(t *testing.T) {
	stub := &stubWizardService{
		createFn: func(ctx context.Context, in ports.WizardInput) (*domain.Wizard, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewWizardHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, `{"name":"SuperMan","birthday":"24-02-1901"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
