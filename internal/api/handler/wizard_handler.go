package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/masul-kr/artifact-keeper/internal/core/ports"
)

// WizardHandler handles HTTP requests for wizard operations.
type WizardHandler struct {
	service ports.WizardService
}

func NewWizardHandler(service ports.WizardService) *WizardHandler {
	return &WizardHandler{service: service}
}

func parseBirthday(value string) (time.Time, error) {
	birthday, err := time.Parse(birthdayFormat, value)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "birthday must match the format "+birthdayFormat)
	}
	return birthday, nil
}

// FindByID handles GET /api/v1/wizards/:id.
//
// @Summary      Get a wizard by id
// @Tags         wizards
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Wizard id"
// @Success      200  {object}  Result
// @Failure      404  {object}  Result
// @Router       /api/v1/wizards/{id} [get]
func (h *WizardHandler) FindByID(c echo.Context) error {
	id, err := pathIntParam(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return OK(c, "Find Success", toWizardResponse(detail.Wizard, detail.NumberOfArtifacts))
}

// List handles GET /api/v1/wizards.
//
// @Summary      List all wizards
// @Tags         wizards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Result
// @Router       /api/v1/wizards [get]
func (h *WizardHandler) List(c echo.Context) error {
	details, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]wizardResponse, 0, len(details))
	for _, detail := range details {
		items = append(items, toWizardResponse(detail.Wizard, detail.NumberOfArtifacts))
	}
	return OK(c, "Find all Success", items)
}

// Create handles POST /api/v1/wizards.
//
// @Summary      Create a wizard
// @Tags         wizards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      wizardRequest  true  "Wizard details"
// @Success      200   {object}  Result
// @Failure      400   {object}  Result
// @Router       /api/v1/wizards [post]
func (h *WizardHandler) Create(c echo.Context) error {
	var req wizardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return err
	}

	wizard, err := h.service.Create(c.Request().Context(), ports.WizardInput{Name: req.Name, Birthday: birthday})
	if err != nil {
		return err
	}
	return OK(c, "Add Success", toWizardResponse(wizard, 0))
}

// Update handles PUT /api/v1/wizards/:id.
//
// @Summary      Update a wizard
// @Tags         wizards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Wizard id"
// @Param        body  body      wizardRequest  true  "Wizard details"
// @Success      200   {object}  Result
// @Failure      404   {object}  Result
// @Router       /api/v1/wizards/{id} [put]
func (h *WizardHandler) Update(c echo.Context) error {
	id, err := pathIntParam(c, "id")
	if err != nil {
		return err
	}

	var req wizardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return err
	}

	wizard, err := h.service.Update(c.Request().Context(), id, ports.WizardInput{Name: req.Name, Birthday: birthday})
	if err != nil {
		return err
	}

	detail, err := h.service.FindByID(c.Request().Context(), wizard.ID)
	if err != nil {
		return err
	}
	return OK(c, "Update Success", toWizardResponse(detail.Wizard, detail.NumberOfArtifacts))
}

// Delete handles DELETE /api/v1/wizards/:id. Owned artifacts are detached,
// not deleted.
//
// @Summary      Delete a wizard
// @Tags         wizards
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Wizard id"
// @Success      200  {object}  Result
// @Failure      404  {object}  Result
// @Router       /api/v1/wizards/{id} [delete]
func (h *WizardHandler) Delete(c echo.Context) error {
	id, err := pathIntParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return OK(c, "Delete Success", nil)
}

// AssignArtifact handles PUT /api/v1/wizards/:wizardId/artifacts/:artifactId.
//
// @Summary      Assign an artifact to a wizard
// @Tags         wizards
// @Produce      json
// @Security     BearerAuth
// @Param        wizardId    path      int     true  "Wizard id"
// @Param        artifactId  path      string  true  "Artifact id"
// @Success      200         {object}  Result
// @Failure      404         {object}  Result
// @Router       /api/v1/wizards/{wizardId}/artifacts/{artifactId} [put]
func (h *WizardHandler) AssignArtifact(c echo.Context) error {
	wizardID, err := pathIntParam(c, "wizardId")
	if err != nil {
		return err
	}
	artifactID := c.Param("artifactId")

	if err := h.service.AssignArtifact(c.Request().Context(), wizardID, artifactID); err != nil {
		return err
	}
	return OK(c, "Assign artifact Success", nil)
}
