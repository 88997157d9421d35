package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/masul-kr/artifact-keeper/internal/api/metrics"
	"github.com/masul-kr/artifact-keeper/internal/core/ports"
)

// ArtifactHandler handles HTTP requests for artifact operations.
type ArtifactHandler struct {
	service ports.ArtifactService
}

func NewArtifactHandler(service ports.ArtifactService) *ArtifactHandler {
	return &ArtifactHandler{service: service}
}

// FindByID handles GET /api/v1/artifacts/:id.
//
// @Summary      Get an artifact by id
// @Tags         artifacts
// @Produce      json
// @Param        id   path      string  true  "Artifact id"
// @Success      200  {object}  Result
// @Failure      404  {object}  Result
// @Router       /api/v1/artifacts/{id} [get]
func (h *ArtifactHandler) FindByID(c echo.Context) error {
	id := c.Param("id")

	detail, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	metrics.ArtifactLookupsTotal.WithLabelValues(id).Inc()
	return OK(c, "Find Success", toArtifactResponse(detail))
}

// List handles GET /api/v1/artifacts.
//
// @Summary      List artifacts
// @Tags         artifacts
// @Produce      json
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  Result
// @Router       /api/v1/artifacts [get]
func (h *ArtifactHandler) List(c echo.Context) error {
	page, limit := pageParams(c)

	result, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return OK(c, "Find all Success", toListArtifactsResponse(result))
}

// Search handles POST /api/v1/artifacts/search.
//
// @Summary      Search artifacts by criteria
// @Tags         artifacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int                     false  "Page number (1-based)"
// @Param        limit  query     int                     false  "Page size"
// @Param        body   body      searchArtifactsRequest  true   "Search criteria"
// @Success      200    {object}  Result
// @Router       /api/v1/artifacts/search [post]
func (h *ArtifactHandler) Search(c echo.Context) error {
	var req searchArtifactsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	page, limit := pageParams(c)
	result, err := h.service.Search(c.Request().Context(), ports.SearchArtifactsInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		OwnerName:   req.OwnerName,
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		return err
	}
	return OK(c, "Search Success", toListArtifactsResponse(result))
}

// Create handles POST /api/v1/artifacts.
//
// @Summary      Create an artifact
// @Tags         artifacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      artifactRequest  true  "Artifact details"
// @Success      200   {object}  Result
// @Failure      400   {object}  Result
// @Router       /api/v1/artifacts [post]
func (h *ArtifactHandler) Create(c echo.Context) error {
	var req artifactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	artifact, err := h.service.Create(c.Request().Context(), ports.ArtifactInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}

	metrics.ArtifactsCreatedTotal.Inc()
	return OK(c, "Add Success", toArtifactResponse(&ports.ArtifactDetail{Artifact: artifact}))
}

// Update handles PUT /api/v1/artifacts/:id. Ownership and creation time are
// never changed through this endpoint.
//
// @Summary      Update an artifact
// @Tags         artifacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Artifact id"
// @Param        body  body      artifactRequest  true  "Artifact details"
// @Success      200   {object}  Result
// @Failure      404   {object}  Result
// @Router       /api/v1/artifacts/{id} [put]
func (h *ArtifactHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var req artifactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	artifact, err := h.service.Update(c.Request().Context(), id, ports.ArtifactInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}
	return OK(c, "Update Success", toArtifactResponse(&ports.ArtifactDetail{Artifact: artifact}))
}

// Delete handles DELETE /api/v1/artifacts/:id.
//
// @Summary      Delete an artifact
// @Tags         artifacts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Artifact id"
// @Success      200  {object}  Result
// @Failure      404  {object}  Result
// @Router       /api/v1/artifacts/{id} [delete]
func (h *ArtifactHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return OK(c, "Delete Success", nil)
}

// Summarize handles GET /api/v1/artifacts/summary.
//
// @Summary      Summarize all artifacts
// @Tags         artifacts
// @Produce      json
// @Success      200  {object}  Result
// @Failure      500  {object}  Result
// @Router       /api/v1/artifacts/summary [get]
func (h *ArtifactHandler) Summarize(c echo.Context) error {
	summary, err := h.service.Summarize(c.Request().Context())
	if err != nil {
		return err
	}
	return OK(c, "Summarize Success", summary)
}
