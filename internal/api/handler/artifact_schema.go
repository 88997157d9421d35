package handler

import (
	"time"

	"github.com/masul-kr/artifact-keeper/internal/core/ports"
)

type artifactRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"imageUrl"    validate:"required"`
}

type searchArtifactsRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerName   string `json:"ownerName"`
}

type artifactResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	CreatedAt   time.Time       `json:"createdAt"`
	Owner       *wizardResponse `json:"owner,omitempty"`
}

func toArtifactResponse(detail *ports.ArtifactDetail) artifactResponse {
	resp := artifactResponse{
		ID:          detail.Artifact.ID,
		Name:        detail.Artifact.Name,
		Description: detail.Artifact.Description,
		ImageURL:    detail.Artifact.ImageURL,
		CreatedAt:   detail.Artifact.CreatedAt,
	}
	if detail.Owner != nil {
		owner := toWizardResponse(detail.Owner, 0)
		resp.Owner = &owner
	}
	return resp
}

type listArtifactsResponse struct {
	Items      []artifactResponse `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"totalPages"`
}

func toListArtifactsResponse(result *ports.ListArtifactsResult) listArtifactsResponse {
	items := make([]artifactResponse, 0, len(result.Items))
	for _, detail := range result.Items {
		items = append(items, toArtifactResponse(detail))
	}
	return listArtifactsResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}
}
