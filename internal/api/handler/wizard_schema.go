package handler

import "github.com/masul-kr/artifact-keeper/internal/core/domain"

// birthdayFormat is the wire format for wizard birthdays.
const birthdayFormat = "2006-01-02"

type wizardRequest struct {
	Name     string `json:"name"     validate:"required"`
	Birthday string `json:"birthday" validate:"required,datetime=2006-01-02"`
}

type wizardResponse struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Birthday          string `json:"birthday"`
	NumberOfArtifacts int64  `json:"numberOfArtifacts"`
}

func toWizardResponse(w *domain.Wizard, numberOfArtifacts int64) wizardResponse {
	return wizardResponse{
		ID:                w.ID,
		Name:              w.Name,
		Birthday:          w.Birthday.Format(birthdayFormat),
		NumberOfArtifacts: numberOfArtifacts,
	}
}
