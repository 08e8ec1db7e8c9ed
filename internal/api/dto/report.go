package dto

import "Manorakshak/internal/model"

type SummarizeDTO struct {
	Content string `json:"content" binding:"required"`
}

type ReportDTO struct {
	Report string `json:"report"`
}

type SuggestionsDTO struct {
	Suggestions []model.Suggestion `json:"suggestions"`
}

type SummaryDTO struct {
	Summary string `json:"summary"`
}
