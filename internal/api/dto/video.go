package dto

import "Manorakshak/internal/model"

type VideoHistoryDTO struct {
	Title     string `json:"title" binding:"max=300"`
	Duration  int    `json:"duration" binding:"min=0"`
	Category  string `json:"category" binding:"max=64"`
	Sentiment string `json:"sentiment" binding:"omitempty,oneof=positive negative neutral toxic"`
	Platform  string `json:"platform" binding:"max=64"`
}

type VideoResultDTO struct {
	Video *model.VideoHistoryEntry `json:"video"`
}
