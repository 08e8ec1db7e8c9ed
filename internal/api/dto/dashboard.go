package dto

import (
	"Manorakshak/internal/model"
	"time"
)

// DashboardDTO 仪表盘展示数据
type DashboardDTO struct {
	MoodScore        int                       `json:"moodScore"`
	SentimentTrend   []int                     `json:"sentimentTrend"`
	ContentBreakdown model.ContentBreakdown    `json:"contentBreakdown"`
	Alerts           []model.Alert             `json:"alerts"`
	CalmMode         bool                      `json:"calmMode"`
	Goals            []model.Goal              `json:"goals"`
	AnalyzedContent  []model.AnalyzedContent   `json:"analyzedContent"`
	VideoHistory     []model.VideoHistoryEntry `json:"videoHistory"`
	LastUpdated      time.Time                 `json:"lastUpdated"`
}

type MoodDTO struct {
	Score *int `json:"score" binding:"required"`
}

type MoodResultDTO struct {
	MoodScore int `json:"moodScore"`
}

type CalmModeDTO struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type CalmModeResultDTO struct {
	CalmMode bool `json:"calmMode"`
}
