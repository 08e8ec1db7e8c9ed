package dto

import "Manorakshak/internal/model"

type AnalyzeContentDTO struct {
	Text        string `json:"text" binding:"required,max=10000"`
	Platform    string `json:"platform" binding:"required,max=64"`
	ContentType string `json:"contentType" binding:"omitempty,max=32"`
}

type AnalyzeResultDTO struct {
	Sentiment model.Sentiment `json:"sentiment"`
	Updated   bool            `json:"updated"`
}

type AddAlertDTO struct {
	Message  string `json:"message" binding:"required,max=500"`
	Type     string `json:"type" binding:"required,oneof=warning critical info"`
	Platform string `json:"platform" binding:"max=64"`
}

type AlertResultDTO struct {
	Alert *model.Alert `json:"alert"`
}

// InsightsDTO 洞察 + 最近分析过的内容
type InsightsDTO struct {
	Insights        []model.Insight         `json:"insights"`
	AnalyzedContent []model.AnalyzedContent `json:"analyzedContent"`
}
