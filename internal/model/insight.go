package model

type InsightType string

const (
	InsightWarning    InsightType = "warning"
	InsightPositive   InsightType = "positive"
	InsightSuggestion InsightType = "suggestion"
)

type Insight struct {
	Type    InsightType `json:"type"`
	Message string      `json:"message"`
	Icon    string      `json:"icon"`
}

// Suggestion AI 给出的改进建议
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
