package aggregate

import (
	"Manorakshak/internal/model"
	"fmt"
	"math"
)

const (
	IconWarning    = "⚠️"
	IconPositive   = "🌟"
	IconSuggestion = "🧘"

	toxicShareThreshold  = 0.10
	positiveMoodScore    = 70
	recentWindow         = 10
	recentNegativeLimit  = 5
	positiveInsightText  = "Great job! Your content consumption is mostly positive today."
	mindfulBreakText     = "You've seen a lot of negative content recently. Take a mindful break."
	toxicInsightTemplate = "%d%% of your content is toxic. Consider using Calm Mode."
)

// GenerateInsights 根据当前状态生成提示，规则互相独立，顺序固定
func GenerateInsights(state model.UserState) []model.Insight {
	insights := make([]model.Insight, 0, 3)

	b := state.ContentBreakdown
	if total := b.Total(); total > 0 && float64(b.Toxic) > float64(total)*toxicShareThreshold {
		pct := int(math.Round(float64(b.Toxic) / float64(total) * 100))
		insights = append(insights, model.Insight{
			Type:    model.InsightWarning,
			Message: fmt.Sprintf(toxicInsightTemplate, pct),
			Icon:    IconWarning,
		})
	}

	if state.MoodScore > positiveMoodScore {
		insights = append(insights, model.Insight{
			Type:    model.InsightPositive,
			Message: positiveInsightText,
			Icon:    IconPositive,
		})
	}

	recent := state.AnalyzedContent
	if len(recent) > recentWindow {
		recent = recent[len(recent)-recentWindow:]
	}
	negative := 0
	for _, c := range recent {
		if c.Sentiment == model.SentimentNegative {
			negative++
		}
	}
	if negative > recentNegativeLimit {
		insights = append(insights, model.Insight{
			Type:    model.InsightSuggestion,
			Message: mindfulBreakText,
			Icon:    IconSuggestion,
		})
	}

	return insights
}
