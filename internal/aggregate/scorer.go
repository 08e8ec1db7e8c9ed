package aggregate

import (
	"Manorakshak/internal/model"
	"math"
)

// ComputeScore 正向内容占比（0-100）。计数全为 0 时沿用 previous，避免除零
func ComputeScore(b model.ContentBreakdown, previous int) int {
	total := b.Total()
	if total <= 0 {
		return clampScore(previous)
	}
	score := int(math.Round(float64(b.Uplifting) / float64(total) * 100))
	return clampScore(score)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
