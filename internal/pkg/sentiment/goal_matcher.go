package sentiment

import (
	"Manorakshak/internal/model"
	"strings"
)

// MatchesGoal 文本包含任一目标中的任一单词（子串匹配）即视为命中。
// 短词会过度匹配，例如 "run" 会命中 "brunch"。
func MatchesGoal(text string, goals []model.Goal) bool {
	if len(goals) == 0 {
		return false
	}
	lower := strings.ToLower(text)
	for _, goal := range goals {
		for _, word := range strings.Fields(strings.ToLower(goal.Text)) {
			if strings.Contains(lower, word) {
				return true
			}
		}
	}
	return false
}
