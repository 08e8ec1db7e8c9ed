package sentiment

import (
	"Manorakshak/internal/model"
	"strings"
)

// Classifier 基于关键词的情感分类器，并发安全
type Classifier struct {
	lexicon *Lexicon
}

func NewClassifier(lexicon *Lexicon) *Classifier {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &Classifier{lexicon: lexicon}
}

// Counts 各词表命中次数
type Counts struct {
	Positive int
	Negative int
	Toxic    int
	Fighting int
}

// Count 统计文本命中各词表的次数
func (c *Classifier) Count(text string) Counts {
	var counts Counts
	for _, word := range strings.Fields(strings.ToLower(text)) {
		token := stripNonLetters(word)
		if token == "" {
			continue
		}
		if _, ok := c.lexicon.positive[token]; ok {
			counts.Positive++
		}
		if _, ok := c.lexicon.negative[token]; ok {
			counts.Negative++
		}
		if _, ok := c.lexicon.toxic[token]; ok {
			counts.Toxic++
		}
		if _, ok := c.lexicon.fighting[token]; ok {
			counts.Fighting++
		}
	}
	return counts
}

// Classify 判定顺序即优先级：toxic > 格斗内容 > 目标匹配 > 正负词数量
func (c *Classifier) Classify(text string, goals []model.Goal) model.Sentiment {
	counts := c.Count(text)

	switch {
	case counts.Toxic > 0:
		return model.SentimentToxic
	case counts.Fighting > 1:
		return model.SentimentNegative
	case MatchesGoal(text, goals):
		return model.SentimentPositive
	case counts.Positive > counts.Negative+1:
		return model.SentimentPositive
	case counts.Negative > counts.Positive+1:
		return model.SentimentNegative
	case counts.Positive > 0 && counts.Negative == 0:
		return model.SentimentPositive
	case counts.Negative > 0 && counts.Positive == 0:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

func stripNonLetters(word string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return r
		}
		return -1
	}, word)
}
