package llm

import (
	"Manorakshak/internal/model"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strings"

	"github.com/goccy/go-json"
)

const (
	defaultReportPrompt = `You are a digital wellbeing coach. Generate a mental wellbeing report from the data the user sends.
Provide a 3-paragraph report covering:
1. Current mental health status
2. Content consumption patterns
3. Recommendations for improvement`

	defaultSuggestionsPrompt = `You are a digital wellbeing coach. Based on the mental wellbeing data the user sends, provide 5 specific actionable suggestions.
Format as a JSON array with objects containing 'title' and 'description' fields.
Focus on practical digital wellness tips. Reply with the JSON array only.`

	defaultSummaryPrompt = `Summarize the social media content the user sends in 2-3 sentences, focusing on the main sentiment and key points.`
)

var ErrInvalidSuggestions = errors.New("invalid suggestions format")

// WellbeingInput 生成报告和建议时发送给模型的数据
type WellbeingInput struct {
	MoodScore     int
	Breakdown     model.ContentBreakdown
	Goals         []string
	RecentContent string
}

func (in *WellbeingInput) reportMessage() string {
	return fmt.Sprintf(
		"- Mood Score: %d%%\n- Content Breakdown: %d positive, %d negative, %d toxic\n- Goals: %s\n- Recent Content Sample: %s",
		in.MoodScore,
		in.Breakdown.Uplifting, in.Breakdown.Negative, in.Breakdown.Toxic,
		strings.Join(in.Goals, ", "),
		in.RecentContent,
	)
}

func (in *WellbeingInput) suggestionsMessage() string {
	return fmt.Sprintf(
		"- Current mood score: %d%%\n- Goals: %s\n- Negative content: %d\n- Toxic content: %d",
		in.MoodScore,
		strings.Join(in.Goals, ", "),
		in.Breakdown.Negative, in.Breakdown.Toxic,
	)
}

// Assistant 报告、建议、摘要三类请求
type Assistant struct{}

func NewAssistant() *Assistant {
	return &Assistant{}
}

// Report 生成心理健康报告
func (a *Assistant) Report(ctx context.Context, in *WellbeingInput) (string, error) {
	resp, err := fetchModel(ctx, reportPrompt, in.reportMessage(), temperature)
	if err != nil {
		log.ErrorContext(ctx, "AI大模型请求失败", "err", err)
		return "", err
	}
	return firstChoice(resp)
}

// Suggestions 生成改进建议
func (a *Assistant) Suggestions(ctx context.Context, in *WellbeingInput) ([]model.Suggestion, error) {
	resp, err := fetchModel(ctx, suggestionsPrompt, in.suggestionsMessage(), temperature)
	if err != nil {
		log.ErrorContext(ctx, "AI大模型请求失败", "err", err)
		return nil, err
	}
	content, err := firstChoice(resp)
	if err != nil {
		return nil, err
	}
	suggestions, err := ParseSuggestions(content)
	if err != nil {
		log.ErrorContext(ctx, "AI大模型返回数据解析失败", "err", err)
		return nil, err
	}
	return suggestions, nil
}

// Summarize 内容摘要
func (a *Assistant) Summarize(ctx context.Context, content string) (string, error) {
	resp, err := fetchModel(ctx, summaryPrompt, content, temperature)
	if err != nil {
		log.ErrorContext(ctx, "AI大模型请求失败", "err", err)
		return "", err
	}
	return firstChoice(resp)
}

// ParseSuggestions 解析模型返回的 JSON 数组，空标题的条目丢弃
func ParseSuggestions(text string) ([]model.Suggestion, error) {
	var raw []model.Suggestion
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &raw); err != nil {
		return nil, err
	}
	suggestions := make([]model.Suggestion, 0, len(raw))
	for _, s := range raw {
		if strings.TrimSpace(s.Title) == "" {
			continue
		}
		suggestions = append(suggestions, s)
	}
	if len(suggestions) == 0 {
		return nil, ErrInvalidSuggestions
	}
	return suggestions, nil
}
