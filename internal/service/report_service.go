package service

import (
	"Manorakshak/internal/aggregate"
	"Manorakshak/internal/model"
	"Manorakshak/internal/pkg/llm"
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"unicode/utf8"
)

const (
	reportSampleItems  = 20
	reportSampleLength = 500
	summaryLength      = 100
)

// Assistant 大模型能力，为 nil 时全部走固定模板
type Assistant interface {
	Report(ctx context.Context, in *llm.WellbeingInput) (string, error)
	Suggestions(ctx context.Context, in *llm.WellbeingInput) ([]model.Suggestion, error)
	Summarize(ctx context.Context, content string) (string, error)
}

type ReportService interface {
	GenerateReport(ctx context.Context) string
	GetSuggestions(ctx context.Context) []model.Suggestion
	SummarizeContent(ctx context.Context, content string) (string, error)
}

type reportServiceImpl struct {
	store     *aggregate.Store
	assistant Assistant
}

func NewReportService(store *aggregate.Store, assistant Assistant) ReportService {
	return &reportServiceImpl{
		store:     store,
		assistant: assistant,
	}
}

// GenerateReport 模型不可用时返回模板报告，请求失败时返回简短提示
func (s *reportServiceImpl) GenerateReport(ctx context.Context) string {
	snapshot := s.store.Snapshot()
	if s.assistant == nil {
		return templateReport(&snapshot)
	}
	report, err := s.assistant.Report(ctx, wellbeingInput(&snapshot))
	if err != nil {
		log.WarnContext(ctx, "generate report fallback", "err", err)
		return fmt.Sprintf("AI report generation temporarily unavailable. Your mood score is %d%% today.", snapshot.MoodScore)
	}
	return report
}

func (s *reportServiceImpl) GetSuggestions(ctx context.Context) []model.Suggestion {
	if s.assistant == nil {
		return FallbackSuggestions()
	}
	snapshot := s.store.Snapshot()
	suggestions, err := s.assistant.Suggestions(ctx, wellbeingInput(&snapshot))
	if err != nil {
		log.WarnContext(ctx, "get suggestions fallback", "err", err)
		return FallbackSuggestions()
	}
	return suggestions
}

func (s *reportServiceImpl) SummarizeContent(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}
	if s.assistant == nil {
		return truncateSummary(content), nil
	}
	summary, err := s.assistant.Summarize(ctx, content)
	if err != nil {
		log.WarnContext(ctx, "summarize fallback", "err", err)
		return truncateSummary(content), nil
	}
	return summary, nil
}

// FallbackSuggestions 固定的五条建议
func FallbackSuggestions() []model.Suggestion {
	return []model.Suggestion{
		{Title: "Take Regular Breaks", Description: "Step away from screens every 30 minutes"},
		{Title: "Curate Your Feed", Description: "Unfollow accounts that post negative content"},
		{Title: "Set Time Limits", Description: "Use app timers to limit social media usage"},
		{Title: "Practice Mindfulness", Description: "Be conscious of how content makes you feel"},
		{Title: "Engage Positively", Description: "Like and share uplifting content"},
	}
}

func templateReport(state *model.UserState) string {
	recommendation := "Consider using Calm Mode and following more positive accounts."
	if state.MoodScore > 70 {
		recommendation = "Keep up the positive content consumption!"
	}
	b := state.ContentBreakdown
	return fmt.Sprintf(
		"Mental Wellbeing Report\n\nCurrent Status: Your mood score is %d%% today.\n\n"+
			"Content Analysis: You've consumed %d positive posts, %d negative posts, and %d toxic posts.\n\n"+
			"Recommendation: %s",
		state.MoodScore, b.Uplifting, b.Negative, b.Toxic, recommendation,
	)
}

func wellbeingInput(state *model.UserState) *llm.WellbeingInput {
	goals := make([]string, 0, len(state.Goals))
	for _, g := range state.Goals {
		goals = append(goals, g.Text)
	}

	recent := state.AnalyzedContent
	if len(recent) > reportSampleItems {
		recent = recent[len(recent)-reportSampleItems:]
	}
	texts := make([]string, 0, len(recent))
	for _, c := range recent {
		texts = append(texts, c.Text)
	}
	sample := strings.Join(texts, ". ")
	if utf8.RuneCountInString(sample) > reportSampleLength {
		sample = string([]rune(sample)[:reportSampleLength])
	}

	return &llm.WellbeingInput{
		MoodScore:     state.MoodScore,
		Breakdown:     state.ContentBreakdown,
		Goals:         goals,
		RecentContent: sample,
	}
}

func truncateSummary(content string) string {
	if utf8.RuneCountInString(content) <= summaryLength {
		return content
	}
	return string([]rune(content)[:summaryLength]) + "..."
}
