package service

import (
	"Manorakshak/internal/aggregate"
	"Manorakshak/internal/model"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReport(t *testing.T, assistant Assistant) (ReportService, *aggregate.Store) {
	t.Helper()
	store := aggregate.NewStore(model.DefaultUserID, aggregate.DefaultLimits())
	return NewReportService(store, assistant), store
}

func TestReportService_TemplateReport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		mood           int
		recommendation string
	}{
		{name: "low mood", mood: 60, recommendation: "Consider using Calm Mode and following more positive accounts."},
		{name: "boundary", mood: 70, recommendation: "Consider using Calm Mode and following more positive accounts."},
		{name: "high mood", mood: 85, recommendation: "Keep up the positive content consumption!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, store := newTestReport(t, nil)
			store.SetMoodScore(tt.mood)

			want := fmt.Sprintf("Mental Wellbeing Report\n\nCurrent Status: Your mood score is %d%% today.\n\n"+
				"Content Analysis: You've consumed 40 positive posts, 25 negative posts, and 5 toxic posts.\n\n"+
				"Recommendation: %s", tt.mood, tt.recommendation)
			assert.Equal(t, want, svc.GenerateReport(context.Background()))
		})
	}
}

func TestReportService_ReportFromAssistant(t *testing.T) {
	t.Parallel()

	assistant := &fakeAssistant{report: "All good."}
	svc, store := newTestReport(t, assistant)
	store.AddGoal("cooking")
	for i := 0; i < 25; i++ {
		_, err := store.ApplyClassification(model.SentimentNeutral, "YouTube", "", fmt.Sprintf("item %d", i))
		require.NoError(t, err)
	}

	assert.Equal(t, "All good.", svc.GenerateReport(context.Background()))
	require.NotNil(t, assistant.lastInput)
	assert.Equal(t, []string{"cooking"}, assistant.lastInput.Goals)
	assert.True(t, strings.HasPrefix(assistant.lastInput.RecentContent, "item 5. item 6"))
}

func TestReportService_ReportAssistantFailure(t *testing.T) {
	t.Parallel()

	svc, _ := newTestReport(t, &fakeAssistant{err: errFake})
	assert.Equal(t, "AI report generation temporarily unavailable. Your mood score is 60% today.",
		svc.GenerateReport(context.Background()))
}

func TestReportService_Suggestions(t *testing.T) {
	t.Parallel()

	svc, _ := newTestReport(t, nil)
	got := svc.GetSuggestions(context.Background())
	require.Len(t, got, 5)
	assert.Equal(t, "Take Regular Breaks", got[0].Title)

	svc, _ = newTestReport(t, &fakeAssistant{err: errFake})
	assert.Equal(t, FallbackSuggestions(), svc.GetSuggestions(context.Background()))

	custom := []model.Suggestion{{Title: "Walk", Description: "Go outside"}}
	svc, _ = newTestReport(t, &fakeAssistant{suggestions: custom})
	assert.Equal(t, custom, svc.GetSuggestions(context.Background()))
}

func TestReportService_SummarizeContent(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 150)
	tests := []struct {
		name      string
		assistant Assistant
		content   string
		want      string
		wantErr   error
	}{
		{name: "empty", content: " ", wantErr: ErrEmptyContent},
		{name: "short fallback", content: "short text", want: "short text"},
		{name: "long fallback", content: long, want: strings.Repeat("a", 100) + "..."},
		{name: "assistant", assistant: &fakeAssistant{summary: "A summary."}, content: long, want: "A summary."},
		{name: "assistant failure", assistant: &fakeAssistant{err: errFake}, content: long, want: strings.Repeat("a", 100) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newTestReport(t, tt.assistant)
			got, err := svc.SummarizeContent(context.Background(), tt.content)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
