package aggregate

import (
	"Manorakshak/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVideoAnalytics_Empty(t *testing.T) {
	t.Parallel()

	got := BuildVideoAnalytics(nil, time.Now())

	assert.Zero(t, got.TotalVideos)
	assert.Zero(t, got.TotalWatchTime)
	assert.Empty(t, got.DailyStats)
	assert.Empty(t, got.WeeklyTrend)
	assert.Equal(t, map[model.Sentiment]int{
		model.SentimentPositive: 0,
		model.SentimentNegative: 0,
		model.SentimentNeutral:  0,
		model.SentimentToxic:    0,
	}, got.SentimentBreakdown)
}

func TestBuildVideoAnalytics(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 14, 23, 0, 0, 0, time.UTC)
	videos := []model.VideoHistoryEntry{
		{Title: "a", Duration: 60, Category: "Music", Sentiment: model.SentimentPositive, Platform: "YouTube", Date: "2025-03-14"},
		{Title: "b", Duration: 30, Category: "Music", Sentiment: model.SentimentNegative, Platform: "YouTube", Date: "2025-03-14"},
		{Title: "c", Duration: 10, Category: "News", Sentiment: model.SentimentToxic, Platform: "Instagram", Date: "2025-03-08"},
		{Title: "d", Duration: 5, Category: "News", Sentiment: model.SentimentNeutral, Platform: "Instagram", Date: "2025-03-01"},
	}

	got := BuildVideoAnalytics(videos, now)

	assert.Equal(t, 4, got.TotalVideos)
	assert.Equal(t, 105, got.TotalWatchTime)
	assert.Equal(t, map[string]int{"Music": 2, "News": 2}, got.CategoryBreakdown)
	assert.Equal(t, map[string]int{"YouTube": 2, "Instagram": 2}, got.PlatformStats)
	assert.Equal(t, 1, got.SentimentBreakdown[model.SentimentToxic])

	require.Len(t, got.DailyStats, 7)
	require.Len(t, got.WeeklyTrend, 7)
	assert.Equal(t, model.DailyVideoStat{Date: "2025-03-08", Videos: 1, WatchTime: 10, AvgSentiment: 10}, got.DailyStats[0])
	assert.Equal(t, model.DailyVideoStat{Date: "2025-03-10", Videos: 0, WatchTime: 0, AvgSentiment: 50}, got.DailyStats[2])
	assert.Equal(t, model.DailyVideoStat{Date: "2025-03-14", Videos: 2, WatchTime: 90, AvgSentiment: 50}, got.DailyStats[6])
	assert.Equal(t, model.TrendPoint{Date: "2025-03-14", Value: 2}, got.WeeklyTrend[6])
}
