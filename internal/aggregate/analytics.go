package aggregate

import (
	"Manorakshak/internal/model"
	"math"
	"time"
)

const analyticsDays = 7

var sentimentWeights = map[model.Sentiment]int{
	model.SentimentPositive: 80,
	model.SentimentNeutral:  50,
	model.SentimentNegative: 20,
	model.SentimentToxic:    10,
}

// BuildVideoAnalytics 统计观看记录，按 UTC 日期统计最近 7 天
func BuildVideoAnalytics(videos []model.VideoHistoryEntry, now time.Time) model.VideoAnalytics {
	out := model.VideoAnalytics{
		CategoryBreakdown: map[string]int{},
		SentimentBreakdown: map[model.Sentiment]int{
			model.SentimentPositive: 0,
			model.SentimentNegative: 0,
			model.SentimentNeutral:  0,
			model.SentimentToxic:    0,
		},
		PlatformStats: map[string]int{},
		DailyStats:    []model.DailyVideoStat{},
		WeeklyTrend:   []model.TrendPoint{},
	}
	if len(videos) == 0 {
		return out
	}

	byDate := make(map[string][]model.VideoHistoryEntry)
	for _, v := range videos {
		out.TotalVideos++
		out.TotalWatchTime += v.Duration
		out.CategoryBreakdown[v.Category]++
		out.SentimentBreakdown[v.Sentiment]++
		out.PlatformStats[v.Platform]++
		byDate[v.Date] = append(byDate[v.Date], v)
	}

	today := now.UTC()
	for i := analyticsDays - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(time.DateOnly)
		day := byDate[date]
		watch := 0
		for _, v := range day {
			watch += v.Duration
		}
		out.DailyStats = append(out.DailyStats, model.DailyVideoStat{
			Date:         date,
			Videos:       len(day),
			WatchTime:    watch,
			AvgSentiment: averageSentiment(day),
		})
		out.WeeklyTrend = append(out.WeeklyTrend, model.TrendPoint{Date: date, Value: len(day)})
	}

	return out
}

func averageSentiment(videos []model.VideoHistoryEntry) int {
	if len(videos) == 0 {
		return 50
	}
	total := 0
	for _, v := range videos {
		w, ok := sentimentWeights[v.Sentiment]
		if !ok {
			w = 50
		}
		total += w
	}
	return int(math.Round(float64(total) / float64(len(videos))))
}
