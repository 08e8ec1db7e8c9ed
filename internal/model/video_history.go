package model

import "time"

type VideoHistoryEntry struct {
	ID        int64     `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Duration  int       `bson:"duration" json:"duration"` // 秒
	Category  string    `bson:"category" json:"category"`
	Sentiment Sentiment `bson:"sentiment" json:"sentiment"`
	Platform  string    `bson:"platform" json:"platform"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	Date      string    `bson:"date" json:"date"` // 2006-01-02
}

// DailyVideoStat 单日观看统计
type DailyVideoStat struct {
	Date         string `json:"date"`
	Videos       int    `json:"videos"`
	WatchTime    int    `json:"watchTime"`
	AvgSentiment int    `json:"avgSentiment"`
}

// TrendPoint 周趋势点
type TrendPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// VideoAnalytics 视频观看分析
type VideoAnalytics struct {
	TotalVideos        int               `json:"totalVideos"`
	TotalWatchTime     int               `json:"totalWatchTime"`
	CategoryBreakdown  map[string]int    `json:"categoryBreakdown"`
	SentimentBreakdown map[Sentiment]int `json:"sentimentBreakdown"`
	DailyStats         []DailyVideoStat  `json:"dailyStats"`
	PlatformStats      map[string]int    `json:"platformStats"`
	WeeklyTrend        []TrendPoint      `json:"weeklyTrend"`
}
