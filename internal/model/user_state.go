package model

import "time"

// DefaultUserID 当前只支持一个隐式用户
const DefaultUserID = "default"

// ContentBreakdown 内容分类计数
type ContentBreakdown struct {
	Uplifting int `bson:"uplifting" json:"uplifting"`
	Negative  int `bson:"negative" json:"negative"`
	Neutral   int `bson:"neutral" json:"neutral"`
	Toxic     int `bson:"toxic" json:"toxic"`
}

// Total 所有计数之和
func (b ContentBreakdown) Total() int {
	return b.Uplifting + b.Negative + b.Neutral + b.Toxic
}

// UserState 用户聚合状态，持久化到 user_state 集合
type UserState struct {
	UserID           string              `bson:"user_id" json:"userId"`
	MoodScore        int                 `bson:"mood_score" json:"moodScore"`
	SentimentTrend   []int               `bson:"sentiment_trend" json:"sentimentTrend"`
	ContentBreakdown ContentBreakdown    `bson:"content_breakdown" json:"contentBreakdown"`
	Alerts           []Alert             `bson:"alerts" json:"alerts"`
	CalmMode         bool                `bson:"calm_mode" json:"calmMode"`
	Goals            []Goal              `bson:"goals" json:"goals"`
	AnalyzedContent  []AnalyzedContent   `bson:"analyzed_content" json:"analyzedContent"`
	VideoHistory     []VideoHistoryEntry `bson:"video_history" json:"videoHistory"`
	LastUpdated      time.Time           `bson:"last_updated" json:"lastUpdated"`
}

// NewDefaultUserState 首次启动时的初始数据
func NewDefaultUserState(userID string) *UserState {
	return &UserState{
		UserID:           userID,
		MoodScore:        60,
		SentimentTrend:   []int{45, 52, 48, 65, 70, 58, 60},
		ContentBreakdown: ContentBreakdown{Uplifting: 40, Negative: 25, Neutral: 30, Toxic: 5},
		Alerts:           []Alert{},
		Goals:            []Goal{},
		AnalyzedContent:  []AnalyzedContent{},
		VideoHistory:     []VideoHistoryEntry{},
	}
}

// Clone 深拷贝，快照读取使用
func (s *UserState) Clone() UserState {
	out := *s
	out.SentimentTrend = append([]int(nil), s.SentimentTrend...)
	out.Alerts = append([]Alert{}, s.Alerts...)
	out.Goals = append([]Goal{}, s.Goals...)
	out.AnalyzedContent = append([]AnalyzedContent{}, s.AnalyzedContent...)
	out.VideoHistory = append([]VideoHistoryEntry{}, s.VideoHistory...)
	return out
}
