package model

import "time"

// ContentObservation 插件采集到的一条内容，记录时间由 Store 填写
type ContentObservation struct {
	Text        string `json:"text"`
	Platform    string `json:"platform"`
	ContentType string `json:"contentType,omitempty"` // title / comment / description
}

// AnalyzedContent 已分析内容的截断记录
type AnalyzedContent struct {
	Text        string    `bson:"text" json:"text"`
	Sentiment   Sentiment `bson:"sentiment" json:"sentiment"`
	Platform    string    `bson:"platform" json:"platform"`
	ContentType string    `bson:"content_type,omitempty" json:"contentType,omitempty"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
}
