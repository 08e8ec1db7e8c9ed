package model

import "time"

type Alert struct {
	ID        int64     `bson:"id" json:"id"`
	Message   string    `bson:"message" json:"message"`
	Type      AlertType `bson:"type" json:"type"`
	Platform  string    `bson:"platform" json:"platform"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
