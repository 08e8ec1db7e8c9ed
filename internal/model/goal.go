package model

import "time"

// Goal 用户声明的兴趣目标，只增不改
type Goal struct {
	ID        int64     `bson:"id" json:"id"`
	Text      string    `bson:"goal" json:"goal"`
	CreatedAt time.Time `bson:"created" json:"created"`
	Progress  int       `bson:"progress" json:"progress"`
}
