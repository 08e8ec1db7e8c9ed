package llm

import (
	"golang.org/x/sync/semaphore"
)

var (
	TextWeight = int64(5)
	TextSem    = semaphore.NewWeighted(TextWeight)
)

func setTextWeight(weight int64) {
	TextWeight = weight
	TextSem = semaphore.NewWeighted(weight)
}
