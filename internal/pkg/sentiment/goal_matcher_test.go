package sentiment

import (
	"Manorakshak/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesGoal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		goals []model.Goal
		want  bool
	}{
		{name: "no goals", text: "anything", want: false},
		{name: "exact word", text: "Morning fitness plan", goals: goals("fitness"), want: true},
		{name: "substring of longer word", text: "I was running late", goals: goals("run"), want: true},
		{name: "substring inside unrelated word", text: "sunday brunch", goals: goals("run"), want: true},
		{name: "any word of a phrase", text: "learn to cook pasta", goals: goals("learn guitar"), want: true},
		{name: "any goal", text: "piano lesson", goals: goals("fitness", "piano"), want: true},
		{name: "case insensitive", text: "YOGA class", goals: goals("Yoga"), want: true},
		{name: "no overlap", text: "A cat video", goals: goals("meditation"), want: false},
		{name: "blank goal never matches", text: "anything", goals: goals("   "), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MatchesGoal(tt.text, tt.goals))
		})
	}
}
