package planner_test

import (
	"testing"

	"prep-scheduler/pkg/planner"

	"github.com/stretchr/testify/assert"
)

func TestFormatPlan(t *testing.T) {
	plan := map[string]float64{
		planner.ItemCrispyBall: 0.8,
		planner.ItemFishMeat:   3.9,
		planner.ItemMeatSauce:  0.46,
		planner.ItemFishBelly:  2.94,
	}

	tests := []struct {
		name  string
		tasks []string
		want  map[string]float64
	}{
		{
			name:  "no pending tasks",
			tasks: nil,
			want:  map[string]float64{planner.ItemMeatSauce: 0.5, planner.ItemFishBelly: 2.9},
		},
		{
			name:  "unrelated task",
			tasks: []string{"prep fish-belly"},
			want:  map[string]float64{planner.ItemMeatSauce: 0.5, planner.ItemFishBelly: 2.9},
		},
		{
			name:  "crispy ball task",
			tasks: []string{"prep crispy-ball-8"},
			want:  map[string]float64{planner.ItemFishMeat: 3, planner.ItemMeatSauce: 0.5, planner.ItemFishBelly: 2.9},
		},
		{
			name:  "shrimp meat ball task",
			tasks: []string{"prep fish-skin", "prep shrimp-meat-ball"},
			want:  map[string]float64{planner.ItemFishMeat: 3, planner.ItemMeatSauce: 0.5, planner.ItemFishBelly: 2.9},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := planner.FormatPlan(plan, tt.tasks)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, planner.ItemCrispyBall)
		})
	}
}
