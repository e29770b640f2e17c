package shadow

import (
	"testing"

	"github.com/jengzang/shadowside-backend-go/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		diff     float64
		expected models.Direction
	}{
		{0, models.DirectionFront},
		{44.999, models.DirectionFront},
		{45, models.DirectionRight},
		{90, models.DirectionRight},
		{134.999, models.DirectionRight},
		{135, models.DirectionBack},
		{180, models.DirectionBack},
		{224.999, models.DirectionBack},
		{225, models.DirectionLeft},
		{270, models.DirectionLeft},
		{314.999, models.DirectionLeft},
		{315, models.DirectionFront},
		{359.999, models.DirectionFront},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, classifyDiff(tt.diff), "diff=%v", tt.diff)
		// The same diff reached through a travel heading of 0
		assert.Equal(t, tt.expected, Classify(tt.diff, 0), "sun=%v travel=0", tt.diff)
	}
}

func TestClassifyTotality(t *testing.T) {
	seen := make(map[models.Direction]int)
	for diff := 0.0; diff < 360; diff += 0.25 {
		d := classifyDiff(diff)
		assert.Contains(t, models.Directions, d, "diff=%v", diff)
		seen[d]++
	}

	// Four equal 90° sectors
	for _, d := range models.Directions {
		assert.Equal(t, 360, seen[d], "direction %s", d)
	}
}

func TestClassifyScenarios(t *testing.T) {
	tests := []struct {
		name     string
		travel   float64
		sun      float64
		expected models.Direction
	}{
		{"sun straight ahead heading east", 90, 90, models.DirectionFront},
		{"heading north sun south-south-west", 0, 200, models.DirectionBack},
		{"sun on the right", 10, 100, models.DirectionRight},
		{"wrap around north", 350, 170, models.DirectionBack},
		{"sun on the left", 180, 90, models.DirectionLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.sun, tt.travel))
		})
	}
}

func TestDirectionColors(t *testing.T) {
	assert.Equal(t, "#f59e0b", models.DirectionFront.Color())
	assert.Equal(t, "#ef4444", models.DirectionRight.Color())
	assert.Equal(t, "#10b981", models.DirectionBack.Color())
	assert.Equal(t, "#2563eb", models.DirectionLeft.Color())
	assert.Equal(t, models.ColorUnclassified, models.Direction("UP").Color())
}
