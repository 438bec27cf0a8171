package businessflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRating(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"below minimum", -1, 0},
		{"far below minimum", -100, 0},
		{"at minimum", 0, 0},
		{"in range", 3, 3},
		{"at maximum", 5, 5},
		{"above maximum", 6, 5},
		{"far above maximum", 1000, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeRating(tt.input))
		})
	}
}

func TestNormalizeRatingIsIdempotent(t *testing.T) {
	for input := -10; input <= 10; input++ {
		once := NormalizeRating(input)
		assert.Equal(t, once, NormalizeRating(once))
		assert.GreaterOrEqual(t, once, RatingMin)
		assert.LessOrEqual(t, once, RatingMax)
	}
}
