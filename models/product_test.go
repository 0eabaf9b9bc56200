package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductStars(t *testing.T) {
	rate := func(r float64) *float64 { return &r }

	tests := []struct {
		rating *float64
		want   *StarRating
	}{
		{rating: nil, want: nil},
		{rating: rate(0), want: nil},
		{rating: rate(4), want: &StarRating{Full: 4, Half: 0, Empty: 1}},
		{rating: rate(4.5), want: &StarRating{Full: 4, Half: 1, Empty: 0}},
		{rating: rate(3.8), want: &StarRating{Full: 3, Half: 1, Empty: 1}},
		{rating: rate(5), want: &StarRating{Full: 5, Half: 0, Empty: 0}},
	}
	for _, tt := range tests {
		p := Product{ID: "1", Rating: tt.rating}
		assert.Equal(t, tt.want, p.Stars())
	}
}

func TestFilterPatchApply(t *testing.T) {
	category := "Electronics"
	patch := FilterPatch{Category: &category}
	assert.False(t, patch.IsEmpty())

	got := patch.Apply(DefaultFilterState())
	assert.Equal(t, "Electronics", got.Category)
	assert.True(t, got.PriceRange.IsDefault())
	assert.Empty(t, got.SearchQuery)

	assert.True(t, FilterPatch{}.IsEmpty())
	assert.Equal(t, DefaultFilterState(), FilterPatch{}.Apply(DefaultFilterState()))
}
