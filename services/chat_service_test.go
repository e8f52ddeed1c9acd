package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
)

func TestGetCacheKey(t *testing.T) {
	assert.Equal(t, "42", GetCacheKey(42, "abc"))
	assert.Equal(t, "abc", GetCacheKey(0, "abc"))
}

func TestExtractPriceRange(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"rooms under 500", constants.PriceRangeLow},
		{"something below 900 please", constants.PriceRangeMid},
		{"max 1500", constants.PriceRangeHigh},
		{"over 2000", constants.PriceRangePremium},
		{"at least 1200", constants.PriceRangeHigh},
		{"more than 600", constants.PriceRangeMid},
		{"no price here", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractPriceRange(tt.input), "input %q", tt.input)
	}
}

func TestExtractStarRating(t *testing.T) {
	got := extractStarRating("a nice 4 star room")
	require.NotNil(t, got)
	assert.Equal(t, 4, *got)

	assert.Nil(t, extractStarRating("a nice room"))
	assert.Nil(t, extractStarRating("a 9 star room"))
}

func TestExtractDates(t *testing.T) {
	checkIn, checkOut := extractDates("from 2026-09-10 to 2026-09-12")
	require.NotNil(t, checkIn)
	require.NotNil(t, checkOut)
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), *checkIn)
	assert.Equal(t, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), *checkOut)

	checkIn, checkOut = extractDates("arriving 2026-09-10")
	require.NotNil(t, checkIn)
	assert.Nil(t, checkOut)
}

func TestExtractChatFilters(t *testing.T) {
	types := []models.RoomType{
		{ID: 1, Name: "Single"},
		{ID: 2, Name: "Double"},
		{ID: 3, Name: "Suite"},
	}

	t.Run("full query", func(t *testing.T) {
		filters := ExtractChatFilters("double room under 1000 from 2026-09-10 to 2026-09-12", types)
		require.NotNil(t, filters)
		require.NotNil(t, filters.RoomTypeID)
		assert.Equal(t, uint(2), *filters.RoomTypeID)
		assert.Equal(t, constants.PriceRangeMid, filters.PriceRange)
		require.NotNil(t, filters.CheckIn)
		require.NotNil(t, filters.CheckOut)
	})

	t.Run("typo still matches the type", func(t *testing.T) {
		filters := ExtractChatFilters("any doble rooms?", types)
		require.NotNil(t, filters)
		require.NotNil(t, filters.RoomTypeID)
		assert.Equal(t, uint(2), *filters.RoomTypeID)
	})

	t.Run("no search intent", func(t *testing.T) {
		assert.Nil(t, ExtractChatFilters("hello there", types))
	})
}

func TestAnswerFAQ(t *testing.T) {
	assert.NotEmpty(t, answerFAQ("what is the check in time?"))
	assert.NotEmpty(t, answerFAQ("can I cancel my booking?"))
	assert.Empty(t, answerFAQ("double room for tonight"))
}

func TestMergeFilters(t *testing.T) {
	typeID := uint(2)
	star := 4
	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	t.Run("new values win, old fill gaps", func(t *testing.T) {
		old := &dto.ChatFilters{RoomTypeID: &typeID, CheckIn: &checkIn, CheckOut: &checkOut}
		next := &dto.ChatFilters{PriceRange: constants.PriceRangeMid, StarRating: &star}

		merged := MergeFilters(old, next)
		assert.Equal(t, &typeID, merged.RoomTypeID)
		assert.Equal(t, constants.PriceRangeMid, merged.PriceRange)
		assert.Equal(t, &star, merged.StarRating)
		assert.Equal(t, &checkIn, merged.CheckIn)
		assert.Equal(t, &checkOut, merged.CheckOut)
	})

	t.Run("check-in after remembered check-out drops the stale bound", func(t *testing.T) {
		old := &dto.ChatFilters{CheckIn: &checkIn, CheckOut: &checkOut}
		later := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
		next := &dto.ChatFilters{CheckIn: &later}

		merged := MergeFilters(old, next)
		assert.Equal(t, &later, merged.CheckIn)
		assert.Nil(t, merged.CheckOut)
	})
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "double room", normalizeInput("Double Room"))
	assert.Equal(t, "cafe suite", normalizeInput("Café Suite"))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("suite", "suite"))
	assert.Greater(t, calculateSimilarity("suite", "suit"), 0.7)
	assert.Less(t, calculateSimilarity("suite", "garage"), 0.5)
	assert.Equal(t, 1.0, calculateSimilarity("", ""))
}
