package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	testCases := []struct {
		name          string
		total         int64
		size          int
		expectedPages int
	}{
		{name: "exact multiple", total: 16, size: 8, expectedPages: 2},
		{name: "partial last page", total: 17, size: 8, expectedPages: 3},
		{name: "empty store", total: 0, size: 8, expectedPages: 0},
		{name: "single element", total: 1, size: 8, expectedPages: 1},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage[int](nil, 0, tt.size, tt.total)
			assert.Equal(t, tt.expectedPages, page.TotalPages)
			assert.NotNil(t, page.Content, "content should serialize as an empty array")
		})
	}
}

func TestPageRequestOffset(t *testing.T) {
	offset, ok := PageRequest{Page: 2, Size: 8}.Offset()
	assert.True(t, ok)
	assert.Equal(t, 16, offset)

	_, ok = PageRequest{Page: 1 << 62, Size: 8}.Offset()
	assert.False(t, ok)

	offset, ok = PageRequest{Page: math.MaxInt / 8, Size: 8}.Offset()
	assert.True(t, ok)
	assert.Equal(t, math.MaxInt/8*8, offset)

	_, ok = PageRequest{Page: -1, Size: 8}.Offset()
	assert.False(t, ok)
}

func TestParseSort(t *testing.T) {
	testCases := []struct {
		name      string
		field     string
		direction string
		expected  SortSpec
		wantErr   bool
	}{
		{name: "price ascending", field: "price", direction: "ASC", expected: SortSpec{SortByPrice, SortAsc}},
		{name: "name descending lower case", field: "name", direction: "desc", expected: SortSpec{SortByName, SortDesc}},
		{name: "id mixed case", field: "id", direction: "Asc", expected: SortSpec{SortByID, SortAsc}},
		{name: "unknown field", field: "description", direction: "ASC", wantErr: true},
		{name: "field is case sensitive", field: "PRICE", direction: "ASC", wantErr: true},
		{name: "unknown direction", field: "price", direction: "sideways", wantErr: true},
		{name: "empty direction", field: "price", direction: "", wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseSort(tt.field, tt.direction)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, spec)
		})
	}
}

func TestPizzaValidate(t *testing.T) {
	assert.NoError(t, Pizza{Name: "Margherita", Price: mustDecimal(t, "10.99")}.Validate())
	assert.NoError(t, Pizza{Name: "Free slice", Price: mustDecimal(t, "0")}.Validate())
	assert.Error(t, Pizza{Name: "  ", Price: mustDecimal(t, "10")}.Validate())
	assert.Error(t, Pizza{Name: "Refund", Price: mustDecimal(t, "-0.01")}.Validate())
	assert.NoError(t, Pizza{Name: "Trailing zero", Price: mustDecimal(t, "12.340")}.Validate())
	assert.ErrorContains(t, Pizza{Name: "Sub-cent", Price: mustDecimal(t, "12.345")}.Validate(), "more than 2 decimal places")
}
