package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterRecords(t *testing.T) {
	records := []map[string]interface{}{
		{"id": float64(1), "name": "Tenofovir", "isActive": true},
		{"id": float64(2), "name": "Lamivudine", "isActive": false},
		{"id": float64(3), "name": "Efavirenz"},
	}
	fields := []string{"name"}

	t.Run("Substring match is case insensitive", func(t *testing.T) {
		filtered := FilterRecords(records, fields, "VIR", nil)
		assert.Len(t, filtered, 2)
	})

	t.Run("Active filter treats missing flag as active", func(t *testing.T) {
		active := true
		filtered := FilterRecords(records, fields, "", &active)
		assert.Len(t, filtered, 2)

		inactive := false
		filtered = FilterRecords(records, fields, "", &inactive)
		assert.Len(t, filtered, 1)
		assert.Equal(t, "Lamivudine", filtered[0]["name"])
	})

	t.Run("Empty query keeps everything", func(t *testing.T) {
		assert.Len(t, FilterRecords(records, fields, "  ", nil), 3)
	})
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{3, 4}, Paginate(items, 2, 2))
	assert.Equal(t, []int{5}, Paginate(items, 3, 2))
	assert.Equal(t, []int{}, Paginate(items, 4, 2))
	assert.Equal(t, items, Paginate(items, 0, 0))

	pagination := BuildPaginationResponse(5, 2, 2, "/v1/references/components")
	assert.Equal(t, "/v1/references/components?page=3&page_size=2", pagination.NextURL)
	assert.Equal(t, "/v1/references/components?page=1&page_size=2", pagination.PrevURL)
}
