package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeClinicTime(t *testing.T) {
	normalized, err := NormalizeClinicTime("08:00")
	require.NoError(t, err)
	assert.Equal(t, "08:00:00", normalized)

	normalized, err = NormalizeClinicTime("13:45:30")
	require.NoError(t, err)
	assert.Equal(t, "13:45:30", normalized)

	_, err = NormalizeClinicTime("8am")
	assert.Error(t, err)
}

func TestIsAfterToday(t *testing.T) {
	now := time.Date(2025, 6, 10, 23, 59, 0, 0, time.Local)

	assert.False(t, IsAfterToday(time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local), now), "today is not after today")
	assert.False(t, IsAfterToday(time.Date(2025, 6, 9, 0, 0, 0, 0, time.Local), now))
	assert.True(t, IsAfterToday(time.Date(2025, 6, 11, 0, 0, 0, 0, time.Local), now))
}

func TestCombineClinicSlot(t *testing.T) {
	slot, err := CombineClinicSlot("2025-06-10", "08:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 8, 0, 0, 0, time.Local), slot)

	_, err = CombineClinicSlot("10-06-2025", "08:00")
	assert.Error(t, err)
}
