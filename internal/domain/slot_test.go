package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brian13b/QuicoBasquetProject/pkg/types"
)

func TestAvailableSlot_Range(t *testing.T) {
	slot := AvailableSlot{StartTime: "22:00", DurationMinutes: 120}
	rng, err := slot.Range()
	require.NoError(t, err)
	assert.Equal(t, MustTimeRange("22:00", "00:00"), rng)

	slot = AvailableSlot{StartTime: "23:00", DurationMinutes: 90}
	_, err = slot.Range()
	assert.ErrorIs(t, err, types.ErrTimeOverflow)
}
