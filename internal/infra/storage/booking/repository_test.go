package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

func TestActiveOnDates(t *testing.T) {
	dates := []time.Time{domain.MustDate("2024-06-03"), domain.MustDate("2024-06-10")}

	t.Run("plain read", func(t *testing.T) {
		query, args, err := activeOnDates(1, dates, false).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "FROM bookings")
		assert.Contains(t, query, "court_id = $1")
		assert.Contains(t, query, "status NOT IN ($2)")
		assert.Contains(t, query, "booking_date = ANY($3::date[])")
		assert.NotContains(t, query, "FOR UPDATE")
		require.Len(t, args, 3)
		assert.Equal(t, int64(1), args[0])
		assert.Equal(t, domain.BookingStatusCancelled, args[1])
	})

	t.Run("locked read", func(t *testing.T) {
		query, _, err := activeOnDates(1, dates, true).ToSql()
		require.NoError(t, err)
		assert.Contains(t, query, "ORDER BY booking_date, start_time FOR UPDATE")
	})
}

func TestColumnsMatchScan(t *testing.T) {
	// scanBooking reads one destination per selected column
	assert.Len(t, columns, 16)
	assert.Equal(t, "id", columns[0])
	assert.Equal(t, "updated_at", columns[len(columns)-1])
}
