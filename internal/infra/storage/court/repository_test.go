package court

import (
	"context"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

func TestSelectCourts(t *testing.T) {
	t.Run("all courts", func(t *testing.T) {
		query, args, err := selectCourts(nil).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "FROM courts c LEFT JOIN court_sport_prices p ON p.court_id = c.id")
		assert.NotContains(t, query, "WHERE")
		assert.Empty(t, args)
	})

	t.Run("single court", func(t *testing.T) {
		query, args, err := selectCourts(squirrel.Eq{"c.id": int64(7)}).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "WHERE c.id = $1")
		assert.Equal(t, []interface{}{int64(7)}, args)
	})
}

func TestUpsertPriceQuery(t *testing.T) {
	query, args, err := upsertPriceQuery(1, domain.SportVolleyball, domain.SportPricing{HourlyPrice: 15000, DiscountPercent: 10}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO court_sport_prices (court_id,sport,hourly_price,discount_percent) VALUES ($1,$2,$3,$4)")
	assert.Contains(t, query, "ON CONFLICT (court_id, sport) DO UPDATE")
	assert.Equal(t, []interface{}{int64(1), domain.SportVolleyball, 15000.0, 10.0}, args)
}

func TestLockForUpdateRequiresTransaction(t *testing.T) {
	repo := NewRepository(nil)

	err := repo.LockForUpdate(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotInTransaction)
}
