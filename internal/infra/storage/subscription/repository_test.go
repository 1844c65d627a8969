package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

func TestActiveOnWeekday(t *testing.T) {
	query, args, err := activeOnWeekday(3, domain.Monday, true).ToSql()
	require.NoError(t, err)

	// squirrel.Eq sorts its keys
	assert.Contains(t, query, "WHERE court_id = $1 AND status = $2 AND weekday = $3")
	assert.Contains(t, query, "FOR UPDATE")
	assert.Equal(t, []interface{}{int64(3), domain.SubscriptionStatusActive, 0}, args)
}

func TestExpireQuery(t *testing.T) {
	query, args, err := expireQuery(domain.MustDate("2024-07-01")).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE subscriptions SET status = $1")
	assert.Contains(t, query, "end_date IS NOT NULL")
	assert.Contains(t, query, "end_date < $3")
	assert.Contains(t, query, "RETURNING id, user_id, court_id")
	require.Len(t, args, 3)
	assert.Equal(t, domain.SubscriptionStatusExpired, args[0])
	assert.Equal(t, domain.SubscriptionStatusActive, args[1])
	assert.Equal(t, domain.MustDate("2024-07-01"), args[2])
}
