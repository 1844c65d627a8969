package get_quote

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

func TestToServiceRequest(t *testing.T) {
	req, err := ToServiceRequest(1, url.Values{"sport": {"basquet"}})
	require.NoError(t, err)
	assert.Equal(t, 60, req.DurationMinutes)
	assert.False(t, req.Subscription)
	assert.Nil(t, req.Weekday)
	assert.Nil(t, req.UserID)

	req, err = ToServiceRequest(1, url.Values{
		"sport":        {"voley"},
		"minutes":      {"90"},
		"subscription": {"true"},
		"weekday":      {"2"},
		"userId":       {"10"},
	})
	require.NoError(t, err)
	assert.Equal(t, 90, req.DurationMinutes)
	assert.True(t, req.Subscription)
	require.NotNil(t, req.Weekday)
	assert.Equal(t, domain.Weekday(2), *req.Weekday)
	require.NotNil(t, req.UserID)
	assert.Equal(t, int64(10), *req.UserID)

	for _, bad := range []url.Values{
		{"minutes": {"una hora"}},
		{"subscription": {"quizas"}},
		{"weekday": {"7"}},
		{"userId": {"x"}},
	} {
		_, err := ToServiceRequest(1, bad)
		assert.Error(t, err, bad)
	}
}
