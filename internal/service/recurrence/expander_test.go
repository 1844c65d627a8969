package recurrence

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

func dates(values ...string) []time.Time {
	out := make([]time.Time, 0, len(values))
	for _, v := range values {
		out = append(out, domain.MustDate(v))
	}
	return out
}

func TestExpand_WednesdaysOfJune(t *testing.T) {
	end := domain.MustDate("2024-06-30")

	seq, err := Expand(domain.Wednesday, domain.MustDate("2024-06-01"), &end)
	require.NoError(t, err)

	want := dates("2024-06-05", "2024-06-12", "2024-06-19", "2024-06-26")
	assert.Equal(t, want, slices.Collect(seq))
	// restartable
	assert.Equal(t, want, slices.Collect(seq))
}

func TestExpand_InclusiveBounds(t *testing.T) {
	end := domain.MustDate("2024-06-17")

	got, err := Dates(domain.Monday, domain.MustDate("2024-06-03"), &end)
	require.NoError(t, err)
	assert.Equal(t, dates("2024-06-03", "2024-06-10", "2024-06-17"), got)
}

func TestExpand_EmptyWindow(t *testing.T) {
	end := domain.MustDate("2024-06-04")

	got, err := Dates(domain.Friday, domain.MustDate("2024-06-03"), &end)
	require.NoError(t, err)
	assert.Empty(t, got)

	before := domain.MustDate("2024-05-01")
	got, err = Dates(domain.Friday, domain.MustDate("2024-06-03"), &before)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExpand_EarlyStop(t *testing.T) {
	end := domain.MustDate("2024-12-31")
	seq, err := Expand(domain.Sunday, domain.MustDate("2024-01-01"), &end)
	require.NoError(t, err)

	var seen []time.Time
	for d := range seq {
		seen = append(seen, d)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, dates("2024-01-07", "2024-01-14"), seen)
}

func TestExpand_Errors(t *testing.T) {
	_, err := Expand(domain.Monday, domain.MustDate("2024-06-01"), nil)
	assert.ErrorIs(t, err, ErrUnboundedWindow)

	end := domain.MustDate("2024-06-30")
	_, err = Expand(domain.Weekday(9), domain.MustDate("2024-06-01"), &end)
	assert.ErrorIs(t, err, domain.ErrInvalidWeekday)
}

func TestBounded(t *testing.T) {
	start := domain.MustDate("2024-06-01")
	assert.Equal(t, domain.MustDate("2024-06-08"), Bounded(start, nil, 7*24*time.Hour))

	end := domain.MustDate("2024-06-30")
	assert.Equal(t, end, Bounded(start, &end, 7*24*time.Hour))
}
