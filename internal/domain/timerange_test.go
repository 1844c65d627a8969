package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brian13b/QuicoBasquetProject/pkg/types"
)

func TestTimeRange_DurationMinutes(t *testing.T) {
	assert.Equal(t, 60, MustTimeRange("23:00", "00:00").DurationMinutes())
	assert.Equal(t, 120, MustTimeRange("08:00", "10:00").DurationMinutes())
	assert.Equal(t, 90, MustTimeRange("18:30", "20:00").DurationMinutes())
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeRange
		want bool
	}{
		{name: "adjacent", a: MustTimeRange("08:00", "09:00"), b: MustTimeRange("09:00", "10:00"), want: false},
		{name: "identical", a: MustTimeRange("18:00", "19:00"), b: MustTimeRange("18:00", "19:00"), want: true},
		{name: "partial", a: MustTimeRange("18:00", "19:00"), b: MustTimeRange("18:30", "19:30"), want: true},
		{name: "contained", a: MustTimeRange("08:00", "10:00"), b: MustTimeRange("08:30", "09:30"), want: true},
		{name: "disjoint", a: MustTimeRange("08:00", "09:00"), b: MustTimeRange("10:00", "11:00"), want: false},
		{name: "both end at midnight", a: MustTimeRange("23:00", "00:00"), b: MustTimeRange("23:30", "00:00"), want: true},
		{name: "existing ends at midnight", a: MustTimeRange("22:00", "00:00"), b: MustTimeRange("22:30", "23:30"), want: true},
		{name: "adjacent to midnight slot", a: MustTimeRange("22:00", "23:00"), b: MustTimeRange("23:00", "00:00"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
		})
	}
}

func TestTimeRange_OverlapsIsSymmetric(t *testing.T) {
	var ranges []TimeRange
	for start := OpeningMinute; start <= LatestStartMinute; start += 30 {
		for _, d := range []int{60, 90, 120} {
			if start+d > EndOfDayMinute {
				continue
			}
			s, err := types.NewTimeStringFromMinutes(start)
			require.NoError(t, err)
			e, err := types.NewTimeStringFromMinutes(start + d)
			require.NoError(t, err)
			ranges = append(ranges, TimeRange{Start: s, End: e})
		}
	}

	for _, a := range ranges {
		for _, b := range ranges {
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a), "%s vs %s", a, b)
		}
	}
}

func TestTimeRange_ValidateOperatingWindow(t *testing.T) {
	tests := []struct {
		start, end string
		wantErr    bool
	}{
		{start: "07:30", end: "08:30", wantErr: true},
		{start: "23:00", end: "00:00"},
		{start: "23:30", end: "00:30", wantErr: true},
		{start: "08:00", end: "09:00"},
		{start: "22:00", end: "00:00"},
		{start: "10:00", end: "09:00", wantErr: true},
		{start: "10:00", end: "10:00", wantErr: true},
		{start: "23:00", end: "23:59", wantErr: true},
		{start: "20:00", end: "03:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.start+"-"+tt.end, func(t *testing.T) {
			err := MustTimeRange(tt.start, tt.end).ValidateOperatingWindow()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSchedule)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTimeRange_ValidateOperatingWindow_Malformed(t *testing.T) {
	err := TimeRange{Start: "8am", End: "09:00"}.ValidateOperatingWindow()
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	_, err = NewTimeRange("18:00", "25:00")
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestTimeRange_ValidateBookingDuration(t *testing.T) {
	assert.NoError(t, MustTimeRange("08:00", "09:00").ValidateBookingDuration())
	assert.NoError(t, MustTimeRange("22:00", "00:00").ValidateBookingDuration())
	assert.ErrorIs(t, MustTimeRange("08:00", "08:30").ValidateBookingDuration(), ErrInvalidDuration)
	assert.ErrorIs(t, MustTimeRange("08:00", "10:30").ValidateBookingDuration(), ErrInvalidDuration)
}
