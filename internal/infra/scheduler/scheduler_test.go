package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brian13b/QuicoBasquetProject/pkg/logger"
)

func TestAddJob_Validation(t *testing.T) {
	s, err := NewScheduler(logger.Nop())
	require.NoError(t, err)
	defer s.Stop()

	noop := func(context.Context) error { return nil }

	_, err = s.AddJob(" ", "* * * * *", time.Second, noop)
	assert.ErrorIs(t, err, ErrEmptyJobName)

	_, err = s.AddJob("sweep", "", time.Second, noop)
	assert.ErrorIs(t, err, ErrEmptyCronExpr)

	_, err = s.AddJob("sweep", "not a cron", time.Second, noop)
	assert.ErrorIs(t, err, ErrAddJob)
}

func TestAddJob_RunNow(t *testing.T) {
	s, err := NewScheduler(logger.Nop())
	require.NoError(t, err)

	var runs atomic.Int32
	var hadDeadline atomic.Bool

	job, err := s.AddJob("sweep", "0 0 1 1 *", time.Minute, func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		hadDeadline.Store(ok)
		runs.Add(1)
		return errors.New("logged, not fatal")
	})
	require.NoError(t, err)
	assert.Equal(t, "sweep", job.Name())

	s.Start()
	require.NoError(t, job.RunNow())

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.True(t, hadDeadline.Load())

	require.NoError(t, s.Stop())
	assert.NoError(t, s.Stop())
}
