package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// Logger logging facade
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Task unit of scheduled work, bounded by the job timeout
type Task func(ctx context.Context) error

// Scheduler cron scheduler for background maintenance jobs
type Scheduler struct {
	scheduler gocron.Scheduler
	logger    Logger
	stopOnce  sync.Once
	stopErr   error
}

// NewScheduler creates a scheduler that logs panicking jobs instead of crashing
func NewScheduler(logger Logger) (*Scheduler, error) {
	sched, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					logger.Error("Scheduler: job panicked, job=%s, id=%s, panic=%v", jobName, jobID, recoverData)
				}),
			),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}

	return &Scheduler{scheduler: sched, logger: logger}, nil
}

// AddJob registers task under a cron expression. Runs never overlap: a run that
// is still going when the next one is due makes the next one wait.
func (s *Scheduler) AddJob(name, cronExpr string, timeout time.Duration, task Task) (gocron.Job, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyJobName
	}
	if strings.TrimSpace(cronExpr) == "" {
		return nil, ErrEmptyCronExpr
	}

	run := func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		s.logger.Debug("Scheduler: job started, job=%s", name)
		if err := task(ctx); err != nil {
			s.logger.Error("Scheduler: job failed, job=%s, error=%v", name, err)
			return
		}
		s.logger.Debug("Scheduler: job completed, job=%s, took=%s", name, time.Since(start))
	}

	job, err := s.scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(run),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeWait),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAddJob, name, err)
	}

	s.logger.Info("Scheduler: job registered, job=%s, cron=%s", name, cronExpr)
	return job, nil
}

// Start begins running registered jobs
func (s *Scheduler) Start() {
	s.logger.Info("Scheduler: starting with %d job(s)", len(s.scheduler.Jobs()))
	s.scheduler.Start()
}

// Stop waits for running jobs and shuts the scheduler down, safe to call twice
func (s *Scheduler) Stop() error {
	s.stopOnce.Do(func() {
		s.logger.Info("Scheduler: stopping")
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}
