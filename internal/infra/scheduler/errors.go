package scheduler

import "errors"

var (
	ErrInit          = errors.New("scheduler: failed to initialise")
	ErrAddJob        = errors.New("scheduler: failed to add job")
	ErrEmptyJobName  = errors.New("scheduler: job name is required")
	ErrEmptyCronExpr = errors.New("scheduler: cron expression is required")
)
