package conflicts

import (
	"context"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/recurrence"
)

// DefaultHorizon lookahead used for open-ended subscription windows
const DefaultHorizon = 366 * 24 * time.Hour

// Resolver decides whether a candidate booking or subscription fits on a court
//
// It only reads. Callers must hold the court lock (or a serializable transaction)
// from the check until the accepted entity is persisted.
type Resolver struct {
	store   AvailabilityStore
	horizon time.Duration
	metrics MetricsRecorder
	logger  Logger
}

// Option configures a Resolver
type Option func(*Resolver)

// WithHorizon overrides the lookahead used when a subscription has no end date
func WithHorizon(horizon time.Duration) Option {
	return func(r *Resolver) {
		if horizon > 0 {
			r.horizon = horizon
		}
	}
}

// WithMetrics counts conflicts by kind
func WithMetrics(m MetricsRecorder) Option {
	return func(r *Resolver) {
		r.metrics = m
	}
}

// NewResolver creates a resolver over store
func NewResolver(store AvailabilityStore, logger Logger, opts ...Option) *Resolver {
	r := &Resolver{
		store:   store,
		horizon: DefaultHorizon,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Commitment something occupying a court on a given date
type Commitment struct {
	Kind  EntityKind
	ID    int64
	Range domain.TimeRange
}

// CheckBooking returns a *ConflictError when rng collides on date with a non-cancelled booking
// or an active subscription occurrence. excludeBookingID skips the booking being reactivated.
func (r *Resolver) CheckBooking(
	ctx context.Context,
	courtID int64,
	date time.Time,
	rng domain.TimeRange,
	excludeBookingID *int64,
) error {
	date = domain.DateOnly(date)

	bookings, err := r.store.ListBookings(ctx, courtID, date)
	if err != nil {
		return err
	}
	if c := bookingCollision(bookings, date, rng, excludeBookingID); c != nil {
		return r.reject(courtID, c)
	}

	subs, err := r.store.ListActiveSubscriptions(ctx, courtID, domain.WeekdayOf(date))
	if err != nil {
		return err
	}
	for _, s := range subs {
		if !s.IsActive() || !s.Covers(date) || !s.Range.Overlaps(rng) {
			continue
		}
		return r.reject(courtID, &ConflictError{Kind: KindSubscription, EntityID: s.ID, Date: date, Range: s.Range})
	}

	return nil
}

// CheckSubscription verifies every occurrence of a candidate subscription
//
// Bookings for all occurrence dates are fetched in one query. Subscriptions sharing the
// weekday are pruned by intersecting windows first, then each date is checked in ascending
// order and the first collision is returned.
func (r *Resolver) CheckSubscription(
	ctx context.Context,
	courtID int64,
	weekday domain.Weekday,
	rng domain.TimeRange,
	windowStart time.Time,
	windowEnd *time.Time,
	excludeSubscriptionID *int64,
) error {
	start := domain.DateOnly(windowStart)
	end := recurrence.Bounded(start, windowEnd, r.horizon)

	dates, err := recurrence.Dates(weekday, start, &end)
	if err != nil {
		return err
	}
	if len(dates) == 0 {
		return nil
	}

	subs, err := r.store.ListActiveSubscriptions(ctx, courtID, weekday)
	if err != nil {
		return err
	}

	var (
		candidates []*domain.Subscription
		beyond     *ConflictError
	)
	for _, s := range subs {
		if !s.IsActive() || isExcluded(s.ID, excludeSubscriptionID) || !s.Range.Overlaps(rng) {
			continue
		}
		limit := end
		if windowEnd == nil {
			limit = openEndedLimit(end, s)
		}
		first, shared := FirstSharedOccurrence(weekday, start, limit, s)
		if !shared {
			continue
		}
		if first.After(end) {
			// past the expanded dates; only reachable when the candidate has no end date
			if beyond == nil || first.Before(beyond.Date) {
				beyond = &ConflictError{Kind: KindSubscription, EntityID: s.ID, Date: first, Range: s.Range}
			}
			continue
		}
		candidates = append(candidates, s)
	}

	bookings, err := r.store.ListBookingsOnDates(ctx, courtID, dates)
	if err != nil {
		return err
	}
	byDate := make(map[string][]*domain.Booking, len(dates))
	for _, b := range bookings {
		key := b.Date.Format(domain.DateFormat)
		byDate[key] = append(byDate[key], b)
	}

	for _, d := range dates {
		if c := bookingCollision(byDate[d.Format(domain.DateFormat)], d, rng, nil); c != nil {
			return r.reject(courtID, c)
		}
		for _, s := range candidates {
			if s.Covers(d) {
				return r.reject(courtID, &ConflictError{Kind: KindSubscription, EntityID: s.ID, Date: d, Range: s.Range})
			}
		}
	}
	if beyond != nil {
		return r.reject(courtID, beyond)
	}

	return nil
}

// openEndedLimit upper bound for intersecting an open-ended candidate with existing.
// The candidate recurs forever, so the first shared week starts no later than existing's
// start date (or the horizon end) and falls within the following seven days.
func openEndedLimit(horizonEnd time.Time, existing *domain.Subscription) time.Time {
	to := horizonEnd
	if s := domain.DateOnly(existing.StartDate); s.After(to) {
		to = s
	}
	return to.AddDate(0, 0, 7)
}

// Occupied lists everything taking court time on date: bookings first, then subscription occurrences
func (r *Resolver) Occupied(ctx context.Context, courtID int64, date time.Time) ([]Commitment, error) {
	date = domain.DateOnly(date)

	bookings, err := r.store.ListBookings(ctx, courtID, date)
	if err != nil {
		return nil, err
	}
	subs, err := r.store.ListActiveSubscriptions(ctx, courtID, domain.WeekdayOf(date))
	if err != nil {
		return nil, err
	}

	out := make([]Commitment, 0, len(bookings)+len(subs))
	for _, b := range bookings {
		if b.IsActive() {
			out = append(out, Commitment{Kind: KindBooking, ID: b.ID, Range: b.Range})
		}
	}
	for _, s := range subs {
		if s.IsActive() && s.Covers(date) {
			out = append(out, Commitment{Kind: KindSubscription, ID: s.ID, Range: s.Range})
		}
	}
	return out, nil
}

// FirstSharedOccurrence earliest date on which both the candidate window [start, end] and
// existing have an occurrence of weekday
func FirstSharedOccurrence(weekday domain.Weekday, start, end time.Time, existing *domain.Subscription) (time.Time, bool) {
	if existing.Weekday != weekday {
		return time.Time{}, false
	}

	from := domain.DateOnly(start)
	if s := domain.DateOnly(existing.StartDate); s.After(from) {
		from = s
	}
	to := domain.DateOnly(end)
	if existing.EndDate != nil {
		if e := domain.DateOnly(*existing.EndDate); e.Before(to) {
			to = e
		}
	}

	return recurrence.FirstOn(weekday, from, to)
}

func (r *Resolver) reject(courtID int64, c *ConflictError) error {
	if r.metrics != nil {
		r.metrics.RecordConflict(string(c.Kind))
	}
	r.logger.Info("Conflict: court=%d collides with %s id=%d on %s (%s)",
		courtID, c.Kind, c.EntityID, c.Date.Format(domain.DateFormat), c.Range)
	return c
}

func bookingCollision(bookings []*domain.Booking, date time.Time, rng domain.TimeRange, exclude *int64) *ConflictError {
	for _, b := range bookings {
		if !b.IsActive() || isExcluded(b.ID, exclude) {
			continue
		}
		if b.Range.Overlaps(rng) {
			return &ConflictError{Kind: KindBooking, EntityID: b.ID, Date: date, Range: b.Range}
		}
	}
	return nil
}

func isExcluded(id int64, exclude *int64) bool {
	return exclude != nil && *exclude == id
}
