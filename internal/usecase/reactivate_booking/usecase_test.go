package reactivate_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/events"
	bookingRepo "github.com/Brian13b/QuicoBasquetProject/internal/infra/storage/booking"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/conflicts"
	"github.com/Brian13b/QuicoBasquetProject/pkg/clock"
	"github.com/Brian13b/QuicoBasquetProject/pkg/logger"
)

type repoStub struct {
	booking       *domain.Booking
	status        *domain.BookingStatus
	paymentStatus *domain.BookingPaymentStatus
}

func (r *repoStub) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if r.booking == nil || r.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *r.booking
	return &cp, nil
}

func (r *repoStub) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	r.status = &status
	return nil
}

func (r *repoStub) UpdatePaymentStatus(_ context.Context, _ int64, status domain.BookingPaymentStatus) error {
	r.paymentStatus = &status
	return nil
}

type lockerStub struct{ locked []int64 }

func (l *lockerStub) LockForUpdate(_ context.Context, courtID int64) error {
	l.locked = append(l.locked, courtID)
	return nil
}

type checkerStub struct {
	err     error
	exclude *int64
}

func (c *checkerStub) CheckBooking(_ context.Context, _ int64, _ time.Time, _ domain.TimeRange, exclude *int64) error {
	c.exclude = exclude
	return c.err
}

type publisherStub struct{ events []events.Event }

func (p *publisherStub) Publish(_ context.Context, e events.Event) error {
	p.events = append(p.events, e)
	return nil
}

type txStub struct{}

func (txStub) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func cancelledBooking() *domain.Booking {
	cancelledAt := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:            5,
		CourtID:       1,
		UserID:        7,
		Date:          domain.MustDate("2024-06-03"),
		Range:         domain.MustTimeRange("18:00", "19:00"),
		Status:        domain.BookingStatusCancelled,
		PaymentStatus: domain.BookingPaymentCancelled,
		CancelledAt:   &cancelledAt,
	}
}

func newUseCase(repo *repoStub, checker *checkerStub, locker *lockerStub, pub *publisherStub) *UseCase {
	uc := NewUseCase(repo, locker, checker, pub, txStub{}, logger.Nop())
	uc.timeProvider = clock.Fixed(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	return uc
}

func TestExecute_Reactivates(t *testing.T) {
	repo := &repoStub{booking: cancelledBooking()}
	checker := &checkerStub{}
	locker := &lockerStub{}
	pub := &publisherStub{}

	resp, err := newUseCase(repo, checker, locker, pub).Execute(context.Background(), &Request{
		Actor:     domain.Actor{UserID: 7},
		BookingID: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, "confirmada", resp.Status)
	assert.Equal(t, "pendiente", resp.PaymentStatus)
	assert.Nil(t, resp.CancelledAt)
	assert.Equal(t, []int64{1}, locker.locked)
	require.NotNil(t, checker.exclude)
	assert.Equal(t, int64(5), *checker.exclude)
	require.NotNil(t, repo.status)
	assert.Equal(t, domain.BookingStatusConfirmed, *repo.status)
	require.Len(t, pub.events, 1)
	assert.Equal(t, events.BookingReactivated, pub.events[0].Type)
}

func TestExecute_SlotTakenMeanwhile(t *testing.T) {
	repo := &repoStub{booking: cancelledBooking()}
	checker := &checkerStub{err: &conflicts.ConflictError{Kind: conflicts.KindBooking, EntityID: 6, Date: domain.MustDate("2024-06-03")}}

	_, err := newUseCase(repo, checker, &lockerStub{}, &publisherStub{}).Execute(context.Background(), &Request{
		Actor:     domain.Actor{UserID: 7},
		BookingID: 5,
	})

	require.ErrorIs(t, err, ErrReactivationConflict)
	conflict, ok := conflicts.AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, int64(6), conflict.EntityID)
	assert.Nil(t, repo.status)
}

func TestExecute_Rejections(t *testing.T) {
	confirmed := cancelledBooking()
	confirmed.Status = domain.BookingStatusConfirmed

	past := cancelledBooking()
	past.Date = domain.MustDate("2024-05-20")

	tests := []struct {
		name    string
		booking *domain.Booking
		actor   domain.Actor
		id      int64
		want    error
	}{
		{"missing", cancelledBooking(), domain.Actor{UserID: 7}, 99, ErrBookingNotFound},
		{"stranger", cancelledBooking(), domain.Actor{UserID: 8}, 5, ErrAccessDenied},
		{"not cancelled", confirmed, domain.Actor{UserID: 7}, 5, ErrInvalidTransition},
		{"past", past, domain.Actor{UserID: 1, Role: domain.RoleAdmin}, 5, ErrBookingInPast},
		{"bad id", cancelledBooking(), domain.Actor{UserID: 7}, 0, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &repoStub{booking: tt.booking}
			_, err := newUseCase(repo, &checkerStub{}, &lockerStub{}, &publisherStub{}).Execute(context.Background(), &Request{
				Actor:     tt.actor,
				BookingID: tt.id,
			})
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, repo.status)
		})
	}
}
