package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/events"
	bookingRepo "github.com/Brian13b/QuicoBasquetProject/internal/infra/storage/booking"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/bookings/models"
)

// Service booking reads and cancellation
type Service struct {
	bookingRepo BookingRepository
	publisher   EventPublisher
	logger      Logger
	now         func() time.Time
}

// NewService creates a booking service
func NewService(
	bookingRepo BookingRepository,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

// GetByID returns a booking visible to its owner or an admin
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, actor.UserID)

	booking, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !actor.CanAccess(booking.UserID) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings booking history of a user, optionally filtered by status
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	if !req.Actor.CanAccess(req.UserID) {
		s.logger.Warn("GetUserBookings: user=%d may not read bookings of user=%d", req.Actor.UserID, req.UserID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetCourtBookings non-cancelled bookings of a court on one date, ordered by start time
func (s *Service) GetCourtBookings(ctx context.Context, req *models.GetCourtBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCourtBookings: fetching bookings for court=%d on %s", req.CourtID, req.Date.Format(domain.DateFormat))

	if !req.Actor.IsAdmin() {
		s.logger.Warn("GetCourtBookings: user=%d is not an admin", req.Actor.UserID)
		return nil, ErrAccessDenied
	}
	if req.CourtID <= 0 || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: court and date are required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListByCourtAndDate(ctx, req.CourtID, domain.DateOnly(req.Date))
	if err != nil {
		s.logger.Error("GetCourtBookings: repository error for court=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: GetCourtBookings - repository error: %v", ErrInternal, err)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].Range.Start.Minutes() < bookings[j].Range.Start.Minutes()
	})

	return models.FromDomainBookingList(bookings), nil
}

// Cancel moves a pendiente or confirmada booking to cancelada.
// Cancelling never conflicts with anything so no lock is taken.
func (s *Service) Cancel(ctx context.Context, bookingID int64, actor domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, actor.UserID)

	booking, err := s.get(ctx, "Cancel", bookingID)
	if err != nil {
		return nil, err
	}

	if !actor.CanAccess(booking.UserID) {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", actor.UserID, bookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	now := s.now()
	booking.Status = domain.BookingStatusCancelled
	booking.CancelledAt = &now

	if err := s.publisher.Publish(ctx, events.ForBooking(events.BookingCancelled, booking, now)); err != nil {
		s.logger.Error("Cancel: failed to publish event for booking id=%d: %v", bookingID, err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled", bookingID)
	return models.FromDomainBooking(booking), nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
