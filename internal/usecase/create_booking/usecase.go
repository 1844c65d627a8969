package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/events"
	courtRepo "github.com/Brian13b/QuicoBasquetProject/internal/infra/storage/court"
	userClient "github.com/Brian13b/QuicoBasquetProject/internal/integrations/userservice"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/conflicts"
	"github.com/Brian13b/QuicoBasquetProject/pkg/clock"
)

// UseCase creates single bookings
type UseCase struct {
	bookingRepo  BookingRepository
	courtRepo    CourtRepository
	conflicts    ConflictChecker
	pricing      PricingEngine
	userClient   UserServiceClient
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	payment      domain.BankAccount
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	conflicts ConflictChecker,
	pricing PricingEngine,
	userClient UserServiceClient,
	publisher EventPublisher,
	txManager TransactionManager,
	payment domain.BankAccount,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		courtRepo:    courtRepo,
		conflicts:    conflicts,
		pricing:      pricing,
		userClient:   userClient,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: clock.Real{},
		payment:      payment,
		logger:       logger,
	}
}

// Execute validates the request, then checks and inserts under the court lock in a
// serializable transaction so two overlapping requests cannot both commit
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, court=%d, sport=%s, date=%s, time=%s-%s",
		req.UserID, req.CourtID, req.Sport, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Request shape, operating window and duration
	rng, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	date := domain.DateOnly(req.Date)

	// 2. No bookings in the past
	if err := validateDate(date, rng.Start, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Blocked users cannot book; an unreachable user service does not stop the booking
	userCheckSkipped, err := uc.checkUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	var result *domain.Booking

	// 4. Check and insert under the court lock
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		court, err := uc.courtRepo.GetByID(txCtx, req.CourtID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				uc.logger.Warn("CreateBooking: court id=%d not found", req.CourtID)
				return ErrCourtNotFound
			}
			uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
			return fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
		}

		if err := uc.courtRepo.LockForUpdate(txCtx, court.ID); err != nil {
			uc.logger.Error("CreateBooking: failed to lock court id=%d: %v", court.ID, err)
			return fmt.Errorf("%w: failed to lock court: %v", ErrInternal, err)
		}

		if err := uc.conflicts.CheckBooking(txCtx, court.ID, date, rng, nil); err != nil {
			if conflict, ok := conflicts.AsConflict(err); ok {
				uc.logger.Warn("CreateBooking: slot not available, collides with %s id=%d", conflict.Kind, conflict.EntityID)
				return fmt.Errorf("%w: %w", ErrSlotNotAvailable, conflict)
			}
			uc.logger.Error("CreateBooking: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}

		sport := domain.Sport(req.Sport)
		price, err := uc.pricing.SessionPrice(court, sport, rng.DurationMinutes(), false)
		if err != nil {
			uc.logger.Warn("CreateBooking: cannot price %s on court id=%d: %v", sport, court.ID, err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		booking := &domain.Booking{
			CourtID:       court.ID,
			UserID:        req.UserID,
			Sport:         sport,
			Date:          date,
			Range:         rng,
			Status:        domain.BookingStatusConfirmed,
			PaymentStatus: domain.BookingPaymentPending,
			PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
			CustomerName:  req.CustomerName,
			Price:         price,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d, price=%.2f", result.ID, result.Price)

	if err := uc.publisher.Publish(ctx, events.ForBooking(events.BookingCreated, result, now)); err != nil {
		uc.logger.Error("CreateBooking: failed to publish event for booking id=%d: %v", result.ID, err)
	}

	return uc.toResponse(result, userCheckSkipped), nil
}

// checkUser returns true when the user service could not be asked
func (uc *UseCase) checkUser(ctx context.Context, userID int64) (bool, error) {
	user, err := uc.userClient.GetUserWithGracefulDegradation(ctx, userID)
	switch {
	case errors.Is(err, userClient.ErrServiceDegraded):
		uc.logger.Error("CreateBooking: proceeding without user check for user=%d", userID)
		return true, nil
	case errors.Is(err, userClient.ErrUserNotFound):
		uc.logger.Warn("CreateBooking: user=%d not found", userID)
		return false, ErrUserNotFound
	case err != nil:
		return false, fmt.Errorf("%w: user check: %v", ErrInternal, err)
	}

	if user.Blocked {
		uc.logger.Warn("CreateBooking: user=%d is blocked", userID)
		return false, ErrUserBlocked
	}
	return false, nil
}

func (uc *UseCase) toResponse(b *domain.Booking, userCheckSkipped bool) *Response {
	resp := &Response{
		ID:               b.ID,
		CourtID:          b.CourtID,
		UserID:           b.UserID,
		Sport:            string(b.Sport),
		Date:             b.Date,
		StartTime:        b.Range.Start,
		EndTime:          b.Range.End,
		DurationMinutes:  b.Range.DurationMinutes(),
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		PaymentMethod:    string(b.PaymentMethod),
		CustomerName:     b.CustomerName,
		Price:            b.Price,
		UserCheckSkipped: userCheckSkipped,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}

	if b.PaymentMethod == domain.PaymentTransfer {
		resp.Payment = &PaymentInstructions{BankAccount: uc.payment, Amount: b.Price}
	}

	return resp
}
