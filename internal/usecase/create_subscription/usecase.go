package create_subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/events"
	courtRepo "github.com/Brian13b/QuicoBasquetProject/internal/infra/storage/court"
	userClient "github.com/Brian13b/QuicoBasquetProject/internal/integrations/userservice"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/conflicts"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/pricing"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/subscriptions/models"
	"github.com/Brian13b/QuicoBasquetProject/pkg/clock"
)

// UseCase creates weekly subscriptions
type UseCase struct {
	subscriptionRepo SubscriptionRepository
	courtRepo        CourtRepository
	conflicts        ConflictChecker
	pricing          PricingEngine
	discounts        DiscountService
	userClient       UserServiceClient
	publisher        EventPublisher
	txManager        TransactionManager
	timeProvider     TimeProvider
	payment          domain.BankAccount
	logger           Logger
}

// NewUseCase creates the use case
func NewUseCase(
	subscriptionRepo SubscriptionRepository,
	courtRepo CourtRepository,
	conflicts ConflictChecker,
	pricing PricingEngine,
	discounts DiscountService,
	userClient UserServiceClient,
	publisher EventPublisher,
	txManager TransactionManager,
	payment domain.BankAccount,
	logger Logger,
) *UseCase {
	return &UseCase{
		subscriptionRepo: subscriptionRepo,
		courtRepo:        courtRepo,
		conflicts:        conflicts,
		pricing:          pricing,
		discounts:        discounts,
		userClient:       userClient,
		publisher:        publisher,
		txManager:        txManager,
		timeProvider:     clock.Real{},
		payment:          payment,
		logger:           logger,
	}
}

// Execute checks every occurrence of the new subscription, prices it with the tier the user
// reaches with this weekday and rebalances the rest of the user's subscriptions in the same transaction
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSubscription: user=%d, court=%d, sport=%s, weekday=%d, time=%s-%s",
		req.UserID, req.CourtID, req.Sport, req.Weekday, req.StartTime, req.EndTime)

	rng, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateSubscription: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateStartDate(req.StartDate, now); err != nil {
		uc.logger.Warn("CreateSubscription: date validation failed: %v", err)
		return nil, err
	}

	userCheckSkipped, err := uc.checkUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	weekday := domain.Weekday(req.Weekday)
	sport := domain.Sport(req.Sport)
	method := domain.PaymentMethod(req.PaymentMethod)
	start := domain.DateOnly(req.StartDate)

	var end *time.Time
	if req.EndDate != nil {
		e := domain.DateOnly(*req.EndDate)
		end = &e
	}

	var (
		result     *domain.Subscription
		rebalanced []int64
	)

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		court, err := uc.courtRepo.GetByID(txCtx, req.CourtID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				uc.logger.Warn("CreateSubscription: court id=%d not found", req.CourtID)
				return ErrCourtNotFound
			}
			return fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
		}

		if err := uc.courtRepo.LockForUpdate(txCtx, court.ID); err != nil {
			uc.logger.Error("CreateSubscription: failed to lock court id=%d: %v", court.ID, err)
			return fmt.Errorf("%w: failed to lock court: %v", ErrInternal, err)
		}

		if err := uc.conflicts.CheckSubscription(txCtx, court.ID, weekday, rng, start, end, nil); err != nil {
			if conflict, ok := conflicts.AsConflict(err); ok {
				uc.logger.Warn("CreateSubscription: %s %s collides with %s id=%d",
					weekday, conflict.Date.Format(domain.DateFormat), conflict.Kind, conflict.EntityID)
				return fmt.Errorf("%w: %w", ErrSlotNotAvailable, conflict)
			}
			uc.logger.Error("CreateSubscription: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}

		tier, err := uc.discounts.RecomputeForUser(txCtx, req.UserID, &weekday)
		if err != nil {
			return fmt.Errorf("%w: failed to compute discount: %v", ErrInternal, err)
		}

		price, err := uc.pricing.MonthlyPrice(court, sport, rng.DurationMinutes(), tier)
		if err != nil {
			if errors.Is(err, pricing.ErrUnknownSport) {
				uc.logger.Warn("CreateSubscription: court id=%d has no price for %s", court.ID, sport)
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			return fmt.Errorf("%w: failed to price subscription: %v", ErrInternal, err)
		}

		created, err := uc.subscriptionRepo.Create(txCtx, &domain.Subscription{
			CourtID:         court.ID,
			UserID:          req.UserID,
			Sport:           sport,
			Weekday:         weekday,
			Range:           rng,
			StartDate:       start,
			EndDate:         end,
			Status:          domain.InitialSubscriptionStatus(method),
			PaymentStatus:   domain.SubscriptionPaymentPending,
			PaymentMethod:   method,
			DiscountPercent: tier,
			MonthlyPrice:    price,
			CustomerName:    req.CustomerName,
		})
		if err != nil {
			uc.logger.Error("CreateSubscription: failed to create subscription: %v", err)
			return fmt.Errorf("%w: failed to create subscription: %v", ErrInternal, err)
		}

		// pendiente subscriptions join the tier once approved
		if created.IsActive() {
			rb, err := uc.discounts.Rebalance(txCtx, req.UserID)
			if err != nil {
				return fmt.Errorf("%w: failed to rebalance discounts: %v", ErrInternal, err)
			}
			for _, id := range rb.Updated {
				if id != created.ID {
					rebalanced = append(rebalanced, id)
				}
			}
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateSubscription: created subscription id=%d, status=%s, discount=%.0f%%, monthly=%.2f",
		result.ID, result.Status, result.DiscountPercent, result.MonthlyPrice)

	if err := uc.publisher.Publish(ctx, events.ForSubscription(events.SubscriptionCreated, result, now)); err != nil {
		uc.logger.Error("CreateSubscription: failed to publish event for subscription id=%d: %v", result.ID, err)
	}

	resp := &Response{
		SubscriptionResponse: *models.FromDomainSubscription(result),
		Rebalanced:           rebalanced,
		UserCheckSkipped:     userCheckSkipped,
	}
	if result.PaymentMethod == domain.PaymentTransfer {
		resp.Payment = &PaymentInstructions{BankAccount: uc.payment, Amount: result.MonthlyPrice}
	}
	return resp, nil
}

func (uc *UseCase) checkUser(ctx context.Context, userID int64) (bool, error) {
	user, err := uc.userClient.GetUserWithGracefulDegradation(ctx, userID)
	switch {
	case errors.Is(err, userClient.ErrServiceDegraded):
		uc.logger.Error("CreateSubscription: proceeding without user check for user=%d", userID)
		return true, nil
	case errors.Is(err, userClient.ErrUserNotFound):
		return false, ErrUserNotFound
	case err != nil:
		return false, fmt.Errorf("%w: user check: %v", ErrInternal, err)
	}

	if user.Blocked {
		uc.logger.Warn("CreateSubscription: user=%d is blocked", userID)
		return false, ErrUserBlocked
	}
	return false, nil
}
