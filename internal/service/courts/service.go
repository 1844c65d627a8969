package courts

import (
	"context"
	"errors"
	"fmt"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	courtRepo "github.com/Brian13b/QuicoBasquetProject/internal/infra/storage/court"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/courts/models"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/pricing"
)

// Service courts, their price lists and price quotes
type Service struct {
	courtRepo CourtRepository
	pricing   PricingEngine
	discounts DiscountCalculator
	txManager TransactionManager
	logger    Logger
}

// NewService creates a courts service
func NewService(
	courtRepo CourtRepository,
	pricing PricingEngine,
	discounts DiscountCalculator,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		courtRepo: courtRepo,
		pricing:   pricing,
		discounts: discounts,
		txManager: txManager,
		logger:    logger,
	}
}

// GetCourt returns one court
func (s *Service) GetCourt(ctx context.Context, id int64) (*models.CourtResponse, error) {
	court, err := s.get(ctx, "GetCourt", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainCourt(court), nil
}

// ListCourts returns every court
func (s *Service) ListCourts(ctx context.Context) (*models.CourtListResponse, error) {
	courts, err := s.courtRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListCourts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCourts - repository error: %v", ErrInternal, err)
	}

	resp := &models.CourtListResponse{Courts: make([]models.CourtResponse, 0, len(courts))}
	for _, c := range courts {
		resp.Courts = append(resp.Courts, *models.FromDomainCourt(c))
	}
	return resp, nil
}

// UpdatePricing changes hourly prices, per-session discounts and the subscription discount.
// Existing subscriptions keep the monthly price they were sold at.
func (s *Service) UpdatePricing(ctx context.Context, req *models.UpdatePricingRequest) (*models.CourtResponse, error) {
	s.logger.Info("UpdatePricing: court=%d by user=%d, %d price(s)", req.CourtID, req.Actor.UserID, len(req.Prices))

	if !req.Actor.IsAdmin() {
		s.logger.Warn("UpdatePricing: user=%d is not an admin", req.Actor.UserID)
		return nil, ErrAccessDenied
	}
	if err := validatePricing(req); err != nil {
		s.logger.Warn("UpdatePricing: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.Court
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.get(txCtx, "UpdatePricing", req.CourtID); err != nil {
			return err
		}

		for _, p := range req.Prices {
			err := s.courtRepo.UpsertSportPrice(txCtx, req.CourtID, domain.Sport(p.Sport), domain.SportPricing{
				HourlyPrice:     p.HourlyPrice,
				DiscountPercent: p.DiscountPercent,
			})
			if err != nil {
				s.logger.Error("UpdatePricing: failed to store %s price for court=%d: %v", p.Sport, req.CourtID, err)
				return fmt.Errorf("%w: UpdatePricing - upsert price: %v", ErrInternal, err)
			}
		}

		if req.SubscriptionDiscountPercent != nil {
			if err := s.courtRepo.UpdateSubscriptionDiscount(txCtx, req.CourtID, *req.SubscriptionDiscountPercent); err != nil {
				s.logger.Error("UpdatePricing: failed to store subscription discount for court=%d: %v", req.CourtID, err)
				return fmt.Errorf("%w: UpdatePricing - subscription discount: %v", ErrInternal, err)
			}
		}

		court, err := s.get(txCtx, "UpdatePricing", req.CourtID)
		if err != nil {
			return err
		}
		updated = court
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdatePricing: court=%d updated", req.CourtID)
	return models.FromDomainCourt(updated), nil
}

// Quote previews the session price, and for subscriptions the monthly price with the
// multi-day tier the user would reach by adding the weekday
func (s *Service) Quote(ctx context.Context, req *models.QuoteRequest) (*models.QuoteResponse, error) {
	sport := domain.Sport(req.Sport)
	if !sport.IsValid() {
		return nil, fmt.Errorf("%w: sport %q", ErrUnknownSport, req.Sport)
	}
	if req.DurationMinutes < domain.MinBookingMinutes || req.DurationMinutes > domain.MaxBookingMinutes {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDuration, req.DurationMinutes)
	}
	if req.Weekday != nil {
		if err := req.Weekday.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	court, err := s.get(ctx, "Quote", req.CourtID)
	if err != nil {
		return nil, err
	}

	session, err := s.pricing.SessionPrice(court, sport, req.DurationMinutes, req.Subscription)
	if err != nil {
		return nil, s.pricingError(err)
	}

	resp := &models.QuoteResponse{
		CourtID:         court.ID,
		Sport:           string(sport),
		DurationMinutes: req.DurationMinutes,
		SessionPrice:    session,
	}
	if !req.Subscription {
		return resp, nil
	}

	if req.UserID != nil {
		tier, err := s.discounts.RecomputeForUser(ctx, *req.UserID, req.Weekday)
		if err != nil {
			s.logger.Error("Quote: failed to compute tier for user=%d: %v", *req.UserID, err)
			return nil, fmt.Errorf("%w: Quote - tier: %v", ErrInternal, err)
		}
		resp.DiscountPercent = tier
	}

	monthly, err := s.pricing.MonthlyPrice(court, sport, req.DurationMinutes, resp.DiscountPercent)
	if err != nil {
		return nil, s.pricingError(err)
	}
	resp.MonthlyPrice = &monthly

	return resp, nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Court, error) {
	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("%s: court id=%d not found", op, id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("%s: repository error for court id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return court, nil
}

func (s *Service) pricingError(err error) error {
	if errors.Is(err, pricing.ErrUnknownSport) {
		return fmt.Errorf("%w: %v", ErrUnknownSport, err)
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

func validatePricing(req *models.UpdatePricingRequest) error {
	if len(req.Prices) == 0 && req.SubscriptionDiscountPercent == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	seen := make(map[string]bool, len(req.Prices))
	for _, p := range req.Prices {
		if !domain.Sport(p.Sport).IsValid() {
			return fmt.Errorf("%w: sport %q", ErrUnknownSport, p.Sport)
		}
		if seen[p.Sport] {
			return fmt.Errorf("%w: sport %q listed twice", ErrInvalidInput, p.Sport)
		}
		seen[p.Sport] = true

		if p.HourlyPrice <= 0 {
			return fmt.Errorf("%w: hourly price of %s must be positive", ErrInvalidInput, p.Sport)
		}
		if !validPercent(p.DiscountPercent) {
			return fmt.Errorf("%w: discount of %s must be within 0..100", ErrInvalidInput, p.Sport)
		}
	}

	if req.SubscriptionDiscountPercent != nil && !validPercent(*req.SubscriptionDiscountPercent) {
		return fmt.Errorf("%w: subscription discount must be within 0..100", ErrInvalidInput)
	}

	return nil
}

func validPercent(p float64) bool {
	return p >= 0 && p <= domain.MaxDiscountPercent
}
