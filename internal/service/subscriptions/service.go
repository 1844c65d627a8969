package subscriptions

import (
	"context"
	"errors"
	"fmt"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	subscriptionRepo "github.com/Brian13b/QuicoBasquetProject/internal/infra/storage/subscription"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/subscriptions/models"
)

// Service subscription reads. Every state change goes through a use case.
type Service struct {
	subscriptionRepo SubscriptionRepository
	logger           Logger
}

// NewService creates a subscription service
func NewService(subscriptionRepo SubscriptionRepository, logger Logger) *Service {
	return &Service{subscriptionRepo: subscriptionRepo, logger: logger}
}

// GetByID returns a subscription visible to its owner or an admin
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.SubscriptionResponse, error) {
	sub, err := s.subscriptionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			s.logger.Warn("GetByID: subscription id=%d not found", id)
			return nil, ErrSubscriptionNotFound
		}
		s.logger.Error("GetByID: repository error for subscription id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !actor.CanAccess(sub.UserID) {
		s.logger.Warn("GetByID: access denied for user=%d to subscription id=%d", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainSubscription(sub), nil
}

// GetUserSubscriptions subscriptions of a user, optionally filtered by status
func (s *Service) GetUserSubscriptions(ctx context.Context, req *models.GetUserSubscriptionsRequest) (*models.SubscriptionListResponse, error) {
	s.logger.Info("GetUserSubscriptions: fetching subscriptions for user=%d", req.UserID)

	if !req.Actor.CanAccess(req.UserID) {
		s.logger.Warn("GetUserSubscriptions: user=%d may not read subscriptions of user=%d", req.Actor.UserID, req.UserID)
		return nil, ErrAccessDenied
	}

	var status *domain.SubscriptionStatus
	if req.Status != nil {
		st, err := models.ToDomainSubscriptionStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &st
	}

	subs, err := s.subscriptionRepo.GetByUserID(ctx, req.UserID, status)
	if err != nil {
		s.logger.Error("GetUserSubscriptions: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserSubscriptions - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSubscriptionList(subs), nil
}
