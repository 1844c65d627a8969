package domain

import "time"

// SubscriptionStatus represents the status of a weekly subscription
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "activa"
	SubscriptionStatusExpired   SubscriptionStatus = "vencida"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelada"
	SubscriptionStatusPending   SubscriptionStatus = "pendiente"
)

// IsValid returns true for known subscription statuses
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusExpired, SubscriptionStatusCancelled, SubscriptionStatusPending:
		return true
	}
	return false
}

// InitialSubscriptionStatus status of a new subscription given its payment method
func InitialSubscriptionStatus(method PaymentMethod) SubscriptionStatus {
	if method.RequiresApproval() {
		return SubscriptionStatusPending
	}
	return SubscriptionStatusActive
}

// SubscriptionPaymentStatus represents the payment state of a subscription
type SubscriptionPaymentStatus string

const (
	SubscriptionPaymentPending  SubscriptionPaymentStatus = "pendiente"
	SubscriptionPaymentApproved SubscriptionPaymentStatus = "aprobado"
	SubscriptionPaymentRejected SubscriptionPaymentStatus = "rechazado"
)

// IsValid returns true for known payment statuses
func (s SubscriptionPaymentStatus) IsValid() bool {
	switch s {
	case SubscriptionPaymentPending, SubscriptionPaymentApproved, SubscriptionPaymentRejected:
		return true
	}
	return false
}

// Subscription represents a weekly recurring reservation over a date window
// Occurrences are never stored, conflict checks reason about the window directly
type Subscription struct {
	ID        int64
	CourtID   int64
	UserID    int64
	Sport     Sport
	Weekday   Weekday
	Range     TimeRange
	StartDate time.Time
	EndDate   *time.Time // nil = open-ended

	Status          SubscriptionStatus
	PaymentStatus   SubscriptionPaymentStatus
	PaymentMethod   PaymentMethod
	DiscountPercent float64 // multi-day tier, system-assigned
	MonthlyPrice    float64
	CustomerName    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the subscription occupies its weekly slot
func (s *Subscription) IsActive() bool {
	return s.Status == SubscriptionStatusActive
}

// InWindow returns true if date lies in [StartDate, EndDate]
func (s *Subscription) InWindow(date time.Time) bool {
	d := DateOnly(date)
	if d.Before(DateOnly(s.StartDate)) {
		return false
	}
	return s.EndDate == nil || !d.After(DateOnly(*s.EndDate))
}

// Covers returns true if the subscription has an occurrence on date
func (s *Subscription) Covers(date time.Time) bool {
	return WeekdayOf(date) == s.Weekday && s.InWindow(date)
}

// CanBeCancelled returns true for active or pending subscriptions
func (s *Subscription) CanBeCancelled() bool {
	return s.Status == SubscriptionStatusActive || s.Status == SubscriptionStatusPending
}

// CanBeReactivated returns true only for cancelled subscriptions
func (s *Subscription) CanBeReactivated() bool {
	return s.Status == SubscriptionStatusCancelled
}

// CanBeRenewed returns true for expired or cancelled subscriptions
func (s *Subscription) CanBeRenewed() bool {
	return s.Status == SubscriptionStatusExpired || s.Status == SubscriptionStatusCancelled
}

// IsExpiredAt returns true if an active subscription ended before asOf
func (s *Subscription) IsExpiredAt(asOf time.Time) bool {
	return s.IsActive() && s.EndDate != nil && DateOnly(*s.EndDate).Before(DateOnly(asOf))
}

// IsOwnedBy returns true if userID holds the subscription
func (s *Subscription) IsOwnedBy(userID int64) bool {
	return s.UserID == userID
}
