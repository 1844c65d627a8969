package subscription

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/pkg/dbmetrics"
	"github.com/Brian13b/QuicoBasquetProject/pkg/psqlbuilder"
)

const table = "subscriptions"

var columns = []string{
	"id",
	"court_id",
	"user_id",
	"sport",
	"weekday",
	"start_time",
	"end_time",
	"start_date",
	"end_date",
	"status",
	"payment_status",
	"payment_method",
	"discount_percent",
	"monthly_price",
	"customer_name",
	"created_at",
	"updated_at",
}

// Expired a subscription flipped to vencida by ExpireEndedBefore
type Expired struct {
	ID      int64
	UserID  int64
	CourtID int64
}

// Repository subscriptions storage
type Repository struct {
	db DBExecutor
}

// NewRepository creates a subscriptions repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a subscription and fills its id and timestamps
func (r *Repository) Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var endDate interface{}
	if sub.EndDate != nil {
		endDate = domain.DateOnly(*sub.EndDate)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"court_id",
			"user_id",
			"sport",
			"weekday",
			"start_time",
			"end_time",
			"start_date",
			"end_date",
			"status",
			"payment_status",
			"payment_method",
			"discount_percent",
			"monthly_price",
			"customer_name",
		).
		Values(
			sub.CourtID,
			sub.UserID,
			sub.Sport,
			int(sub.Weekday),
			sub.Range.Start,
			sub.Range.End,
			domain.DateOnly(sub.StartDate),
			endDate,
			sub.Status,
			sub.PaymentStatus,
			sub.PaymentMethod,
			sub.DiscountPercent,
			sub.MonthlyPrice,
			sub.CustomerName,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sub.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	sub.CreatedAt = createdAt.Time
	sub.UpdatedAt = updatedAt.Time

	return sub, nil
}

// GetByID returns a subscription by id, locking the row inside a transaction
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	sel := psqlbuilder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		sel = sel.Suffix("FOR UPDATE")
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	sub, err := scanSubscription(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan subscription: %v", ErrScanRow, err)
	}

	return sub, nil
}

// GetByUserID every subscription of a user, optionally filtered by status
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.SubscriptionStatus) ([]*domain.Subscription, error) {
	sel := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("weekday", "start_time")

	if status != nil {
		sel = sel.Where(squirrel.Eq{"status": *status})
	}

	return r.list(ctx, "GetByUserID", sel)
}

// ListActiveByCourtAndWeekday activa subscriptions of a court on a weekday
func (r *Repository) ListActiveByCourtAndWeekday(ctx context.Context, courtID int64, weekday domain.Weekday) ([]*domain.Subscription, error) {
	return r.list(ctx, "ListActiveByCourtAndWeekday", activeOnWeekday(courtID, weekday, dbmetrics.IsInTransaction(ctx)))
}

// ListActiveByUser activa subscriptions of a user across all courts
func (r *Repository) ListActiveByUser(ctx context.Context, userID int64) ([]*domain.Subscription, error) {
	sel := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "status": domain.SubscriptionStatusActive}).
		OrderBy("id")

	if dbmetrics.IsInTransaction(ctx) {
		sel = sel.Suffix("FOR UPDATE")
	}

	return r.list(ctx, "ListActiveByUser", sel)
}

// UpdateStatus sets the subscription status
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.SubscriptionStatus) error {
	return r.exec(ctx, "UpdateStatus", psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// Renew reactivates the subscription with a new end date
func (r *Repository) Renew(ctx context.Context, id int64, endDate time.Time) error {
	return r.exec(ctx, "Renew", psqlbuilder.Update(table).
		Set("status", domain.SubscriptionStatusActive).
		Set("end_date", domain.DateOnly(endDate)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// UpdatePricing stores the tier discount and the recomputed monthly price
func (r *Repository) UpdatePricing(ctx context.Context, id int64, discountPercent, monthlyPrice float64) error {
	return r.exec(ctx, "UpdatePricing", psqlbuilder.Update(table).
		Set("discount_percent", discountPercent).
		Set("monthly_price", monthlyPrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// UpdatePaymentStatus sets the payment status
func (r *Repository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.SubscriptionPaymentStatus) error {
	return r.exec(ctx, "UpdatePaymentStatus", psqlbuilder.Update(table).
		Set("payment_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// UpdatePrice overrides the monthly price
func (r *Repository) UpdatePrice(ctx context.Context, id int64, monthlyPrice float64) error {
	return r.exec(ctx, "UpdatePrice", psqlbuilder.Update(table).
		Set("monthly_price", monthlyPrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// UpdateDiscount overrides the discount percent
func (r *Repository) UpdateDiscount(ctx context.Context, id int64, discountPercent float64) error {
	return r.exec(ctx, "UpdateDiscount", psqlbuilder.Update(table).
		Set("discount_percent", discountPercent).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// ExpireEndedBefore flips activa subscriptions whose end date is before asOf to vencida
// and returns what it changed. Running it twice changes nothing the second time.
func (r *Repository) ExpireEndedBefore(ctx context.Context, asOf time.Time) ([]Expired, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := expireQuery(asOf).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ExpireEndedBefore - build update query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ExpireEndedBefore - execute update: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	expired := make([]Expired, 0)
	for rows.Next() {
		var e Expired
		if err := rows.Scan(&e.ID, &e.UserID, &e.CourtID); err != nil {
			return nil, fmt.Errorf("%w: ExpireEndedBefore - scan row: %v", ErrScanRow, err)
		}
		expired = append(expired, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ExpireEndedBefore - rows error: %v", ErrScanRow, err)
	}

	return expired, nil
}

func (r *Repository) list(ctx context.Context, op string, sel squirrel.SelectBuilder) ([]*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	subs := make([]*domain.Subscription, 0)
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return subs, nil
}

func (r *Repository) exec(ctx context.Context, op string, upd squirrel.UpdateBuilder) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := upd.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}

func activeOnWeekday(courtID int64, weekday domain.Weekday, forUpdate bool) squirrel.SelectBuilder {
	sel := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"court_id": courtID,
			"weekday":  int(weekday),
			"status":   domain.SubscriptionStatusActive,
		}).
		OrderBy("start_time")

	if forUpdate {
		sel = sel.Suffix("FOR UPDATE")
	}

	return sel
}

func expireQuery(asOf time.Time) squirrel.UpdateBuilder {
	return psqlbuilder.Update(table).
		Set("status", domain.SubscriptionStatusExpired).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.SubscriptionStatusActive}).
		Where(squirrel.NotEq{"end_date": nil}).
		Where(squirrel.Lt{"end_date": domain.DateOnly(asOf)}).
		Suffix("RETURNING id, user_id, court_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSubscription(row rowScanner) (*domain.Subscription, error) {
	var sub domain.Subscription
	var weekday int
	var endDate sql.NullTime
	var customerName sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&sub.ID,
		&sub.CourtID,
		&sub.UserID,
		&sub.Sport,
		&weekday,
		&sub.Range.Start,
		&sub.Range.End,
		&sub.StartDate,
		&endDate,
		&sub.Status,
		&sub.PaymentStatus,
		&sub.PaymentMethod,
		&sub.DiscountPercent,
		&sub.MonthlyPrice,
		&customerName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	sub.Weekday = domain.Weekday(weekday)
	sub.StartDate = domain.DateOnly(sub.StartDate)
	if endDate.Valid {
		end := domain.DateOnly(endDate.Time)
		sub.EndDate = &end
	}
	if customerName.Valid {
		sub.CustomerName = &customerName.String
	}
	sub.CreatedAt = createdAt.Time
	sub.UpdatedAt = updatedAt.Time

	return &sub, nil
}
