package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/pkg/dbmetrics"
	"github.com/Brian13b/QuicoBasquetProject/pkg/psqlbuilder"
)

const table = "bookings"

var columns = []string{
	"id",
	"court_id",
	"user_id",
	"sport",
	"booking_date",
	"start_time",
	"end_time",
	"status",
	"payment_status",
	"payment_method",
	"payment_id",
	"customer_name",
	"price",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository bookings storage
type Repository struct {
	db DBExecutor
}

// NewRepository creates a bookings repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a booking and fills its id and timestamps.
// Uses the transaction from ctx when one is present.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"court_id",
			"user_id",
			"sport",
			"booking_date",
			"start_time",
			"end_time",
			"status",
			"payment_status",
			"payment_method",
			"payment_id",
			"customer_name",
			"price",
		).
		Values(
			booking.CourtID,
			booking.UserID,
			booking.Sport,
			domain.DateOnly(booking.Date),
			booking.Range.Start,
			booking.Range.End,
			booking.Status,
			booking.PaymentStatus,
			booking.PaymentMethod,
			booking.PaymentID,
			booking.CustomerName,
			booking.Price,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID returns a booking by id
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	sel := psqlbuilder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		sel = sel.Suffix("FOR UPDATE")
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID returns the user's bookings, newest date first, optionally filtered by status
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	sel := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC", "start_time DESC")

	if status != nil {
		sel = sel.Where(squirrel.Eq{"status": *status})
	}

	return r.list(ctx, "GetByUserID", sel)
}

// ListByCourtAndDate non-cancelled bookings of a court on one date.
// Inside a transaction the rows are locked.
func (r *Repository) ListByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Booking, error) {
	return r.list(ctx, "ListByCourtAndDate", activeOnDates(courtID, []time.Time{date}, dbmetrics.IsInTransaction(ctx)))
}

// ListByCourtAndDates non-cancelled bookings of a court on any of dates, in a single query
func (r *Repository) ListByCourtAndDates(ctx context.Context, courtID int64, dates []time.Time) ([]*domain.Booking, error) {
	if len(dates) == 0 {
		return []*domain.Booking{}, nil
	}
	return r.list(ctx, "ListByCourtAndDates", activeOnDates(courtID, dates, dbmetrics.IsInTransaction(ctx)))
}

// UpdateStatus sets the booking status, clearing cancelled_at unless the new status is cancelada
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	upd := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if status == domain.BookingStatusCancelled {
		upd = upd.Set("cancelled_at", squirrel.Expr("COALESCE(cancelled_at, NOW())"))
	} else {
		upd = upd.Set("cancelled_at", nil)
	}

	return r.exec(ctx, "UpdateStatus", upd)
}

// Cancel marks the booking cancelada and stamps cancelled_at
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	upd := psqlbuilder.Update(table).
		Set("status", domain.BookingStatusCancelled).
		Set("payment_status", squirrel.Expr("CASE WHEN payment_status = ? THEN ? ELSE payment_status END",
			domain.BookingPaymentPending, domain.BookingPaymentCancelled)).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	return r.exec(ctx, "Cancel", upd)
}

// UpdatePaymentStatus sets the payment status
func (r *Repository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.BookingPaymentStatus) error {
	upd := psqlbuilder.Update(table).
		Set("payment_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	return r.exec(ctx, "UpdatePaymentStatus", upd)
}

// UpdatePrice overrides the booking price
func (r *Repository) UpdatePrice(ctx context.Context, id int64, price float64) error {
	upd := psqlbuilder.Update(table).
		Set("price", price).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	return r.exec(ctx, "UpdatePrice", upd)
}

func (r *Repository) list(ctx context.Context, op string, sel squirrel.SelectBuilder) ([]*domain.Booking, error) {
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

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return bookings, nil
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
		return ErrBookingNotFound
	}

	return nil
}

// activeOnDates selects non-cancelled bookings of a court on the given dates
func activeOnDates(courtID int64, dates []time.Time, forUpdate bool) squirrel.SelectBuilder {
	days := make([]string, 0, len(dates))
	for _, d := range dates {
		days = append(days, d.Format(domain.DateFormat))
	}

	sel := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.NotEq{"status": domain.InactiveBookingStatuses}).
		Where("booking_date = ANY(?::date[])", pq.Array(days)).
		OrderBy("booking_date", "start_time")

	if forUpdate {
		sel = sel.Suffix("FOR UPDATE")
	}

	return sel
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime
	var cancelledAt sql.NullTime
	var paymentID, customerName sql.NullString

	err := row.Scan(
		&booking.ID,
		&booking.CourtID,
		&booking.UserID,
		&booking.Sport,
		&booking.Date,
		&booking.Range.Start,
		&booking.Range.End,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.PaymentMethod,
		&paymentID,
		&customerName,
		&booking.Price,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Date = domain.DateOnly(booking.Date)
	if paymentID.Valid {
		booking.PaymentID = &paymentID.String
	}
	if customerName.Valid {
		booking.CustomerName = &customerName.String
	}
	if cancelledAt.Valid {
		booking.CancelledAt = &cancelledAt.Time
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
