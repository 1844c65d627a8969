package court

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/pkg/dbmetrics"
	"github.com/Brian13b/QuicoBasquetProject/pkg/psqlbuilder"
)

// Repository courts and their per-sport prices
type Repository struct {
	db DBExecutor
}

// NewRepository creates a courts repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID returns a court with its prices
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	courts, err := r.load(ctx, "GetByID", squirrel.Eq{"c.id": id})
	if err != nil {
		return nil, err
	}
	if len(courts) == 0 {
		return nil, ErrCourtNotFound
	}
	return courts[0], nil
}

// List returns every court ordered by id
func (r *Repository) List(ctx context.Context) ([]*domain.Court, error) {
	return r.load(ctx, "List", nil)
}

// UpsertSportPrice stores the hourly price and per-session discount of a sport on a court
func (r *Repository) UpsertSportPrice(ctx context.Context, courtID int64, sport domain.Sport, pricing domain.SportPricing) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := upsertPriceQuery(courtID, sport, pricing).ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertSportPrice - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertSportPrice - execute insert: %v", ErrExecQuery, err)
	}

	return r.touch(ctx, courtID)
}

// UpdateSubscriptionDiscount sets the discount applied to subscription sessions
func (r *Repository) UpdateSubscriptionDiscount(ctx context.Context, courtID int64, percent float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("courts").
		Set("subscription_discount", percent).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": courtID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSubscriptionDiscount - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSubscriptionDiscount - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSubscriptionDiscount - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCourtNotFound
	}

	return nil
}

// LockForUpdate takes a transaction-scoped advisory lock keyed by the court id.
// Every check-then-commit flow on the same court queues behind it until commit or rollback.
func (r *Repository) LockForUpdate(ctx context.Context, courtID int64) error {
	tx, ok := dbmetrics.TxFromContext(ctx)
	if !ok {
		return ErrNotInTransaction
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", courtID); err != nil {
		return fmt.Errorf("%w: LockForUpdate - acquire lock: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) touch(ctx context.Context, courtID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("courts").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": courtID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: touch - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: touch - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// load reads courts joined with their prices, one row per court and sport
func (r *Repository) load(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectCourts(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	byID := make(map[int64]*domain.Court)
	for rows.Next() {
		var (
			id                       int64
			name                     string
			subscriptionDiscount     float64
			createdAt, updatedAt     sql.NullTime
			sport                    sql.NullString
			hourlyPrice, discountPct sql.NullFloat64
		)

		if err := rows.Scan(&id, &name, &subscriptionDiscount, &createdAt, &updatedAt, &sport, &hourlyPrice, &discountPct); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		court, ok := byID[id]
		if !ok {
			court = &domain.Court{
				ID:                          id,
				Name:                        name,
				Pricing:                     make(map[domain.Sport]domain.SportPricing),
				SubscriptionDiscountPercent: subscriptionDiscount,
				CreatedAt:                   createdAt.Time,
				UpdatedAt:                   updatedAt.Time,
			}
			byID[id] = court
		}

		if sport.Valid {
			court.Pricing[domain.Sport(sport.String)] = domain.SportPricing{
				HourlyPrice:     hourlyPrice.Float64,
				DiscountPercent: discountPct.Float64,
			}
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	courts := make([]*domain.Court, 0, len(byID))
	for _, c := range byID {
		courts = append(courts, c)
	}
	sort.Slice(courts, func(i, j int) bool { return courts[i].ID < courts[j].ID })

	return courts, nil
}

func selectCourts(where squirrel.Sqlizer) squirrel.SelectBuilder {
	sel := psqlbuilder.Select(
		"c.id",
		"c.name",
		"c.subscription_discount",
		"c.created_at",
		"c.updated_at",
		"p.sport",
		"p.hourly_price",
		"p.discount_percent",
	).
		From("courts c").
		LeftJoin("court_sport_prices p ON p.court_id = c.id").
		OrderBy("c.id", "p.sport")

	if where != nil {
		sel = sel.Where(where)
	}

	return sel
}

func upsertPriceQuery(courtID int64, sport domain.Sport, pricing domain.SportPricing) squirrel.InsertBuilder {
	return psqlbuilder.Insert("court_sport_prices").
		Columns("court_id", "sport", "hourly_price", "discount_percent").
		Values(courtID, sport, pricing.HourlyPrice, pricing.DiscountPercent).
		Suffix("ON CONFLICT (court_id, sport) DO UPDATE SET hourly_price = EXCLUDED.hourly_price, discount_percent = EXCLUDED.discount_percent")
}
