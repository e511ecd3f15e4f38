package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/autoparts/internal/model"
	"github.com/you-humble/autoparts/platform/db/pgutil"
	"github.com/you-humble/autoparts/platform/db/txmanager"
)

const (
	partsTable     = "parts"
	movementsTable = "stock_movements"
)

var partColumns = []string{
	"id", "code", "name", "description", "brand", "model", "category",
	"price", "stock", "created_at", "updated_at",
}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewPartRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) q(ctx context.Context) txmanager.Querier {
	return txmanager.Q(ctx, r.pool)
}

func (r *repository) List(ctx context.Context, filter model.PartsFilter) ([]model.Part, error) {
	q := r.sb.
		Select(partColumns...).
		From(partsTable).
		OrderBy("id")

	if filter.NameLike != "" {
		q = q.Where(sq.ILike{"name": pgutil.Contains(filter.NameLike)})
	}
	if filter.BrandLike != "" {
		q = q.Where(sq.ILike{"brand": pgutil.Contains(filter.BrandLike)})
	}
	if filter.CategoryLike != "" {
		q = q.Where(sq.ILike{"category": pgutil.Contains(filter.CategoryLike)})
	}
	if filter.Term != "" {
		p := pgutil.Contains(filter.Term)
		q = q.Where(sq.Or{
			sq.ILike{"name": p},
			sq.ILike{"description": p},
			sq.ILike{"code": p},
		})
	}
	if filter.StockBelow != nil {
		q = q.Where(sq.Lt{"stock": *filter.StockBelow})
	}
	if filter.PriceMin != nil {
		q = q.Where(sq.GtOrEq{"price": *filter.PriceMin})
	}
	if filter.PriceMax != nil {
		q = q.Where(sq.LtOrEq{"price": *filter.PriceMax})
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.q(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parts := make([]model.Part, 0)
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, err
		}
		parts = append(parts, *p)
	}

	return parts, rows.Err()
}

func (r *repository) PartByID(ctx context.Context, id int64) (*model.Part, error) {
	return r.one(ctx, r.sb.Select(partColumns...).From(partsTable).Where(sq.Eq{"id": id}))
}

func (r *repository) PartByCode(ctx context.Context, code string) (*model.Part, error) {
	return r.one(ctx, r.sb.Select(partColumns...).From(partsTable).Where(sq.Eq{"code": code}))
}

// PartByIDForUpdate locks the row until the surrounding transaction ends.
func (r *repository) PartByIDForUpdate(ctx context.Context, id int64) (*model.Part, error) {
	return r.one(ctx, r.sb.
		Select(partColumns...).
		From(partsTable).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE"),
	)
}

func (r *repository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, sq.Eq{"code": code})
}

func (r *repository) ExistsByCodeExcept(ctx context.Context, code string, id int64) (bool, error) {
	return r.exists(ctx, sq.And{sq.Eq{"code": code}, sq.NotEq{"id": id}})
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	sqlStr, args, err := r.sb.Select("COUNT(*)").From(partsTable).ToSql()
	if err != nil {
		return 0, err
	}

	var n int64
	if err := r.q(ctx).QueryRow(ctx, sqlStr, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *repository) Create(ctx context.Context, p *model.Part) (*model.Part, error) {
	q := r.sb.
		Insert(partsTable).
		Columns("code", "name", "description", "brand", "model", "category", "price", "stock").
		Values(p.Code, p.Name, p.Description, p.Brand, p.Model, p.Category, p.Price, p.Stock).
		Suffix("RETURNING " + columnList())

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanPart(r.q(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if pgutil.IsUniqueViolation(err) {
			return nil, model.ErrDuplicatePartCode
		}
		return nil, err
	}

	return created, nil
}

// Update replaces every mutable field of the part.
func (r *repository) Update(ctx context.Context, p *model.Part) (*model.Part, error) {
	if p.ID == 0 {
		return nil, errors.New("empty part id")
	}

	q := r.sb.
		Update(partsTable).
		SetMap(sq.Eq{
			"code":        p.Code,
			"name":        p.Name,
			"description": p.Description,
			"brand":       p.Brand,
			"model":       p.Model,
			"category":    p.Category,
			"price":       p.Price,
			"stock":       p.Stock,
			"updated_at":  sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING " + columnList())

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	updated, err := scanPart(r.q(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, model.ErrPartNotFound
		case pgutil.IsUniqueViolation(err):
			return nil, model.ErrDuplicatePartCode
		}
		return nil, err
	}

	return updated, nil
}

func (r *repository) SetStock(ctx context.Context, id int64, stock int) (*model.Part, error) {
	q := r.sb.
		Update(partsTable).
		Set("stock", stock).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList())

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanPart(r.q(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPartNotFound
		}
		return nil, err
	}

	return p, nil
}

// AdjustStock adds delta to the stock in one statement and refuses to go below zero.
// It returns the stock before and after the change.
func (r *repository) AdjustStock(ctx context.Context, id int64, delta int) (int, int, error) {
	q := r.sb.
		Update(partsTable).
		Set("stock", sq.Expr("stock + ?", delta)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Expr("stock + ? >= 0", delta)).
		Suffix("RETURNING stock")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, 0, err
	}

	var after int
	err = r.q(ctx).QueryRow(ctx, sqlStr, args...).Scan(&after)
	if err == nil {
		return after - delta, after, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, 0, err
	}

	found, err := r.exists(ctx, sq.Eq{"id": id})
	if err != nil {
		return 0, 0, err
	}
	if !found {
		return 0, 0, model.ErrPartNotFound
	}
	return 0, 0, model.ErrInsufficientStock
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := r.sb.Delete(partsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	ct, err := r.q(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrPartNotFound
	}

	return nil
}

func (r *repository) AddMovement(ctx context.Context, m *model.StockMovement) error {
	q := r.sb.
		Insert(movementsTable).
		Columns("part_id", "kind", "delta", "stock_before", "stock_after", "invoice_id").
		Values(m.PartID, m.Kind, m.Delta, m.StockBefore, m.StockAfter, m.InvoiceID).
		Suffix("RETURNING id, created_at")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	return r.q(ctx).QueryRow(ctx, sqlStr, args...).Scan(&m.ID, &m.CreatedAt)
}

func (r *repository) Movements(ctx context.Context, partID int64) ([]model.StockMovement, error) {
	q := r.sb.
		Select("id", "part_id", "kind", "delta", "stock_before", "stock_after", "invoice_id", "created_at").
		From(movementsTable).
		Where(sq.Eq{"part_id": partID}).
		OrderBy("id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.q(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]model.StockMovement, 0)
	for rows.Next() {
		var (
			m         model.StockMovement
			createdAt time.Time
		)
		if err := rows.Scan(
			&m.ID,
			&m.PartID,
			&m.Kind,
			&m.Delta,
			&m.StockBefore,
			&m.StockAfter,
			&m.InvoiceID,
			&createdAt,
		); err != nil {
			return nil, err
		}
		m.CreatedAt = createdAt.UTC()
		movements = append(movements, m)
	}

	return movements, rows.Err()
}

func (r *repository) one(ctx context.Context, q sq.SelectBuilder) (*model.Part, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanPart(r.q(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPartNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *repository) exists(ctx context.Context, where sq.Sqlizer) (bool, error) {
	q := r.sb.
		Select("1").
		From(partsTable).
		Where(where).
		Prefix("SELECT EXISTS (").
		Suffix(")")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return false, err
	}

	var found bool
	if err := r.q(ctx).QueryRow(ctx, sqlStr, args...).Scan(&found); err != nil {
		return false, fmt.Errorf("exists: %w", err)
	}
	return found, nil
}

func columnList() string {
	return strings.Join(partColumns, ", ")
}

func scanPart(row pgx.Row) (*model.Part, error) {
	var p model.Part
	if err := row.Scan(
		&p.ID,
		&p.Code,
		&p.Name,
		&p.Description,
		&p.Brand,
		&p.Model,
		&p.Category,
		&p.Price,
		&p.Stock,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()

	return &p, nil
}
