package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/you-humble/autoparts/internal/model"
	"github.com/you-humble/autoparts/platform/db/pgutil"
	"github.com/you-humble/autoparts/platform/db/txmanager"
)

const (
	invoicesTable = "invoices"
	itemsTable    = "invoice_items"
)

var (
	invoiceColumns = []string{
		"id", "number", "customer_name", "customer_document", "customer_email", "customer_phone",
		"subtotal", "tax", "total", "status", "created_at", "paid_at",
	}
	itemColumns = []string{
		"id", "invoice_id", "part_id", "part_code", "part_name", "quantity", "unit_price", "subtotal", "note",
	}
)

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewInvoiceRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) q(ctx context.Context) txmanager.Querier {
	return txmanager.Q(ctx, r.pool)
}

// Create inserts the invoice and its items and fills in the generated ids.
// It must run inside a transaction to be atomic.
func (r *repository) Create(ctx context.Context, inv *model.Invoice) error {
	q := r.sb.
		Insert(invoicesTable).
		Columns(
			"number", "customer_name", "customer_document", "customer_email", "customer_phone",
			"subtotal", "tax", "total", "status", "created_at", "paid_at",
		).
		Values(
			inv.Number, inv.CustomerName, inv.CustomerDocument, inv.CustomerEmail, inv.CustomerPhone,
			inv.Subtotal, inv.Tax, inv.Total, inv.Status, inv.CreatedAt, inv.PaidAt,
		).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	if err := r.q(ctx).QueryRow(ctx, sqlStr, args...).Scan(&inv.ID); err != nil {
		if pgutil.IsUniqueViolation(err) {
			return model.ErrDuplicateInvoiceNumber
		}
		return err
	}

	for i := range inv.Items {
		it := &inv.Items[i]
		it.InvoiceID = inv.ID

		iq := r.sb.
			Insert(itemsTable).
			Columns("invoice_id", "part_id", "part_code", "part_name", "quantity", "unit_price", "subtotal", "note").
			Values(it.InvoiceID, it.PartID, it.PartCode, it.PartName, it.Quantity, it.UnitPrice, it.Subtotal, it.Note).
			Suffix("RETURNING id")

		sqlStr, args, err := iq.ToSql()
		if err != nil {
			return err
		}

		if err := r.q(ctx).QueryRow(ctx, sqlStr, args...).Scan(&it.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *repository) InvoiceByID(ctx context.Context, id int64) (*model.Invoice, error) {
	return r.one(ctx, sq.Eq{"id": id})
}

func (r *repository) InvoiceByNumber(ctx context.Context, number string) (*model.Invoice, error) {
	return r.one(ctx, sq.Eq{"number": number})
}

func (r *repository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	q := r.sb.
		Select("1").
		From(invoicesTable).
		Where(sq.Eq{"number": number}).
		Prefix("SELECT EXISTS (").
		Suffix(")")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return false, err
	}

	var found bool
	if err := r.q(ctx).QueryRow(ctx, sqlStr, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}

func (r *repository) List(ctx context.Context, filter model.InvoicesFilter) ([]model.Invoice, error) {
	q := r.sb.
		Select(invoiceColumns...).
		From(invoicesTable).
		OrderBy("id")

	if filter.CustomerLike != "" {
		q = q.Where(sq.ILike{"customer_name": pgutil.Contains(filter.CustomerLike)})
	}
	if filter.CustomerDocument != "" {
		q = q.Where(sq.Eq{"customer_document": filter.CustomerDocument})
	}
	if filter.Term != "" {
		p := pgutil.Contains(filter.Term)
		q = q.Where(sq.Or{
			sq.ILike{"customer_name": p},
			sq.ILike{"number": p},
		})
	}
	if filter.Status != nil {
		q = q.Where(sq.Eq{"status": *filter.Status})
	}
	if filter.CreatedFrom != nil {
		q = q.Where(sq.GtOrEq{"created_at": *filter.CreatedFrom})
	}
	if filter.CreatedTo != nil {
		q = q.Where(sq.LtOrEq{"created_at": *filter.CreatedTo})
	}
	if filter.MinTotal != nil {
		q = q.Where(sq.GtOrEq{"total": *filter.MinTotal})
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

	invoices := make([]model.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, invoices); err != nil {
		return nil, err
	}

	return invoices, nil
}

// UpdateStatus moves the invoice from one status to another. It reports
// ErrInvoiceNotFound when there is no such invoice and ErrInvoiceConflict when
// the invoice is no longer in status from. A nil paidAt keeps the stored value.
func (r *repository) UpdateStatus(
	ctx context.Context,
	id int64,
	from, to model.InvoiceStatus,
	paidAt *time.Time,
) error {
	q := r.sb.
		Update(invoicesTable).
		Set("status", to).
		Set("paid_at", sq.Expr("COALESCE(?::timestamptz, paid_at)", paidAt)).
		Where(sq.Eq{"id": id, "status": from})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.q(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 1 {
		return nil
	}

	if _, err := r.InvoiceByID(ctx, id); err != nil {
		return err
	}
	return model.ErrInvoiceConflict
}

func (r *repository) CountByPeriod(ctx context.Context, from, to time.Time) (int64, error) {
	return r.count(ctx, sq.And{
		sq.GtOrEq{"created_at": from},
		sq.LtOrEq{"created_at": to},
	})
}

// SumPaidTotalByPeriod sums the totals of paid invoices created in [from, to].
// No matching invoice yields zero.
func (r *repository) SumPaidTotalByPeriod(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	q := r.sb.
		Select("SUM(total)").
		From(invoicesTable).
		Where(sq.Eq{"status": model.StatusPaid}).
		Where(sq.GtOrEq{"created_at": from}).
		Where(sq.LtOrEq{"created_at": to})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var sum decimal.NullDecimal
	if err := r.q(ctx).QueryRow(ctx, sqlStr, args...).Scan(&sum); err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

func (r *repository) count(ctx context.Context, where sq.Sqlizer) (int64, error) {
	q := r.sb.Select("COUNT(*)").From(invoicesTable)
	if where != nil {
		q = q.Where(where)
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}

	var n int64
	if err := r.q(ctx).QueryRow(ctx, sqlStr, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *repository) one(ctx context.Context, where sq.Sqlizer) (*model.Invoice, error) {
	sqlStr, args, err := r.sb.Select(invoiceColumns...).From(invoicesTable).Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	inv, err := scanInvoice(r.q(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrInvoiceNotFound
		}
		return nil, err
	}

	invoices := []model.Invoice{*inv}
	if err := r.attachItems(ctx, invoices); err != nil {
		return nil, err
	}

	return &invoices[0], nil
}

// attachItems loads the items of all given invoices with a single query.
func (r *repository) attachItems(ctx context.Context, invoices []model.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}

	ids := make([]int64, len(invoices))
	byID := make(map[int64]int, len(invoices))
	for i := range invoices {
		ids[i] = invoices[i].ID
		byID[invoices[i].ID] = i
		invoices[i].Items = make([]model.InvoiceItem, 0)
	}

	q := r.sb.
		Select(itemColumns...).
		From(itemsTable).
		Where(sq.Expr("invoice_id = ANY(?)", ids)).
		OrderBy("invoice_id", "id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	rows, err := r.q(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var it model.InvoiceItem
		if err := rows.Scan(
			&it.ID,
			&it.InvoiceID,
			&it.PartID,
			&it.PartCode,
			&it.PartName,
			&it.Quantity,
			&it.UnitPrice,
			&it.Subtotal,
			&it.Note,
		); err != nil {
			return err
		}

		idx := byID[it.InvoiceID]
		invoices[idx].Items = append(invoices[idx].Items, it)
	}

	return rows.Err()
}

func scanInvoice(row pgx.Row) (*model.Invoice, error) {
	var inv model.Invoice
	if err := row.Scan(
		&inv.ID,
		&inv.Number,
		&inv.CustomerName,
		&inv.CustomerDocument,
		&inv.CustomerEmail,
		&inv.CustomerPhone,
		&inv.Subtotal,
		&inv.Tax,
		&inv.Total,
		&inv.Status,
		&inv.CreatedAt,
		&inv.PaidAt,
	); err != nil {
		return nil, err
	}
	inv.CreatedAt = inv.CreatedAt.UTC()
	if inv.PaidAt != nil {
		paid := inv.PaidAt.UTC()
		inv.PaidAt = &paid
	}

	return &inv, nil
}
