package txmanager

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type txKey struct{}

type txState struct {
	tx          pgx.Tx
	afterCommit []func(context.Context)
}

// Querier is the subset of pgx shared by a pool and a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Manager struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Manager {
	return &Manager{pool: pool}
}

// WithTx runs fn inside a transaction. A nested call joins the outer transaction.
func (m *Manager) WithTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	const op = "txmanager.WithTx"

	if _, ok := ctx.Value(txKey{}).(*txState); ok {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}

	state := &txState{tx: tx}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = errors.Join(err, fmt.Errorf("%s: rollback: %w", op, rbErr))
			}
			return
		}

		if cmErr := tx.Commit(ctx); cmErr != nil {
			err = fmt.Errorf("%s: commit: %w", op, cmErr)
			return
		}

		for _, hook := range state.afterCommit {
			hook(ctx)
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, state))
}

// Q returns the transaction stored in ctx, or the pool when there is none.
func Q(ctx context.Context, pool *pgxpool.Pool) Querier {
	if st, ok := ctx.Value(txKey{}).(*txState); ok {
		return st.tx
	}
	return pool
}

// AfterCommit defers fn until the transaction in ctx commits. Without a
// transaction fn runs immediately. Hooks are dropped on rollback.
func AfterCommit(ctx context.Context, fn func(context.Context)) {
	if st, ok := ctx.Value(txKey{}).(*txState); ok {
		st.afterCommit = append(st.afterCommit, fn)
		return
	}
	fn(ctx)
}

func InTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*txState)
	return ok
}
