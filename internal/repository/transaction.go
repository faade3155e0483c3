package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type txContextKey struct{}

// TxStarter is implemented by *pgxpool.Pool and pgxmock pools.
type TxStarter interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// TxManager scopes a unit of work to one transaction stored in the context.
// Repository calls made with that context run inside the transaction.
type TxManager struct {
	pool TxStarter
}

// NewTxManager creates a TxManager on top of the pool.
func NewTxManager(pool TxStarter) *TxManager {
	return &TxManager{pool: pool}
}

// WithinReadOnly runs fn in a read-only transaction.
func (m *TxManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	return m.within(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

// WithinReadWrite runs fn in a read-write transaction.
func (m *TxManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	return m.within(ctx, pgx.TxOptions{AccessMode: pgx.ReadWrite}, fn)
}

func (m *TxManager) within(ctx context.Context, opts pgx.TxOptions, fn func(context.Context) error) error {
	if fn == nil {
		return errors.New("transaction function is required")
	}

	// nested calls join the outer transaction
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	finished := false
	defer func() {
		if !finished {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		finished = true
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rbErr))
		}
		return err
	}

	finished = true
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func txFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txContextKey{}).(pgx.Tx)
	return tx, ok
}
