package db

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/ideaforge/ideaforge-backend/internal/platform/dbctx"
	"github.com/ideaforge/ideaforge-backend/internal/platform/logger"
)

// TxRunner is the unit-of-work boundary for multi-entity workflow
// transitions. Isolation level and timeout are constructor configuration,
// not call-site literals.
type TxRunner interface {
	InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error
}

type serializableTxRunner struct {
	db      *gorm.DB
	log     *logger.Logger
	timeout time.Duration
}

func NewSerializableTxRunner(db *gorm.DB, baseLog *logger.Logger, timeout time.Duration) TxRunner {
	return &serializableTxRunner{
		db:      db,
		log:     baseLog.With("component", "TxRunner"),
		timeout: timeout,
	}
}

// InTx runs fn inside a single serializable transaction bounded by the
// configured timeout. Any error from fn aborts the whole transaction; no
// partial state survives.
func (r *serializableTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	txCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(txCtx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: txCtx, Tx: tx})
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}
