package database

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type TxManager struct {
	databaseclient *DBObject
}

func NewTxManager(db *DBObject) *TxManager {
	return &TxManager{databaseclient: db}
}

func (r *TxManager) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return r.databaseclient.pool.BeginTx(ctx, pgx.TxOptions{})
}

func (r *TxManager) RollbackTx(ctx context.Context, tx pgx.Tx) error {
	return tx.Rollback(ctx)
}

func (r *TxManager) CommitTx(ctx context.Context, tx pgx.Tx) error {
	return tx.Commit(ctx)
}
