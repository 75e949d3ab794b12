package transactor

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// DBTX คือ subset ของ method ที่ repository ใช้ได้ทั้งจาก *sqlx.DB และ *sqlx.Tx
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error)
	QueryRowxContext(ctx context.Context, query string, args ...any) *sqlx.Row
}

// DBTXContext คืน DBTX ตาม context ปัจจุบัน
// ถ้าอยู่ใน transaction จะได้ *sqlx.Tx ถ้าไม่ก็ได้ *sqlx.DB
type DBTXContext func(ctx context.Context) DBTX

// sqlxDB เพิ่ม BeginTxx เข้าไปจาก DBTX เพื่อใช้ภายใน transactor เท่านั้น
type sqlxDB interface {
	DBTX
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

type sqlxTx interface {
	Commit() error
	Rollback() error
}
