package transactor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// NestedTransactionsNone ไม่รองรับ nested transaction
// ถ้าพยายามเปิด transaction ซ้อนจะได้ error กลับไป
func NestedTransactionsNone(db sqlxDB, tx *sqlx.Tx) (sqlxDB, sqlxTx) {
	switch db.(type) {
	case *sqlx.DB:
		return &nestedTransactionNone{Tx: tx}, tx
	case *nestedTransactionNone:
		return db, nilTx{}
	default:
		panic("unsupported type")
	}
}

type nestedTransactionNone struct {
	*sqlx.Tx
}

func (t *nestedTransactionNone) BeginTxx(_ context.Context, _ *sql.TxOptions) (*sqlx.Tx, error) {
	return t.Tx, nil
}

// nilTx ใช้กับกรณี transaction ซ้อนที่ strategy นี้ไม่รองรับ
// commit/rollback จะถูกปล่อยให้เป็นหน้าที่ของ transaction ชั้นนอกสุด
type nilTx struct{}

func (nilTx) Commit() error   { return nil }
func (nilTx) Rollback() error { return errors.New("nested transactions are not supported") }

// NestedTransactionsSavepoints รองรับ nested transaction ด้วย SAVEPOINT ของ Postgres
func NestedTransactionsSavepoints(db sqlxDB, tx *sqlx.Tx) (sqlxDB, sqlxTx) {
	switch typedDB := db.(type) {
	case *sqlx.DB:
		return &nestedTransactionSavepoints{Tx: tx}, tx
	case *nestedTransactionSavepoints:
		nested := &nestedTransactionSavepoints{
			Tx:    tx,
			depth: typedDB.depth + 1,
		}
		return nested, nested
	default:
		panic("unsupported type")
	}
}

type nestedTransactionSavepoints struct {
	*sqlx.Tx
	depth int
	done  bool
}

// BeginTxx สร้าง savepoint ใหม่บน transaction เดิมแทนการเปิด transaction จริง
func (t *nestedTransactionSavepoints) BeginTxx(ctx context.Context, _ *sql.TxOptions) (*sqlx.Tx, error) {
	if _, err := t.ExecContext(ctx, fmt.Sprintf("SAVEPOINT sp_%d", t.depth+1)); err != nil {
		return nil, fmt.Errorf("failed to create savepoint: %w", err)
	}

	return t.Tx, nil
}

func (t *nestedTransactionSavepoints) Commit() error {
	if _, err := t.Exec(fmt.Sprintf("RELEASE SAVEPOINT sp_%d", t.depth)); err != nil {
		return fmt.Errorf("failed to release savepoint: %w", err)
	}

	t.done = true
	return nil
}

func (t *nestedTransactionSavepoints) Rollback() error {
	// commit/rollback ไปแล้ว ไม่ต้อง rollback ซ้ำ
	// เพราะการ exec statement ที่พังใน Postgres จะทำให้ transaction ชั้นนอกพังไปด้วย
	if t.done {
		return sql.ErrTxDone
	}

	if _, err := t.Exec(fmt.Sprintf("ROLLBACK TO SAVEPOINT sp_%d", t.depth)); err != nil {
		return fmt.Errorf("failed to rollback to savepoint: %w", err)
	}

	t.done = true
	return nil
}
