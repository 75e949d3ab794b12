package sqldb

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

type closeDB func() error

type DBContext interface {
	DB() *sqlx.DB
}

type dbContext struct {
	db *sqlx.DB
}

// NewDBContext เชื่อมต่อฐานข้อมูลพร้อมตั้งค่า connection pool
func NewDBContext(dsn string) (DBContext, closeDB, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &dbContext{db: db}, func() error {
		return db.Close()
	}, nil
}

func (c *dbContext) DB() *sqlx.DB {
	return c.db
}
