package model

import (
	"time"

	"github.com/lib/pq"
)

type Studio struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	City string `db:"city"`
	// InstagramLinks เก็บเป็น text[] ใน Postgres
	InstagramLinks pq.StringArray `db:"instagram_links"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}
