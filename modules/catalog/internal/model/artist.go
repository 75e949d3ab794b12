package model

import (
	"time"

	"github.com/lib/pq"
)

type Artist struct {
	ID             int64          `db:"id"`
	Name           string         `db:"name"`
	InstagramLinks pq.StringArray `db:"instagram_links"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}
