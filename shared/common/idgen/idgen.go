package idgen

import (
	"math/rand/v2"
	"time"
)

// GenerateTimeRandomID สร้าง int64 id จาก timestamp (มิลลิวินาที) + random 20 bits
// เรียงลำดับตามเวลาได้ และโอกาสชนกันในมิลลิวินาทีเดียวกันต่ำมาก
func GenerateTimeRandomID() int64 {
	now := time.Now().UnixMilli()
	return now<<20 | rand.Int64N(1<<20)
}
