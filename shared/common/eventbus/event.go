package eventbus

import (
	"time"
)

// EventName เป็นชนิดข้อมูลสำหรับชื่อ event
type EventName string

// Event คือ interface สำหรับ integration event ที่ข้ามโมดูล
type Event interface {
	EventID() string       // คืนค่า ID ของ event (เช่น UUID)
	EventName() EventName  // คืนค่าชื่อ event เช่น "OrderCreated"
	OccurredAt() time.Time // เวลาที่ event นั้นเกิดขึ้น
}

// BaseEvent คือ struct พื้นฐานที่ใช้เก็บข้อมูล event ทั่วไป
// สามารถนำไปฝังใน struct event ที่เฉพาะเจาะจงได้
type BaseEvent struct {
	ID   string
	Name EventName
	At   time.Time
}

func (e BaseEvent) EventID() string {
	return e.ID
}

func (e BaseEvent) EventName() EventName {
	return e.Name
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.At
}
