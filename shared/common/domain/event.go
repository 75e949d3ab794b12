package domain

import "time"

// EventName คือ alias ของ string เพื่อใช้แทนชื่อ event เช่น "PointsRedeemed"
type EventName string

// DomainEvent เป็น interface สำหรับ event ที่เกิดขึ้นใน domain
type DomainEvent interface {
	EventName() EventName  // คืนชื่อ event
	OccurredAt() time.Time // คืนเวลาที่ event เกิด
}

// BaseDomainEvent เป็น struct พื้นฐานที่ implement DomainEvent
// ใช้ฝังใน struct อื่นๆ ที่เป็น event เพื่อ reuse method ได้
type BaseDomainEvent struct {
	Name EventName
	At   time.Time
}

func (e BaseDomainEvent) EventName() EventName {
	return e.Name
}

func (e BaseDomainEvent) OccurredAt() time.Time {
	return e.At
}
