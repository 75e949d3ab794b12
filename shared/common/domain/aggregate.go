package domain

// Aggregate เป็น struct พื้นฐานสำหรับ aggregate root
// ใช้เก็บรวบรวม domain events ที่เกิดขึ้นภายใน aggregate
type Aggregate struct {
	domainEvents []DomainEvent
}

// AddDomainEvent ใช้สำหรับเพิ่ม domain event เข้าไปใน aggregate
func (a *Aggregate) AddDomainEvent(dv DomainEvent) {
	if a.domainEvents == nil {
		a.domainEvents = make([]DomainEvent, 0)
	}

	a.domainEvents = append(a.domainEvents, dv)
}

// PullDomainEvents ดึง domain events ทั้งหมดออกจาก aggregate
// พร้อมเคลียร์ list เพื่อป้องกันการส่งซ้ำ
func (a *Aggregate) PullDomainEvents() []DomainEvent {
	events := a.domainEvents
	a.domainEvents = nil
	return events
}
