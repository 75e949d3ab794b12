package eventbus

import (
	"context"
)

// IntegrationEventHandler คือ interface สำหรับ handler ของ integration event
type IntegrationEventHandler interface {
	Handle(ctx context.Context, event Event) error
}

// EventBus ใช้ในการ publish และ subscribe event ข้ามโมดูล
type EventBus interface {
	// Publish ส่ง event ออกไปยังทุก handler ที่ subscribe ชื่อ event นั้นไว้
	Publish(ctx context.Context, event Event) error

	// Subscribe ลงทะเบียน handler สำหรับ event ที่มีชื่อ eventName
	Subscribe(eventName EventName, handler IntegrationEventHandler)
}
