package domain

import (
	"context"
	"fmt"
	"sync"
)

var (
	ErrInvalidEvent = fmt.Errorf("invalid domain event")
)

// DomainEventHandler คือ interface ที่ทุก handler ของ event ต้อง implement
type DomainEventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
}

// DomainEventDispatcher ทำหน้าที่กระจาย event ไปยัง handler ที่ลงทะเบียนไว้
type DomainEventDispatcher interface {
	Register(eventType EventName, handler DomainEventHandler)
	Dispatch(ctx context.Context, events []DomainEvent) error
}

type simpleDomainEventDispatcher struct {
	handlers map[EventName][]DomainEventHandler
	mu       sync.RWMutex
}

func NewSimpleDomainEventDispatcher() DomainEventDispatcher {
	return &simpleDomainEventDispatcher{
		handlers: make(map[EventName][]DomainEventHandler),
	}
}

func (d *simpleDomainEventDispatcher) Register(eventType EventName, handler DomainEventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers[eventType] = append(d.handlers[eventType], handler)
}

// Dispatch รับ slice ของ event แล้วส่งไปยัง handler ที่ลงทะเบียนไว้ทีละตัว
// ถ้า handler ใดทำงานผิดพลาด จะหยุดและคืน error ทันที
func (d *simpleDomainEventDispatcher) Dispatch(ctx context.Context, events []DomainEvent) error {
	for _, event := range events {
		// copy slice เพื่อป้องกัน concurrent modification
		d.mu.RLock()
		handlers := append([]DomainEventHandler(nil), d.handlers[event.EventName()]...)
		d.mu.RUnlock()

		for _, handler := range handlers {
			if err := handler.Handle(ctx, event); err != nil {
				return fmt.Errorf("error handling event %s: %w", event.EventName(), err)
			}
		}
	}

	return nil
}
