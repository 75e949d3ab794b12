package eventbus

import (
	"context"
	"sync"

	"nachna/shared/common/logger"

	"go.uber.org/zap"
)

// implementation ของ EventBus แบบง่าย ๆ ที่เก็บ subscriber ไว้ใน memory
type inmemoryEventBus struct {
	subscribers map[EventName][]IntegrationEventHandler
	mu          sync.RWMutex // ป้องกัน concurrent access
}

func NewInMemoryEventBus() EventBus {
	return &inmemoryEventBus{
		subscribers: make(map[EventName][]IntegrationEventHandler),
	}
}

func (eb *inmemoryEventBus) Subscribe(eventName EventName, handler IntegrationEventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.subscribers[eventName] = append(eb.subscribers[eventName], handler)
}

// Publish ส่ง event ไปยัง handler ทุกตัวที่ subscribe event ชื่อเดียวกัน
func (eb *inmemoryEventBus) Publish(ctx context.Context, event Event) error {
	eb.mu.RLock()
	handlers := append([]IntegrationEventHandler(nil), eb.subscribers[event.EventName()]...)
	eb.mu.RUnlock()

	// เรียก handler ทุกตัวแบบ asynchronous เพื่อไม่บล็อกการทำงานของ publisher
	for _, handler := range handlers {
		go func(h IntegrationEventHandler) {
			if err := h.Handle(context.WithoutCancel(ctx), event); err != nil {
				logger.Log().Error("error handling integration event",
					zap.String("event", string(event.EventName())),
					zap.Error(err),
				)
			}
		}(handler)
	}
	return nil
}
