package notification

import (
	orderIntegration "nachna/modules/notification/internal/integration/order"
	rewardsIntegration "nachna/modules/notification/internal/integration/rewards"
	"nachna/modules/notification/service"
	"nachna/shared/common/eventbus"
	"nachna/shared/common/module"
	"nachna/shared/common/registry"
	"nachna/shared/messaging"

	"github.com/gofiber/fiber/v3"
)

const (
	NotificationServiceKey registry.ServiceKey = "notificationService"
)

func NewModule(mCtx *module.ModuleContext) module.Module {
	return &moduleImp{mCtx: mCtx}
}

type moduleImp struct {
	mCtx    *module.ModuleContext
	notiSvc service.NotificationService
}

func (m *moduleImp) APIVersion() string {
	return "v1"
}

func (m *moduleImp) Init(reg registry.ServiceRegistry, eventBus eventbus.EventBus) error {
	m.notiSvc = service.NewNotificationService()

	// subscribe integration event จากโมดูลอื่น
	eventBus.Subscribe(messaging.OrderCreatedIntegrationEventName,
		orderIntegration.NewOrderCreatedHandler(m.notiSvc))
	eventBus.Subscribe(messaging.PointsRedeemedIntegrationEventName,
		rewardsIntegration.NewPointsRedeemedHandler(m.notiSvc))

	return nil
}

func (m *moduleImp) Services() []registry.ProvidedService {
	return []registry.ProvidedService{
		{Key: NotificationServiceKey, Value: m.notiSvc},
	}
}

func (m *moduleImp) RegisterRoutes(router fiber.Router) {
	// โมดูลนี้ไม่มี endpoint ของตัวเอง
}
