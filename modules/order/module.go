package order

import (
	"nachna/modules/order/internal/domain/event"
	"nachna/modules/order/internal/domain/eventhandler"
	"nachna/modules/order/internal/feature/cancel"
	"nachna/modules/order/internal/feature/checkout"
	paymentstatus "nachna/modules/order/internal/feature/payment-status"
	"nachna/modules/order/internal/repository"
	"nachna/modules/order/payment"
	"nachna/shared/common/domain"
	"nachna/shared/common/eventbus"
	"nachna/shared/common/mediator"
	"nachna/shared/common/module"
	"nachna/shared/common/registry"

	"github.com/gofiber/fiber/v3"
)

func NewModule(mCtx *module.ModuleContext, gateway payment.Gateway) module.Module {
	return &moduleImp{mCtx: mCtx, gateway: gateway}
}

type moduleImp struct {
	mCtx    *module.ModuleContext
	gateway payment.Gateway
}

func (m *moduleImp) APIVersion() string {
	return "v1"
}

func (m *moduleImp) Init(reg registry.ServiceRegistry, eventBus eventbus.EventBus) error {
	dispatcher := domain.NewSimpleDomainEventDispatcher()
	dispatcher.Register(event.OrderCreatedDomainEventType,
		eventhandler.NewOrderCreatedDomainEventHandler(eventBus))

	repo := repository.NewOrderRepository(m.mCtx.DBCtx)

	mediator.Register(checkout.NewCheckoutCommandHandler(m.mCtx.Transactor, repo, m.gateway, dispatcher))
	mediator.Register(cancel.NewCancelOrderCommandHandler(m.mCtx.Transactor, repo))
	mediator.Register(paymentstatus.NewGetPaymentStatusQueryHandler(m.mCtx.Transactor, repo, m.gateway))

	return nil
}

func (m *moduleImp) RegisterRoutes(router fiber.Router) {
	orders := router.Group("/orders")
	checkout.NewEndpoint(orders, "")
	cancel.NewEndpoint(orders, "/:orderID")
	paymentstatus.NewEndpoint(orders, "/:orderID/payment-status")
}
