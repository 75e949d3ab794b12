package rewards

import (
	"nachna/modules/rewards/internal/domain/event"
	"nachna/modules/rewards/internal/domain/eventhandler"
	accruepoints "nachna/modules/rewards/internal/feature/accrue-points"
	calculateredemption "nachna/modules/rewards/internal/feature/calculate-redemption"
	getbalance "nachna/modules/rewards/internal/feature/get-balance"
	"nachna/modules/rewards/internal/feature/redeem"
	refundpoints "nachna/modules/rewards/internal/feature/refund-points"
	"nachna/modules/rewards/internal/repository"
	"nachna/modules/rewards/redemption"
	"nachna/shared/common/domain"
	"nachna/shared/common/eventbus"
	"nachna/shared/common/mediator"
	"nachna/shared/common/module"
	"nachna/shared/common/registry"

	"github.com/gofiber/fiber/v3"
)

func NewModule(mCtx *module.ModuleContext, policy redemption.Policy) module.Module {
	return &moduleImp{mCtx: mCtx, policy: policy}
}

type moduleImp struct {
	mCtx   *module.ModuleContext
	policy redemption.Policy
}

func (m *moduleImp) APIVersion() string {
	return "v1"
}

func (m *moduleImp) Init(reg registry.ServiceRegistry, eventBus eventbus.EventBus) error {
	// dispatcher แยกต่อโมดูล ให้โมดูลคุม event handler ของตัวเอง
	dispatcher := domain.NewSimpleDomainEventDispatcher()
	dispatcher.Register(event.PointsRedeemedDomainEventType,
		eventhandler.NewPointsRedeemedDomainEventHandler(eventBus))

	repo := repository.NewRewardRepository(m.mCtx.DBCtx)

	mediator.Register(getbalance.NewGetBalanceQueryHandler(repo))
	mediator.Register(calculateredemption.NewCalculateRedemptionQueryHandler(m.policy, repo))
	mediator.Register(redeem.NewRedeemPointsCommandHandler(m.mCtx.Transactor, m.policy, repo, dispatcher))
	mediator.Register(refundpoints.NewRefundPointsCommandHandler(m.mCtx.Transactor, repo))
	mediator.Register(accruepoints.NewAccruePointsCommandHandler(m.mCtx.Transactor, m.policy, repo))

	return nil
}

func (m *moduleImp) RegisterRoutes(router fiber.Router) {
	group := router.Group("/rewards")
	getbalance.NewEndpoint(group, "/balance")
	calculateredemption.NewEndpoint(group, "/calculate-redemption")
	redeem.NewEndpoint(group, "/redeem")
}
