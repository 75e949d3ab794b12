package catalog

import (
	getworkshop "nachna/modules/catalog/internal/feature/get-workshop"
	listartists "nachna/modules/catalog/internal/feature/list-artists"
	liststudios "nachna/modules/catalog/internal/feature/list-studios"
	listworkshops "nachna/modules/catalog/internal/feature/list-workshops"
	"nachna/modules/catalog/internal/repository"
	"nachna/shared/common/eventbus"
	"nachna/shared/common/mediator"
	"nachna/shared/common/module"
	"nachna/shared/common/registry"

	"github.com/gofiber/fiber/v3"
)

func NewModule(mCtx *module.ModuleContext) module.Module {
	return &moduleImp{mCtx: mCtx}
}

type moduleImp struct {
	mCtx *module.ModuleContext
}

func (m *moduleImp) APIVersion() string {
	return "v1"
}

func (m *moduleImp) Init(reg registry.ServiceRegistry, eventBus eventbus.EventBus) error {
	repo := repository.NewCatalogRepository(m.mCtx.DBCtx)

	mediator.Register(getworkshop.NewGetWorkshopByIDQueryHandler(repo))
	mediator.Register(listworkshops.NewListWorkshopsQueryHandler(repo))
	mediator.Register(liststudios.NewListStudiosQueryHandler(repo))
	mediator.Register(listartists.NewListArtistsQueryHandler(repo))

	return nil
}

func (m *moduleImp) RegisterRoutes(router fiber.Router) {
	workshops := router.Group("/workshops")
	listworkshops.NewEndpoint(workshops, "")
	getworkshop.NewEndpoint(workshops, "/:workshopID")

	liststudios.NewEndpoint(router.Group("/studios"), "")
	listartists.NewEndpoint(router.Group("/artists"), "")
}
