package getworkshop

import (
	"context"

	"nachna/modules/catalog/domainerrors"
	"nachna/modules/catalog/internal/repository"
	"nachna/shared/common/logger"
	"nachna/shared/contract/catalogcontract"

	"go.opentelemetry.io/otel/trace"
)

// getWorkshopByIDQueryHandler ให้บริการทั้ง endpoint ของโมดูลเอง
// และโมดูลอื่นที่ query ผ่าน catalogcontract ตอน checkout
type getWorkshopByIDQueryHandler struct {
	catalogRepo repository.CatalogRepository
}

func NewGetWorkshopByIDQueryHandler(catalogRepo repository.CatalogRepository) *getWorkshopByIDQueryHandler {
	return &getWorkshopByIDQueryHandler{
		catalogRepo: catalogRepo,
	}
}

func (h *getWorkshopByIDQueryHandler) Handle(ctx context.Context, query *catalogcontract.GetWorkshopByIDQuery) (*catalogcontract.GetWorkshopByIDQueryResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("query_handler")
	ctx, span := tracer.Start(ctx, "Handle:GetWorkshopByIDQuery")
	defer span.End()

	workshop, err := h.catalogRepo.FindWorkshopByID(ctx, query.ID)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}
	if workshop == nil {
		return nil, domainerrors.ErrWorkshopNotFound
	}

	// resolve ราคา ณ ตอนอ่าน record เก่าอาจมีแค่ pricing_info
	amount, err := workshop.ResolveAmount()
	if err != nil {
		return nil, err
	}

	return &catalogcontract.GetWorkshopByIDQueryResult{
		ID:         workshop.ID,
		StudioID:   workshop.StudioID,
		Song:       workshop.Song,
		ArtistName: workshop.ArtistName,
		Amount:     amount,
	}, nil
}
