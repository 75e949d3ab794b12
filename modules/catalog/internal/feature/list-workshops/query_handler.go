package listworkshops

import (
	"context"

	"nachna/modules/catalog/internal/repository"
	"nachna/shared/common/logger"

	"go.opentelemetry.io/otel/trace"
)

type listWorkshopsQueryHandler struct {
	catalogRepo repository.CatalogRepository
}

func NewListWorkshopsQueryHandler(catalogRepo repository.CatalogRepository) *listWorkshopsQueryHandler {
	return &listWorkshopsQueryHandler{
		catalogRepo: catalogRepo,
	}
}

func (h *listWorkshopsQueryHandler) Handle(ctx context.Context, query *ListWorkshopsQuery) (*ListWorkshopsResponse, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("query_handler")
	ctx, span := tracer.Start(ctx, "Handle:ListWorkshopsQuery")
	defer span.End()

	workshops, err := h.catalogRepo.ListWorkshops(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}

	items := make([]WorkshopItem, 0, len(workshops))
	for _, w := range workshops {
		item := WorkshopItem{
			ID:         w.ID,
			StudioID:   w.StudioID,
			Song:       w.Song,
			ArtistName: w.ArtistName,
			EventDate:  w.EventDate,
		}

		// workshop ที่ไม่มีราคาก็ยังแสดงใน list ได้ แค่ไม่มี amount
		if amount, err := w.ResolveAmount(); err == nil {
			item.Amount = &amount
		}

		items = append(items, item)
	}

	return &ListWorkshopsResponse{Workshops: items}, nil
}
