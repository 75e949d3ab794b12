package liststudios

import (
	"context"

	"nachna/modules/catalog/internal/repository"
	"nachna/shared/common/logger"

	"go.opentelemetry.io/otel/trace"
)

type listStudiosQueryHandler struct {
	catalogRepo repository.CatalogRepository
}

func NewListStudiosQueryHandler(catalogRepo repository.CatalogRepository) *listStudiosQueryHandler {
	return &listStudiosQueryHandler{
		catalogRepo: catalogRepo,
	}
}

func (h *listStudiosQueryHandler) Handle(ctx context.Context, query *ListStudiosQuery) (*ListStudiosResponse, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("query_handler")
	ctx, span := tracer.Start(ctx, "Handle:ListStudiosQuery")
	defer span.End()

	studios, err := h.catalogRepo.ListStudios(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}

	items := make([]StudioItem, 0, len(studios))
	for _, s := range studios {
		items = append(items, StudioItem{
			ID:             s.ID,
			Name:           s.Name,
			City:           s.City,
			InstagramLinks: s.InstagramLinks,
		})
	}

	return &ListStudiosResponse{Studios: items}, nil
}
