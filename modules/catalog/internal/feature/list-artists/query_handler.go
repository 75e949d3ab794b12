package listartists

import (
	"context"

	"nachna/modules/catalog/internal/repository"
	"nachna/shared/common/logger"

	"go.opentelemetry.io/otel/trace"
)

type listArtistsQueryHandler struct {
	catalogRepo repository.CatalogRepository
}

func NewListArtistsQueryHandler(catalogRepo repository.CatalogRepository) *listArtistsQueryHandler {
	return &listArtistsQueryHandler{
		catalogRepo: catalogRepo,
	}
}

func (h *listArtistsQueryHandler) Handle(ctx context.Context, query *ListArtistsQuery) (*ListArtistsResponse, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("query_handler")
	ctx, span := tracer.Start(ctx, "Handle:ListArtistsQuery")
	defer span.End()

	artists, err := h.catalogRepo.ListArtists(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}

	items := make([]ArtistItem, 0, len(artists))
	for _, a := range artists {
		items = append(items, ArtistItem{
			ID:             a.ID,
			Name:           a.Name,
			InstagramLinks: a.InstagramLinks,
		})
	}

	return &ListArtistsResponse{Artists: items}, nil
}
