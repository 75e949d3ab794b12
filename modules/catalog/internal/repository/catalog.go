package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"nachna/modules/catalog/internal/model"
	"nachna/shared/common/errs"
	"nachna/shared/common/storage/sqldb/transactor"

	"go.opentelemetry.io/otel/trace"
)

type CatalogRepository interface {
	FindWorkshopByID(ctx context.Context, id int64) (*model.Workshop, error)
	ListWorkshops(ctx context.Context) ([]model.Workshop, error)
	ListStudios(ctx context.Context) ([]model.Studio, error)
	ListArtists(ctx context.Context) ([]model.Artist, error)
}

type catalogRepository struct {
	dbCtx transactor.DBTXContext
}

func NewCatalogRepository(dbCtx transactor.DBTXContext) CatalogRepository {
	return &catalogRepository{
		dbCtx: dbCtx,
	}
}

func (r *catalogRepository) FindWorkshopByID(ctx context.Context, id int64) (*model.Workshop, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CatalogRepository:FindWorkshopByID")
	defer span.End()

	query := `
	SELECT *
	FROM catalog.workshops
	WHERE id = $1
`
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	var workshop model.Workshop
	err := r.dbCtx(ctx).QueryRowxContext(ctx, query, id).StructScan(&workshop)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while finding a workshop by id: %w", err))
	}

	return &workshop, nil
}

func (r *catalogRepository) ListWorkshops(ctx context.Context) ([]model.Workshop, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CatalogRepository:ListWorkshops")
	defer span.End()

	query := `
	SELECT *
	FROM catalog.workshops
	WHERE event_date >= now()
	ORDER BY event_date
`
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	workshops := make([]model.Workshop, 0)
	if err := r.dbCtx(ctx).SelectContext(ctx, &workshops, query); err != nil {
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while listing workshops: %w", err))
	}
	return workshops, nil
}

func (r *catalogRepository) ListStudios(ctx context.Context) ([]model.Studio, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CatalogRepository:ListStudios")
	defer span.End()

	query := `
	SELECT *
	FROM catalog.studios
	ORDER BY name
`
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	studios := make([]model.Studio, 0)
	if err := r.dbCtx(ctx).SelectContext(ctx, &studios, query); err != nil {
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while listing studios: %w", err))
	}
	return studios, nil
}

func (r *catalogRepository) ListArtists(ctx context.Context) ([]model.Artist, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CatalogRepository:ListArtists")
	defer span.End()

	query := `
	SELECT *
	FROM catalog.artists
	ORDER BY name
`
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	artists := make([]model.Artist, 0)
	if err := r.dbCtx(ctx).SelectContext(ctx, &artists, query); err != nil {
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while listing artists: %w", err))
	}
	return artists, nil
}
