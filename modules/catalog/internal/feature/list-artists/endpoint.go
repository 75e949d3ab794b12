package listartists

import (
	"nachna/shared/common/mediator"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Get(path, listArtistsHTTPHandler)
}

// ListArtists godoc
// @Summary		List Artists
// @Description	List dance artists
// @Tags			Catalog
// @Produce		json
// @Success		200	{object}	ListArtistsResponse
// @Router			/artists [get]
func listArtistsHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:ListArtists")
	defer span.End()

	resp, err := mediator.Send[*ListArtistsQuery, *ListArtistsResponse](
		ctx,
		&ListArtistsQuery{},
	)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
