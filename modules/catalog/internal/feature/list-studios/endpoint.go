package liststudios

import (
	"nachna/shared/common/mediator"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Get(path, listStudiosHTTPHandler)
}

// ListStudios godoc
// @Summary		List Studios
// @Description	List dance studios
// @Tags			Catalog
// @Produce		json
// @Success		200	{object}	ListStudiosResponse
// @Router			/studios [get]
func listStudiosHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:ListStudios")
	defer span.End()

	resp, err := mediator.Send[*ListStudiosQuery, *ListStudiosResponse](
		ctx,
		&ListStudiosQuery{},
	)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
