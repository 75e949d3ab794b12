package listworkshops

import (
	"nachna/shared/common/mediator"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Get(path, listWorkshopsHTTPHandler)
}

// ListWorkshops godoc
// @Summary		List Workshops
// @Description	List upcoming workshops
// @Tags			Catalog
// @Produce		json
// @Success		200	{object}	ListWorkshopsResponse
// @Router			/workshops [get]
func listWorkshopsHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:ListWorkshops")
	defer span.End()

	resp, err := mediator.Send[*ListWorkshopsQuery, *ListWorkshopsResponse](
		ctx,
		&ListWorkshopsQuery{},
	)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
