package getworkshop

import (
	"strconv"

	"nachna/shared/common/errs"
	"nachna/shared/common/mediator"
	"nachna/shared/contract/catalogcontract"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Get(path, getWorkshopHTTPHandler)
}

// GetWorkshop godoc
// @Summary		Get Workshop
// @Description	Get a workshop with its resolved price
// @Tags			Catalog
// @Produce		json
// @Param			workshopID	path	int	true	"Workshop ID"
// @Failure		404
// @Success		200	{object}	WorkshopResponse
// @Router			/workshops/{workshopID} [get]
func getWorkshopHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:GetWorkshop")
	defer span.End()

	id, err := strconv.ParseInt(c.Params("workshopID"), 10, 64)
	if err != nil {
		// จัดการ error response ที่ middleware
		return errs.InputValidationError("invalid workshop id")
	}

	resp, err := mediator.Send[*catalogcontract.GetWorkshopByIDQuery, *catalogcontract.GetWorkshopByIDQueryResult](
		ctx,
		&catalogcontract.GetWorkshopByIDQuery{ID: id},
	)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(WorkshopResponse{
		ID:         resp.ID,
		StudioID:   resp.StudioID,
		Song:       resp.Song,
		ArtistName: resp.ArtistName,
		Amount:     resp.Amount,
	})
}
