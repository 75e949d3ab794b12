package middleware

import (
	"errors"

	"nachna/shared/common/errs"

	"github.com/gofiber/fiber/v3"
)

// ResponseError แปลง error จาก handler ให้เป็น JSON response ตามประเภทของ error
// handler แต่ละตัวแค่ return error ออกมา ไม่ต้องจัดรูปแบบ response เอง
func ResponseError() fiber.Handler {
	return func(c fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}

		var appErr *errs.AppError
		if errors.As(err, &appErr) {
			return c.Status(appErr.HTTPStatus()).JSON(fiber.Map{
				"type":    appErr.Type,
				"message": appErr.Message,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"type":    errs.ErrOperationFailed,
				"message": fiberErr.Message,
			})
		}

		// error ที่ไม่รู้จักให้ตอบ 500 โดยไม่เปิดเผยรายละเอียดภายใน
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"type":    errs.ErrOperationFailed,
			"message": "internal server error",
		})
	}
}
