package strava

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/strava", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			Code string `json:"code"`
		}
		if err := c.BodyParser(&body); err != nil || body.Code == "" {
			return fiber.NewError(fiber.StatusBadRequest, "code required")
		}
		userID, _ := c.Locals("user_id").(string)
		integration, err := svc.Exchange(c.Context(), userID, body.Code)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(integration)
	})

	r.Delete("/strava", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		if err := svc.Disconnect(c.Context(), userID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
