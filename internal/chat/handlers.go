package chat

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/:streamID/messages", authMiddleware, func(c *fiber.Ctx) error {
		var req Message
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		req.StreamID = c.Params("streamID")
		req.UserID, _ = c.Locals("user_id").(string)
		if req.Body == "" {
			return fiber.NewError(fiber.StatusBadRequest, "body required")
		}
		msg, err := svc.Publish(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(msg)
	})

	r.Get("/:streamID/messages", func(c *fiber.Ctx) error {
		limit, _ := strconv.Atoi(c.Query("limit"))
		messages, err := svc.List(c.Context(), c.Params("streamID"), limit)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(messages)
	})
}
