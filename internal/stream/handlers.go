package stream

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, hub *Hub, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req Stream
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		req.UserID, _ = c.Locals("user_id").(string)
		if req.UserID == "" || req.DeviceID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "device_id required")
		}
		stream, err := svc.Start(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(stream)
	})

	r.Post("/:id/locations", authMiddleware, func(c *fiber.Ctx) error {
		var req LocationPoint
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		point, err := svc.Publish(c.Context(), c.Params("id"), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(point)
	})

	r.Post("/:id/end", authMiddleware, func(c *fiber.Ctx) error {
		if err := svc.End(c.Context(), c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Get("/by-entity/:entityID", func(c *fiber.Ctx) error {
		streams, err := svc.ByEntity(c.Context(), c.Params("entityID"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(streams)
	})

	r.Get("/:id/daily", func(c *fiber.Ctx) error {
		summary, err := svc.Daily(c.Context(), c.Params("id"), c.Query("tz", "UTC"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(summary)
	})

	r.Get("/:id/locations", func(c *fiber.Ctx) error {
		points, err := svc.Points(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(points)
	})

	r.Get("/ws/:id", websocket.New(func(c *websocket.Conn) {
		streamID := c.Params("id")
		client := hub.Register(streamID)

		done := make(chan struct{})
		go func() {
			for msg := range client.Send {
				if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
					break
				}
			}
			close(done)
		}()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
		// closes client.Send so the writer drains and exits even when the
		// stream is quiet
		hub.Unregister(client)
		<-done
	}))
}
