package device

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, svc *Service, locator *Locator, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req Device
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.IMEI == "" {
			return fiber.NewError(fiber.StatusBadRequest, "imei required")
		}
		req.UserID, _ = c.Locals("user_id").(string)
		device, err := svc.Upsert(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(device)
	})

	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		devices, err := svc.List(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(devices)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		device, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "device not found")
		}
		return c.JSON(device)
	})

	r.Get("/:id/location", func(c *fiber.Ctx) error {
		device, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "device not found")
		}
		loc := locator.LastKnown(c.Context(), device.IMEI)
		if loc == nil {
			return c.JSON(fiber.Map{"location": nil})
		}
		return c.JSON(fiber.Map{"location": loc})
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
