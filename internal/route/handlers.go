package route

import (
	"backend-corsa/internal/storage"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, store *storage.Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req Route
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name required")
		}
		req.UserID, _ = c.Locals("user_id").(string)
		route, err := svc.Upsert(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(route)
	})

	r.Post("/gpx", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			GPX         string `json:"gpx"`
		}
		if err := c.BodyParser(&body); err != nil || body.Name == "" || body.GPX == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name and gpx required")
		}
		userID, _ := c.Locals("user_id").(string)
		route, err := svc.IngestGPX(c.Context(), userID, body.Name, body.Description, []byte(body.GPX))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(route)
	})

	r.Post("/init-upload", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			FileName string `json:"file_name"`
		}
		if err := c.BodyParser(&body); err != nil || body.FileName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "file_name required")
		}
		userID, _ := c.Locals("user_id").(string)
		upload, err := store.InitUpload(c.Context(), userID, body.FileName, "gpx")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(upload)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		route, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "route not found")
		}
		return c.JSON(route)
	})

	r.Get("/:id/profile", func(c *fiber.Ctx) error {
		route, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "route not found")
		}
		coords, err := ParseGeoJSON([]byte(route.GeoJSON))
		if err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "failed to load route: "+err.Error())
		}
		return c.JSON(BuildProfile(coords))
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
