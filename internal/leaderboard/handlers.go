package leaderboard

import (
	"time"

	"backend-corsa/internal/activity"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the leaderboard surface. Reads are public; the
// optional middleware lets a signed-in viewer's row be appended without
// requiring auth for the list itself.
func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware, optionalAuth fiber.Handler) {
	r.Post("/:segmentID/join", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		if userID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "user_id missing")
		}
		member, err := svc.Join(c.Context(), c.Params("segmentID"), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(member)
	})

	r.Post("/:segmentID/efforts", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			TimeSec int64     `json:"time"`
			Date    time.Time `json:"date"`
		}
		if err := c.BodyParser(&body); err != nil || body.TimeSec <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "positive time required")
		}
		userID, _ := c.Locals("user_id").(string)
		if err := svc.RecordEffort(c.Context(), c.Params("segmentID"), userID, body.TimeSec, body.Date); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusCreated)
	})

	r.Get("/stats", func(c *fiber.Ctx) error {
		activities, err := svc.AllActivities(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		segments, err := svc.Segments(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{
			"segments":       activity.SegmentStatsFrom(activities, segments),
			"users":          activity.UserStatsFrom(activities),
			"activity_types": activity.ActivityTypeStatsFrom(activities),
		})
	})

	r.Get("/:segmentID/stats", func(c *fiber.Ctx) error {
		activities, err := svc.Activities(c.Context(), c.Params("segmentID"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{
			"users":          activity.UserStatsFrom(activities),
			"activity_types": activity.ActivityTypeStatsFrom(activities),
		})
	})

	r.Get("/:segmentID/efforts", optionalAuth, func(c *fiber.Ctx) error {
		entries, err := svc.Efforts(c.Context(), c.Params("segmentID"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		timeFilter := TimeFilter(c.Query("time", string(TimeAll)))
		genderFilter := GenderFilter(c.Query("gender", string(GenderAll)))
		ranked := Rank(entries, timeFilter, genderFilter, time.Now())

		viewerID, _ := c.Locals("user_id").(string)
		return c.JSON(Display(ranked, viewerID))
	})
}
