package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/socialplanner/internal/stats"
	"github.com/maheshrc27/socialplanner/internal/store"
)

type DashboardHandler struct {
	store      *store.Store
	weeklyGoal int
}

func NewDashboardHandler(s *store.Store, weeklyGoal int) *DashboardHandler {
	return &DashboardHandler{store: s, weeklyGoal: weeklyGoal}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	contents := h.store.ListContents()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"contents":       stats.Contents(contents),
		"weeklyProgress": stats.WeeklyProgress(contents, time.Now(), h.weeklyGoal),
		"assets":         h.store.GetAssetStats(),
	})
}

func (h *DashboardHandler) GetRecentAssets(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	return c.Status(fiber.StatusOK).JSON(h.store.GetRecentAssets(limit))
}
