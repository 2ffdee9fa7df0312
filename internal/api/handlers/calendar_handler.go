package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/socialplanner/internal/planner"
	"github.com/maheshrc27/socialplanner/internal/store"
)

type CalendarHandler struct {
	store *store.Store
}

func NewCalendarHandler(s *store.Store) *CalendarHandler {
	return &CalendarHandler{store: s}
}

func (h *CalendarHandler) MonthGrid(c *fiber.Ctx) error {
	now := time.Now()
	anchor := queryDate(c, "anchor", now)
	selected := queryDate(c, "selected", now)

	grid := planner.MonthGrid(h.store.ListContents(), anchor, selected, now)
	return c.Status(fiber.StatusOK).JSON(grid)
}

func (h *CalendarHandler) WeekGrid(c *fiber.Ctx) error {
	now := time.Now()
	anchor := queryDate(c, "anchor", now)
	monthAnchor := queryDate(c, "month", anchor)
	selected := queryDate(c, "selected", anchor)

	grid := planner.WeekGrid(h.store.ListContents(), anchor, monthAnchor, selected, now)
	return c.Status(fiber.StatusOK).JSON(grid)
}

func (h *CalendarHandler) DayEvents(c *fiber.Ctx) error {
	date := queryDate(c, "date", time.Now())
	events := planner.EventsForDate(h.store.ListContents(), date)
	return c.Status(fiber.StatusOK).JSON(events)
}

func (h *CalendarHandler) UpcomingEvents(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	if days < 1 {
		days = 7
	}
	events := planner.UpcomingEvents(h.store.ListContents(), time.Now(), days)
	return c.Status(fiber.StatusOK).JSON(events)
}

func queryDate(c *fiber.Ctx, name string, fallback time.Time) time.Time {
	value := c.Query(name)
	if value == "" {
		return fallback
	}
	if t, ok := planner.ParseScheduledDate(value); ok {
		return t
	}
	return fallback
}
