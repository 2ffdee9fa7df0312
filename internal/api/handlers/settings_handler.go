package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/socialplanner/internal/service"
)

type SettingsHandler struct {
	s service.SettingsService
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{s: service}
}

func (h *SettingsHandler) GetSettingsInfo(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.s.Info())
}

func (h *SettingsHandler) ToggleTheme(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"theme": h.s.ToggleTheme()})
}

func (h *SettingsHandler) ToggleSidebar(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"sidebarCollapsed": h.s.ToggleSidebar()})
}
