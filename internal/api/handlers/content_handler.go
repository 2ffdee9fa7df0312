package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/socialplanner/internal/service"
	"github.com/maheshrc27/socialplanner/internal/transfer"
)

type ContentHandler struct {
	s service.ContentService
}

func NewContentHandler(service service.ContentService) *ContentHandler {
	return &ContentHandler{s: service}
}

func (h *ContentHandler) CreateContent(c *fiber.Ctx) error {
	var cc transfer.ContentCreation
	if err := c.BodyParser(&cc); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Unable to parse json")
	}

	item, err := h.s.Create(&cc)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(item)
}

func (h *ContentHandler) ListContents(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		// nil for a missing id: absence is not an error
		return c.Status(fiber.StatusOK).JSON(h.s.Get(id))
	}
	return c.Status(fiber.StatusOK).JSON(h.s.List())
}

func (h *ContentHandler) SearchContents(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.s.Search(c.Query("q")))
}

func (h *ContentHandler) FilterContents(c *fiber.Ctx) error {
	filters := transfer.ContentFilters{
		Type:     c.Query("type"),
		Platform: c.Query("platform"),
		Status:   c.Query("status"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}
	return c.Status(fiber.StatusOK).JSON(h.s.Filter(filters))
}

func (h *ContentHandler) UpdateContent(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return errorJSON(c, fiber.StatusBadRequest, "id is required")
	}

	var patch transfer.ContentPatch
	if err := c.BodyParser(&patch); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Unable to parse json")
	}

	item, ok := h.s.Update(id, patch)
	if !ok {
		// not-found is a no-op, not an error
		return c.Status(fiber.StatusOK).JSON(nil)
	}
	return c.Status(fiber.StatusOK).JSON(item)
}

func (h *ContentHandler) RemoveContent(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return errorJSON(c, fiber.StatusBadRequest, "id is required")
	}

	h.s.Remove(id)
	return c.SendStatus(fiber.StatusOK)
}

func (h *ContentHandler) BulkUpdateContents(c *fiber.Ctx) error {
	var bu transfer.BulkUpdate
	if err := c.BodyParser(&bu); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Unable to parse json")
	}

	updated := h.s.BulkUpdate(bu.IDs, bu.Patch)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"updated": updated})
}

func (h *ContentHandler) BulkRemoveContents(c *fiber.Ctx) error {
	var bd transfer.BulkDelete
	if err := c.BodyParser(&bd); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Unable to parse json")
	}

	h.s.RemoveMany(bd.IDs)
	return c.SendStatus(fiber.StatusOK)
}

func (h *ContentHandler) ClearContents(c *fiber.Ctx) error {
	h.s.ClearAll()
	return c.SendStatus(fiber.StatusOK)
}
