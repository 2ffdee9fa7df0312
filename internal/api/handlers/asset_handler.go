package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/socialplanner/internal/service"
	"github.com/maheshrc27/socialplanner/internal/transfer"
)

type AssetHandler struct {
	s service.AssetService
}

func NewAssetHandler(service service.AssetService) *AssetHandler {
	return &AssetHandler{s: service}
}

func (h *AssetHandler) UploadAssets(c *fiber.Ctx) error {
	category := c.Params("category")

	form, err := c.MultipartForm()
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Unable to parse form")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return errorJSON(c, fiber.StatusBadRequest, "No files selected")
	}

	saved, err := h.s.Upload(c.Context(), category, files)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(saved)
}

func (h *AssetHandler) CreateAsset(c *fiber.Ctx) error {
	category := c.Params("category")

	var ac transfer.AssetCreation
	if err := c.BodyParser(&ac); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Unable to parse json")
	}

	asset, err := h.s.Create(category, &ac)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(asset)
}

func (h *AssetHandler) UpdateAsset(c *fiber.Ctx) error {
	category := c.Params("category")
	id := c.Query("id")
	if id == "" {
		return errorJSON(c, fiber.StatusBadRequest, "id is required")
	}

	var patch transfer.AssetPatch
	if err := c.BodyParser(&patch); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Unable to parse json")
	}

	asset, ok := h.s.Update(category, id, patch)
	if !ok {
		return c.Status(fiber.StatusOK).JSON(nil)
	}
	return c.Status(fiber.StatusOK).JSON(asset)
}

func (h *AssetHandler) RemoveAsset(c *fiber.Ctx) error {
	category := c.Params("category")
	id := c.Query("id")
	if id == "" {
		return errorJSON(c, fiber.StatusBadRequest, "id is required")
	}

	h.s.Remove(category, id)
	return c.SendStatus(fiber.StatusOK)
}

func (h *AssetHandler) ListAssets(c *fiber.Ctx) error {
	category := c.Params("category")

	assets, err := h.s.List(category)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(assets)
}
