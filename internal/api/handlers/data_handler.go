package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/socialplanner/internal/service"
)

type DataHandler struct {
	s service.DataService
}

func NewDataHandler(service service.DataService) *DataHandler {
	return &DataHandler{s: service}
}

func (h *DataHandler) ImportData(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "No file uploaded")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Unable to open file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Unable to read file")
	}

	imported, err := h.s.ImportFile(fileHeader.Filename, data)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"imported": imported})
}

func (h *DataHandler) ExportData(c *fiber.Ctx) error {
	filename, body, err := h.s.Export()
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Unable to export data")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(body)
}
