package handler

import (
	"go-lawoffice-ws/internal/model"
	"go-lawoffice-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CaseHandler struct {
	service service.CaseService
}

func NewCaseHandler(s service.CaseService) *CaseHandler {
	return &CaseHandler{service: s}
}

func (h *CaseHandler) GetCases(c *fiber.Ctx) error {
	cases, err := h.service.GetAllCases()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(cases)
}

func (h *CaseHandler) GetCase(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid case ID"})
	}

	legalCase, err := h.service.GetCaseByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Case not found"})
	}
	return c.JSON(legalCase)
}

func (h *CaseHandler) CreateCase(c *fiber.Ctx) error {
	var legalCase model.LegalCase
	if err := c.BodyParser(&legalCase); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateCase(&legalCase, getUserID(c), getUserName(c), getUserEmail(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Case created", "data": legalCase})
}

func (h *CaseHandler) UpdateCase(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid case ID"})
	}

	var legalCase model.LegalCase
	if err := c.BodyParser(&legalCase); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateCase(id, &legalCase, getUserID(c), getUserName(c), getUserEmail(c))
	if err != nil {
		if err == service.ErrCaseNotFound {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Case updated", "data": updated})
}

func (h *CaseHandler) DeleteCase(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid case ID"})
	}

	if err := h.service.DeleteCase(id); err != nil {
		if err == service.ErrCaseNotFound {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Case deleted"})
}
