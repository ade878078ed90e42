package handler

import (
	"fmt"

	"go-lawoffice-ws/internal/model"
	"go-lawoffice-ws/internal/repository"
	"go-lawoffice-ws/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type AgencyHandler struct {
	agencyRepo repository.AgencyRepository
}

func NewAgencyHandler(agencyRepo repository.AgencyRepository) *AgencyHandler {
	return &AgencyHandler{agencyRepo: agencyRepo}
}

func (h *AgencyHandler) GetAgencies(c *fiber.Ctx) error {
	agencies, err := h.agencyRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch agencies"})
	}
	return c.JSON(agencies)
}

func (h *AgencyHandler) GetAgency(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid agency ID"})
	}

	agency, err := h.agencyRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Agency not found"})
	}
	return c.JSON(agency)
}

func (h *AgencyHandler) CreateAgency(c *fiber.Ctx) error {
	var agency model.Agency
	if err := c.BodyParser(&agency); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(&agency); len(errs) > 0 {
		firstErr := errs[0]
		return c.Status(400).JSON(fiber.Map{
			"error": fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag),
		})
	}

	// Cek Duplikasi Number
	existing, _ := h.agencyRepo.FindByNumber(agency.Number)
	if existing != nil && existing.ID != 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Agency number already exists"})
	}

	agency.CreatedBy = getUserID(c)
	agency.UpdatedBy = getUserID(c)

	if err := h.agencyRepo.Create(&agency); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Agency created", "data": agency})
}

func (h *AgencyHandler) UpdateAgency(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid agency ID"})
	}

	existing, err := h.agencyRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Agency not found"})
	}

	var req model.Agency
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	existing.Number = req.Number
	existing.CustomerID = req.CustomerID
	existing.AgentName = req.AgentName
	existing.IssueDate = req.IssueDate
	existing.ExpiryDate = req.ExpiryDate
	existing.Status = req.Status
	existing.Notes = req.Notes
	existing.UpdatedBy = getUserID(c)

	if err := h.agencyRepo.Update(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Agency updated", "data": existing})
}

func (h *AgencyHandler) DeleteAgency(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid agency ID"})
	}

	if err := h.agencyRepo.Delete(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Agency deleted"})
}
