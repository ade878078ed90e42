package handler

import (
	"fmt"
	"strconv"
	"time"

	"go-lawoffice-ws/internal/model"
	"go-lawoffice-ws/internal/repository"
	"go-lawoffice-ws/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type SessionHandler struct {
	sessionRepo repository.SessionRepository
}

func NewSessionHandler(sessionRepo repository.SessionRepository) *SessionHandler {
	return &SessionHandler{sessionRepo: sessionRepo}
}

// GetSessions lists sessions, optionally scoped to one case
// GET /api/v1/sessions?case_id=3
func (h *SessionHandler) GetSessions(c *fiber.Ctx) error {
	if caseParam := c.Query("case_id"); caseParam != "" {
		caseID, err := strconv.ParseUint(caseParam, 10, 32)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid case ID"})
		}
		sessions, err := h.sessionRepo.FindByCase(uint(caseID))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sessions"})
		}
		return c.JSON(sessions)
	}

	sessions, err := h.sessionRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sessions"})
	}
	return c.JSON(sessions)
}

// GetUpcomingSessions returns the next scheduled hearings
// GET /api/v1/sessions/upcoming?limit=10
func (h *SessionHandler) GetUpcomingSessions(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	sessions, err := h.sessionRepo.FindUpcoming(time.Now(), limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sessions"})
	}
	return c.JSON(sessions)
}

func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid session ID"})
	}

	session, err := h.sessionRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Session not found"})
	}
	return c.JSON(session)
}

func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	var session model.Session
	if err := c.BodyParser(&session); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(&session); len(errs) > 0 {
		firstErr := errs[0]
		return c.Status(400).JSON(fiber.Map{
			"error": fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag),
		})
	}

	session.CreatedBy = getUserID(c)
	session.UpdatedBy = getUserID(c)

	if err := h.sessionRepo.Create(&session); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Session created", "data": session})
}

func (h *SessionHandler) UpdateSession(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid session ID"})
	}

	existing, err := h.sessionRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Session not found"})
	}

	var req model.Session
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	existing.CaseID = req.CaseID
	existing.Date = req.Date
	existing.Time = req.Time
	existing.CourtName = req.CourtName
	existing.Status = req.Status
	existing.Notes = req.Notes
	existing.UpdatedBy = getUserID(c)

	if err := h.sessionRepo.Update(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Session updated", "data": existing})
}

func (h *SessionHandler) DeleteSession(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid session ID"})
	}

	if err := h.sessionRepo.Delete(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Session deleted"})
}
