package handler

import (
	"strconv"

	"go-lawoffice-ws/internal/finance"
	"go-lawoffice-ws/internal/model"
	"go-lawoffice-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	service service.TransactionService
}

func NewTransactionHandler(s service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// Helper untuk ambil User Info dari JWT Context (set by auth middleware)
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system" // Fallback jika tidak ada (shouldn't happen in protected routes)
	}
	return userID.(string)
}

func getUserName(c *fiber.Ctx) string {
	userName := c.Locals("user_name")
	if userName == nil {
		return "Unknown"
	}
	return userName.(string)
}

func getUserEmail(c *fiber.Ctx) string {
	userEmail := c.Locals("user_email")
	if userEmail == nil {
		return ""
	}
	return userEmail.(string)
}

// Helper untuk parse numeric record ID dari path
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

// parseFilters reads the advanced filter query params. Absent or unparsable
// params impose no constraint.
func parseFilters(c *fiber.Ctx) finance.Filters {
	var f finance.Filters

	f.Type = model.TransactionType(c.Query("type"))
	f.Status = model.TransactionStatus(c.Query("status"))
	f.LinkedEntity = finance.LinkedEntityTag(c.Query("linked_entity"))

	if v, err := strconv.ParseFloat(c.Query("min_amount"), 64); err == nil {
		f.MinAmount = &v
	}
	if v, err := strconv.ParseFloat(c.Query("max_amount"), 64); err == nil {
		f.MaxAmount = &v
	}
	if v, err := strconv.Atoi(c.Query("month")); err == nil {
		f.Month = &v
	}
	if v, err := strconv.Atoi(c.Query("year")); err == nil {
		f.Year = &v
	}

	return f
}

// GetTransactions returns the filtered table rows plus the summary cards
// GET /api/v1/transactions?tab=paid&min_amount=50&month=3&year=2024
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	tab := finance.Tab(c.Query("tab", string(finance.TabAll)))

	list, err := h.service.ListTransactions(tab, parseFilters(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(list)
}

func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	tx, err := h.service.GetTransactionByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Transaction not found"})
	}
	return c.JSON(tx)
}

func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req service.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	tx, err := h.service.CreateTransaction(&req, getUserID(c), getUserName(c), getUserEmail(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Transaction recorded", "data": tx})
}

func (h *TransactionHandler) UpdateTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	var req service.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	tx, err := h.service.UpdateTransaction(id, &req, getUserID(c), getUserName(c), getUserEmail(c))
	if err != nil {
		if err == service.ErrTransactionNotFound {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Transaction updated", "data": tx})
}

func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	if err := h.service.DeleteTransaction(id, getUserID(c), getUserName(c), getUserEmail(c)); err != nil {
		if err == service.ErrTransactionNotFound {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Transaction deleted"})
}
