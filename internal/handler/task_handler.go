package handler

import (
	"fmt"
	"strconv"

	"go-lawoffice-ws/internal/model"
	"go-lawoffice-ws/internal/repository"
	"go-lawoffice-ws/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type TaskHandler struct {
	taskRepo repository.TaskRepository
}

func NewTaskHandler(taskRepo repository.TaskRepository) *TaskHandler {
	return &TaskHandler{taskRepo: taskRepo}
}

// GetTasks lists tasks, optionally scoped to one employee
// GET /api/v1/tasks?assigned_to=5
func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	if assignee := c.Query("assigned_to"); assignee != "" {
		employeeID, err := strconv.ParseUint(assignee, 10, 32)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid employee ID"})
		}
		tasks, err := h.taskRepo.FindByAssignee(uint(employeeID))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tasks"})
		}
		return c.JSON(tasks)
	}

	tasks, err := h.taskRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tasks"})
	}
	return c.JSON(tasks)
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	task, err := h.taskRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
	}
	return c.JSON(task)
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	var task model.Task
	if err := c.BodyParser(&task); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(&task); len(errs) > 0 {
		firstErr := errs[0]
		return c.Status(400).JSON(fiber.Map{
			"error": fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag),
		})
	}

	task.CreatedBy = getUserID(c)
	task.UpdatedBy = getUserID(c)

	if err := h.taskRepo.Create(&task); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Task created", "data": task})
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	existing, err := h.taskRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
	}

	var req model.Task
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.AssignedToID = req.AssignedToID
	existing.DueDate = req.DueDate
	existing.Status = req.Status
	existing.Priority = req.Priority
	existing.UpdatedBy = getUserID(c)

	if err := h.taskRepo.Update(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Task updated", "data": existing})
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	if err := h.taskRepo.Delete(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Task deleted"})
}
