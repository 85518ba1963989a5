package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kaushl12/TaskCanvas/middleware"
	"github.com/kaushl12/TaskCanvas/models"
	"github.com/kaushl12/TaskCanvas/store"
)

// TodoStore is the slice of the todo store the handlers need. Every
// lookup and mutation is scoped to an owner id.
type TodoStore interface {
	Create(ctx context.Context, todo *models.Todo) error
	ListByUser(ctx context.Context, userID int64) ([]models.Todo, error)
	GetByIDAndUser(ctx context.Context, id string, userID int64) (*models.Todo, error)
	Update(ctx context.Context, todo *models.Todo) error
	Delete(ctx context.Context, id string, userID int64) error
}

type TodoHandler struct {
	todos TodoStore

	// displayLoc is optional; when set, responses carry human-readable
	// due/created strings in that timezone.
	displayLoc *time.Location
}

func NewTodoHandler(todos TodoStore, displayLoc *time.Location) *TodoHandler {
	return &TodoHandler{todos: todos, displayLoc: displayLoc}
}

type createTodoRequest struct {
	Title   string     `json:"title"`
	DueDate *time.Time `json:"dueDate"`
	Done    *bool      `json:"done"`
}

type updateTodoRequest struct {
	Title   *string    `json:"title"`
	DueDate *time.Time `json:"dueDate"`
	Done    *bool      `json:"done"`
}

type todoResponse struct {
	models.Todo
	DueDateDisplay   string `json:"dueDateDisplay,omitempty"`
	CreatedAtDisplay string `json:"createdAtDisplay,omitempty"`
}

const displayLayout = "2/1/2006, 3:04:05 pm"

func (h *TodoHandler) render(t *models.Todo) todoResponse {
	resp := todoResponse{Todo: *t}
	if h.displayLoc != nil {
		resp.DueDateDisplay = t.DueDate.In(h.displayLoc).Format(displayLayout)
		resp.CreatedAtDisplay = t.CreatedAt.In(h.displayLoc).Format(displayLayout)
	}
	return resp
}

// Create godoc
// @Summary Create a todo for the authenticated user
// @Accept json
// @Produce json
// @Param token header string true "bearer token"
// @Param body body createTodoRequest true "todo payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /todo [post]
func (h *TodoHandler) Create(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	req := new(createTodoRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid data format"})
	}
	if strings.TrimSpace(req.Title) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "title is required"})
	}
	if req.DueDate == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "due date is required"})
	}
	if !req.DueDate.After(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "due date must be in the future"})
	}

	// owner always comes from the verified token, never from the body
	todo := &models.Todo{
		UserID:  userID,
		Title:   req.Title,
		DueDate: *req.DueDate,
	}
	if req.Done != nil {
		todo.Done = *req.Done
	}

	if err := h.todos.Create(c.UserContext(), todo); err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "todo created successfully",
		"todo":    h.render(todo),
	})
}

// List godoc
// @Summary List the authenticated user's todos
// @Produce json
// @Param token header string true "bearer token"
// @Success 200 {object} map[string]interface{}
// @Router /todos [get]
func (h *TodoHandler) List(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	todos, err := h.todos.ListByUser(c.UserContext(), userID)
	if err != nil {
		return internalError(c)
	}

	out := make([]todoResponse, 0, len(todos))
	for i := range todos {
		out = append(out, h.render(&todos[i]))
	}
	return c.JSON(fiber.Map{"todos": out})
}

// Edit godoc
// @Summary Partially update one of the authenticated user's todos
// @Accept json
// @Produce json
// @Param token header string true "bearer token"
// @Param id path string true "todo id"
// @Param body body updateTodoRequest true "fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /todo/edit/{id} [patch]
func (h *TodoHandler) Edit(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id := c.Params("id")

	req := new(updateTodoRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid data format"})
	}

	todo, err := h.todos.GetByIDAndUser(c.UserContext(), id, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return todoNotFound(c)
		}
		return internalError(c)
	}

	// absent field means unchanged
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "title is required"})
		}
		todo.Title = *req.Title
	}
	if req.DueDate != nil {
		if !req.DueDate.After(time.Now()) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "due date must be in the future"})
		}
		todo.DueDate = *req.DueDate
	}
	if req.Done != nil {
		todo.Done = *req.Done
	}

	if err := h.todos.Update(c.UserContext(), todo); err != nil {
		// the owner may have deleted it between lookup and write
		if errors.Is(err, store.ErrNotFound) {
			return todoNotFound(c)
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"message": "todo updated successfully",
		"todo":    h.render(todo),
	})
}

// Remove godoc
// @Summary Delete one of the authenticated user's todos
// @Produce json
// @Param token header string true "bearer token"
// @Param id path string true "todo id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /todo/remove/{id} [delete]
func (h *TodoHandler) Remove(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id := c.Params("id")

	if err := h.todos.Delete(c.UserContext(), id, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return todoNotFound(c)
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": "todo deleted"})
}

func todoNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "todo not found"})
}
