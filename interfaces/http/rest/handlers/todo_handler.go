package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"todoapi/application/services"
	"todoapi/domain/todo"
	"todoapi/pkg/api"
	appErrors "todoapi/pkg/errors"
	"todoapi/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// TodoHandler handles the five todo HTTP operations. Each handler is a
// short pipeline: parse, validate, one service call, respond. Any stage
// can short-circuit to an error envelope.
type TodoHandler struct {
	service *services.TodoService
	logger  *zap.Logger
}

// NewTodoHandler creates a new todo handler.
func NewTodoHandler(service *services.TodoService, logger *zap.Logger) *TodoHandler {
	return &TodoHandler{
		service: service,
		logger:  logger,
	}
}

// CreateTodoRequest represents the request body for creating a todo.
type CreateTodoRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// UpdateTodoRequest represents the request body for updating a todo.
// Pointers distinguish absent fields from zero values, and the typed
// Completed field rejects non-boolean input at decode time.
type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// CreateTodo handles POST /todos
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req CreateTodoRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, appErrors.NewValidationError(
			appErrors.CodeInvalidTitle,
			"Title is required and must be a non-empty string",
		))
		return
	}

	t, err := h.service.Create(r.Context(), req.Title, req.Description)
	if err != nil {
		h.respondError(w, err)
		return
	}

	api.Success(w, http.StatusCreated, t, "Todo created successfully")
}

// GetTodo handles GET /todos/{todoID}
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	todoID := chi.URLParam(r, "todoID")
	if todoID == "" {
		h.respondError(w, appErrors.NewValidationError(appErrors.CodeMissingID, "Todo ID is required"))
		return
	}

	t, err := h.service.Get(r.Context(), todoID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	api.Success(w, http.StatusOK, t, "Todo retrieved successfully")
}

// ListTodos handles GET /todos
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	api.Success(w, http.StatusOK, result, "Todos retrieved successfully")
}

// UpdateTodo handles PUT /todos/{todoID}
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	todoID := chi.URLParam(r, "todoID")
	if todoID == "" {
		h.respondError(w, appErrors.NewValidationError(appErrors.CodeMissingID, "Todo ID is required"))
		return
	}

	var req UpdateTodoRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	fields := todo.UpdateFields{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}
	if err := fields.Normalize(); err != nil {
		h.respondError(w, err)
		return
	}

	t, err := h.service.Update(r.Context(), todoID, fields)
	if err != nil {
		h.respondError(w, err)
		return
	}

	api.Success(w, http.StatusOK, t, "Todo updated successfully")
}

// DeleteTodo handles DELETE /todos/{todoID}
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	todoID := chi.URLParam(r, "todoID")
	if todoID == "" {
		h.respondError(w, appErrors.NewValidationError(appErrors.CodeMissingID, "Todo ID is required"))
		return
	}

	if err := h.service.Delete(r.Context(), todoID); err != nil {
		h.respondError(w, err)
		return
	}

	api.NoContent(w)
}

// decodeBody reads and decodes a JSON request body, distinguishing a
// missing body, a malformed one, and a well-formed one with
// wrongly-typed fields.
func decodeBody(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return appErrors.NewInternalError("failed to read request body", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return appErrors.NewValidationError(appErrors.CodeMissingBody, "Request body is required")
	}

	if err := json.Unmarshal(body, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			switch typeErr.Field {
			case "title":
				return appErrors.NewValidationError(appErrors.CodeInvalidTitle, "Title must be a string")
			case "completed":
				return appErrors.NewValidationError(appErrors.CodeInvalidCompleted, "Completed must be a boolean")
			case "description":
				return appErrors.NewValidationError(appErrors.CodeInvalidJSON, "Description must be a string")
			}
		}
		return appErrors.NewValidationError(appErrors.CodeInvalidJSON, "Request body must be valid JSON")
	}

	return nil
}

// respondError maps a typed error onto the envelope. Anything that is
// not an AppError becomes a generic 500; the caller never sees an
// unhandled fault.
func (h *TodoHandler) respondError(w http.ResponseWriter, err error) {
	appErr := appErrors.GetAppError(err)
	if appErr == nil {
		h.logger.Error("Unhandled error", zap.Error(err))
		api.Error(w, http.StatusInternalServerError, appErrors.CodeInternalError, "An internal error occurred")
		return
	}

	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("code", appErr.Code),
			zap.Error(err),
		)
	}

	api.Error(w, appErr.HTTPStatus, appErr.Code, appErr.Message)
}
