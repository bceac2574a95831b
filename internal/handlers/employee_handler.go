package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Stsam98/employee-service/internal/models"
)

// EmployeeService is the interface that wraps methods for Employee business logic.
type EmployeeService interface {
	// Method Create validates a creation payload and stores the new employee.
	//
	// "payload" is the decoded JSON request body. A *models.ValidationError
	// is returned when the payload breaks a validation rule.
	Create(ctx context.Context, payload map[string]any) (*models.Employee, error)
	// Method GetByID retrieves a single employee.
	//
	// If no employee has the given ID, models.ErrEmployeeNotFound is returned.
	GetByID(ctx context.Context, id int) (*models.Employee, error)
	// Method GetAll retrieves every employee in creation order.
	GetAll(ctx context.Context) ([]models.Employee, error)
	// Method GetByName retrieves the first employee with the exact given name.
	//
	// If no employee matches, models.ErrEmployeeNotFound is returned.
	GetByName(ctx context.Context, name string) (*models.Employee, error)
	// Method Update validates a partial payload, applies the present fields
	// and returns the updated record.
	Update(ctx context.Context, id int, payload map[string]any) (*models.Employee, error)
	// Method Delete removes an employee permanently.
	Delete(ctx context.Context, id int) error
}

// EmployeeHandler handles employee-related HTTP requests
type EmployeeHandler struct {
	BaseHandler
	service EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(service EmployeeService, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all employee handler routes. Create and update
// are guarded by the auth middleware, read and delete are open.
func (h *EmployeeHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Get("/{id}", h.GetByID)
		r.Get("/by-name/{name}", h.GetByName)
		r.Delete("/{id}", h.Delete)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Patch("/{id}", h.Update)
		})
	})
}

// Create handles POST /employees
// @Summary Create an employee
// @Description Create a new employee record. Requires a bearer token.
// @Tags employees
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body map[string]string true "Employee fields: name, surname, position required; city optional"
// @Success 201 {object} models.Employee "Created employee"
// @Failure 400 {object} map[string]string "Validation failure"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Router /employees [post]
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	employee, err := h.service.Create(r.Context(), payload)
	if err != nil {
		h.respondEmployeeError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, employee)
}

// GetAll handles GET /employees
// @Summary List all employees
// @Tags employees
// @Produce json
// @Success 200 {array} models.Employee "List of employees"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /employees [get]
func (h *EmployeeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.GetAll(r.Context())
	if err != nil {
		h.Logger.Error("failed to get all employees", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if employees == nil {
		employees = []models.Employee{}
	}

	h.RespondJSON(w, http.StatusOK, employees)
}

// GetByID handles GET /employees/{id}
// @Summary Get an employee by ID
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} models.Employee "Employee"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Employee not found"
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	employee, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondEmployeeError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, employee)
}

// GetByName handles GET /employees/by-name/{name}
// @Summary Get an employee by exact name
// @Description Returns the first employee whose name matches exactly.
// @Tags employees
// @Produce json
// @Param name path string true "Employee name"
// @Success 200 {object} models.Employee "Employee"
// @Failure 404 {object} map[string]string "Employee not found"
// @Router /employees/by-name/{name} [get]
func (h *EmployeeHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	employee, err := h.service.GetByName(r.Context(), name)
	if err != nil {
		h.respondEmployeeError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, employee)
}

// Update handles PUT/PATCH /employees/{id}
// @Summary Update an employee
// @Description Partially update an employee; only fields present in the body are changed. Requires a bearer token.
// @Tags employees
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Employee ID"
// @Param request body map[string]string true "Fields to update"
// @Success 200 {object} models.Employee "Updated employee"
// @Failure 400 {object} map[string]string "Validation failure"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 404 {object} map[string]string "Employee not found"
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	employee, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		h.respondEmployeeError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, employee)
}

// Delete handles DELETE /employees/{id}
// @Summary Delete an employee
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Employee not found"
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondEmployeeError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

// respondEmployeeError maps domain errors to HTTP status codes
func (h *EmployeeHandler) respondEmployeeError(w http.ResponseWriter, err error) {
	var valErr *models.ValidationError
	switch {
	case errors.As(err, &valErr):
		h.RespondValidationError(w, valErr)
	case errors.Is(err, models.ErrEmployeeNotFound):
		h.RespondError(w, http.StatusNotFound, err.Error())
	default:
		h.Logger.Error("employee operation failed", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
