package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/employee-records-backend/internal/models"
	"github.com/staffdesk/employee-records-backend/internal/query"
	"github.com/staffdesk/employee-records-backend/internal/storage"
)

type EmployeeHandler struct {
	repo *storage.EmployeeRepository
}

func NewEmployeeHandler(repo *storage.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{repo: repo}
}

// CreateEmployee creates a new employee record
// POST /api/employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req models.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emp, err := h.repo.Create(&req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, emp)
}

// ListEmployees retrieves the full collection, optionally narrowed by the
// q/department/role/status query params. Omitted params match everything.
// GET /api/employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	records := h.repo.List()

	criteria := query.Criteria{
		Text:       c.Query("q"),
		Department: c.Query("department"),
		Role:       c.Query("role"),
		Status:     c.Query("status"),
	}

	c.JSON(http.StatusOK, query.Filter(records, criteria))
}

// GetEmployee retrieves a specific employee by ID
// GET /api/employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	emp, err := h.repo.GetByID(id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, emp)
}

// UpdateEmployee merges a partial payload onto an existing employee
// PUT /api/employees/:id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req models.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emp, err := h.repo.Update(id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, emp)
}

// DeleteEmployee removes an employee record
// DELETE /api/employees/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID extracts the integer id path param, answering 404 for anything
// that cannot name an existing record.
func (h *EmployeeHandler) parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return 0, false
	}
	return id, true
}

// writeError maps repository errors to HTTP responses: client-input
// errors to 400 with the failing field, missing ids to 404, anything
// else to 500.
func (h *EmployeeHandler) writeError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Error(),
			"field": validationErr.Field,
		})
		return
	}

	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist employee records"})
}
