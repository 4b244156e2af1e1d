package models

import (
	"fmt"
	"strings"
)

// DefaultStatus is assigned to newly created employees that don't
// specify a status of their own.
const DefaultStatus = "Active"

// Employee represents a single employee record as persisted in the store.
type Employee struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Role          string  `json:"role"`
	Department    string  `json:"department"`
	Salary        float64 `json:"salary"`
	DateOfJoining string  `json:"date_of_joining"` // Format: YYYY-MM-DD
	Status        string  `json:"status"`
}

// ValidationError identifies the field that failed client-input validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// CreateEmployeeRequest represents the request to create a new employee.
// Name, email, and phone are required; the rest fall back to defaults.
type CreateEmployeeRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Role          string  `json:"role"`
	Department    string  `json:"department"`
	Salary        float64 `json:"salary"`
	DateOfJoining string  `json:"date_of_joining"` // Format: YYYY-MM-DD
	Status        string  `json:"status"`
}

// requiredFields enumerates the mandatory create fields in the order they
// are checked. The first missing field wins.
var requiredFields = []string{"name", "email", "phone"}

// Validate checks required-field presence on the CreateEmployeeRequest.
// Phone format is validated separately by pkg/validator.
func (req *CreateEmployeeRequest) Validate() error {
	values := map[string]string{
		"name":  req.Name,
		"email": req.Email,
		"phone": req.Phone,
	}

	for _, field := range requiredFields {
		if strings.TrimSpace(values[field]) == "" {
			return NewValidationError(field, "is required")
		}
	}

	return nil
}

// ToEmployee builds an Employee from the request, filling optional fields
// with their documented defaults. The id and normalized phone are assigned
// by the repository.
func (req *CreateEmployeeRequest) ToEmployee() Employee {
	status := req.Status
	if status == "" {
		status = DefaultStatus
	}

	return Employee{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Role:          req.Role,
		Department:    req.Department,
		Salary:        req.Salary,
		DateOfJoining: req.DateOfJoining,
		Status:        status,
	}
}

// UpdateEmployeeRequest represents a partial update. Nil fields keep their
// prior value (merge semantics, not replace).
type UpdateEmployeeRequest struct {
	Name          *string  `json:"name,omitempty"`
	Email         *string  `json:"email,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	Role          *string  `json:"role,omitempty"`
	Department    *string  `json:"department,omitempty"`
	Salary        *float64 `json:"salary,omitempty"`
	DateOfJoining *string  `json:"date_of_joining,omitempty"`
	Status        *string  `json:"status,omitempty"`
}

// ApplyTo merges the non-nil fields of the request onto the employee.
// Phone is intentionally excluded: it must be normalized and validated
// before being applied, which the repository handles.
func (req *UpdateEmployeeRequest) ApplyTo(emp *Employee) {
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Role != nil {
		emp.Role = *req.Role
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
	}
	if req.DateOfJoining != nil {
		emp.DateOfJoining = *req.DateOfJoining
	}
	if req.Status != nil {
		emp.Status = *req.Status
	}
}
