package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/staffdesk/employee-records-backend/internal/models"
	"github.com/staffdesk/employee-records-backend/internal/storage"
	"github.com/staffdesk/employee-records-backend/pkg/validator"
)

// ListTool exposes the full employee collection as a textual JSON
// rendering.
type ListTool struct {
	repo *storage.EmployeeRepository
}

func NewListTool(repo *storage.EmployeeRepository) *ListTool {
	return &ListTool{repo: repo}
}

func (t *ListTool) Definition() mcp.Tool {
	return mcp.NewTool("list_employees",
		mcp.WithDescription("List all employee records as JSON."),
	)
}

func (t *ListTool) Handle(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records := t.repo.List()

	rendered, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render employees: %v", err)), nil
	}

	return mcp.NewToolResultText(string(rendered)), nil
}

// CreateTool creates an employee record from structured input. Unlike the
// HTTP path, the agent path applies a strict email shape check before
// handing the request to the repository.
type CreateTool struct {
	repo  *storage.EmployeeRepository
	email *validator.EmailValidator
}

func NewCreateTool(repo *storage.EmployeeRepository, email *validator.EmailValidator) *CreateTool {
	return &CreateTool{repo: repo, email: email}
}

func (t *CreateTool) Definition() mcp.Tool {
	return mcp.NewTool("create_employee",
		mcp.WithDescription("Create a new employee record. Name, email, and a 10-digit phone number are required."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Full name of the employee")),
		mcp.WithString("email", mcp.Required(), mcp.Description("Email address, local@domain.tld")),
		mcp.WithString("phone", mcp.Required(), mcp.Description("Phone number, normalized to 10 digits")),
		mcp.WithString("role", mcp.Description("Job role")),
		mcp.WithString("department", mcp.Description("Department name")),
		mcp.WithNumber("salary", mcp.Description("Annual salary")),
		mcp.WithString("date_of_joining", mcp.Description("Joining date, YYYY-MM-DD")),
		mcp.WithString("status", mcp.Description("Employment status, defaults to Active")),
	)
}

func (t *CreateTool) Handle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	email, err := request.RequireString("email")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	phone, err := request.RequireString("phone")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	trimmedEmail, err := t.email.Validate(email)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("email: %v", err)), nil
	}

	req := &models.CreateEmployeeRequest{
		Name:          name,
		Email:         trimmedEmail,
		Phone:         phone,
		Role:          request.GetString("role", ""),
		Department:    request.GetString("department", ""),
		Salary:        request.GetFloat("salary", 0),
		DateOfJoining: request.GetString("date_of_joining", ""),
		Status:        request.GetString("status", ""),
	}

	emp, err := t.repo.Create(req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create employee: %v", err)), nil
	}

	rendered, err := json.MarshalIndent(emp, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render employee: %v", err)), nil
	}

	return mcp.NewToolResultText(string(rendered)), nil
}

// DeleteTool removes an employee record by id and reports the outcome as
// a textual message.
type DeleteTool struct {
	repo *storage.EmployeeRepository
}

func NewDeleteTool(repo *storage.EmployeeRepository) *DeleteTool {
	return &DeleteTool{repo: repo}
}

func (t *DeleteTool) Definition() mcp.Tool {
	return mcp.NewTool("delete_employee",
		mcp.WithDescription("Delete an employee record by its integer id."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Id of the employee to delete")),
	)
}

func (t *DeleteTool) Handle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := t.repo.Delete(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("employee %d not found", id)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete employee %d: %v", id, err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Employee %d deleted successfully", id)), nil
}
