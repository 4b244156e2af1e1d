package agent

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/staffdesk/employee-records-backend/internal/metrics"
	"github.com/staffdesk/employee-records-backend/internal/models"
	"github.com/staffdesk/employee-records-backend/internal/storage"
	"github.com/staffdesk/employee-records-backend/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *storage.EmployeeRepository {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	m := metrics.New(prometheus.NewRegistry())
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "employees.json"), logger, m)
	return storage.NewEmployeeRepository(store, validator.NewPhoneValidator(), m)
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected textual content block")
	return text.Text
}

func TestListTool_EmptyStore(t *testing.T) {
	tool := NewListTool(newTestRepo(t))

	result, err := tool.Handle(context.Background(), callRequest("list_employees", nil))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.JSONEq(t, "[]", resultText(t, result))
}

func TestCreateTool_CreatesAndRendersJSON(t *testing.T) {
	repo := newTestRepo(t)
	tool := NewCreateTool(repo, validator.NewEmailValidator())

	result, err := tool.Handle(context.Background(), callRequest("create_employee", map[string]any{
		"name":       "Ann",
		"email":      "a@x.com",
		"phone":      "555-123-4567",
		"department": "IT",
		"salary":     float64(90000),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var emp models.Employee
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &emp))
	assert.Equal(t, 1, emp.ID)
	assert.Equal(t, "5551234567", emp.Phone)
	assert.Equal(t, "IT", emp.Department)
	assert.Equal(t, "Active", emp.Status)

	// And it is actually persisted.
	assert.Len(t, repo.List(), 1)
}

func TestCreateTool_StrictEmailShape(t *testing.T) {
	repo := newTestRepo(t)
	tool := NewCreateTool(repo, validator.NewEmailValidator())

	// The HTTP path would accept this; the agent path does not.
	result, err := tool.Handle(context.Background(), callRequest("create_employee", map[string]any{
		"name":  "Ann",
		"email": "not-an-email",
		"phone": "5551234567",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Empty(t, repo.List())
}

func TestCreateTool_MissingRequiredArgument(t *testing.T) {
	tool := NewCreateTool(newTestRepo(t), validator.NewEmailValidator())

	result, err := tool.Handle(context.Background(), callRequest("create_employee", map[string]any{
		"email": "a@x.com",
		"phone": "5551234567",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestCreateTool_BadPhone(t *testing.T) {
	tool := NewCreateTool(newTestRepo(t), validator.NewEmailValidator())

	result, err := tool.Handle(context.Background(), callRequest("create_employee", map[string]any{
		"name":  "Ann",
		"email": "a@x.com",
		"phone": "123",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "phone")
}

func TestDeleteTool_Success(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Create(&models.CreateEmployeeRequest{Name: "Ann", Email: "a@x.com", Phone: "5551234567"})
	require.NoError(t, err)

	tool := NewDeleteTool(repo)
	result, err := tool.Handle(context.Background(), callRequest("delete_employee", map[string]any{
		"id": float64(1),
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "deleted successfully")
	assert.Empty(t, repo.List())
}

func TestDeleteTool_NotFound(t *testing.T) {
	tool := NewDeleteTool(newTestRepo(t))

	result, err := tool.Handle(context.Background(), callRequest("delete_employee", map[string]any{
		"id": float64(42),
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "not found")
}

func TestNew_RegistersTools(t *testing.T) {
	s := New(newTestRepo(t))
	assert.NotNil(t, s)
}
