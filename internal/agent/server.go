// Package agent wires the tool-calling surface for AI agents.
//
// This is the composition root for the MCP server: it creates the tools
// over a shared repository and registers them. No business logic lives
// here, only wiring.
package agent

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/staffdesk/employee-records-backend/internal/storage"
	"github.com/staffdesk/employee-records-backend/pkg/validator"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server with the list, create, and delete tools
// registered over the given repository. All tool responses are textual
// content blocks.
func New(repo *storage.EmployeeRepository) *server.MCPServer {
	s := server.NewMCPServer(
		"employee-records",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	listTool := NewListTool(repo)
	s.AddTool(listTool.Definition(), listTool.Handle)

	createTool := NewCreateTool(repo, validator.NewEmailValidator())
	s.AddTool(createTool.Definition(), createTool.Handle)

	deleteTool := NewDeleteTool(repo)
	s.AddTool(deleteTool.Definition(), deleteTool.Handle)

	return s
}
