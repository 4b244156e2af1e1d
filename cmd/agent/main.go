package main

import (
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/staffdesk/employee-records-backend/internal/agent"
	"github.com/staffdesk/employee-records-backend/internal/config"
	"github.com/staffdesk/employee-records-backend/internal/metrics"
	"github.com/staffdesk/employee-records-backend/internal/storage"
	"github.com/staffdesk/employee-records-backend/pkg/validator"
)

func main() {
	// Stdout carries the MCP protocol; everything else goes to stderr.
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	m := metrics.New(prometheus.NewRegistry())
	store := storage.NewFileStore(cfg.Store.DataFile, logger, m)
	repo := storage.NewEmployeeRepository(store, validator.NewPhoneValidator(), m)

	s := agent.New(repo)

	logger.Infof("Employee records agent server starting, store at %s", cfg.Store.DataFile)
	if err := server.ServeStdio(s); err != nil {
		logger.Fatalf("Agent server stopped: %v", err)
	}
}
