package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/staffdesk/employee-records-backend/internal/metrics"
	"github.com/staffdesk/employee-records-backend/internal/models"
)

// FileStore persists the full employee collection as one human-readable
// JSON document. Every mutating operation rewrites the document in full;
// there are no partial writes.
type FileStore struct {
	path    string
	logger  *logrus.Logger
	metrics *metrics.Metrics
}

// NewFileStore creates a FileStore backed by the document at path.
func NewFileStore(path string, logger *logrus.Logger, m *metrics.Metrics) *FileStore {
	return &FileStore{
		path:    path,
		logger:  logger,
		metrics: m,
	}
}

// Path returns the location of the backing document.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the full collection from the backing document. A missing,
// unreadable, blank, or corrupt document yields an empty collection:
// read failures are logged and counted, never surfaced to the caller.
func (s *FileStore) Load() []models.Employee {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.WithError(err).WithField("path", s.path).Warn("Failed to read employee store, using empty collection")
			s.metrics.LoadFailures.Inc()
		}
		return []models.Employee{}
	}

	if strings.TrimSpace(string(data)) == "" {
		return []models.Employee{}
	}

	var records []models.Employee
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.WithError(err).WithField("path", s.path).Warn("Failed to parse employee store, using empty collection")
		s.metrics.LoadFailures.Inc()
		return []models.Employee{}
	}

	if records == nil {
		records = []models.Employee{}
	}

	return records
}

// Save serializes the full collection and overwrites the backing document.
func (s *FileStore) Save(records []models.Employee) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		s.metrics.SaveFailures.Inc()
		return fmt.Errorf("failed to serialize employee records: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.logger.WithError(err).WithField("path", s.path).Error("Failed to write employee store")
		s.metrics.SaveFailures.Inc()
		return fmt.Errorf("failed to write employee store: %w", err)
	}

	s.metrics.RecordsStored.Set(float64(len(records)))
	return nil
}

// NextID computes max(id)+1 over the collection, or 1 if it is empty.
// If the highest-id record was deleted its id can be reassigned to the
// next created record; this matches the documented store behavior.
func (s *FileStore) NextID(records []models.Employee) int {
	maxID := 0
	for _, record := range records {
		if record.ID > maxID {
			maxID = record.ID
		}
	}
	return maxID + 1
}
