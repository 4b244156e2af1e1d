package storage

import (
	"errors"
	"sync"

	"github.com/staffdesk/employee-records-backend/internal/metrics"
	"github.com/staffdesk/employee-records-backend/internal/models"
	"github.com/staffdesk/employee-records-backend/pkg/validator"
)

// ErrNotFound indicates the referenced employee id does not exist.
var ErrNotFound = errors.New("employee not found")

// EmployeeRepository implements the CRUD operations over the FileStore.
// Every operation performs a full load-mutate-save cycle; the mutex
// serializes those cycles so concurrent writers cannot lose updates.
type EmployeeRepository struct {
	store   *FileStore
	phone   *validator.PhoneValidator
	metrics *metrics.Metrics
	mu      sync.Mutex
}

// NewEmployeeRepository creates a repository over the given store.
func NewEmployeeRepository(store *FileStore, phone *validator.PhoneValidator, m *metrics.Metrics) *EmployeeRepository {
	return &EmployeeRepository{
		store:   store,
		phone:   phone,
		metrics: m,
	}
}

// Create validates the request, assigns the next id, fills defaults, and
// appends the record to the collection. Validation failures never touch
// storage.
func (r *EmployeeRepository) Create(req *models.CreateEmployeeRequest) (*models.Employee, error) {
	if err := req.Validate(); err != nil {
		r.metrics.Operations.WithLabelValues("create", metrics.StatusClientError).Inc()
		return nil, err
	}

	sanitized, err := r.phone.Validate(req.Phone)
	if err != nil {
		r.metrics.Operations.WithLabelValues("create", metrics.StatusClientError).Inc()
		return nil, models.NewValidationError("phone", err.Error())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.store.Load()

	emp := req.ToEmployee()
	emp.ID = r.store.NextID(records)
	emp.Phone = sanitized

	records = append(records, emp)
	if err := r.store.Save(records); err != nil {
		r.metrics.Operations.WithLabelValues("create", metrics.StatusError).Inc()
		return nil, err
	}

	r.metrics.Operations.WithLabelValues("create", metrics.StatusSuccess).Inc()
	return &emp, nil
}

// List returns the full collection. An empty store yields an empty slice,
// never an error.
func (r *EmployeeRepository) List() []models.Employee {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.store.Load()
	r.metrics.Operations.WithLabelValues("list", metrics.StatusSuccess).Inc()
	return records
}

// GetByID returns the employee with the given id, or ErrNotFound.
func (r *EmployeeRepository) GetByID(id int) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.store.Load()
	for i := range records {
		if records[i].ID == id {
			r.metrics.Operations.WithLabelValues("get", metrics.StatusSuccess).Inc()
			emp := records[i]
			return &emp, nil
		}
	}

	r.metrics.Operations.WithLabelValues("get", metrics.StatusNotFound).Inc()
	return nil, ErrNotFound
}

// Update merges the non-nil fields of the request onto the stored record.
// A phone present in the request is re-validated and normalized first; a
// bad phone blocks the entire update.
func (r *EmployeeRepository) Update(id int, req *models.UpdateEmployeeRequest) (*models.Employee, error) {
	var sanitizedPhone string
	if req.Phone != nil {
		sanitized, err := r.phone.Validate(*req.Phone)
		if err != nil {
			r.metrics.Operations.WithLabelValues("update", metrics.StatusClientError).Inc()
			return nil, models.NewValidationError("phone", err.Error())
		}
		sanitizedPhone = sanitized
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.store.Load()
	for i := range records {
		if records[i].ID != id {
			continue
		}

		req.ApplyTo(&records[i])
		if req.Phone != nil {
			records[i].Phone = sanitizedPhone
		}

		if err := r.store.Save(records); err != nil {
			r.metrics.Operations.WithLabelValues("update", metrics.StatusError).Inc()
			return nil, err
		}

		r.metrics.Operations.WithLabelValues("update", metrics.StatusSuccess).Inc()
		emp := records[i]
		return &emp, nil
	}

	r.metrics.Operations.WithLabelValues("update", metrics.StatusNotFound).Inc()
	return nil, ErrNotFound
}

// Delete removes the employee with the given id and persists the
// remaining collection. Returns ErrNotFound if no record matched.
func (r *EmployeeRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.store.Load()
	for i := range records {
		if records[i].ID != id {
			continue
		}

		remaining := append(records[:i:i], records[i+1:]...)
		if err := r.store.Save(remaining); err != nil {
			r.metrics.Operations.WithLabelValues("delete", metrics.StatusError).Inc()
			return err
		}

		r.metrics.Operations.WithLabelValues("delete", metrics.StatusSuccess).Inc()
		return nil
	}

	r.metrics.Operations.WithLabelValues("delete", metrics.StatusNotFound).Inc()
	return ErrNotFound
}
