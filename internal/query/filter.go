package query

import (
	"strings"

	"github.com/staffdesk/employee-records-backend/internal/models"
)

// MatchAll is the sentinel value that bypasses a categorical filter.
// An empty string behaves the same way, so callers that omit a field
// get match-all semantics without knowing the sentinel.
const MatchAll = "All"

// Criteria describes one filter pass over an in-memory employee list.
// Text matches name or email case-insensitively; the categorical fields
// match exactly. All populated filters AND together.
type Criteria struct {
	Text       string
	Department string
	Role       string
	Status     string
}

// Result carries the outcome of a filter pass. AutoEdit is set only when
// an explicitly user-triggered pass yields exactly one match; callers are
// expected to open that record for editing.
type Result struct {
	Matches  []models.Employee
	AutoEdit *models.Employee
}

// Matches reports whether the employee satisfies every filter in the
// criteria.
func (c Criteria) Matches(emp models.Employee) bool {
	if text := strings.ToLower(strings.TrimSpace(c.Text)); text != "" {
		name := strings.ToLower(emp.Name)
		email := strings.ToLower(emp.Email)
		if !strings.Contains(name, text) && !strings.Contains(email, text) {
			return false
		}
	}

	if !categoricalMatch(c.Department, emp.Department) {
		return false
	}
	if !categoricalMatch(c.Role, emp.Role) {
		return false
	}
	if !categoricalMatch(c.Status, emp.Status) {
		return false
	}

	return true
}

// Filter returns the employees satisfying the criteria, preserving the
// input order.
func Filter(records []models.Employee, c Criteria) []models.Employee {
	matches := make([]models.Employee, 0, len(records))
	for _, emp := range records {
		if c.Matches(emp) {
			matches = append(matches, emp)
		}
	}
	return matches
}

// Apply runs a filter pass. When the pass is explicitly user-triggered
// (as opposed to a live-typing pass) and exactly one record matches, that
// record is returned as the AutoEdit candidate.
func Apply(records []models.Employee, c Criteria, explicit bool) Result {
	matches := Filter(records, c)

	result := Result{Matches: matches}
	if explicit && len(matches) == 1 {
		result.AutoEdit = &matches[0]
	}
	return result
}

func categoricalMatch(filter, value string) bool {
	if filter == "" || filter == MatchAll {
		return true
	}
	return filter == value
}
