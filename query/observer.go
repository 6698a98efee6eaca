package query

import "time"

// Operation names reported to an Observer.
const (
	OpFindBySupervisorName = "find_by_supervisor_name"
	OpListDepartments      = "list_departments"
	OpListSupervisors      = "list_supervisors"
	OpGetReviews           = "get_reviews"
)

// Observer receives one call per completed lookup.
type Observer interface {
	ObserveQuery(operation string, elapsed time.Duration, results int, found bool)
}

type nopObserver struct{}

func (nopObserver) ObserveQuery(string, time.Duration, int, bool) {}
