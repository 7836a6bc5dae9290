package payroll

import (
	"sync"

	"go-erp/internal/shared/period"
)

// Selection remembers the period each operator last asked to calculate.
// A calculation whose period is no longer the latest selection must not be kept.
type Selection struct {
	mu      sync.Mutex
	current map[string]period.Period
}

type Ticket struct {
	key    string
	Period period.Period
}

func NewSelection() *Selection {
	return &Selection{current: make(map[string]period.Period)}
}

func SelectionKey(companyID, actorID string, category Category) string {
	return companyID + "|" + actorID + "|" + category.Slug()
}

// Begin records p as the latest selection for key.
func (s *Selection) Begin(key string, p period.Period) Ticket {
	s.mu.Lock()
	s.current[key] = p
	s.mu.Unlock()
	return Ticket{key: key, Period: p}
}

func (s *Selection) IsCurrent(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.current[t.key]
	return ok && p == t.Period
}
