package metricstore

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cloudwatchr/cloudwatchr/internal/domain"
)

// Store owns every ingested metric for the lifetime of the process.
// Identifiers are assigned from a monotonic counter starting at 1 and are
// never reused, not even after Clear. The counter is advanced under the
// same lock that appends to the insertion-order slice, so identifier
// order and insertion order always agree.
type Store struct {
	mu     sync.RWMutex
	byID   map[int64]*domain.Metric
	order  []int64
	lastID int64

	totalIngested atomic.Int64
}

// Stats is a snapshot of the ingestion counters. TotalIngested only ever
// grows; CurrentlyStored drops to zero after Clear.
type Stats struct {
	TotalIngested   int64 `json:"totalIngested"`
	CurrentlyStored int64 `json:"currentlyStored"`
}

func NewStore() *Store {
	return &Store{byID: make(map[int64]*domain.Metric)}
}

// Submit validates a single candidate event, assigns it the next
// identifier and stores it. On validation failure nothing is stored and
// every violated field is reported.
func (s *Store) Submit(req *domain.MetricRequest) (*domain.Metric, domain.FieldErrors) {
	if errs := req.Validate(); errs != nil {
		return nil, errs
	}
	m := req.Metric()
	s.mu.Lock()
	s.insertLocked(m)
	s.totalIngested.Add(1)
	s.mu.Unlock()
	return m, nil
}

// SubmitBatch applies all-or-nothing semantics: every element is
// validated independently and either the whole batch is stored in input
// order or nothing is. Combined errors are keyed by element index, e.g.
// "[2].latencyMs".
func (s *Store) SubmitBatch(reqs []*domain.MetricRequest) ([]*domain.Metric, domain.FieldErrors) {
	var combined domain.FieldErrors
	for i, req := range reqs {
		// a JSON null element decodes to a nil request, reject it like
		// any other invalid element instead of dereferencing it
		if req == nil {
			if combined == nil {
				combined = domain.FieldErrors{}
			}
			combined.Add(fmt.Sprintf("[%d].event", i), "event must not be null")
			continue
		}
		if errs := req.Validate(); errs != nil {
			if combined == nil {
				combined = domain.FieldErrors{}
			}
			combined.Merge(fmt.Sprintf("[%d].", i), errs)
		}
	}
	if combined != nil {
		return nil, combined
	}

	stored := make([]*domain.Metric, 0, len(reqs))
	s.mu.Lock()
	for _, req := range reqs {
		m := req.Metric()
		s.insertLocked(m)
		stored = append(stored, m)
	}
	s.totalIngested.Add(int64(len(reqs)))
	s.mu.Unlock()
	return stored, nil
}

// insertLocked assigns the next identifier and makes the metric visible.
// Caller holds s.mu. The metric is fully constructed before it enters the
// map, so readers never observe a partial entry.
func (s *Store) insertLocked(m *domain.Metric) {
	s.lastID++
	m.ID = s.lastID
	s.byID[m.ID] = m
	s.order = append(s.order, m.ID)
}

// ListAll returns every stored metric in insertion order.
func (s *Store) ListAll() []*domain.Metric {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Metric, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// ListByService returns the metrics whose serviceName matches exactly,
// case-sensitive, preserving insertion order.
func (s *Store) ListByService(serviceName string) []*domain.Metric {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Metric, 0)
	for _, id := range s.order {
		if m := s.byID[id]; m.ServiceName == serviceName {
			out = append(out, m)
		}
	}
	return out
}

// Stats reads both counters under the lock so a concurrent submit can
// never be seen with the stored count ahead of the ingested count.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		TotalIngested:   s.totalIngested.Load(),
		CurrentlyStored: int64(len(s.order)),
	}
}

// Clear empties the store. The identifier counter and the total-ingested
// counter keep their values.
func (s *Store) Clear() {
	s.mu.Lock()
	s.byID = make(map[int64]*domain.Metric)
	s.order = s.order[:0]
	s.mu.Unlock()
}
