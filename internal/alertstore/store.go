package alertstore

import (
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/cloudwatchr/cloudwatchr/internal/domain"
)

// Store retains operator-submitted alert records in memory. Alerts are
// append-only, there is no evaluation engine behind them.
type Store struct {
	mu     sync.RWMutex
	alerts []*domain.Alert
	node   *snowflake.Node
}

func NewStore(nodeID int64) (*Store, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &Store{node: node}, nil
}

// Add records an alert and assigns it a generated identifier.
func (s *Store) Add(fields map[string]interface{}) *domain.Alert {
	alert := &domain.Alert{
		ID:        s.node.Generate().String(),
		CreatedAt: time.Now().UTC(),
		Fields:    fields,
	}
	s.mu.Lock()
	s.alerts = append(s.alerts, alert)
	s.mu.Unlock()
	return alert
}

// List returns the retained alerts in submission order.
func (s *Store) List() []*domain.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}
