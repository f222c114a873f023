package alertstore

import "testing"

func TestAddAndList(t *testing.T) {
	s, err := NewStore(1)
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}

	if got := s.List(); len(got) != 0 {
		t.Errorf("List() len = %d on empty store", len(got))
	}

	a1 := s.Add(map[string]interface{}{"name": "high-latency"})
	a2 := s.Add(map[string]interface{}{"name": "error-rate"})

	if a1.ID == "" || a2.ID == "" {
		t.Error("alert ids not assigned")
	}
	if a1.ID == a2.ID {
		t.Errorf("duplicate alert id %s", a1.ID)
	}
	if a1.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}

	got := s.List()
	if len(got) != 2 {
		t.Fatalf("List() len = %d, want 2", len(got))
	}
	if got[0].Fields["name"] != "high-latency" || got[1].Fields["name"] != "error-rate" {
		t.Errorf("List() order wrong: %v", got)
	}
}

func TestNewStoreRejectsBadNode(t *testing.T) {
	if _, err := NewStore(-1); err == nil {
		t.Error("NewStore(-1) accepted an invalid node id")
	}
}
