package shifts

import (
	"context"
	"testing"

	"shelter-admin/internal/adapters/store/memory"
	"shelter-admin/internal/ports/store"
)

func TestNextID_EmptyTableStartsAtOne(t *testing.T) {
	st := memory.New()

	id, err := NextID(context.Background(), st)
	if err != nil {
		t.Fatalf("NextID error: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected 1 on empty table, got %v", id)
	}
}

func TestNextID_MaxPlusOne(t *testing.T) {
	st := memory.NewWithSeed(map[string][]store.Row{
		Table: {
			{"shift_id": 3, "shift_name": "Morning"},
			{"shift_id": 7, "shift_name": "Night"},
			{"shift_id": 5, "shift_name": "Evening"},
		},
	})

	id, err := NextID(context.Background(), st)
	if err != nil {
		t.Fatalf("NextID error: %v", err)
	}
	if id != 8 {
		t.Fatalf("expected max+1 = 8, got %v", id)
	}
}

func TestNextID_StoreErrorPropagates(t *testing.T) {
	st := &failingStore{err: &store.Error{Message: "boom"}}

	if _, err := NextID(context.Background(), st); err == nil {
		t.Fatalf("expected error from store")
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	if err != nil {
		t.Fatalf("parseID error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected 42, got %v", id)
	}

	if _, err := parseID("abc"); err == nil {
		t.Fatalf("expected error for non-integer id")
	}
}

// failingStore falla todo; solo para propagación de errores.
type failingStore struct {
	err error
}

func (s *failingStore) Select(context.Context, string, store.Query) ([]store.Row, error) {
	return nil, s.err
}

func (s *failingStore) Insert(context.Context, string, store.Row) ([]store.Row, error) {
	return nil, s.err
}

func (s *failingStore) Update(context.Context, string, store.Row, store.Filter) error {
	return s.err
}

func (s *failingStore) Delete(context.Context, string, store.Filter) error {
	return s.err
}
