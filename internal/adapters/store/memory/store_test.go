package memory

import (
	"context"
	"testing"

	"shelter-admin/internal/ports/store"
)

func seeded() *Store {
	return NewWithSeed(map[string][]store.Row{
		"shift": {
			{"shift_id": 1, "shift_name": "Morning"},
			{"shift_id": 3, "shift_name": "Night"},
			{"shift_id": 2, "shift_name": "Evening"},
		},
	})
}

func TestSelect_FilterOrderLimit(t *testing.T) {
	st := seeded()
	ctx := context.Background()

	rows, err := st.Select(ctx, "shift", store.Query{
		Order: &store.Order{Column: "shift_id", Descending: true},
		Limit: 1,
	})
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if len(rows) != 1 || rows[0]["shift_id"] != 3 {
		t.Fatalf("expected single max row, got %#v", rows)
	}

	rows, err = st.Select(ctx, "shift", store.Query{
		Filter: &store.Filter{Column: "shift_id", Value: 2},
	})
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if len(rows) != 1 || rows[0]["shift_name"] != "Evening" {
		t.Fatalf("expected Evening, got %#v", rows)
	}
}

func TestSelect_ColumnProjection(t *testing.T) {
	st := seeded()

	rows, err := st.Select(context.Background(), "shift", store.Query{
		Columns: []string{"shift_id"},
		Order:   &store.Order{Column: "shift_id"},
	})
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if _, ok := rows[0]["shift_name"]; ok {
		t.Fatalf("expected projection to drop shift_name: %#v", rows[0])
	}
	if rows[0]["shift_id"] != 1 || rows[2]["shift_id"] != 3 {
		t.Fatalf("expected ascending order, got %#v", rows)
	}
}

func TestSelect_EmptyTable(t *testing.T) {
	st := New()

	rows, err := st.Select(context.Background(), "animal", store.Query{})
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty result, got %#v", rows)
	}
}

func TestInsert_ReturnsCopy(t *testing.T) {
	st := New()

	inserted, err := st.Insert(context.Background(), "animal", store.Row{"animal_id": "a-1", "name": "Rex"})
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if len(inserted) != 1 || inserted[0]["name"] != "Rex" {
		t.Fatalf("expected inserted row back, got %#v", inserted)
	}

	// Mutar la copia no toca lo guardado.
	inserted[0]["name"] = "Otro"
	rows, _ := st.Select(context.Background(), "animal", store.Query{})
	if rows[0]["name"] != "Rex" {
		t.Fatalf("expected stored row untouched, got %#v", rows[0])
	}
}

func TestUpdate_PatchAppliesOnlyToMatches(t *testing.T) {
	st := seeded()

	err := st.Update(context.Background(), "shift", store.Row{"shift_name": "Late"}, store.Filter{Column: "shift_id", Value: 3})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	rows, _ := st.Select(context.Background(), "shift", store.Query{Order: &store.Order{Column: "shift_id"}})
	if rows[2]["shift_name"] != "Late" {
		t.Fatalf("expected patch applied, got %#v", rows[2])
	}
	if rows[0]["shift_name"] != "Morning" {
		t.Fatalf("expected other rows untouched, got %#v", rows[0])
	}
}

func TestUpdateDelete_ZeroMatchesIsNotAnError(t *testing.T) {
	st := seeded()
	ctx := context.Background()

	if err := st.Update(ctx, "shift", store.Row{"shift_name": "x"}, store.Filter{Column: "shift_id", Value: 99}); err != nil {
		t.Fatalf("expected zero-match update without error, got %v", err)
	}
	if err := st.Delete(ctx, "shift", store.Filter{Column: "shift_id", Value: 99}); err != nil {
		t.Fatalf("expected zero-match delete without error, got %v", err)
	}

	rows, _ := st.Select(ctx, "shift", store.Query{})
	if len(rows) != 3 {
		t.Fatalf("expected table untouched, got %d rows", len(rows))
	}
}

func TestDelete_RemovesMatches(t *testing.T) {
	st := seeded()
	ctx := context.Background()

	if err := st.Delete(ctx, "shift", store.Filter{Column: "shift_id", Value: 2}); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	rows, _ := st.Select(ctx, "shift", store.Query{})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows after delete, got %#v", rows)
	}
}

func TestLooseEqual_NumericTypes(t *testing.T) {
	// El mismo id llega como int, int64 o float64 según el origen.
	if !looseEqual(int64(7), 7) || !looseEqual(float64(7), 7) {
		t.Fatalf("expected numeric types to compare equal")
	}
	if looseEqual(7, 8) {
		t.Fatalf("expected 7 != 8")
	}
}
