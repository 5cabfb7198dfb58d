package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"shelter-admin/internal/ports/store"
)

// Store es el doble en memoria del store remoto (dev y tests). Aplica la
// misma semántica que el backend real: filtros por igualdad, orden,
// límite, y cero filas afectadas sin error en update/delete.
type Store struct {
	mu     sync.RWMutex
	tables map[string][]store.Row
}

func New() *Store {
	return &Store{tables: make(map[string][]store.Row)}
}

// NewWithSeed precarga tablas (útil en tests).
func NewWithSeed(tables map[string][]store.Row) *Store {
	s := New()
	for table, rows := range tables {
		for _, r := range rows {
			s.tables[table] = append(s.tables[table], cloneRow(r))
		}
	}
	return s
}

func (s *Store) Select(ctx context.Context, table string, q store.Query) ([]store.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Row, 0)
	for _, r := range s.tables[table] {
		if q.Filter != nil && !looseEqual(r[q.Filter.Column], q.Filter.Value) {
			continue
		}
		out = append(out, cloneRow(r))
	}

	if q.Order != nil {
		col, desc := q.Order.Column, q.Order.Descending
		sort.SliceStable(out, func(i, j int) bool {
			less := lessValue(out[i][col], out[j][col])
			if desc {
				return !less && !looseEqual(out[i][col], out[j][col])
			}
			return less
		})
	}

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}

	if len(q.Columns) > 0 {
		for i, r := range out {
			proj := make(store.Row, len(q.Columns))
			for _, c := range q.Columns {
				if v, ok := r[c]; ok {
					proj[c] = v
				}
			}
			out[i] = proj
		}
	}

	return out, nil
}

func (s *Store) Insert(ctx context.Context, table string, record store.Row) ([]store.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tables[table] = append(s.tables[table], cloneRow(record))
	return []store.Row{cloneRow(record)}, nil
}

func (s *Store) Update(ctx context.Context, table string, patch store.Row, f store.Filter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.tables[table] {
		if !looseEqual(r[f.Column], f.Value) {
			continue
		}
		for k, v := range patch {
			r[k] = v
		}
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, table string, f store.Filter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.tables[table]
	kept := rows[:0]
	for _, r := range rows {
		if looseEqual(r[f.Column], f.Value) {
			continue
		}
		kept = append(kept, r)
	}
	s.tables[table] = kept
	return nil
}

func cloneRow(r store.Row) store.Row {
	c := make(store.Row, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// looseEqual compara sin distinguir int/int64/float64: los ids numéricos
// llegan con tipos distintos según de dónde vengan (JSON, SQL, literal).
func looseEqual(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

func lessValue(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa < fb
		}
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
