package shifts

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"shelter-admin/internal/actions"
	"shelter-admin/internal/forms"
	"shelter-admin/internal/ports/store"
)

const (
	Table   = "shift"
	idField = "shift_id"
)

// Schema arma el descriptor de pipeline para turnos.
// Estrategia de id: max+1 contra el store (ver NextID).
func Schema() actions.Schema {
	return actions.Schema{
		Table:        Table,
		IDField:      idField,
		ParseID:      parseID,
		NewID:        NextID,
		DecodeCreate: decode,
		DecodePatch:  decode,
	}
}

// NextID lee el shift_id más alto (una fila, orden descendente) y suma
// uno; tabla vacía arranca en 1.
//
// No es seguro con creadores concurrentes: dos creates simultáneos pueden
// leer el mismo máximo y chocar. Limitación conocida y aceptada con la
// baja concurrencia de escritura de esta herramienta; la alternativa es
// una columna serial del lado del store.
func NextID(ctx context.Context, st store.Client) (any, error) {
	rows, err := st.Select(ctx, Table, store.Query{
		Columns: []string{idField},
		Order:   &store.Order{Column: idField, Descending: true},
		Limit:   1,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return 1, nil
	}

	max, ok := asInt(rows[0][idField])
	if !ok {
		return nil, fmt.Errorf("shift_id is not numeric: %v", rows[0][idField])
	}
	return max + 1, nil
}

func parseID(raw string) (any, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("shift_id must be an integer")
	}
	return id, nil
}

func decode(f forms.Values, _ time.Time) (store.Row, error) {
	return store.Row{
		"shift_name": f.String("shift_name"),
		"start_time": f.String("start_time"),
		"end_time":   f.String("end_time"),
	}, nil
}

// asInt tolera los tipos con los que puede llegar un entero según el
// adapter (JSON => float64, SQL => int64, memoria => int).
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
