package users

import (
	"errors"
	"time"

	"shelter-admin/internal/actions"
	"shelter-admin/internal/forms"
	"shelter-admin/internal/ports/store"
)

const (
	Table   = "user_profiles"
	idField = "id"
)

// Schema arma el descriptor de pipeline para perfiles de usuario.
// No hay create por esta vía: los ids existen de antes (los emite el
// flujo de signup, fuera de este layer). La lista sale ordenada por
// fecha de alta, más reciente primero.
func Schema() actions.Schema {
	return actions.Schema{
		Table:       Table,
		IDField:     idField,
		DecodePatch: decodePatch,
		LoadQuery: store.Query{
			Order: &store.Order{Column: "created_at", Descending: true},
		},
	}
}

func decodePatch(f forms.Values, now time.Time) (store.Row, error) {
	// email y role se pre-validan acá (el id lo exige el pipeline);
	// el resto de los constraints los reporta el store.
	if f.Get("email") == "" || f.Get("role") == "" {
		return nil, errors.New("id, email, and role are required")
	}

	return store.Row{
		"email":      f.String("email"),
		"first_name": f.StringOrNil("first_name"),
		"last_name":  f.StringOrNil("last_name"),
		"phone":      f.StringOrNil("phone"),
		"role":       f.String("role"),
		"updated_at": now.UTC().Format(time.RFC3339),
	}, nil
}
