package animals

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shelter-admin/internal/actions"
	"shelter-admin/internal/forms"
	"shelter-admin/internal/ports/store"
)

const (
	Table   = "animal"
	idField = "animal_id"
)

// Schema arma el descriptor de pipeline para animales.
// Estrategia de id: token generado local (uuid) antes del insert; no hace
// falta round trip al store para conocer la primary key.
func Schema() actions.Schema {
	return actions.Schema{
		Table:   Table,
		IDField: idField,
		NewID: func(ctx context.Context, _ store.Client) (any, error) {
			return uuid.NewString(), nil
		},
		DecodeCreate: decodeCreate,
		DecodePatch:  decodePatch,
	}
}

// decodeCreate aplica las reglas de coerción del form:
// opcionales vacíos => null, weight_kg float o null, neutered checkbox,
// arrival_date default hoy, adoption_status default "No".
// Columna canónica: fur_colour (hubo formularios viejos con fur_color).
func decodeCreate(f forms.Values, now time.Time) (store.Row, error) {
	return store.Row{
		"name":            f.String("name"),
		"species":         f.String("species"),
		"breed":           f.StringOrNil("breed"),
		"dob":             f.StringOrNil("dob"),
		"fur_colour":      f.StringOrNil("fur_colour"),
		"weight_kg":       f.Float("weight_kg"),
		"arrival_date":    f.DateOr("arrival_date", now),
		"neutered":        f.Checkbox("neutered"),
		"adoption_status": f.StringOr("adoption_status", "No"),
		"bonded_with":     f.StringOrNil("bonded_with"),
	}, nil
}

// decodePatch: mismas coerciones, pero sin defaults; en update lo que
// vino es lo que va.
func decodePatch(f forms.Values, _ time.Time) (store.Row, error) {
	return store.Row{
		"name":            f.String("name"),
		"species":         f.String("species"),
		"breed":           f.StringOrNil("breed"),
		"dob":             f.StringOrNil("dob"),
		"fur_colour":      f.StringOrNil("fur_colour"),
		"weight_kg":       f.Float("weight_kg"),
		"arrival_date":    f.String("arrival_date"),
		"neutered":        f.Checkbox("neutered"),
		"adoption_status": f.String("adoption_status"),
		"bonded_with":     f.StringOrNil("bonded_with"),
	}, nil
}
