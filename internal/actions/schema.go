package actions

import (
	"context"
	"time"

	"shelter-admin/internal/forms"
	"shelter-admin/internal/ports/store"
)

// Schema describe cómo una entidad se decodifica y persiste. Las cuatro
// operaciones del pipeline son genéricas sobre este descriptor; la
// variación por entidad vive acá y no en lógica copiada.
type Schema struct {
	Table   string
	IDField string

	// ParseID convierte el id crudo del form al tipo persistido.
	// nil => el id viaja como string tal cual.
	ParseID func(raw string) (any, error)

	// NewID asigna el identificador en un create. Puede generar local
	// (token uuid) o ir al store (estrategia max+1). nil => la entidad
	// no se crea por esta vía.
	NewID func(ctx context.Context, st store.Client) (any, error)

	// DecodeCreate arma el record a insertar, sin el id (lo pone NewID).
	// Un error acá es clase validación (400).
	DecodeCreate func(f forms.Values, now time.Time) (store.Row, error)

	// DecodePatch arma el patch de un update. El id nunca va en el patch.
	DecodePatch func(f forms.Values, now time.Time) (store.Row, error)

	// LoadQuery acota el Load (columnas, orden). Zero value = select *.
	LoadQuery store.Query
}
