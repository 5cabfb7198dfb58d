package store

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
)

// Row es una fila genérica del store: columna -> valor.
type Row = map[string]any

// Filter filtra por igualdad sobre una columna (eq es lo único que necesitamos).
type Filter struct {
	Column string
	Value  any
}

// Order ordena el resultado por una columna.
type Order struct {
	Column     string
	Descending bool
}

// Query acota un Select. Zero value = toda la tabla, todas las columnas.
type Query struct {
	Columns []string
	Filter  *Filter
	Order   *Order
	Limit   int
}

// Client es la interfaz angosta contra el store remoto.
// Toda operación devuelve (data, error); nunca un panic hacia arriba.
// Update/Delete con cero filas afectadas NO son error (mismo contrato
// que el gateway REST del backend).
type Client interface {
	Select(ctx context.Context, table string, q Query) ([]Row, error)
	Insert(ctx context.Context, table string, record Row) ([]Row, error)
	Update(ctx context.Context, table string, patch Row, f Filter) error
	Delete(ctx context.Context, table string, f Filter) error
}

// Error es un error reportado por el backend (constraint, tipo, query
// inválida). Message viaja verbatim hasta el caller; cualquier otro
// error del Client se trata como fallo de transporte.
type Error struct {
	Message    string
	Code       string
	HTTPStatus int
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("store: %s (code=%s)", e.Message, e.Code)
	}
	return "store: " + e.Message
}

// IsRejection distingue un rechazo del store de un fallo de transporte.
func IsRejection(err error) bool {
	var se *Error
	return errors.As(err, &se)
}
