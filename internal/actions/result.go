package actions

import (
	"errors"
	"net/http"

	"shelter-admin/internal/ports/store"
)

// Result es el contrato uniforme de las mutaciones hacia la capa web.
// Status es el hint HTTP (200/400/401/500); no viaja en el JSON.
type Result struct {
	Success bool        `json:"success"`
	Status  int         `json:"-"`
	Error   string      `json:"error,omitempty"`
	Records []store.Row `json:"records,omitempty"` // filas insertadas (solo create)
}

// LoadResult es el contrato de las lecturas de lista: nunca aborta al
// caller, con error del store van records vacíos más el mensaje.
type LoadResult struct {
	Records []store.Row `json:"records"`
	Error   string      `json:"error,omitempty"`
}

func ok(records []store.Row) Result {
	return Result{Success: true, Status: http.StatusOK, Records: records}
}

func failValidation(msg string) Result {
	return Result{Status: http.StatusBadRequest, Error: msg}
}

func failUnauthorized() Result {
	return Result{Status: http.StatusUnauthorized, Error: "unauthorized"}
}

func failUnexpected() Result {
	// Nunca filtramos internals del error crudo al caller.
	return Result{Status: http.StatusInternalServerError, Error: "unexpected error occurred"}
}

// normalize clasifica un error de la capa de store:
// - rechazo del backend (constraint, tipo) => 400 con el mensaje verbatim
// - cualquier otra cosa (red, serialización) => 500 genérico
func normalize(err error) Result {
	var se *store.Error
	if errors.As(err, &se) {
		return failValidation(se.Message)
	}
	return failUnexpected()
}

// storeMessage es la versión para lecturas: el mensaje del backend si lo
// hay, o uno genérico.
func storeMessage(err error) string {
	var se *store.Error
	if errors.As(err, &se) {
		return se.Message
	}
	return "unexpected error occurred"
}
