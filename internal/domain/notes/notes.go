package notes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shelter-admin/internal/actions"
	"shelter-admin/internal/middleware"
	"shelter-admin/internal/ports/store"
)

const Table = "notes"

// Notes es solo lectura en este layer: un select acotado a (id, note)
// ordenado por id, siempre con sesión.
func Schema() actions.Schema {
	return actions.Schema{
		Table: Table,
		LoadQuery: store.Query{
			Columns: []string{"id", "note"},
			Order:   &store.Order{Column: "id"},
		},
	}
}

func RegisterRoutes(r chi.Router, p *actions.Pipeline, st store.Client) {
	r.Get("/notes", listHandler(p, st))
}

type listResponse struct {
	Notes []store.Row `json:"notes"`
	Error string      `json:"error,omitempty"`
}

func listHandler(p *actions.Pipeline, st store.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !middleware.HasSession(r.Context()) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		res := p.Load(r.Context(), st)
		actions.RespondJSON(w, http.StatusOK, listResponse{Notes: res.Records, Error: res.Error})
	}
}
