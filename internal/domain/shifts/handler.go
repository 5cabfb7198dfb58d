package shifts

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shelter-admin/internal/actions"
	"shelter-admin/internal/ports/store"
)

func RegisterRoutes(r chi.Router, p *actions.Pipeline, st store.Client) {
	r.Route("/shifts", func(sr chi.Router) {
		// Lectura legada sin gate (los turnos son el tablero público
		// interno); las mutaciones sí van siempre con sesión.
		sr.Get("/", listHandler(p, st))

		sr.Post("/create", actions.HandleMutation(p.Create, st))
		sr.Post("/update", actions.HandleMutation(p.Update, st))
		sr.Post("/delete", actions.HandleMutation(p.Delete, st))
	})
}

type listResponse struct {
	Shifts []store.Row `json:"shifts"`
	Error  string      `json:"error,omitempty"`
}

func listHandler(p *actions.Pipeline, st store.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := p.Load(r.Context(), st)
		actions.RespondJSON(w, http.StatusOK, listResponse{Shifts: res.Records, Error: res.Error})
	}
}
