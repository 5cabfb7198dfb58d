package animals

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shelter-admin/internal/actions"
	"shelter-admin/internal/middleware"
	"shelter-admin/internal/ports/store"
)

func RegisterRoutes(r chi.Router, p *actions.Pipeline, st store.Client) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", listHandler(p, st))
		ar.Get("/archive", archiveHandler(p, st))

		ar.Post("/create", actions.HandleMutation(p.Create, st))
		ar.Post("/update", actions.HandleMutation(p.Update, st))
		ar.Post("/delete", actions.HandleMutation(p.Delete, st))
	})
}

type listResponse struct {
	Animals []store.Row `json:"animals"`
	Error   string      `json:"error,omitempty"`
}

// listHandler es la lectura autenticada. Política de la familia /animals:
// sin sesión no devolvemos error, redirigimos al flujo de auth.
func listHandler(p *actions.Pipeline, st store.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !middleware.HasSession(r.Context()) {
			http.Redirect(w, r, "/auth", http.StatusSeeOther)
			return
		}

		res := p.Load(r.Context(), st)
		actions.RespondJSON(w, http.StatusOK, listResponse{Animals: res.Records, Error: res.Error})
	}
}

// archiveHandler es la lectura directa sin sesión.
//
// Deprecated: escape hatch de solo lectura heredado del path de debug;
// el contrato primario es la lista autenticada de arriba.
func archiveHandler(p *actions.Pipeline, st store.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := p.Load(r.Context(), st)
		actions.RespondJSON(w, http.StatusOK, listResponse{Animals: res.Records, Error: res.Error})
	}
}
