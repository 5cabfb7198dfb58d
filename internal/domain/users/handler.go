package users

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"shelter-admin/internal/actions"
	"shelter-admin/internal/ports/store"
)

func RegisterRoutes(r chi.Router, p *actions.Pipeline, st store.Client) {
	r.Route("/users", func(ur chi.Router) {
		ur.Get("/", listHandler(p, st))
		ur.Get("/{userID}", getHandler(st))

		ur.Post("/update", actions.HandleMutation(p.Update, st))
		ur.Post("/delete", actions.HandleMutation(p.Delete, st))
	})
}

type listResponse struct {
	Users []store.Row `json:"users"`
	Error string      `json:"error,omitempty"`
}

type userResponse struct {
	User store.Row `json:"user"`
}

func listHandler(p *actions.Pipeline, st store.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := p.Load(r.Context(), st)
		actions.RespondJSON(w, http.StatusOK, listResponse{Users: res.Records, Error: res.Error})
	}
}

// getHandler hace el fetch de detalle por id. Sin match es 404, que no
// es lo mismo que un error del store (eso es 500).
func getHandler(st store.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(chi.URLParam(r, "userID"))
		if userID == "" {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		rows, err := st.Select(r.Context(), Table, store.Query{
			Filter: &store.Filter{Column: idField, Value: userID},
			Limit:  1,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if len(rows) == 0 {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		actions.RespondJSON(w, http.StatusOK, userResponse{User: rows[0]})
	}
}
