package actions

import (
	"context"
	"encoding/json"
	"net/http"

	"shelter-admin/internal/forms"
	"shelter-admin/internal/middleware"
	"shelter-admin/internal/ports/store"
)

// Mutation es una operación del pipeline invocable desde la capa web.
type Mutation func(ctx context.Context, sess Session, f forms.Values) Result

// HandleMutation adapta una mutación al contrato del hosting layer:
// form POST plano => Result en JSON con el status del Result.
// La Session se arma acá por request, con los claims del middleware y el
// store del router.
func HandleMutation(op Mutation, st store.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			RespondJSON(w, http.StatusBadRequest, Result{Status: http.StatusBadRequest, Error: "invalid form"})
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		sess := Session{UserID: claims.UserID, Store: st}

		res := op(r.Context(), sess, forms.FromPostForm(r.PostForm))
		RespondJSON(w, res.Status, res)
	}
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
