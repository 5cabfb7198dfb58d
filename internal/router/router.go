package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"shelter-admin/internal/actions"
	"shelter-admin/internal/adapters/store/memory"
	pg "shelter-admin/internal/adapters/store/postgres"
	"shelter-admin/internal/adapters/store/supabase"
	"shelter-admin/internal/domain/animals"
	"shelter-admin/internal/domain/notes"
	"shelter-admin/internal/domain/shifts"
	"shelter-admin/internal/domain/users"
	"shelter-admin/internal/middleware"
	"shelter-admin/internal/platform/config"
	"shelter-admin/internal/platform/logger"
	"shelter-admin/internal/ports/auth"
	"shelter-admin/internal/ports/store"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev, X-Debug-User-ID)

	// Opcional: store explícito (tests). Si es nil se resuelve por Config.
	Store store.Client

	Config config.Config
	Log    logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	st := opts.Store
	if st == nil {
		st = openStore(opts.Config, log)
	}

	// Un pipeline por entidad; la variación vive en el schema.
	animals.RegisterRoutes(r, actions.New(animals.Schema(), log), st)
	shifts.RegisterRoutes(r, actions.New(shifts.Schema(), log), st)
	users.RegisterRoutes(r, actions.New(users.Schema(), log), st)
	notes.RegisterRoutes(r, actions.New(notes.Schema(), log), st)

	return r
}

// openStore elige el backend según config: el data API de Supabase,
// Postgres directo, o memoria (dev). Si el backend configurado no
// levanta, caemos a memoria avisando por log en vez de tirar el proceso.
func openStore(cfg config.Config, log logger.Logger) store.Client {
	switch cfg.StoreBackend {
	case config.BackendSupabase:
		c, err := supabase.New(supabase.Config{
			BaseURL: cfg.SupabaseURL,
			AnonKey: cfg.SupabaseAnonKey,
		})
		if err == nil {
			return c
		}
		log.Error("supabase store init failed, using memory", map[string]any{"err": err.Error()})

	case config.BackendPostgres:
		db, err := pg.Open(cfg.DBDSN)
		if err == nil {
			return pg.NewStore(db)
		}
		log.Error("postgres store init failed, using memory", map[string]any{"err": err.Error()})
	}

	return memory.New()
}
