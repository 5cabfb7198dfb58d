package main

import (
	"log"
	"net/http"
	"time"

	"shelter-admin/internal/adapters/auth/supaauth"
	"shelter-admin/internal/platform/config"
	"shelter-admin/internal/platform/logger"
	"shelter-admin/internal/ports/auth"
	"shelter-admin/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	lg := logger.NewFromEnv()

	// Con credenciales de Supabase armamos el verifier real; sin ellas
	// queda el modo dev (X-Debug-User-ID).
	var verifier auth.AuthVerifier
	if cfg.SupabaseURL != "" && cfg.SupabaseAnonKey != "" {
		v, err := supaauth.New(supaauth.Config{
			BaseURL: cfg.SupabaseURL,
			AnonKey: cfg.SupabaseAnonKey,
		})
		if err != nil {
			log.Fatalf("auth verifier error: %v", err)
		}
		verifier = v
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Config:       cfg,
		Log:          lg,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	lg.Info("starting server", map[string]any{"addr": cfg.Addr, "store": cfg.StoreBackend})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
