package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Backends de store soportados.
const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

const envPrefix = "SHELTER"

// Config centraliza la configuración del servicio.
// Precedencia: env (SHELTER_*) > config.yaml > defaults.
type Config struct {
	Addr string

	StoreBackend string // supabase | postgres | memory

	SupabaseURL     string
	SupabaseAnonKey string

	DBDSN string
}

// Load lee config.yaml (opcional, en el working dir) y las env vars.
// Un config.yaml ausente no es error; seguimos con env + defaults.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("store_backend", BackendMemory)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Addr:            v.GetString("addr"),
		StoreBackend:    strings.ToLower(strings.TrimSpace(v.GetString("store_backend"))),
		SupabaseURL:     strings.TrimSpace(v.GetString("supabase_url")),
		SupabaseAnonKey: strings.TrimSpace(v.GetString("supabase_anon_key")),
		DBDSN:           strings.TrimSpace(v.GetString("db_dsn")),
	}

	switch cfg.StoreBackend {
	case BackendSupabase, BackendPostgres, BackendMemory:
	default:
		return Config{}, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	return cfg, nil
}
