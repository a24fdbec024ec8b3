package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string
	// AppEnv toggles error detail in responses: "development" exposes the
	// underlying error, anything else suppresses it.
	AppEnv string

	DBDSN string

	// Identity provider credentials: the secret verifies session tokens,
	// the API URL serves user profiles.
	AuthSecretKey string
	AuthAPIURL    string

	CORSOrigins []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/limo_app?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	origins := []string{}
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	return Env{
		AppAddr:       appAddr,
		GinMode:       strings.TrimSpace(os.Getenv("GIN_MODE")),
		AppEnv:        strings.TrimSpace(os.Getenv("APP_ENV")),
		DBDSN:         dsn,
		AuthSecretKey: strings.TrimSpace(os.Getenv("AUTH_SECRET_KEY")),
		AuthAPIURL:    strings.TrimSpace(os.Getenv("AUTH_API_URL")),
		CORSOrigins:   origins,
	}
}

// IsDevelopment reports whether error details may be surfaced to clients.
func (e Env) IsDevelopment() bool {
	return strings.EqualFold(e.AppEnv, "development") || strings.EqualFold(e.AppEnv, "dev")
}
