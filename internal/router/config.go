package router

import (
	"os"
	"strings"
)

// DevOrigins are always allowed by CORS.
var DevOrigins = []string{
	"http://localhost:5500",
	"http://127.0.0.1:5500",
	"http://localhost:8080",
	"http://localhost:3000",
}

type Config struct {
	Port              string
	Env               string
	FrontendURL       string
	RenderExternalURL string
	// StaticDir holds the front-end files. Empty disables static serving.
	StaticDir string
	// TrustProxy keys rate limits on X-Forwarded-For / X-Real-IP instead of the peer address.
	TrustProxy bool
}

// ConfigFromEnv reads PORT, NODE_ENV (or APP_ENV), FRONTEND_URL,
// RENDER_EXTERNAL_URL, STATIC_DIR and TRUST_PROXY.
func ConfigFromEnv() Config {
	cfg := Config{
		Port:              os.Getenv("PORT"),
		Env:               os.Getenv("NODE_ENV"),
		FrontendURL:       strings.TrimSpace(os.Getenv("FRONTEND_URL")),
		RenderExternalURL: strings.TrimSpace(os.Getenv("RENDER_EXTERNAL_URL")),
		StaticDir:         os.Getenv("STATIC_DIR"),
		TrustProxy:        os.Getenv("TRUST_PROXY") == "1",
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.Env == "" {
		cfg.Env = os.Getenv("APP_ENV")
	}
	return cfg
}

func (c Config) Production() bool { return strings.EqualFold(c.Env, "production") }

// AllowedOrigins is the CORS allow-list. Deployment URLs are added in production only.
func (c Config) AllowedOrigins() []string {
	out := append([]string(nil), DevOrigins...)
	if !c.Production() {
		return out
	}
	if c.RenderExternalURL != "" {
		out = append(out, c.RenderExternalURL)
	}
	if c.FrontendURL != "" && c.FrontendURL != c.RenderExternalURL {
		out = append(out, c.FrontendURL)
	}
	return out
}
