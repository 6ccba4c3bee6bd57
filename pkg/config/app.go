package config

// AppConfig holds application-level settings.
type AppConfig struct {
	// BaseURL is the public URL of the citizen-facing application,
	// substituted into notification templates.
	BaseURL string `env:"APP_URL" env-default:"http://localhost:3000"`

	// LoginPath and DashboardPath are the page-gate redirect targets.
	LoginPath     string `env:"APP_LOGIN_PATH" env-default:"/login"`
	DashboardPath string `env:"APP_DASHBOARD_PATH" env-default:"/dashboard"`

	// StatsIndicatorURL overrides the WHO indicator endpoint; empty keeps
	// the default.
	StatsIndicatorURL string `env:"STATS_INDICATOR_URL" env-default:""`
}

// JwtConfig holds token verification settings.
type JwtConfig struct {
	JwtSecret string `env:"JWT_SECRET" env-default:"very-secure-jwt-secret"`
}
