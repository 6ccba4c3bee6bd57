package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/tendant/chi-demo/app"
	dbutils "github.com/tendant/db-utils/db"

	"github.com/redcrest/donorflow/pkg/application"
	"github.com/redcrest/donorflow/pkg/appointment"
	"github.com/redcrest/donorflow/pkg/clinic"
	"github.com/redcrest/donorflow/pkg/config"
	"github.com/redcrest/donorflow/pkg/gate"
	"github.com/redcrest/donorflow/pkg/notification"
	"github.com/redcrest/donorflow/pkg/profile"
	profileapi "github.com/redcrest/donorflow/pkg/profile/api"
	"github.com/redcrest/donorflow/pkg/stats"
)

type Config struct {
	DbConfig    config.DbConfig
	EmailConfig config.EmailConfig
	AppConfig   config.AppConfig
	JwtConfig   config.JwtConfig
	ServeConfig app.AppConfig
}

func main() {
	godotenv.Load()

	cfg := Config{}
	cleanenv.ReadEnv(&cfg)

	server := app.DefaultApp()
	app.RoutesHealthz(server.R)
	app.RoutesHealthzReady(server.R)

	dbConfig := cfg.DbConfig.ToDbConfig()
	pool, err := dbutils.NewDbPool(context.Background(), dbConfig)
	if err != nil {
		slog.Error("Failed creating dbpool", "db", dbConfig.Database, "host", dbConfig.Host, "port", dbConfig.Port, "user", dbConfig.User)
		os.Exit(-1)
	}

	deliverer, err := cfg.EmailConfig.NewDeliverer()
	if err != nil {
		slog.Error("Failed creating mail deliverer", "transport", cfg.EmailConfig.Transport, "err", err)
		os.Exit(-1)
	}
	notifier := notification.NewService(notification.NewBuiltinRenderer(), deliverer, cfg.AppConfig.BaseURL)

	profileRepo := profile.NewPostgresProfileRepository(pool)
	applicationRepo := application.NewPostgresApplicationRepository(pool)
	clinicRepo := clinic.NewPostgresClinicRepository(pool)
	appointmentRepo := appointment.NewPostgresAppointmentRepository(pool)

	authGate := gate.New(profileRepo)

	profileService := profile.NewProfileService(profileRepo)
	applicationService := application.NewApplicationService(applicationRepo, profileRepo, authGate, notifier)
	appointmentService := appointment.NewAppointmentService(appointmentRepo, applicationRepo, clinicRepo, profileRepo, authGate, notifier)
	statsService := stats.NewStatsService(cfg.AppConfig.StatsIndicatorURL)

	profileHandle := profileapi.NewHandle(profileService, authGate)
	applicationHandle := application.NewHandle(applicationService)
	appointmentHandle := appointment.NewHandle(appointmentService)
	statsHandle := stats.NewHandle(statsService)

	// Public statistics endpoint, no gate.
	server.R.Route("/api/stats", statsHandle.Routes)

	tokenAuth := jwtauth.New("HS256", []byte(cfg.JwtConfig.JwtSecret), nil)

	server.R.Group(func(r chi.Router) {
		r.Use(gate.Verifier(tokenAuth))
		r.Use(jwtauth.Authenticator(tokenAuth))
		r.Use(gate.AuthUserMiddleware)

		r.Route("/api/profiles", profileHandle.Routes)
		r.Route("/api/applications", applicationHandle.Routes)
		r.Route("/api/appointments", appointmentHandle.Routes)
	})

	// Browser entry point: authenticated visitors land on the dashboard,
	// everyone else is sent to the login page.
	loginURL := cfg.AppConfig.BaseURL + cfg.AppConfig.LoginPath
	dashboardURL := cfg.AppConfig.BaseURL + cfg.AppConfig.DashboardPath
	server.R.Group(func(r chi.Router) {
		r.Use(gate.Verifier(tokenAuth))
		r.Use(gate.PageAuthUser)
		r.With(gate.RequirePageRole(authGate, loginURL, dashboardURL)).
			Get("/", func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, dashboardURL, http.StatusFound)
			})
	})

	server.Run()
}
