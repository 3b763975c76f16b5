package backendservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/stillpoint-health/backend/internal/accounts"
	"github.com/stillpoint-health/backend/internal/api"
	"github.com/stillpoint-health/backend/internal/api/recovery"
	"github.com/stillpoint-health/backend/internal/assets"
	"github.com/stillpoint-health/backend/internal/auth"
	"github.com/stillpoint-health/backend/internal/config"
	"github.com/stillpoint-health/backend/internal/health"
	"github.com/stillpoint-health/backend/internal/logger"
	"github.com/stillpoint-health/backend/internal/model"
	"github.com/stillpoint-health/backend/internal/services"
	"github.com/stillpoint-health/backend/internal/store"
	"github.com/stillpoint-health/backend/internal/store/supabase"
)

// Run starts the backend HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("stillpoint-backend")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("http_port", cfg.HTTPPort).
		Str("supabase_url", cfg.SupabaseURL).
		Str("asset_bucket", cfg.AssetBucket).
		Msg("Backend service starting")

	// Cancellable root context bound to SIGINT/SIGTERM.
	ctx, stop := newServerContext()
	defer stop()

	st, provider, signer := initDependencies(cfg)

	router := buildRouter(st, provider, signer, cfg, log)
	handler := newCORSHandler(cfg).Handler(router)

	svcHealth := startHealthCheckers(ctx, cfg, log, st, provider, signer)

	// Block startup until dependencies report healthy; fail fast otherwise.
	if err := waitUntilHealthy(ctx, cfg, svcHealth); err != nil {
		log.Error().Stack().Err(err).Msg("startup health check failed")
		return err
	}

	server := newHTTPServer(ctx, cfg, handler)
	errCh := serveHTTP(server, log, cfg)

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// initDependencies constructs the three Supabase client surfaces. They share
// one base URL but authenticate differently: the store and signer use the
// service-role key, GoTrue holds both keys.
func initDependencies(cfg *config.Config) (*supabase.Store, *accounts.GoTrue, *assets.SupabaseSigner) {
	st := supabase.New(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey)
	provider := accounts.NewGoTrue(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.SupabaseServiceRoleKey)
	signer := assets.NewSupabaseSigner(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, cfg.AssetBucket)
	return st, provider, signer
}

// buildRouter wires HTTP routes to handlers.
func buildRouter(st store.Store, provider accounts.Provider, signer assets.Signer, cfg *config.Config, log zerolog.Logger) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)
	root.Use(api.RequestID(log))

	// Public surface
	authSvc := services.NewAuthService(provider, st.Profiles(), log)
	authHandler := api.NewAuthHandler(authSvc)
	root.HandleFunc("/", api.Root).Methods("GET")
	root.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	root.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	healthHandler := api.NewHealthHandler()
	root.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	// Everything below requires a verified bearer credential.
	verifier := auth.NewTokenVerifier(cfg.SupabaseJWTSecret, st.Profiles())
	authed := root.NewRoute().Subrouter()
	authed.Use(auth.Middleware(verifier))

	authed.HandleFunc("/me", api.Me).Methods("GET")

	programSvc := services.NewProgramService(st)
	program := api.NewProgramHandler(programSvc)
	authed.HandleFunc("/program", program.GetProgram).Methods("GET")
	authed.HandleFunc("/exercise/{id}/responses", program.CreateResponse).Methods("POST")

	assessmentSvc := services.NewAssessmentService(st)
	assessment := api.NewAssessmentHandler(assessmentSvc)
	authed.HandleFunc("/assessments", assessment.ListAssessments).Methods("GET")
	authed.HandleFunc("/assessments", assessment.SubmitAssessment).Methods("POST")

	progressSvc := services.NewProgressService(st)
	progress := api.NewProgressHandler(progressSvc)
	authed.HandleFunc("/progress", progress.GetProgress).Methods("GET")

	messageSvc := services.NewMessageService(st)
	message := api.NewMessageHandler(messageSvc)
	authed.HandleFunc("/messages", message.SendMessage).Methods("POST")
	authed.HandleFunc("/messages/thread/{id}", message.GetThread).Methods("GET")

	assetSvc := services.NewAssetService(st, signer, time.Duration(cfg.SignedURLTTLSeconds)*time.Second)
	asset := api.NewAssetHandler(assetSvc)
	authed.HandleFunc("/assets", asset.ListAssets).Methods("GET")

	// Supporter-only views
	caseloadSvc := services.NewCaseloadService(st)
	timelineSvc := services.NewTimelineService(st)
	supporterHandler := api.NewSupporterHandler(caseloadSvc, timelineSvc)
	supporter := authed.PathPrefix("/supporter").Subrouter()
	supporter.Use(auth.RequireRole(model.RoleSupporter))
	supporter.HandleFunc("/caseload", supporterHandler.GetCaseload).Methods("GET")
	supporter.HandleFunc("/users/{id}", supporterHandler.GetUserTimeline).Methods("GET")

	return root
}

func newCORSHandler(cfg *config.Config) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
	})
}

// startHealthCheckers starts component checkers and the service-level
// aggregator; binds the /api/health flag.
func startHealthCheckers(ctx context.Context, cfg *config.Config, log zerolog.Logger, st *supabase.Store, provider *accounts.GoTrue, signer *assets.SupabaseSigner) *health.ServiceChecker {
	probeTimeout := time.Duration(cfg.HealthProbeTimeoutSeconds) * time.Second
	interval := time.Duration(cfg.HealthIntervalSeconds) * time.Second

	var checkers []health.Checker
	for _, dep := range []struct {
		name   string
		target health.Pinger
	}{
		{"store", st},
		{"accounts", provider},
		{"assets", signer},
	} {
		c := health.NewDependencyChecker(dep.name, dep.target, log, probeTimeout)
		go c.Start(ctx, interval)
		checkers = append(checkers, c)
	}

	svcHealth := health.NewServiceChecker(log, checkers...)
	go svcHealth.Start(ctx, interval)
	api.BindServiceHealth(svcHealth.IsHealthy)
	return svcHealth
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// calculateStartupHealthTimeout returns the startup health window in seconds,
// interval*2 with a minimum of 60.
func calculateStartupHealthTimeout(healthIntervalSeconds int) int {
	timeout := healthIntervalSeconds * 2
	if timeout < 60 {
		return 60
	}
	return timeout
}

// waitUntilHealthy blocks until service health is healthy or the startup
// window expires. Checkers start unhealthy and need one probe cycle.
func waitUntilHealthy(ctx context.Context, cfg *config.Config, svcHealth *health.ServiceChecker) error {
	timeoutSeconds := calculateStartupHealthTimeout(cfg.HealthIntervalSeconds)
	deadline := time.Now().Add(time.Duration(timeoutSeconds) * time.Second)
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		if svcHealth.IsHealthy() {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("startup aborted: dependencies not healthy within %d seconds", timeoutSeconds)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
