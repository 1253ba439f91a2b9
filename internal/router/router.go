package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "jobtrust/internal/docs" // registers the OpenAPI document

	"jobtrust/internal/handlers/api/v1/common"
	"jobtrust/internal/handlers/api/v1/companies"
	"jobtrust/internal/handlers/api/v1/courses"
	"jobtrust/internal/handlers/api/v1/jobs"
	"jobtrust/internal/handlers/api/v1/reports"
	"jobtrust/internal/handlers/api/v1/savedjobs"
	"jobtrust/internal/handlers/api/v1/stats"
	"jobtrust/internal/handlers/api/v1/system"
	"jobtrust/internal/handlers/api/v1/users"
	"jobtrust/internal/middleware"
	"jobtrust/internal/response"
	"jobtrust/internal/services"
)

// APIPrefix is the mount point of the versioned API
const APIPrefix = "/api/v1"

var probeMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
}

// Options carries collaborators that differ between the server and tests
type Options struct {
	// Registry receives HTTP metrics and backs /metrics. Nil means the
	// process-wide default registry.
	Registry *prometheus.Registry
}

// SetupRouter configures all HTTP routes and returns the main handler
func SetupRouter(serviceCollection *services.ServiceCollection, responseBuilder *response.Builder, opts Options, logger *zap.Logger) http.Handler {
	cfg := serviceCollection.Config

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if opts.Registry != nil {
		registerer, gatherer = opts.Registry, opts.Registry
	}

	root := mux.NewRouter()
	root.Use(middleware.RouteLabel)
	root.NotFoundHandler = http.HandlerFunc(responseBuilder.WriteNotFound)
	root.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		responseBuilder.WriteMethodNotAllowed(w, r, allowedMethods(root, r))
	})

	admin := common.AdminMiddleware(middleware.AdminOnly(cfg.Security.AdminJWTSecret))
	if cfg.Security.AdminJWTSecret == "" {
		logger.Warn("ADMIN_JWT_SECRET not set, moderation routes are open")
	}

	// System routes
	health := system.NewHealthController(serviceCollection, logger.Named("health"), responseBuilder)
	root.HandleFunc("/health", health.Health).Methods(http.MethodGet)
	root.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	swagger := middleware.SwaggerHandler()
	if cfg.IsProduction() {
		swagger = admin(swagger)
	}
	root.PathPrefix("/swagger/").Handler(swagger).Methods(http.MethodGet)

	// API v1
	api := root.PathPrefix(APIPrefix).Subrouter()
	jobs.NewJobController(serviceCollection, logger.Named("jobs_api"), responseBuilder).RegisterRoutes(api, admin)
	savedjobs.NewSavedJobController(serviceCollection, logger.Named("saved_jobs_api"), responseBuilder).RegisterRoutes(api)
	reports.NewReportController(serviceCollection, logger.Named("reports_api"), responseBuilder).RegisterRoutes(api)
	companies.NewCompanyController(serviceCollection, logger.Named("companies_api"), responseBuilder).RegisterRoutes(api, admin)
	courses.NewCourseController(serviceCollection, logger.Named("courses_api"), responseBuilder).RegisterRoutes(api)
	stats.NewStatsController(serviceCollection, logger.Named("stats_api"), responseBuilder).RegisterRoutes(api)
	users.NewUserController(serviceCollection, logger.Named("users_api"), responseBuilder).RegisterRoutes(api)

	limiter := middleware.NewRateLimiter(serviceCollection.Cache, cfg.RateLimit, logger.Named("rate_limit"))

	handler := http.Handler(root)
	handler = middleware.CORS(cfg.Security, logger)(handler)
	handler = middleware.SecurityHeaders(cfg.Security, cfg.IsProduction())(handler)
	handler = middleware.Recovery()(handler)
	handler = middleware.RateLimit(limiter)(handler)
	handler = middleware.StructuredLogging(middleware.DefaultLoggingConfig())(handler)
	handler = middleware.Metrics(middleware.NewHTTPMetrics(registerer))(handler)
	handler = response.Middleware(responseBuilder)(handler)
	handler = middleware.RequestID(logger)(handler)

	logger.Info("Router setup completed",
		zap.String("api_prefix", APIPrefix),
		zap.String("swagger_ui", "/swagger/index.html"),
		zap.Bool("admin_auth", cfg.Security.AdminJWTSecret != ""),
	)

	return handler
}

// allowedMethods lists the methods that would match r's path
func allowedMethods(router *mux.Router, r *http.Request) []string {
	var allowed []string
	for _, method := range probeMethods {
		probe := r.Clone(r.Context())
		probe.Method = method
		var match mux.RouteMatch
		if router.Match(probe, &match) && match.MatchErr == nil {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
