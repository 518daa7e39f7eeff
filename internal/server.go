package internal

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/motivly/internal/auth"
	"github.com/2beens/motivly/internal/cache"
	"github.com/2beens/motivly/internal/catalog"
	"github.com/2beens/motivly/internal/checkins"
	"github.com/2beens/motivly/internal/config"
	"github.com/2beens/motivly/internal/dailyplan"
	"github.com/2beens/motivly/internal/db"
	"github.com/2beens/motivly/internal/middleware"
	"github.com/2beens/motivly/internal/morning"
	"github.com/2beens/motivly/internal/movement"
	"github.com/2beens/motivly/internal/notifications"
	"github.com/2beens/motivly/internal/profile"
	"github.com/2beens/motivly/internal/reflections"
	"github.com/2beens/motivly/internal/resources"
	"github.com/2beens/motivly/internal/rituals"
	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/stressreasons"
	"github.com/2beens/motivly/internal/telemetry/metrics"
	"github.com/2beens/motivly/internal/telemetry/tracing"
	"github.com/2beens/motivly/internal/weeklyslots"
	"github.com/2beens/motivly/internal/workspace"
	"github.com/2beens/motivly/pkg"
)

const sessionsCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config     *config.Config
	location   *time.Location
	dbPool     *pgxpool.Pool
	db         store.TxDB
	monthCache *cache.MonthCache
	workspaces *workspace.Registry

	redisClient  *redis.Client
	loginChecker auth.Checker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	PostgresPassword        string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if cfg.MigrateOnStart {
		if err := db.Migrate(ctx, dbPool); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(params.VersionInfo, pgxpoolCollector)
	metricsManager := metrics.NewManager("motivly", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "motivly", rdb)
	if err != nil {
		return nil, err
	}

	authService := auth.NewAuthService(auth.NewUsersRepo(dbPool), cfg.AuthSessionTTL.Duration, rdb)
	go func() {
		ticker := time.NewTicker(sessionsCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				authService.ScanAndClean(ctx)
			}
		}
	}()

	s := &Server{
		config:      cfg,
		location:    loc,
		dbPool:      dbPool,
		db:          dbPool,
		versionInfo: params.VersionInfo,
		monthCache:  cache.NewMonthCache(cfg.MonthCacheSizeMB, cfg.MonthCacheTTL.Duration, metricsManager),

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(cfg.AuthSessionTTL.Duration, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}
	s.workspaces = s.newWorkspaceRegistry()

	return s, nil
}

func (s *Server) newWorkspaceRegistry() *workspace.Registry {
	bootstrapper := profile.NewBootstrapper(profile.NewRepo(s.db))
	factory := func() *workspace.Workspace {
		return workspace.New(workspace.Deps{
			DB:           s.db,
			Bootstrapper: bootstrapper,
			Metrics:      s.metricsManager,
			Location:     s.location,
		})
	}
	return workspace.NewRegistry(factory, s.config.WorkspaceIdleTTL.Duration, s.metricsManager)
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	auth.NewHandler(s.authService, s.workspaces.Drop).SetupRoutes(r,
		middleware.RateLimit(reqRateLimiter, "auth", s.config.LoginRateLimitAllowedPerMin, s.metricsManager),
	)

	workspace.NewHandler(s.workspaces).SetupRoutes(r)

	fromWorkspace := s.workspaces.FromContext
	checkins.NewHandler(func(ctx context.Context) (*checkins.Unit, error) {
		ws, err := fromWorkspace(ctx)
		if err != nil {
			return nil, err
		}
		return ws.Checkins, nil
	}, s.monthCache).SetupRoutes(r)

	morning.NewHandler(func(ctx context.Context) (*morning.Unit, error) {
		ws, err := fromWorkspace(ctx)
		if err != nil {
			return nil, err
		}
		return ws.Morning, nil
	}, s.monthCache).SetupRoutes(r)

	dailyplan.NewHandler(func(ctx context.Context) (*dailyplan.Unit, error) {
		ws, err := fromWorkspace(ctx)
		if err != nil {
			return nil, err
		}
		return ws.Plan, nil
	}).SetupRoutes(r)

	reflections.NewHandler(func(ctx context.Context) (*reflections.Unit, error) {
		ws, err := fromWorkspace(ctx)
		if err != nil {
			return nil, err
		}
		return ws.Reflections, nil
	}).SetupRoutes(r)

	rituals.NewHandler(func(ctx context.Context) (*rituals.Unit, error) {
		ws, err := fromWorkspace(ctx)
		if err != nil {
			return nil, err
		}
		return ws.Rituals, nil
	}).SetupRoutes(r)

	stressreasons.NewHandler(func(ctx context.Context) (*stressreasons.Unit, error) {
		ws, err := fromWorkspace(ctx)
		if err != nil {
			return nil, err
		}
		return ws.StressReasons, nil
	}).SetupRoutes(r)

	resources.NewHandler(func(ctx context.Context) (*resources.Unit, error) {
		ws, err := fromWorkspace(ctx)
		if err != nil {
			return nil, err
		}
		return ws.Resources, nil
	}).SetupRoutes(r)

	movement.NewHandler(func(ctx context.Context) (*movement.Unit, error) {
		ws, err := fromWorkspace(ctx)
		if err != nil {
			return nil, err
		}
		return ws.Movement, nil
	}, s.monthCache).SetupRoutes(r)

	weeklyslots.NewHandler(func(ctx context.Context) (*weeklyslots.Unit, error) {
		ws, err := fromWorkspace(ctx)
		if err != nil {
			return nil, err
		}
		return ws.WeeklySlots, nil
	}).SetupRoutes(r)

	profile.NewHandler(func(ctx context.Context) (*profile.Unit, error) {
		ws, err := fromWorkspace(ctx)
		if err != nil {
			return nil, err
		}
		return ws.Profile, nil
	}).SetupRoutes(r)

	catalog.NewHandler(
		catalog.NewPicker(rand.New(rand.NewSource(time.Now().UnixNano()))),
	).SetupRoutes(r)

	notificationsRepo := notifications.NewRepo(s.db)
	notifications.NewHandler(
		notifications.NewPreferencesWriter(notificationsRepo),
		notifications.NewPushRegistrar(notificationsRepo, s.config.VapidPublicKey),
	).SetupRoutes(r)

	r.HandleFunc("/version", s.handleVersion).Methods("GET", "OPTIONS").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.LimitAndDrainBody(middleware.DefaultMaxBodyBytes))

	return r, nil
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONResponse(w, map[string]string{"version": s.versionInfo}, http.StatusOK)
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(host, strconv.Itoa(s.config.MetricsPort))
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	ctx, timeoutCancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout.Duration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}
	// sentry is flushed by the func logging.Setup returned
}
