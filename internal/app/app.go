package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/registry-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/registry-backend/internal/adapter/postgres/activity"
	addressrepo "github.com/heartmarshall/registry-backend/internal/adapter/postgres/address"
	incidentrepo "github.com/heartmarshall/registry-backend/internal/adapter/postgres/incident"
	organizationrepo "github.com/heartmarshall/registry-backend/internal/adapter/postgres/organization"
	"github.com/heartmarshall/registry-backend/internal/app/seeder"
	"github.com/heartmarshall/registry-backend/internal/config"
	"github.com/heartmarshall/registry-backend/internal/service/activity"
	"github.com/heartmarshall/registry-backend/internal/service/address"
	"github.com/heartmarshall/registry-backend/internal/service/incident"
	"github.com/heartmarshall/registry-backend/internal/service/organization"
	"github.com/heartmarshall/registry-backend/internal/transport/middleware"
	"github.com/heartmarshall/registry-backend/internal/transport/rest"
)

// Service names accepted by Serve.
const (
	ServiceRegistry  = "registry"
	ServiceIncidents = "incidents"
	ServiceAll       = "all"
)

// App holds the wired dependencies shared by both HTTP services.
type App struct {
	cfg *config.Config
	log *slog.Logger

	pool *pgxpool.Pool
	txm  *postgres.TxManager

	organizations *organization.Service
	addresses     *address.Service
	activities    *activity.Service
	incidents     *incident.Service

	registry *prometheus.Registry
	metrics  *middleware.Metrics
}

// New connects to the database and builds repositories, services and
// metrics. Callers must Close the returned App.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	a, err := build(cfg, log, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return a, nil
}

func build(cfg *config.Config, log *slog.Logger, pool *pgxpool.Pool) (*App, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := middleware.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	orgRepo := organizationrepo.New(pool)
	addrRepo := addressrepo.New(pool)
	actRepo := activityrepo.New(pool)
	incRepo := incidentrepo.New(pool)

	return &App{
		cfg:           cfg,
		log:           log,
		pool:          pool,
		txm:           postgres.NewTxManager(pool),
		organizations: organization.NewService(log, orgRepo, addrRepo, actRepo),
		addresses:     address.NewService(log, addrRepo, orgRepo),
		activities:    activity.NewService(log, actRepo, orgRepo),
		incidents:     incident.NewService(log, incRepo),
		registry:      reg,
		metrics:       metrics,
	}, nil
}

// Close releases the connection pool.
func (a *App) Close() {
	a.pool.Close()
}

// Handler builds the full HTTP handler of the named service.
func (a *App) Handler(service string) (http.Handler, error) {
	health := rest.NewHealthHandler(a.pool, service, BuildVersion())
	metricsHandler := promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{Registry: a.registry})

	var groups []rest.RouteRegistrar
	switch service {
	case ServiceRegistry:
		groups = []rest.RouteRegistrar{
			rest.NewOrganizationHandler(a.organizations, a.txm, a.log),
			rest.NewAddressHandler(a.addresses, a.txm, a.log),
			rest.NewActivityHandler(a.activities, a.txm, a.log),
		}
	case ServiceIncidents:
		groups = []rest.RouteRegistrar{
			rest.NewIncidentHandler(a.incidents, a.txm, a.log),
		}
	default:
		return nil, fmt.Errorf("unknown service %q", service)
	}

	log := a.log.With("service", service)
	chain := middleware.Standard(
		middleware.Recovery(log),
		middleware.Logger(log),
		middleware.CORS(a.cfg.CORS),
		a.metrics.Middleware(service),
	)
	return chain(rest.NewRouter(health, metricsHandler, groups...)), nil
}

// Serve runs the selected services until ctx is cancelled, then shuts them
// down gracefully. A failure of one server stops the others.
func (a *App) Serve(ctx context.Context, service string) error {
	services, err := expandServices(service)
	if err != nil {
		return err
	}

	if a.cfg.Migrate.OnStart {
		if err := a.migrate(ctx); err != nil {
			return err
		}
	}

	servers := make(map[string]*http.Server, len(services))
	for _, name := range services {
		handler, err := a.Handler(name)
		if err != nil {
			return err
		}
		servers[name] = a.newServer(name, handler)
	}

	g, gctx := errgroup.WithContext(ctx)
	for name, srv := range servers {
		g.Go(func() error {
			a.log.Info("http server started",
				slog.String("service", name),
				slog.String("addr", srv.Addr),
				slog.String("version", BuildVersion()),
			)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("%s server: %w", name, err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
			defer cancel()

			a.log.Info("http server shutting down", slog.String("service", name))
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("%s shutdown: %w", name, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// Seed inserts the demo organizations.
func (a *App) Seed(ctx context.Context) seeder.Result {
	return seeder.New(a.log, a.organizations, a.txm).Run(ctx, seeder.DemoOrganizations())
}

func (a *App) migrate(ctx context.Context) error {
	m, err := postgres.NewMigrator(ctx, a.cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer m.Close()

	results, err := m.Up(ctx)
	if err != nil {
		return err
	}
	a.log.Info("migrations applied", slog.Int("count", len(results)))
	return nil
}

func (a *App) newServer(service string, handler http.Handler) *http.Server {
	port := a.cfg.Server.RegistryPort
	if service == ServiceIncidents {
		port = a.cfg.Server.IncidentsPort
	}

	return &http.Server{
		Addr:         net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(port)),
		Handler:      handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.log.Handler(), slog.LevelError),
	}
}

func expandServices(service string) ([]string, error) {
	switch service {
	case ServiceRegistry, ServiceIncidents:
		return []string{service}, nil
	case ServiceAll, "":
		return []string{ServiceRegistry, ServiceIncidents}, nil
	}
	return nil, fmt.Errorf("unknown service %q: want %s, %s or %s", service, ServiceRegistry, ServiceIncidents, ServiceAll)
}
