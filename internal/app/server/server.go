package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"paydesk/internal/domain/directory"
	"paydesk/internal/domain/payroll"
	"paydesk/internal/domain/session"
	"paydesk/internal/events"
	kafkaevents "paydesk/internal/events/kafka"
	"paydesk/internal/platform/config"
	cryptoutil "paydesk/internal/platform/crypto"
	"paydesk/internal/platform/db"
	"paydesk/internal/platform/metrics"
	"paydesk/internal/transport/http/api"
	directoryhandler "paydesk/internal/transport/http/handlers/directory"
	payrollhandler "paydesk/internal/transport/http/handlers/payroll"
	sessionhandler "paydesk/internal/transport/http/handlers/session"
	"paydesk/internal/transport/http/middleware"
)

// App wires the stores, services, and HTTP surface together. With a
// DATABASE_URL the stores run on postgres; without one everything lives
// in memory, which is also the mode the tests use.
type App struct {
	Config config.Config
	Router chi.Router

	pool      *pgxpool.Pool
	publisher events.Publisher
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	app := &App{Config: cfg}

	var employeeStore directory.StoreAPI
	var ledgerStore payroll.LedgerStoreAPI
	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		app.pool = pool
		if cfg.RunMigrations {
			if err := db.Migrate(ctx, pool, "migrations"); err != nil {
				pool.Close()
				return nil, fmt.Errorf("run migrations: %w", err)
			}
		}
		employeeStore = directory.NewPostgresStore(pool)
		ledgerStore = payroll.NewPostgresLedgerStore(pool)
	} else {
		employeeStore = directory.NewMemoryStore()
		ledgerStore = payroll.NewMemoryLedgerStore()
	}

	cryptoSvc, err := cryptoutil.New(cfg.DataEncryptionKey)
	if err != nil {
		app.closeQuietly()
		return nil, fmt.Errorf("init encryption: %w", err)
	}

	app.publisher = events.Noop{}
	if len(cfg.KafkaBrokers) > 0 {
		app.publisher = kafkaevents.NewPublisher(cfg.KafkaBrokers)
	}

	employees := directory.NewService(employeeStore)
	ledger := payroll.NewLedger(ledgerStore)
	payslips := payroll.NewPayslipWriter(cfg.PayslipDir, cryptoSvc)
	sess := session.NewService(employees, ledger, app.publisher)

	if cfg.SeedDemoData {
		if err := seedDemoRoster(ctx, employees); err != nil {
			slog.Warn("demo seed failed", "err", err)
		}
	}

	collector := metrics.New()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	r.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	r.Use(middleware.Metrics(collector))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		api.Success(w, map[string]string{"status": "ok"}, middleware.GetRequestID(req.Context()))
	})
	r.Get("/readyz", app.handleReady)
	if cfg.MetricsEnabled {
		r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(req.Context()))
		})
	}

	r.Route("/api/v1", func(r chi.Router) {
		directoryhandler.NewHandler(employees).RegisterRoutes(r)
		payrollhandler.NewHandler(employees, ledger, payslips, sess).RegisterRoutes(r)
		sessionhandler.NewHandler(sess).RegisterRoutes(r)
	})

	app.Router = r
	return app, nil
}

func (a *App) handleReady(w http.ResponseWriter, r *http.Request) {
	if a.pool != nil {
		if err := a.pool.Ping(r.Context()); err != nil {
			api.Fail(w, http.StatusServiceUnavailable, "not_ready", "database unreachable", middleware.GetRequestID(r.Context()))
			return
		}
	}
	api.Success(w, map[string]string{"status": "ready"}, middleware.GetRequestID(r.Context()))
}

// Close releases the database pool and the event publisher.
func (a *App) Close() error {
	var err error
	if closer, ok := a.publisher.(interface{ Close() error }); ok {
		err = closer.Close()
	}
	a.closeQuietly()
	return err
}

func (a *App) closeQuietly() {
	if a.pool != nil {
		a.pool.Close()
		a.pool = nil
	}
}

// seedDemoRoster loads the two demo employees on an empty directory only,
// so restarts do not duplicate them.
func seedDemoRoster(ctx context.Context, employees *directory.Service) error {
	existing, err := employees.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	demo := []directory.Draft{
		{
			Name:       "John Doe",
			Email:      "john.doe@company.com",
			Position:   "Senior Accountant",
			Department: "accounting",
			Salary:     75000,
			Status:     directory.StatusActive,
		},
		{
			Name:       "Jane Smith",
			Email:      "jane.smith@company.com",
			Position:   "HR Manager",
			Department: "hr",
			Salary:     85000,
			Status:     directory.StatusActive,
		},
	}
	for _, draft := range demo {
		if _, err := employees.Add(ctx, draft); err != nil {
			return err
		}
	}
	return nil
}
