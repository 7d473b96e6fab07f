package main

import (
	"context"
	"fmt"
	"time"

	common_api "go-fieldops/internal/common/api"
	"go-fieldops/internal/config"
	"go-fieldops/internal/database"
	"go-fieldops/internal/features/audit"
	"go-fieldops/internal/features/offer"
	"go-fieldops/internal/features/report"
	"go-fieldops/internal/features/system"
	"go-fieldops/internal/features/worker"
	"go-fieldops/internal/logger"
	"go-fieldops/internal/metrics"
	"go-fieldops/internal/middleware"
	"go-fieldops/pkg/utils"

	_ "go-fieldops/docs"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates the Fiber app with the shared middleware chain.
func NewFiberServer(cfg *config.Config, log *zap.Logger, m *metrics.Service) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(log),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	app.Use(middleware.Metrics(m))

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route, log *zap.Logger) {
	for _, route := range routes {
		log.Debug("registering routes", zap.String("api", fmt.Sprintf("%T", route)))
		route.Setup(app)
	}
	log.Info("routes registered", zap.Int("count", len(routes)))
}

var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`, ``),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, app *fiber.App, cfg *config.Config, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				log.Info("http server listening", zap.String("addr", port))
				if err := app.Listen(port); err != nil {
					log.Error("http server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

// InitializeIndexes ensures that necessary database indexes are created
func InitializeIndexes(lc fx.Lifecycle, reportRepo report.ReportRepository, workerRepo worker.WorkerRepository, brigadeRepo worker.BrigadeRepository, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := reportRepo.EnsureIndexes(ctx); err != nil {
					log.Warn("failed to ensure report indexes", zap.Error(err))
				}
				if err := workerRepo.EnsureIndexes(ctx); err != nil {
					log.Warn("failed to ensure worker indexes", zap.Error(err))
				}
				if err := brigadeRepo.EnsureIndexes(ctx); err != nil {
					log.Warn("failed to ensure brigade indexes", zap.Error(err))
				}
			}()
			return nil
		},
	})
}

// @title           Field Operations API
// @version         1.0
// @description     Brigade reports, worked-hours and material aggregations, offers, and the worker directory.
// @host            localhost:8080
// @BasePath        /
func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			database.NewDatabase,
			metrics.NewService,
			func() *validator.Validate { return validator.New() },
			func(cfg *config.Config) *utils.JWTManager { return utils.NewJWTManager(cfg.JWTSecret) },
			NewFiberServer,

			// Repositories
			audit.NewAuditRepository,
			report.NewReportRepository,
			offer.NewOfferRepository,
			worker.NewWorkerRepository,
			worker.NewBrigadeRepository,

			// Services
			audit.NewAuditService,
			report.NewReportService,
			offer.NewOfferService,
			worker.NewWorkerService,

			// Interface adapters
			func(m *metrics.Service) report.AggregationObserver { return m },
			func(m *metrics.Service) offer.ConflictObserver { return m },
			worker.NewReportDirectory,

			// Controllers
			audit.NewAuditController,
			report.NewReportController,
			offer.NewOfferController,
			worker.NewWorkerController,
			system.NewDebugController,

			// API routes
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewMetricsApi),
			AsRoute(system.NewDebugApi),
			AsRoute(system.NewSwaggerApi),
			AsRoute(audit.NewAuditApi),
			AsRoute(report.NewReportApi),
			AsRoute(offer.NewOfferApi),
			AsRoute(worker.NewWorkerApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			RegisterAllRoutesWithAnnotation,
			StartServer,
			InitializeIndexes,
		),
	)

	app.Run()
}
