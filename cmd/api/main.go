package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	appanalytics "github.com/jhoicas/Proyectos-api/internal/application/analytics"
	"github.com/jhoicas/Proyectos-api/internal/application/auth"
	"github.com/jhoicas/Proyectos-api/internal/application/billing"
	"github.com/jhoicas/Proyectos-api/internal/application/usecase"
	"github.com/jhoicas/Proyectos-api/internal/domain/integrity"
	infrapdf "github.com/jhoicas/Proyectos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Proyectos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Proyectos-api/internal/interfaces/http"
	"github.com/jhoicas/Proyectos-api/pkg/config"
	"github.com/jhoicas/Proyectos-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	assigneeRepo := postgres.NewTaskAssigneeRepository(pool)
	timeEntryRepo := postgres.NewTimeEntryRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	partnerRepo := postgres.NewPartnerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	purchaseRepo := postgres.NewPurchaseOrderRepository(pool)
	salesRepo := postgres.NewSalesOrderRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	vendorBillRepo := postgres.NewVendorBillRepository(pool)
	lineItemRepo := postgres.NewLineItemRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Validador de FK declarativo: una sola tabla de reglas para todas las escrituras.
	refs := integrity.NewValidator(postgres.NewReferenceResolver(pool))

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	invoicePDFUC := billing.NewPDFUseCase(
		invoiceRepo, salesRepo, partnerRepo, projectRepo, lineItemRepo, productRepo, pdfGenerator,
	)

	deps := httpRouter.RouterDeps{
		ProjectUC:        usecase.NewProjectUseCase(projectRepo, taskRepo, refs, txRunner),
		ProjectSummaryUC: appanalytics.NewProjectSummaryUseCase(projectRepo, taskRepo, salesRepo, expenseRepo, timeEntryRepo, userRepo),
		TaskUC:           usecase.NewTaskUseCase(taskRepo, assigneeRepo, refs),
		TimeEntryUC:      usecase.NewTimeEntryUseCase(timeEntryRepo, refs),
		ExpenseUC:        usecase.NewExpenseUseCase(expenseRepo, refs),
		PartnerUC:        usecase.NewPartnerUseCase(partnerRepo, refs),
		ProductUC:        usecase.NewProductUseCase(productRepo),
		PurchaseOrderUC:  usecase.NewPurchaseOrderUseCase(purchaseRepo, refs),
		SalesOrderUC:     usecase.NewSalesOrderUseCase(salesRepo, refs),
		InvoiceUC:        usecase.NewInvoiceUseCase(invoiceRepo, refs),
		VendorBillUC:     usecase.NewVendorBillUseCase(vendorBillRepo, refs),
		LineItemUC:       usecase.NewLineItemUseCase(lineItemRepo, productRepo, refs),
		UserUC:           usecase.NewUserUseCase(userRepo, assigneeRepo),
		AuthUC:           authUC,
		InvoicePDF:       invoicePDFUC,
		DashboardUC:      appanalytics.NewDashboardUseCase(analyticsRepo),
		DBCheck: func(ctx context.Context) error {
			return postgres.Health(ctx, pool, 2*time.Second)
		},
		JWTSecret:   cfg.JWT.Secret,
		ServiceName: cfg.App.Name,
	}

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:           cfg.App.Name,
		RequestTimeout: cfg.HTTP.RequestTimeout,
	}, log.Named("http"))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Proyectos API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
