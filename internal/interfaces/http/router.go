package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	appanalytics "github.com/jhoicas/Proyectos-api/internal/application/analytics"
	"github.com/jhoicas/Proyectos-api/internal/application/auth"
	"github.com/jhoicas/Proyectos-api/internal/application/billing"
	"github.com/jhoicas/Proyectos-api/internal/application/usecase"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProjectUC        *usecase.ProjectUseCase
	ProjectSummaryUC *appanalytics.ProjectSummaryUseCase
	TaskUC           *usecase.TaskUseCase
	TimeEntryUC      *usecase.TimeEntryUseCase
	ExpenseUC        *usecase.ExpenseUseCase
	PartnerUC        *usecase.PartnerUseCase
	ProductUC        *usecase.ProductUseCase
	PurchaseOrderUC  *usecase.PurchaseOrderUseCase
	SalesOrderUC     *usecase.SalesOrderUseCase
	InvoiceUC        *usecase.InvoiceUseCase
	VendorBillUC     *usecase.VendorBillUseCase
	LineItemUC       *usecase.LineItemUseCase
	UserUC           *usecase.UserUseCase
	AuthUC           *auth.AuthUseCase
	InvoicePDF       *billing.PDFUseCase
	DashboardUC      *appanalytics.DashboardUseCase
	DBCheck          func(ctx context.Context) error
	JWTSecret        string
	ServiceName      string
}

// AppConfig parámetros de la aplicación Fiber.
type AppConfig struct {
	Name           string
	RequestTimeout time.Duration
}

// NewApp crea la app Fiber con el manejo de errores, recover, request id,
// log de peticiones y timeout por petición. Las rutas se registran con Router.
func NewApp(cfg AppConfig, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger(log))
	app.Use(RequestTimeout(cfg.RequestTimeout))
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	health := NewHealthHandler(deps.ServiceName, deps.DBCheck)
	app.Get("/health", health.Health)
	app.Get("/db-health", health.DBHealth)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/meta/statuses", dashboardHandler.Statuses)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Get("/:id/task-count", userHandler.TaskCount)
	users.Put("/:id", RequireRole(entity.RoleAdmin), userHandler.Update)
	users.Delete("/:id", RequireRole(entity.RoleAdmin), userHandler.Delete)

	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC, deps.ProjectSummaryUC)
	projects.Post("/", projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", projectHandler.Update)
	projects.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleManager), projectHandler.Delete)
	projects.Get("/:id/tasks", projectHandler.Tasks)
	projects.Get("/:id/summary", projectHandler.Summary)

	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)
	tasks.Get("/:id/assignees", taskHandler.Assignees)

	assignees := protected.Group("/task-assignees")
	assignees.Get("/", taskHandler.ListAssignments)
	assignees.Post("/", taskHandler.Assign)
	assignees.Delete("/", taskHandler.Unassign)

	crud(protected.Group("/time-entries"), NewTimeEntryHandler(deps.TimeEntryUC))
	crud(protected.Group("/expenses"), NewExpenseHandler(deps.ExpenseUC))
	crud(protected.Group("/partners"), NewPartnerHandler(deps.PartnerUC))
	crud(protected.Group("/products"), NewProductHandler(deps.ProductUC))
	crud(protected.Group("/purchase-orders"), NewPurchaseOrderHandler(deps.PurchaseOrderUC))
	crud(protected.Group("/sales-orders"), NewSalesOrderHandler(deps.SalesOrderUC))
	crud(protected.Group("/vendor-bills"), NewVendorBillHandler(deps.VendorBillUC))

	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF)
	crud(invoices, invoiceHandler)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)

	for path, kind := range lineItemPaths {
		crud(protected.Group(path), NewLineItemHandler(deps.LineItemUC, kind))
	}
}

var lineItemPaths = map[string]entity.ItemKind{
	"/sales-order-items":    entity.SalesOrderItem,
	"/purchase-order-items": entity.PurchaseOrderItem,
	"/invoice-items":        entity.InvoiceItem,
	"/vendor-bill-items":    entity.VendorBillItem,
}

type crudHandler interface {
	Create(c *fiber.Ctx) error
	List(c *fiber.Ctx) error
	GetByID(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

func crud(r fiber.Router, h crudHandler) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/:id", h.GetByID)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}
