package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Proyectos-api/internal/application/analytics"
	"github.com/jhoicas/Proyectos-api/internal/application/auth"
	"github.com/jhoicas/Proyectos-api/internal/application/billing"
	"github.com/jhoicas/Proyectos-api/internal/application/usecase"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/integrity"
	"github.com/jhoicas/Proyectos-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Proyectos-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Proyectos-api/internal/interfaces/http"
	"github.com/jhoicas/Proyectos-api/pkg/logger"
	pkgjwt "github.com/jhoicas/Proyectos-api/pkg/jwt"
)

type apiEnv struct {
	store *memory.Store
	app   *fiber.App
}

// newAPI cablea la app completa sobre el store en memoria, igual que cmd/api.
func newAPI(t *testing.T) *apiEnv {
	t.Helper()
	s := memory.NewStore()
	refs := integrity.NewValidator(s.Resolver())
	authUC := auth.NewAuthUseCase(s.Users(), auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	}).WithBcryptCost(bcrypt.MinCost)

	deps := apphttp.RouterDeps{
		ProjectUC:        usecase.NewProjectUseCase(s.Projects(), s.Tasks(), refs, s.TxRunner()),
		ProjectSummaryUC: analytics.NewProjectSummaryUseCase(s.Projects(), s.Tasks(), s.SalesOrders(), s.Expenses(), s.TimeEntries(), s.Users()),
		TaskUC:           usecase.NewTaskUseCase(s.Tasks(), s.Assignees(), refs),
		TimeEntryUC:      usecase.NewTimeEntryUseCase(s.TimeEntries(), refs),
		ExpenseUC:        usecase.NewExpenseUseCase(s.Expenses(), refs),
		PartnerUC:        usecase.NewPartnerUseCase(s.Partners(), refs),
		ProductUC:        usecase.NewProductUseCase(s.Products()),
		PurchaseOrderUC:  usecase.NewPurchaseOrderUseCase(s.PurchaseOrders(), refs),
		SalesOrderUC:     usecase.NewSalesOrderUseCase(s.SalesOrders(), refs),
		InvoiceUC:        usecase.NewInvoiceUseCase(s.Invoices(), refs),
		VendorBillUC:     usecase.NewVendorBillUseCase(s.VendorBills(), refs),
		LineItemUC:       usecase.NewLineItemUseCase(s.LineItems(), s.Products(), refs),
		UserUC:           usecase.NewUserUseCase(s.Users(), s.Assignees()),
		AuthUC:           authUC,
		InvoicePDF: billing.NewPDFUseCase(s.Invoices(), s.SalesOrders(), s.Partners(), s.Projects(),
			s.LineItems(), s.Products(), infrapdf.NewMarotoPDFGenerator("Proyectos Test")),
		DashboardUC: analytics.NewDashboardUseCase(s.Analytics()),
		JWTSecret:   testJWTSecret,
		ServiceName: "proyectos-api-test",
	}
	app := apphttp.NewApp(apphttp.AppConfig{Name: "test", RequestTimeout: 5 * time.Second}, logger.Nop())
	apphttp.Router(app, deps)
	return &apiEnv{store: s, app: app}
}

// seedUser crea el usuario en el store y devuelve su id y un header Bearer.
func (e *apiEnv) seedUser(t *testing.T, role string, rate int64) (string, string) {
	t.Helper()
	id := uuid.NewString()
	now := time.Now().UTC()
	require.NoError(t, e.store.Users().Create(context.Background(), &entity.User{
		ID: id, Name: role, Email: id + "@test.local", PasswordHash: "x",
		Role: role, HourlyRate: decimal.NewFromInt(rate), CreatedAt: now, UpdatedAt: now,
	}))
	tok, err := pkgjwt.Generate(testJWTSecret, id, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return id, "Bearer " + tok
}

func (e *apiEnv) do(t *testing.T, method, path, token string, body interface{}) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode(t *testing.T, b []byte) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m), string(b))
	return m
}

func TestAPI_RegistroLoginYMe(t *testing.T) {
	e := newAPI(t)

	status, body := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Ana", "email": "Ana@Example.com", "password": "secreto1", "role": "manager",
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	assert.Equal(t, "ana@example.com", decode(t, body)["email"])

	status, body = e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Ana", "email": "ana@example.com", "password": "secreto1",
	})
	assert.Equal(t, http.StatusConflict, status, string(body))

	status, body = e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ana@example.com", "password": "incorrecto",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ana@example.com", "password": "secreto1",
	})
	require.Equal(t, http.StatusOK, status, string(body))
	token, _ := decode(t, body)["token"].(string)
	require.NotEmpty(t, token)

	status, body = e.do(t, http.MethodGet, "/api/auth/me", "Bearer "+token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	me := decode(t, body)
	assert.Equal(t, "manager", me["role"])
	assert.NotContains(t, string(body), "password")
}

func TestAPI_ValidacionDelBody(t *testing.T) {
	e := newAPI(t)

	status, body := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "X", "email": "no-es-email", "password": "secreto1",
	})
	require.Equal(t, http.StatusBadRequest, status)
	m := decode(t, body)
	assert.Equal(t, "VALIDATION", m["code"])
	assert.Equal(t, "email", m["field"])

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{roto"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_RutasProtegidasSinToken(t *testing.T) {
	e := newAPI(t)
	status, body := e.do(t, http.MethodGet, "/api/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAPI_ProyectoManagerPorDefectoYNoEncontrado(t *testing.T) {
	e := newAPI(t)
	userID, token := e.seedUser(t, entity.RoleManager, 0)

	status, body := e.do(t, http.MethodPost, "/api/projects", token, map[string]interface{}{
		"name": "Portal", "status": "In Progress",
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	p := decode(t, body)
	assert.Equal(t, userID, p["manager_id"])
	assert.Equal(t, entity.ProjectInProgress, p["status"])
	assert.Equal(t, "In Progress", p["status_label"])

	status, body = e.do(t, http.MethodGet, "/api/projects/"+uuid.NewString(), token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decode(t, body)["code"])

	status, body = e.do(t, http.MethodPost, "/api/projects", token, map[string]interface{}{
		"name": "Otro", "manager_id": uuid.NewString(),
	})
	require.Equal(t, http.StatusBadRequest, status)
	m := decode(t, body)
	assert.Equal(t, "VALIDATION", m["code"])
	assert.Equal(t, "manager_id", m["field"])
}

func TestAPI_OrdenDeVentaConProveedorRechazada(t *testing.T) {
	e := newAPI(t)
	_, token := e.seedUser(t, entity.RoleFinance, 0)

	status, body := e.do(t, http.MethodPost, "/api/partners", token, map[string]string{
		"name": "ACME", "role": entity.PartnerVendor,
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	vendorID := decode(t, body)["id"].(string)

	status, body = e.do(t, http.MethodPost, "/api/sales-orders", token, map[string]interface{}{
		"partner_id": vendorID,
	})
	require.Equal(t, http.StatusBadRequest, status)
	m := decode(t, body)
	assert.Equal(t, "VALIDATION", m["code"])
	assert.Equal(t, "partner_id", m["field"])

	status, body = e.do(t, http.MethodGet, "/api/partners?role=vendor", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode(t, body)["items"], 1)

	status, _ = e.do(t, http.MethodGet, "/api/partners?role=otro", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAPI_AsignacionDuplicadaYQuitarPorPar(t *testing.T) {
	e := newAPI(t)
	userID, token := e.seedUser(t, entity.RoleManager, 0)

	status, body := e.do(t, http.MethodPost, "/api/tasks", token, map[string]string{"title": "Diseño"})
	require.Equal(t, http.StatusCreated, status, string(body))
	taskID := decode(t, body)["id"].(string)

	pair := map[string]string{"task_id": taskID, "user_id": userID}
	status, body = e.do(t, http.MethodPost, "/api/task-assignees", token, pair)
	require.Equal(t, http.StatusCreated, status, string(body))

	status, body = e.do(t, http.MethodPost, "/api/task-assignees", token, pair)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", decode(t, body)["code"])

	status, body = e.do(t, http.MethodGet, "/api/users/"+userID+"/task-count", token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	assert.EqualValues(t, 1, decode(t, body)["task_count"])

	status, _ = e.do(t, http.MethodDelete, "/api/task-assignees?task_id="+taskID+"&user_id="+userID, token, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = e.do(t, http.MethodDelete, "/api/task-assignees", token, pair)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAPI_BorradoDeProyectoEnCascada(t *testing.T) {
	e := newAPI(t)
	userID, managerToken := e.seedUser(t, entity.RoleManager, 40)
	_, memberToken := e.seedUser(t, entity.RoleTeamMember, 0)

	status, body := e.do(t, http.MethodPost, "/api/projects", managerToken, map[string]string{"name": "Obra"})
	require.Equal(t, http.StatusCreated, status, string(body))
	projectID := decode(t, body)["id"].(string)

	status, body = e.do(t, http.MethodPost, "/api/tasks", managerToken, map[string]string{"title": "T1", "project_id": projectID})
	require.Equal(t, http.StatusCreated, status, string(body))
	taskID := decode(t, body)["id"].(string)

	status, body = e.do(t, http.MethodPost, "/api/time-entries", managerToken, map[string]string{"task_id": taskID, "hours": "2"})
	require.Equal(t, http.StatusCreated, status, string(body))
	entryID := decode(t, body)["id"].(string)
	assert.Equal(t, userID, decode(t, body)["user_id"])

	status, _ = e.do(t, http.MethodDelete, "/api/projects/"+projectID, memberToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, body = e.do(t, http.MethodDelete, "/api/projects/"+projectID, managerToken, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	res := decode(t, body)
	assert.EqualValues(t, 1, res["tasks"])
	assert.EqualValues(t, 1, res["time_entries"])

	for _, path := range []string{"/api/projects/" + projectID, "/api/tasks/" + taskID, "/api/time-entries/" + entryID} {
		status, _ = e.do(t, http.MethodGet, path, managerToken, nil)
		assert.Equal(t, http.StatusNotFound, status, path)
	}
}

func TestAPI_ResumenDeProyecto(t *testing.T) {
	e := newAPI(t)
	_, token := e.seedUser(t, entity.RoleManager, 50)

	_, body := e.do(t, http.MethodPost, "/api/projects", token, map[string]string{"name": "Resumen"})
	projectID := decode(t, body)["id"].(string)

	for _, st := range []string{"done", "new"} {
		status, b := e.do(t, http.MethodPost, "/api/tasks", token, map[string]string{"title": st, "project_id": projectID, "status": st})
		require.Equal(t, http.StatusCreated, status, string(b))
	}
	status, body := e.do(t, http.MethodPost, "/api/expenses", token, map[string]string{"project_id": projectID, "amount": "120"})
	require.Equal(t, http.StatusCreated, status, string(body))

	status, body = e.do(t, http.MethodGet, "/api/projects/"+projectID+"/summary", token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	m := decode(t, body)
	assert.EqualValues(t, 50, m["progress"])
	assert.Equal(t, float64(0), m["revenue"])
	assert.Equal(t, float64(120), m["cost"])

	status, body = e.do(t, http.MethodGet, "/api/projects/"+projectID+"/tasks", token, nil)
	require.Equal(t, http.StatusOK, status)
	var tasks []map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &tasks))
	assert.Len(t, tasks, 2)
}

// 4 tareas (1 done), orden de venta de 1000, gasto de 200 y 5 h a 50/h.
func TestAPI_ResumenConImportesNumericos(t *testing.T) {
	e := newAPI(t)
	userID, token := e.seedUser(t, entity.RoleManager, 50)

	_, body := e.do(t, http.MethodPost, "/api/projects", token, map[string]string{"name": "Escenario"})
	projectID := decode(t, body)["id"].(string)

	var doneTask string
	for _, st := range []string{"done", "new", "new", "blocked"} {
		status, b := e.do(t, http.MethodPost, "/api/tasks", token, map[string]string{"title": st, "project_id": projectID, "status": st})
		require.Equal(t, http.StatusCreated, status, string(b))
		if st == "done" {
			doneTask = decode(t, b)["id"].(string)
		}
	}
	status, body := e.do(t, http.MethodPost, "/api/sales-orders", token, map[string]string{"project_id": projectID, "total_amount": "1000"})
	require.Equal(t, http.StatusCreated, status, string(body))
	status, body = e.do(t, http.MethodPost, "/api/expenses", token, map[string]string{"project_id": projectID, "amount": "200"})
	require.Equal(t, http.StatusCreated, status, string(body))
	status, body = e.do(t, http.MethodPost, "/api/time-entries", token, map[string]string{"task_id": doneTask, "user_id": userID, "hours": "5"})
	require.Equal(t, http.StatusCreated, status, string(body))

	status, body = e.do(t, http.MethodGet, "/api/projects/"+projectID+"/summary", token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Contains(t, string(body), `"revenue":1000`)
	assert.Contains(t, string(body), `"cost":450`)

	m := decode(t, body)
	assert.EqualValues(t, 25, m["progress"])
	assert.Equal(t, float64(1000), m["revenue"])
	assert.Equal(t, float64(450), m["cost"])
	counts := m["taskCounts"].(map[string]interface{})
	assert.EqualValues(t, 4, counts["total"])
	assert.EqualValues(t, 1, counts["done"])
}

func TestAPI_LineaConSubtotalDerivadoYPDF(t *testing.T) {
	e := newAPI(t)
	_, token := e.seedUser(t, entity.RoleFinance, 0)

	_, body := e.do(t, http.MethodPost, "/api/partners", token, map[string]string{"name": "Cliente", "role": entity.PartnerCustomer})
	customerID := decode(t, body)["id"].(string)
	status, body := e.do(t, http.MethodPost, "/api/products", token, map[string]interface{}{"name": "Hora consultoría", "unit_price": "100"})
	require.Equal(t, http.StatusCreated, status, string(body))
	productID := decode(t, body)["id"].(string)

	status, body = e.do(t, http.MethodPost, "/api/sales-orders", token, map[string]string{"partner_id": customerID})
	require.Equal(t, http.StatusCreated, status, string(body))
	orderID := decode(t, body)["id"].(string)

	status, body = e.do(t, http.MethodPost, "/api/sales-order-items", token, map[string]interface{}{
		"sales_order_id": orderID, "product_id": productID, "quantity": 3,
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	assert.Equal(t, "300", decode(t, body)["sub_total"])

	status, body = e.do(t, http.MethodGet, "/api/sales-order-items?document_id="+orderID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode(t, body)["items"], 1)

	status, body = e.do(t, http.MethodPost, "/api/invoices", token, map[string]string{"sales_order_id": orderID})
	require.Equal(t, http.StatusCreated, status, string(body))
	invoiceID := decode(t, body)["id"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/"+invoiceID+"/pdf", nil)
	req.Header.Set("Authorization", token)
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "factura_")
	pdf, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestAPI_DashboardYCatalogoDeEstados(t *testing.T) {
	e := newAPI(t)
	_, token := e.seedUser(t, entity.RoleAdmin, 0)

	status, body := e.do(t, http.MethodGet, "/api/meta/statuses", "", nil)
	require.Equal(t, http.StatusOK, status)
	var catalog struct {
		Project []map[string]string `json:"project"`
		Task    []map[string]string `json:"task"`
	}
	require.NoError(t, json.Unmarshal(body, &catalog))
	assert.Len(t, catalog.Project, len(entity.ProjectStatuses))
	assert.Len(t, catalog.Task, len(entity.TaskStatuses))

	_, _ = e.do(t, http.MethodPost, "/api/projects", token, map[string]string{"name": "A"})
	status, body = e.do(t, http.MethodGet, "/api/dashboard/summary", token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	m := decode(t, body)
	assert.EqualValues(t, 1, m["total_projects"])
	byStatus := m["projects_by_status"].(map[string]interface{})
	assert.EqualValues(t, 1, byStatus[entity.ProjectPlanned])
	assert.EqualValues(t, 0, byStatus[entity.ProjectCompleted])
}

func TestAPI_SoloAdminModificaUsuarios(t *testing.T) {
	e := newAPI(t)
	targetID, memberToken := e.seedUser(t, entity.RoleTeamMember, 0)
	_, adminToken := e.seedUser(t, entity.RoleAdmin, 0)

	status, _ := e.do(t, http.MethodPut, "/api/users/"+targetID, memberToken, map[string]string{"name": "Yo"})
	assert.Equal(t, http.StatusForbidden, status)

	status, body := e.do(t, http.MethodPut, "/api/users/"+targetID, adminToken, map[string]string{"role": "finance"})
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Equal(t, "finance", decode(t, body)["role"])

	status, _ = e.do(t, http.MethodDelete, "/api/users/"+targetID, adminToken, nil)
	assert.Equal(t, http.StatusNoContent, status)
}

func TestAPI_Health(t *testing.T) {
	e := newAPI(t)
	status, body := e.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", decode(t, body)["status"])

	status, body = e.do(t, http.MethodGet, "/db-health", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "none", decode(t, body)["database"])
}
