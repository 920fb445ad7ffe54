package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vendor-dashboard-api/internal/api/handler"
	"github.com/vfg2006/vendor-dashboard-api/internal/config"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
	"github.com/vfg2006/vendor-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/vendor-dashboard-api/internal/usecases/cataloging"
	"github.com/vfg2006/vendor-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/vendor-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/vendor-dashboard-api/pkg/log"
	"github.com/vfg2006/vendor-dashboard-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type stubAuthenticator struct {
	authenticating.Authenticator
}

func (stubAuthenticator) ValidateToken(token string) (*domain.Claims, error) {
	switch token {
	case "vendor":
		return &domain.Claims{VendorID: "v1", Role: domain.RoleVendor}, nil
	case "admin":
		return &domain.Claims{VendorID: "a1", Role: domain.RoleAdmin}, nil
	}
	return nil, authenticating.NewAuthError(authenticating.ErrInvalidToken, apiErrors.ErrInvalidToken, nil)
}

func (stubAuthenticator) Login(_ context.Context, email, password string) (*domain.Vendor, string, error) {
	if email == "ada@loja.com" && password == "segredo1" {
		return &domain.Vendor{ID: "v1", Email: email}, "token-assinado", nil
	}
	return nil, "", authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Senha incorreta")
}

type stubReporter struct {
	dashboard.Reporter
	salesErr   error
	stockQuery dashboard.StockQuery
	alertLimit int
}

func (s *stubReporter) GetSalesReport(_ context.Context, vendorID string) (*domain.SalesReport, error) {
	if s.salesErr != nil {
		return nil, s.salesErr
	}
	return &domain.SalesReport{
		TotalSales: decimal.NewFromInt(150),
		Growth:     domain.Growth{Day: "50.00", Week: "0.00", Month: "100.00"},
	}, nil
}

func (s *stubReporter) ListStock(_ context.Context, vendorID string, query dashboard.StockQuery) (*dashboard.StockPage, error) {
	s.stockQuery = query
	return &dashboard.StockPage{Rows: []domain.StockRow{}}, nil
}

func (s *stubReporter) ListStockAlerts(_ context.Context, vendorID string, limit int) ([]domain.StockAlertSnapshot, error) {
	s.alertLimit = limit
	return []domain.StockAlertSnapshot{}, nil
}

func (s *stubReporter) ExportSalesReport(_ context.Context, vendorID string, w io.Writer) error {
	_, err := w.Write([]byte("PK-planilha"))
	return err
}

type stubCataloger struct {
	cataloging.Cataloger
	updatedQty int
}

func (s *stubCataloger) UpdateSizeQty(_ context.Context, vendorID, productID, sizeID string, qty int) error {
	if sizeID != "s1" {
		return cataloging.NewCatalogError(cataloging.ErrSizeNotFound, apiErrors.ErrNotFound, sizeID)
	}
	s.updatedQty = qty
	return nil
}

type stubJob struct {
	running bool
}

func (j *stubJob) TriggerManualSync() bool {
	return !j.running
}

func (j *stubJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": j.running}
}

type fixture struct {
	reporter  *stubReporter
	cataloger *stubCataloger
	job       *stubJob
	handler   http.Handler
}

func newFixture() *fixture {
	log.SetupTestLogger()

	f := &fixture{
		reporter:  &stubReporter{},
		cataloger: &stubCataloger{},
		job:       &stubJob{},
	}

	cfg := &config.Config{
		Server: config.Server{AllowedOrigins: []string{"http://localhost:3000"}},
		Auth:   config.Auth{CookieMaxAge: 2 * time.Hour},
	}

	f.handler = NewHandler(cfg, Services{
		Authenticator: stubAuthenticator{},
		Reporter:      f.reporter,
		Cataloger:     f.cataloger,
		CronJobs:      handler.CronJobServices{"stock-alerts": f.job},
	})
	return f
}

func (f *fixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestSignin(t *testing.T) {
	t.Run("Login grava o cookie vendor_token", func(t *testing.T) {
		f := newFixture()
		rec := f.do(http.MethodPost, "/v1/signin", "", `{"email":"ada@loja.com","password":"segredo1"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var body handler.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "token-assinado", body.Token)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, middleware.TokenCookieName, cookies[0].Name)
		assert.Equal(t, "token-assinado", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.True(t, cookies[0].Secure)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
		assert.Equal(t, 7200, cookies[0].MaxAge)
	})

	t.Run("Senha incorreta", func(t *testing.T) {
		f := newFixture()
		rec := f.do(http.MethodPost, "/v1/signin", "", `{"email":"ada@loja.com","password":"errada"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, errorCode(t, rec).Code)
	})

	t.Run("Corpo inválido", func(t *testing.T) {
		f := newFixture()
		rec := f.do(http.MethodPost, "/v1/signin", "", `{`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDashboardRoutes(t *testing.T) {
	t.Run("Relatório de vendas exige autenticação", func(t *testing.T) {
		f := newFixture()
		rec := f.do(http.MethodGet, "/v1/dashboard/sales", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Relatório de vendas", func(t *testing.T) {
		f := newFixture()
		rec := f.do(http.MethodGet, "/v1/dashboard/sales", "vendor", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var report domain.SalesReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.True(t, decimal.NewFromInt(150).Equal(report.TotalSales))
		assert.Equal(t, "50.00", report.Growth.Day)
	})

	t.Run("Erro de banco não expõe detalhes", func(t *testing.T) {
		f := newFixture()
		f.reporter.salesErr = dashboard.NewDashboardError(dashboard.ErrLoadOrders, apiErrors.ErrDatabaseOperation, "pq: senha incorreta para o usuário")
		rec := f.do(http.MethodGet, "/v1/dashboard/sales", "vendor", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		apiErr := errorCode(t, rec)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, apiErr.Code)
		assert.Nil(t, apiErr.Details)
	})

	t.Run("Filtros do estoque chegam ao serviço", func(t *testing.T) {
		f := newFixture()
		rec := f.do(http.MethodGet, "/v1/dashboard/stock?type=out&search=camisa&page=2&page_size=5", "vendor", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, dashboard.StockQuery{Type: "out", Search: "camisa", Page: 2, PageSize: 5}, f.reporter.stockQuery)
	})

	t.Run("Limite inválido dos alertas usa o padrão do serviço", func(t *testing.T) {
		f := newFixture()
		f.reporter.alertLimit = -1
		rec := f.do(http.MethodGet, "/v1/dashboard/stock/alerts?limit=abc", "vendor", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, f.reporter.alertLimit)
	})

	t.Run("Limite dos alertas chega ao serviço", func(t *testing.T) {
		f := newFixture()
		rec := f.do(http.MethodGet, "/v1/dashboard/stock/alerts?limit=7", "vendor", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 7, f.reporter.alertLimit)
	})

	t.Run("Exportação devolve XLSX", func(t *testing.T) {
		f := newFixture()
		rec := f.do(http.MethodGet, "/v1/dashboard/sales/export", "vendor", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
		assert.Equal(t, "PK-planilha", rec.Body.String())
	})
}

func TestProductAndCategoryRoutes(t *testing.T) {
	t.Run("Atualiza quantidade do tamanho", func(t *testing.T) {
		f := newFixture()
		rec := f.do(http.MethodPut, "/v1/products/p1/sizes/s1", "vendor", `{"qty":3}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, 3, f.cataloger.updatedQty)
	})

	t.Run("Quantidade obrigatória", func(t *testing.T) {
		f := newFixture()
		rec := f.do(http.MethodPut, "/v1/products/p1/sizes/s1", "vendor", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, errorCode(t, rec).Code)
	})

	t.Run("Tamanho inexistente", func(t *testing.T) {
		f := newFixture()
		rec := f.do(http.MethodPut, "/v1/products/p1/sizes/s9", "vendor", `{"qty":1}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrNotFound, errorCode(t, rec).Code)
	})

	t.Run("Vendedor não cria categoria", func(t *testing.T) {
		f := newFixture()
		rec := f.do(http.MethodPost, "/v1/categories", "vendor", `{"name":"Roupas"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestCronRoutes(t *testing.T) {
	t.Run("Administrador dispara a sincronização", func(t *testing.T) {
		f := newFixture()
		rec := f.do(http.MethodPost, "/v1/cron/stock-alerts/run", "admin", "")

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("Sincronização já em andamento", func(t *testing.T) {
		f := newFixture()
		f.job.running = true
		rec := f.do(http.MethodPost, "/v1/cron/stock-alerts/run", "admin", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrJobRunning, errorCode(t, rec).Code)
	})

	t.Run("Tipo desconhecido", func(t *testing.T) {
		f := newFixture()
		rec := f.do(http.MethodPost, "/v1/cron/outro/run", "admin", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Vendedor não acessa o status", func(t *testing.T) {
		f := newFixture()
		rec := f.do(http.MethodGet, "/v1/cron/status", "vendor", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Status das crons", func(t *testing.T) {
		f := newFixture()
		rec := f.do(http.MethodGet, "/v1/cron/status", "admin", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "stock-alerts")
	})
}

func TestHealthcheckAndNotFound(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodGet, "/healthcheck", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = f.do(http.MethodGet, "/v1/inexistente", "vendor", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNew_RequiresServices(t *testing.T) {
	server, err := New(&config.Config{}, Services{})
	assert.Error(t, err)
	assert.Nil(t, server)
}
