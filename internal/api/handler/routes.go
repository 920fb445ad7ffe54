package handler

import (
	"net/http"

	"github.com/vfg2006/vendor-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/vendor-dashboard-api/internal/config"
	"github.com/vfg2006/vendor-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/vendor-dashboard-api/internal/usecases/cataloging"
	"github.com/vfg2006/vendor-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/vendor-dashboard-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator, cfg config.Auth) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/signup",
			Method:  http.MethodPost,
			Handler: Signup(service, cfg),
		},
		{
			Path:    "/v1/signin",
			Method:  http.MethodPost,
			Handler: Signin(service, cfg),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOrAdmin()},
		},
	}
}

func Dashboard(service dashboard.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOrAdmin()},
		},
		{
			Path:        "/v1/dashboard/sales",
			Method:      http.MethodGet,
			Handler:     GetSalesReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOrAdmin()},
		},
		{
			Path:        "/v1/dashboard/sales/export",
			Method:      http.MethodGet,
			Handler:     ExportSalesReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOrAdmin()},
		},
		{
			Path:        "/v1/dashboard/stock",
			Method:      http.MethodGet,
			Handler:     ListStock(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOrAdmin()},
		},
		{
			Path:        "/v1/dashboard/stock/alerts",
			Method:      http.MethodGet,
			Handler:     ListStockAlerts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOrAdmin()},
		},
		{
			Path:        "/v1/dashboard/orders/summary",
			Method:      http.MethodGet,
			Handler:     GetOrderSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOrAdmin()},
		},
		{
			Path:        "/v1/dashboard/products/performance",
			Method:      http.MethodGet,
			Handler:     GetProductPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOrAdmin()},
		},
	}
}

func Products(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOrAdmin()},
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOrAdmin()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodGet,
			Handler:     GetProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOrAdmin()},
		},
		{
			Path:        "/v1/products/:id/sizes/:size_id",
			Method:      http.MethodPut,
			Handler:     UpdateSizeQty(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOrAdmin()},
		},
	}
}

func Categories(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/categories",
			Method:      http.MethodGet,
			Handler:     ListCategories(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOrAdmin()},
		},
		{
			Path:        "/v1/categories",
			Method:      http.MethodPost,
			Handler:     CreateCategory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/categories/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCategory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/categories/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCategory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
