package dashboard

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/vfg2006/vendor-dashboard-api/infrastructure/exporter"
	"github.com/vfg2006/vendor-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/vendor-dashboard-api/internal/analytics"
	"github.com/vfg2006/vendor-dashboard-api/internal/config"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
	"github.com/vfg2006/vendor-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/vendor-dashboard-api/pkg/currency"
	"github.com/vfg2006/vendor-dashboard-api/pkg/log"
	"github.com/vfg2006/vendor-dashboard-api/pkg/utils"
)

// Clock devolve o instante atual. Injetado para tornar os relatórios reproduzíveis.
type Clock func() time.Time

const (
	StockTypeLow = "low"
	StockTypeOut = "out"

	DefaultStockAlertsLimit = 30
)

// StockQuery filtra a listagem de estoque do painel
type StockQuery struct {
	Type     string
	Search   string
	Page     int
	PageSize int
}

type StockPage struct {
	Rows       []domain.StockRow `json:"rows"`
	Pagination utils.Pagination  `json:"pagination"`
}

// Reporter gera os relatórios do painel do vendedor. Todas as operações recebem o
// vendedor explicitamente e nunca devolvem relatório zerado no lugar de um erro.
type Reporter interface {
	GetSalesReport(ctx context.Context, vendorID string) (*domain.SalesReport, error)
	GetStockReport(ctx context.Context, vendorID string) (*domain.StockReport, error)
	ListStock(ctx context.Context, vendorID string, query StockQuery) (*StockPage, error)
	GetOrderSummary(ctx context.Context, vendorID string) (*domain.OrderSummary, error)
	GetOverview(ctx context.Context, vendorID string) (*domain.Overview, error)
	GetProductPerformance(ctx context.Context, vendorID string) (*domain.ProductPerformance, error)
	ExportSalesReport(ctx context.Context, vendorID string, w io.Writer) error
	ListStockAlerts(ctx context.Context, vendorID string, limit int) ([]domain.StockAlertSnapshot, error)
}

type Service struct {
	vendorRepo  repository.VendorRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	alertRepo   repository.StockAlertRepository
	cfg         config.Dashboard
	now         Clock
}

func NewService(
	vendorRepo repository.VendorRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	alertRepo repository.StockAlertRepository,
	cfg config.Dashboard,
	clock Clock,
) Reporter {
	if clock == nil {
		clock = time.Now
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	return &Service{
		vendorRepo:  vendorRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		alertRepo:   alertRepo,
		cfg:         cfg,
		now:         clock,
	}
}

// GetSalesReport agrega as vendas do vendedor por período, no fuso configurado
func (s *Service) GetSalesReport(ctx context.Context, vendorID string) (*domain.SalesReport, error) {
	orders, err := s.loadOrders(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	report := analytics.Aggregate(s.localNow(), orders)
	return &report, nil
}

func (s *Service) GetStockReport(ctx context.Context, vendorID string) (*domain.StockReport, error) {
	products, err := s.loadProducts(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	report := analytics.ClassifyStock(products, s.cfg.LowStockThreshold)
	return &report, nil
}

// ListStock devolve uma das listas (baixo ou sem estoque) filtrada por nome e paginada
func (s *Service) ListStock(ctx context.Context, vendorID string, query StockQuery) (*StockPage, error) {
	stockType := strings.ToLower(strings.TrimSpace(query.Type))
	if stockType == "" {
		stockType = StockTypeLow
	}
	if stockType != StockTypeLow && stockType != StockTypeOut {
		return nil, NewDashboardError(ErrInvalidStockType, apiErrors.ErrInvalidRequest, query.Type)
	}

	report, err := s.GetStockReport(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	rows := report.LowStock
	if stockType == StockTypeOut {
		rows = report.OutOfStock
	}

	if search := strings.ToLower(strings.TrimSpace(query.Search)); search != "" {
		filtered := make([]domain.StockRow, 0, len(rows))
		for _, row := range rows {
			if strings.Contains(strings.ToLower(row.ProductName), search) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	pagination := utils.NewPagination(query.Page, query.PageSize).WithTotal(len(rows))
	start := pagination.Offset()
	if start < 0 || start > len(rows) {
		start = len(rows)
	}
	end := start + pagination.PageSize
	if end > len(rows) {
		end = len(rows)
	}

	return &StockPage{
		Rows:       rows[start:end],
		Pagination: pagination,
	}, nil
}

func (s *Service) GetOrderSummary(ctx context.Context, vendorID string) (*domain.OrderSummary, error) {
	orders, err := s.loadOrders(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	summary := analytics.SummarizeOrders(orders)
	return &summary, nil
}

// GetOverview monta o resumo da página inicial do painel
func (s *Service) GetOverview(ctx context.Context, vendorID string) (*domain.Overview, error) {
	vendor, err := s.loadVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	orders, err := s.loadOrders(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	products, err := s.loadProducts(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	earnings, unpaid := analytics.EarningsTotals(orders)
	stock := analytics.ClassifyStock(products, s.cfg.LowStockThreshold)

	return &domain.Overview{
		Vendor:             vendor.Name,
		Country:            vendor.Country,
		TotalOrders:        len(orders),
		TotalEarnings:      earnings,
		UnpaidAmount:       unpaid,
		FormattedEarnings:  currency.Format(earnings, vendor.Country, false),
		FormattedUnpaid:    currency.Format(unpaid, vendor.Country, false),
		ProductCount:       len(products),
		RecentOrders:       analytics.RecentOrders(orders, s.cfg.RecentOrdersLimit),
		LowStockProducts:   stock.LowStock,
		OutOfStockProducts: stock.OutOfStock,
	}, nil
}

func (s *Service) GetProductPerformance(ctx context.Context, vendorID string) (*domain.ProductPerformance, error) {
	orders, err := s.loadOrders(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	return &domain.ProductPerformance{
		TopProducts: analytics.TopSellingProducts(orders, s.cfg.TopProductsLimit),
		Sizes:       analytics.SizeAnalytics(orders),
	}, nil
}

// ExportSalesReport grava a planilha de vendas e estoque no writer
func (s *Service) ExportSalesReport(ctx context.Context, vendorID string, w io.Writer) error {
	report, err := s.GetSalesReport(ctx, vendorID)
	if err != nil {
		return err
	}

	stock, err := s.GetStockReport(ctx, vendorID)
	if err != nil {
		return err
	}

	if err := exporter.WriteSalesReport(w, *report, *stock, s.localNow()); err != nil {
		log.ForContext(ctx).WithError(err).WithField("vendor_id", vendorID).Error("Erro ao gerar planilha")
		return NewDashboardError(ErrExport, apiErrors.ErrInternalServer, err.Error())
	}

	return nil
}

// ListStockAlerts devolve os retratos de estoque gravados pelo agendador, do mais recente ao mais antigo
func (s *Service) ListStockAlerts(ctx context.Context, vendorID string, limit int) ([]domain.StockAlertSnapshot, error) {
	if vendorID == "" {
		return nil, NewDashboardError(ErrMissingVendor, apiErrors.ErrInvalidRequest, "")
	}
	if limit < 1 || limit > utils.MaxPageSize {
		limit = DefaultStockAlertsLimit
	}

	snapshots, err := s.alertRepo.ListByVendor(ctx, vendorID, limit)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("vendor_id", vendorID).Error("Erro ao buscar alertas de estoque")
		return nil, NewDashboardError(ErrLoadStockAlerts, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return snapshots, nil
}

func (s *Service) localNow() time.Time {
	return s.now().In(s.cfg.Location)
}

func (s *Service) loadVendor(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	if vendorID == "" {
		return nil, NewDashboardError(ErrMissingVendor, apiErrors.ErrInvalidRequest, "")
	}

	vendor, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("vendor_id", vendorID).Error("Erro ao buscar vendedor")
		return nil, NewDashboardError(ErrLoadVendor, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if vendor == nil {
		return nil, NewDashboardError(ErrVendorNotFound, apiErrors.ErrVendorNotFound, vendorID)
	}

	return vendor, nil
}

func (s *Service) loadOrders(ctx context.Context, vendorID string) ([]domain.Order, error) {
	if vendorID == "" {
		return nil, NewDashboardError(ErrMissingVendor, apiErrors.ErrInvalidRequest, "")
	}

	orders, err := s.orderRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("vendor_id", vendorID).Error("Erro ao buscar pedidos")
		return nil, NewDashboardError(ErrLoadOrders, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return orders, nil
}

func (s *Service) loadProducts(ctx context.Context, vendorID string) ([]domain.Product, error) {
	if vendorID == "" {
		return nil, NewDashboardError(ErrMissingVendor, apiErrors.ErrInvalidRequest, "")
	}

	products, err := s.productRepo.ListWithStock(ctx, vendorID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("vendor_id", vendorID).Error("Erro ao buscar produtos")
		return nil, NewDashboardError(ErrLoadProducts, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return products, nil
}
