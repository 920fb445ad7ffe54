// Package scheduler contém os serviços de agendamento executados em segundo plano
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vendor-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/vendor-dashboard-api/internal/analytics"
	"github.com/vfg2006/vendor-dashboard-api/internal/config"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
)

// JobStockAlerts identifica o job na rota de execução manual
const JobStockAlerts = "stock-alerts"

type StockAlertSyncConfig struct {
	CronSchedule      string
	SyncEnabled       bool
	LowStockThreshold int
}

// SyncResult resume a última execução do job
type SyncResult struct {
	Vendors   int `json:"vendors"`
	Snapshots int `json:"snapshots"`
	Failures  int `json:"failures"`
}

type StockAlertSyncService struct {
	scheduler           *gocron.Scheduler
	vendorRepo          repository.VendorRepository
	productRepo         repository.ProductRepository
	alertRepo           repository.StockAlertRepository
	config              StockAlertSyncConfig
	location            *time.Location
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          SyncResult
}

func NewStockAlertSyncService(
	vendorRepo repository.VendorRepository,
	productRepo repository.ProductRepository,
	alertRepo repository.StockAlertRepository,
	cfg *config.Config,
) *StockAlertSyncService {
	syncConfig := StockAlertSyncConfig{
		CronSchedule:      cfg.StockAlertSync.CronSchedule, // Default: 7h da manhã todos os dias
		SyncEnabled:       cfg.StockAlertSync.Enabled,      // Default: desabilitado
		LowStockThreshold: cfg.Dashboard.LowStockThreshold,
	}

	location := cfg.Dashboard.Location
	if location == nil {
		location = time.UTC
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"timezone":      location.String(),
	}).Info("Configuração do agendador de alertas de estoque carregada")

	return &StockAlertSyncService{
		scheduler:   gocron.NewScheduler(location),
		vendorRepo:  vendorRepo,
		productRepo: productRepo,
		alertRepo:   alertRepo,
		config:      syncConfig,
		location:    location,
		now:         time.Now,
	}
}

func (s *StockAlertSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de alertas de estoque desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de alertas de estoque")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncStockAlerts(ctx); err != nil {
			logrus.WithError(err).Error("Erro na sincronização de alertas de estoque")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de alertas de estoque: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de alertas de estoque")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncStockAlerts classifica o estoque de todos os vendedores e grava um retrato por vendedor.
// Falha em um vendedor não interrompe os demais.
func (s *StockAlertSyncService) SyncStockAlerts(ctx context.Context) error {
	if !s.acquireSync() {
		logrus.Warn("Sincronização de alertas de estoque já está em execução")
		return nil
	}

	return s.runSync(ctx)
}

// acquireSync marca a sincronização como em execução. Retorna false se já houver uma.
func (s *StockAlertSyncService) acquireSync() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

// runSync exige que acquireSync já tenha marcado a execução; libera a marca ao terminar
func (s *StockAlertSyncService) runSync(ctx context.Context) error {
	result := SyncResult{}
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastResult = result
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de alertas de estoque")

	vendorIDs, err := s.vendorRepo.ListIDs(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar vendedores para alertas de estoque")
		return err
	}

	result.Vendors = len(vendorIDs)
	capturedAt := s.now().In(s.location)

	for _, vendorID := range vendorIDs {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err := s.captureSnapshot(ctx, vendorID, capturedAt); err != nil {
			result.Failures++
			logrus.WithError(err).WithField("vendor_id", vendorID).Error("Erro ao gravar alerta de estoque")
			continue
		}
		result.Snapshots++
	}

	logrus.WithFields(logrus.Fields{
		"vendors":   result.Vendors,
		"snapshots": result.Snapshots,
		"failures":  result.Failures,
	}).Info("Sincronização de alertas de estoque concluída")

	return nil
}

func (s *StockAlertSyncService) captureSnapshot(ctx context.Context, vendorID string, capturedAt time.Time) error {
	products, err := s.productRepo.ListWithStock(ctx, vendorID)
	if err != nil {
		return fmt.Errorf("erro ao buscar produtos: %w", err)
	}

	report := analytics.ClassifyStock(products, s.config.LowStockThreshold)

	return s.alertRepo.Save(ctx, &domain.StockAlertSnapshot{
		VendorID:        vendorID,
		CapturedAt:      capturedAt,
		LowStockCount:   len(report.LowStock),
		OutOfStockCount: len(report.OutOfStock),
	})
}

// TriggerManualSync inicia manualmente uma sincronização. Retorna false se já houver uma em andamento.
func (s *StockAlertSyncService) TriggerManualSync() bool {
	if !s.acquireSync() {
		logrus.Info("Sincronização de alertas de estoque já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de alertas de estoque")
	go func() {
		if err := s.runSync(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na sincronização manual de alertas de estoque")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *StockAlertSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
