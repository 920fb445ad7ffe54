package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vendor-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/vendor-dashboard-api/internal/config"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var syncNow = time.Date(2024, 1, 16, 7, 0, 0, 0, time.UTC)

func productWithSizes(id string, qtys ...int) domain.Product {
	sizes := make([]domain.Size, 0, len(qtys))
	for _, qty := range qtys {
		sizes = append(sizes, domain.Size{Size: "M", Qty: qty})
	}
	return domain.Product{
		ID:          id,
		Name:        id,
		SubProducts: []domain.SubProduct{{ID: id + "-sp", Sizes: sizes}},
	}
}

func TestStockAlertSyncService_SyncStockAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendorRepo := mocks.NewMockVendorRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)
	alertRepo := mocks.NewMockStockAlertRepository(ctrl)

	newService := func() *StockAlertSyncService {
		return &StockAlertSyncService{
			vendorRepo:  vendorRepo,
			productRepo: productRepo,
			alertRepo:   alertRepo,
			config:      StockAlertSyncConfig{LowStockThreshold: 5},
			location:    time.UTC,
			now:         func() time.Time { return syncNow },
		}
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, service *StockAlertSyncService, err error)
	}{
		{
			name: "Grava um retrato por vendedor",
			setup: func() {
				vendorRepo.EXPECT().ListIDs(gomock.Any()).Return([]string{"v1", "v2"}, nil)

				productRepo.EXPECT().ListWithStock(gomock.Any(), "v1").
					Return([]domain.Product{productWithSizes("p1", 0, 2, 10)}, nil)
				productRepo.EXPECT().ListWithStock(gomock.Any(), "v2").
					Return([]domain.Product{}, nil)

				alertRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, snapshot *domain.StockAlertSnapshot) error {
						switch snapshot.VendorID {
						case "v1":
							assert.Equal(t, 1, snapshot.LowStockCount)
							assert.Equal(t, 1, snapshot.OutOfStockCount)
						case "v2":
							assert.Zero(t, snapshot.LowStockCount)
							assert.Zero(t, snapshot.OutOfStockCount)
						default:
							t.Errorf("vendedor inesperado %s", snapshot.VendorID)
						}
						assert.True(t, syncNow.Equal(snapshot.CapturedAt))
						return nil
					}).Times(2)
			},
			validate: func(t *testing.T, service *StockAlertSyncService, err error) {
				require.NoError(t, err)
				assert.Equal(t, SyncResult{Vendors: 2, Snapshots: 2}, service.lastResult)
				assert.False(t, service.syncRunning)
			},
		},
		{
			name: "Falha em um vendedor não interrompe os demais",
			setup: func() {
				vendorRepo.EXPECT().ListIDs(gomock.Any()).Return([]string{"v1", "v2"}, nil)

				productRepo.EXPECT().ListWithStock(gomock.Any(), "v1").Return(nil, errors.New("timeout"))
				productRepo.EXPECT().ListWithStock(gomock.Any(), "v2").
					Return([]domain.Product{productWithSizes("p2", 3)}, nil)

				alertRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, service *StockAlertSyncService, err error) {
				require.NoError(t, err)
				assert.Equal(t, SyncResult{Vendors: 2, Snapshots: 1, Failures: 1}, service.lastResult)
			},
		},
		{
			name: "Erro ao listar vendedores",
			setup: func() {
				vendorRepo.EXPECT().ListIDs(gomock.Any()).Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, service *StockAlertSyncService, err error) {
				require.Error(t, err)
				assert.False(t, service.syncRunning)
				assert.Equal(t, syncNow, service.lastSyncCompletedAt)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newService()
			tt.setup()

			err := service.SyncStockAlerts(context.Background())
			tt.validate(t, service, err)
		})
	}
}

func TestStockAlertSyncService_SyncAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// nenhum repositório deve ser chamado
	service := &StockAlertSyncService{
		vendorRepo:  mocks.NewMockVendorRepository(ctrl),
		productRepo: mocks.NewMockProductRepository(ctrl),
		alertRepo:   mocks.NewMockStockAlertRepository(ctrl),
		location:    time.UTC,
		now:         func() time.Time { return syncNow },
		syncRunning: true,
	}

	assert.NoError(t, service.SyncStockAlerts(context.Background()))
	assert.False(t, service.TriggerManualSync())
}

func TestStockAlertSyncService_StartDisabled(t *testing.T) {
	service := NewStockAlertSyncService(nil, nil, nil, &config.Config{
		StockAlertSync: config.StockAlertSync{CronSchedule: "0 7 * * *", Enabled: false},
	})

	require.NoError(t, service.Start(context.Background()))

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, "0 7 * * *", status["sync_cron"])
	assert.Equal(t, false, status["sync_running"])
}

func TestStockAlertSyncService_TriggerManualSyncTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendorRepo := mocks.NewMockVendorRepository(ctrl)
	service := &StockAlertSyncService{
		vendorRepo:  vendorRepo,
		productRepo: mocks.NewMockProductRepository(ctrl),
		alertRepo:   mocks.NewMockStockAlertRepository(ctrl),
		location:    time.UTC,
		now:         func() time.Time { return syncNow },
	}

	started := make(chan struct{})
	release := make(chan struct{})
	finished := make(chan struct{})

	// a primeira execução fica presa em ListIDs até o teste liberar
	vendorRepo.EXPECT().ListIDs(gomock.Any()).
		DoAndReturn(func(context.Context) ([]string, error) {
			close(started)
			<-release
			return nil, nil
		}).Times(1)

	require.True(t, service.TriggerManualSync())
	assert.False(t, service.TriggerManualSync())
	assert.Equal(t, true, service.GetStatus()["sync_running"])

	<-started
	assert.NoError(t, service.SyncStockAlerts(context.Background()))
	close(release)

	go func() {
		defer close(finished)
		for service.GetStatus()["sync_running"] == true {
			time.Sleep(time.Millisecond)
		}
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("sincronização manual não terminou")
	}

	assert.Equal(t, SyncResult{}, service.GetStatus()["last_result"])
}
