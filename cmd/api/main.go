package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vendor-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/vendor-dashboard-api/infrastructure/integrator/imagehost"
	"github.com/vfg2006/vendor-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/vendor-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/vendor-dashboard-api/internal/api"
	"github.com/vfg2006/vendor-dashboard-api/internal/api/handler"
	"github.com/vfg2006/vendor-dashboard-api/internal/config"
	"github.com/vfg2006/vendor-dashboard-api/internal/scheduler"
	"github.com/vfg2006/vendor-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/vendor-dashboard-api/internal/usecases/cataloging"
	"github.com/vfg2006/vendor-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/vendor-dashboard-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(log.Options{
		Level: cfg.App.LogLevel,
		File:  cfg.App.LogFile,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Migration.AutoMigrate {
		applied, err := migration.Run(ctx, pgConn)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
		logrus.WithField("applied", applied).Info("Migrações verificadas")
	}

	vendorRepo := repository.NewVendorRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	categoryRepo := repository.NewCategoryRepository(pgConn)
	stockAlertRepo := repository.NewStockAlertRepository(pgConn)

	imageClient := imagehost.NewClient(cfg.ImageHost)

	authenticator := authenticating.NewService(vendorRepo, cfg.Auth)
	reporter := dashboard.NewService(vendorRepo, orderRepo, productRepo, stockAlertRepo, cfg.Dashboard, nil)
	cataloger := cataloging.NewService(categoryRepo, productRepo, imageClient)

	stockAlertSyncService := scheduler.NewStockAlertSyncService(vendorRepo, productRepo, stockAlertRepo, cfg)
	if err := stockAlertSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de alertas de estoque")
	} else {
		logrus.Info("Agendador de alertas de estoque iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Reporter:      reporter,
		Cataloger:     cataloger,
		CronJobs: handler.CronJobServices{
			scheduler.JobStockAlerts: stockAlertSyncService,
		},
		DB: pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource garante que o .env ao lado do código seja encontrado em execução local
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar o diretório de trabalho")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
