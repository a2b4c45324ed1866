package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/catalog"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/catalog/catalogclient"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/renderer"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	// Formato dos logs antes de ler a configuração
	log.Configure(logrus.InfoLevel.String())

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := log.Configure(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	// Registro único das séries e opções de interação do gráfico
	charting.Setup(cfg.Chart.WheelSpeed)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalogClient := catalogclient.NewClient(cfg)
	catalogIntegrator := catalog.New(catalogClient)

	dashboardService := dashboard.NewService(catalogIntegrator)

	// Primeira carga do catálogo. Se falhar, as sessões ficam em "loading"
	// até a próxima execução do agendador.
	if _, err := dashboardService.RefreshCatalog(ctx); err != nil {
		logrus.WithError(err).Warn("Catálogo indisponível na inicialização")
	}

	catalogSyncService := scheduler.NewCatalogSyncService(dashboardService, cfg)
	sessionCleanupService := scheduler.NewSessionCleanupService(dashboardService, cfg)

	// Inicia os agendadores em background
	if err := catalogSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do catálogo")
	} else {
		logrus.Info("Agendador de atualização do catálogo iniciado com sucesso")
	}

	if err := sessionCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		renderer.NewChartImageRenderer(cfg),
		handler.CronJobServices{
			CatalogSyncService:    catalogSyncService,
			SessionCleanupService: sessionCleanupService,
		},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
