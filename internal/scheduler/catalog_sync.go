package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

// CatalogRefresher atualiza o catálogo usado pelas sessões
type CatalogRefresher interface {
	RefreshCatalog(ctx context.Context) (bool, error)
}

// CatalogSyncConfig representa a configuração do agendador de atualização do catálogo
type CatalogSyncConfig struct {
	CronSchedule string
	Timeout      time.Duration
	SyncEnabled  bool
}

// CatalogSyncService agenda a releitura periódica do catálogo de produtos
type CatalogSyncService struct {
	scheduler *gocron.Scheduler
	config    CatalogSyncConfig
	refresher CatalogRefresher

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncChanged     bool
	lastSyncError       string
}

func NewCatalogSyncService(refresher CatalogRefresher, appConfig *config.Config) *CatalogSyncService {
	syncConfig := CatalogSyncConfig{
		CronSchedule: appConfig.CatalogSync.CronSchedule,
		Timeout:      appConfig.Catalog.Timeout,
		SyncEnabled:  appConfig.CatalogSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"timeout":       syncConfig.Timeout.String(),
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do catálogo carregada")

	return &CatalogSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		refresher: refresher,
	}
}

// Start inicia o agendador
func (s *CatalogSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização do catálogo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do catálogo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncCatalog()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do catálogo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do catálogo")
		s.scheduler.Stop()
	}()

	return nil
}

// syncCatalog relê o catálogo; execuções sobrepostas são ignoradas
func (s *CatalogSyncService) syncCatalog() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do catálogo já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	timeout := s.config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	changed, err := s.refresher.RefreshCatalog(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncChanged = changed
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Erro ao atualizar catálogo")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"changed":  changed,
	}).Info("Atualização do catálogo concluída")
}

// TriggerManualSync inicia manualmente uma atualização do catálogo
func (s *CatalogSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do catálogo já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do catálogo")
	go s.syncCatalog()
}

// GetStatus retorna o status atual do agendador
func (s *CatalogSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_changed":      s.lastSyncChanged,
		"last_sync_error":        s.lastSyncError,
	}
}
