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

// SessionCleaner remove sessões de dashboard ociosas
type SessionCleaner interface {
	CleanupIdleSessions(maxIdle time.Duration) int
}

type SessionCleanupConfig struct {
	CronSchedule   string
	IdleTimeout    time.Duration
	CleanupEnabled bool
}

// SessionCleanupService agenda a remoção das sessões sem atividade
type SessionCleanupService struct {
	scheduler *gocron.Scheduler
	config    SessionCleanupConfig
	cleaner   SessionCleaner

	cleanupMutex       sync.Mutex
	cleanupRunning     bool
	lastCleanupAt      time.Time
	lastCleanupRemoved int
	totalRemoved       int
}

func NewSessionCleanupService(cleaner SessionCleaner, appConfig *config.Config) *SessionCleanupService {
	cleanupConfig := SessionCleanupConfig{
		CronSchedule:   appConfig.SessionCleanup.CronSchedule,
		IdleTimeout:    appConfig.SessionCleanup.IdleTimeout,
		CleanupEnabled: appConfig.SessionCleanup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   cleanupConfig.CronSchedule,
		"idle_timeout":    cleanupConfig.IdleTimeout.String(),
		"cleanup_enabled": cleanupConfig.CleanupEnabled,
	}).Info("Configuração da limpeza de sessões carregada")

	return &SessionCleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cleanupConfig,
		cleaner:   cleaner,
	}
}

// Start inicia o agendador
func (s *SessionCleanupService) Start(ctx context.Context) error {
	if !s.config.CleanupEnabled {
		logrus.Info("Limpeza de sessões desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanupSessions()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SessionCleanupService) cleanupSessions() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		return
	}
	s.cleanupRunning = true
	s.cleanupMutex.Unlock()

	removed := s.cleaner.CleanupIdleSessions(s.config.IdleTimeout)

	s.cleanupMutex.Lock()
	s.cleanupRunning = false
	s.lastCleanupAt = time.Now()
	s.lastCleanupRemoved = removed
	s.totalRemoved += removed
	s.cleanupMutex.Unlock()

	logrus.WithField("removed", removed).Debug("Limpeza de sessões concluída")
}

// TriggerManualSync executa a limpeza fora do horário agendado
func (s *SessionCleanupService) TriggerManualSync() {
	logrus.Info("Iniciando limpeza manual de sessões")
	go s.cleanupSessions()
}

func (s *SessionCleanupService) GetStatus() map[string]any {
	s.cleanupMutex.Lock()
	defer s.cleanupMutex.Unlock()

	return map[string]any{
		"cleanup_enabled":      s.config.CleanupEnabled,
		"cleanup_cron":         s.config.CronSchedule,
		"idle_timeout":         s.config.IdleTimeout.String(),
		"cleanup_running":      s.cleanupRunning,
		"last_cleanup_at":      s.lastCleanupAt,
		"last_cleanup_removed": s.lastCleanupRemoved,
		"total_removed":        s.totalRemoved,
	}
}
