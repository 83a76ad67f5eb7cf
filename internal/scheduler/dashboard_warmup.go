package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vehicle-sales-api/internal/config"
)

//go:generate mockgen -source=dashboard_warmup.go -destination=mocks/dashboard_warmup.go -package=mocks

// DashboardWarmer recalcula o resumo do painel e grava no cache
type DashboardWarmer interface {
	WarmUp(ctx context.Context) error
}

// DashboardWarmupConfig representa a configuração do agendador de aquecimento do painel
type DashboardWarmupConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DashboardWarmupService mantém o resumo do painel pronto no cache
type DashboardWarmupService struct {
	scheduler           *gocron.Scheduler
	config              DashboardWarmupConfig
	warmer              DashboardWarmer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	timeout             time.Duration
}

func NewDashboardWarmupService(warmer DashboardWarmer, appConfig *config.Config) *DashboardWarmupService {
	warmupConfig := DashboardWarmupConfig{
		CronSchedule: appConfig.DashboardWarmup.CronSchedule,
		SyncEnabled:  appConfig.DashboardWarmup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
		"sync_enabled":  warmupConfig.SyncEnabled,
	}).Info("Configuração do agendador de aquecimento do painel carregada")

	return &DashboardWarmupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    warmupConfig,
		warmer:    warmer,
		timeout:   time.Minute,
	}
}

// Start agenda o aquecimento e para o agendador quando ctx for cancelado
func (s *DashboardWarmupService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Aquecimento do painel desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento do painel")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmUpDashboard()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento do painel: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

func (s *DashboardWarmupService) Stop() {
	if s.scheduler.IsRunning() {
		logrus.Info("Parando agendador de aquecimento do painel")
		s.scheduler.Stop()
	}
}

func (s *DashboardWarmupService) warmUpDashboard() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Aquecimento do painel já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	err := s.warmer.WarmUp(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false

	if err != nil {
		s.lastSyncError = err.Error()
		logrus.WithError(err).WithField("job", "dashboard_warmup").Error("Erro ao aquecer o cache do painel")
		return
	}

	s.lastSyncError = ""
	s.lastSyncCompletedAt = time.Now()
	logrus.WithFields(logrus.Fields{
		"job":      "dashboard_warmup",
		"duration": time.Since(startTime).String(),
	}).Info("Aquecimento do painel concluído")
}

// TriggerManualSync dispara o aquecimento fora do agendamento.
// Retorna false quando já existe uma execução em andamento.
func (s *DashboardWarmupService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Aquecimento do painel já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando aquecimento manual do painel")
	go s.warmUpDashboard()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *DashboardWarmupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
