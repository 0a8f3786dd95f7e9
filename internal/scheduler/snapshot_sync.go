package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/dashmeta/intraday-metrics-api/internal/config"
	"github.com/dashmeta/intraday-metrics-api/internal/usecases/snapshotting"
	"github.com/dashmeta/intraday-metrics-api/pkg/utils"
)

// SnapshotSyncConfig representa a configuração do agendador de snapshots
type SnapshotSyncConfig struct {
	CronSchedule string
	DatePreset   string
	SyncEnabled  bool
}

// SnapshotSyncService gerencia o agendamento e execução da coleta periódica
// de snapshots de métricas do Meta
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotSyncConfig
	collector           snapshotting.Collector
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSnapshotID      string
}

// NewSnapshotSyncService cria uma nova instância do serviço de coleta agendada
func NewSnapshotSyncService(
	collector snapshotting.Collector,
	appConfig *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule: appConfig.SnapshotSync.CronSchedule,
		DatePreset:   appConfig.SnapshotSync.DatePreset,
		SyncEnabled:  appConfig.SnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"date_preset":   syncConfig.DatePreset,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots carregada")

	return &SnapshotSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		collector:   collector,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Coleta agendada de snapshots desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de coleta de snapshots")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCollection()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar coleta de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de coleta de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

// runCollection executa uma coleta completa de snapshot, ignorando a execução
// se outra coleta ainda estiver em andamento
func (s *SnapshotSyncService) runCollection() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta de snapshot já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}

	logrus.WithField("run_id", runID).Info("Iniciando coleta agendada de snapshot")

	summary, err := s.collector.Collect()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"error":  err.Error(),
		}).Error("Erro na coleta agendada de snapshot")
		return
	}

	s.syncMutex.Lock()
	s.lastSnapshotID = summary.SnapshotID
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"run_id":      runID,
		"snapshot_id": summary.SnapshotID,
		"campaigns":   summary.Counts.Campaigns,
		"adsets":      summary.Counts.Adsets,
		"ads":         summary.Counts.Ads,
		"duration":    time.Since(startTime).String(),
	}).Info("Coleta agendada de snapshot concluída")
}

// TriggerManualSync inicia manualmente uma coleta de snapshot
func (s *SnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta de snapshot já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando coleta manual de snapshot")
	go s.runCollection()
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"date_preset":            s.config.DatePreset,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_snapshot_id":       s.lastSnapshotID,
	}
}
