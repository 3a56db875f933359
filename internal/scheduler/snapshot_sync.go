// Package scheduler contém o agendamento do registro diário de snapshots
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/gpaizante/gestao-caixa-api/internal/config"
	"github.com/gpaizante/gestao-caixa-api/internal/usecases/forecasting"
	"github.com/gpaizante/gestao-caixa-api/internal/usecases/indicating"
	"github.com/gpaizante/gestao-caixa-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type SnapshotSyncConfig struct {
	CronSchedule string
	Enabled      bool
}

// SnapshotSyncService registra um snapshot dos indicadores por dia, de forma
// agendada. Dias sem dados suficientes são pulados em silêncio: o histórico só
// guarda cálculos que tiveram livro-razão e previsão.
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	forecastService     forecasting.ForecastService
	config              SnapshotSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewSnapshotSyncService(
	forecastService forecasting.ForecastService,
	cfg *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule: cfg.SnapshotSync.CronSchedule, // Default: 3h da manhã todos os dias
		Enabled:      cfg.SnapshotSync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de snapshots carregada")

	return &SnapshotSyncService{
		scheduler:       scheduler,
		forecastService: forecastService,
		config:          syncConfig,
	}
}

func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de snapshots de indicadores desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshots de indicadores")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RecordDailySnapshot(ctx); err != nil {
			logrus.WithError(err).Error("Erro no registro agendado de snapshot")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar registro de snapshots: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshots de indicadores")
		s.scheduler.Stop()
	}()

	return nil
}

// RecordDailySnapshot executa uma rodada de registro de snapshot
func (s *SnapshotSyncService) RecordDailySnapshot(ctx context.Context) error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Registro de snapshot já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	runID, err := utils.GenerateRunID()
	if err != nil {
		return fmt.Errorf("erro ao gerar ID da execução: %w", err)
	}

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando registro agendado de snapshot dos indicadores")

	snapshot, err := s.forecastService.RecordSnapshot(ctx)
	if err != nil {
		if errors.Is(err, indicating.ErrNoData) {
			logger.Info("Snapshot pulado: livros ou previsão ainda sem dados")
			return nil
		}
		return err
	}

	logger.WithFields(logrus.Fields{
		"snapshot_id":  snapshot.ID,
		"data_calculo": snapshot.ComputedAt.Format(time.DateOnly),
	}).Info("Snapshot dos indicadores registrado com sucesso")

	return nil
}

// TriggerManualSync dispara o registro de snapshot fora do horário agendado
func (s *SnapshotSyncService) TriggerManualSync() {
	go func() {
		if err := s.RecordDailySnapshot(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no registro manual de snapshot")
		}
	}()
}

// Status retorna o estado corrente do agendador para o endpoint de status
func (s *SnapshotSyncService) Status() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":        s.config.Enabled,
		"cron_schedule":  s.config.CronSchedule,
		"running":        s.syncRunning,
		"last_started":   s.lastSyncStartedAt,
		"last_completed": s.lastSyncCompletedAt,
	}
}
