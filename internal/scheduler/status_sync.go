package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-advisor-api/infrastructure/integrator/statusapi"
	"github.com/vfg2006/campaign-advisor-api/infrastructure/repository"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
	"golang.org/x/time/rate"
)

// StatusSyncConfig representa a configuração do agendador de status dos adsets
type StatusSyncConfig struct {
	CronSchedule string
	Throttle     time.Duration
	SyncEnabled  bool
}

// StatusSyncResult resume uma execução da sincronização
type StatusSyncResult struct {
	Checked   int `json:"checked"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
}

// StatusSyncService mantém a tabela local de status alinhada com a plataforma
// de anúncios. Adsets pausados localmente não são consultados.
type StatusSyncService struct {
	scheduler           *gocron.Scheduler
	config              StatusSyncConfig
	statusRepo          repository.AdsetStatusRepository
	statusClient        statusapi.Client
	limiter             *rate.Limiter
	ctx                 context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          StatusSyncResult
}

// NewStatusSyncService cria uma nova instância do serviço de sincronização de status
func NewStatusSyncService(
	statusRepo repository.AdsetStatusRepository,
	statusClient statusapi.Client,
	appConfig *config.Config,
) *StatusSyncService {
	syncConfig := StatusSyncConfig{
		CronSchedule: appConfig.StatusSync.CronSchedule,
		Throttle:     appConfig.StatusSync.Throttle,
		SyncEnabled:  appConfig.StatusSync.Enabled,
	}

	limit := rate.Inf
	if syncConfig.Throttle > 0 {
		limit = rate.Every(syncConfig.Throttle)
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"throttle":      syncConfig.Throttle.String(),
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de status dos adsets carregada")

	return &StatusSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       syncConfig,
		statusRepo:   statusRepo,
		statusClient: statusClient,
		limiter:      rate.NewLimiter(limit, 1),
		ctx:          context.Background(),
	}
}

// Start inicia o agendador
func (s *StatusSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de status dos adsets desabilitada por configuração")
		return nil
	}

	s.ctx = ctx
	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de status dos adsets")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllStatuses()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de status dos adsets: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de status dos adsets")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *StatusSyncService) syncAllStatuses() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de status dos adsets já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	result, err := s.SyncStatuses(s.ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao sincronizar status dos adsets")
		return
	}

	s.syncMutex.Lock()
	s.lastResult = result
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// SyncStatuses executa uma passada completa. Uma segunda execução sem mudanças
// externas não grava nada.
func (s *StatusSyncService) SyncStatuses(ctx context.Context) (StatusSyncResult, error) {
	var result StatusSyncResult
	startTime := time.Now()

	statuses, err := s.statusRepo.ListAll()
	if err != nil {
		return result, fmt.Errorf("erro ao listar status dos adsets: %w", err)
	}

	logrus.WithField("adsets", len(statuses)).Info("Iniciando verificação de status dos adsets")

	for _, stored := range statuses {
		if !stored.IsActive {
			result.Skipped++
			continue
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return result, err
		}

		result.Checked++
		external, err := s.statusClient.GetStatus(ctx, stored.AdsetID)
		if err != nil {
			result.Failed++
			logrus.WithFields(logrus.Fields{
				"adset_id": stored.AdsetID,
				"error":    err.Error(),
			}).Error("Falha ao consultar status do adset, pulando")
			continue
		}

		active := external == domain.ExternalStatusActive
		if active == stored.IsActive {
			result.Unchanged++
			continue
		}

		if err := s.statusRepo.SetActive(stored.AdsetID, active); err != nil {
			result.Failed++
			logrus.WithFields(logrus.Fields{
				"adset_id": stored.AdsetID,
				"error":    err.Error(),
			}).Error("Erro ao atualizar status do adset no banco de dados")
			continue
		}

		result.Updated++
		logrus.WithFields(logrus.Fields{
			"adset_id": stored.AdsetID,
			"status":   external,
		}).Info("Status do adset atualizado")
	}

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"checked":   result.Checked,
		"skipped":   result.Skipped,
		"failed":    result.Failed,
		"updated":   result.Updated,
		"unchanged": result.Unchanged,
	}).Info("Sincronização de status dos adsets concluída")

	return result, nil
}

// TriggerManualSync inicia manualmente uma sincronização de status
func (s *StatusSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de status dos adsets já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de status dos adsets")
	go s.syncAllStatuses()
}

// GetStatus retorna o status atual do agendador
func (s *StatusSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_throttle":          s.config.Throttle.String(),
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
