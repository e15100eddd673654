package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/recommending"
)

// cycleStates é o número de estados do contador de ciclos (0..7)
const cycleStates = 8

// RecommendationSyncService gera periodicamente as recomendações do dia. Ele é
// o dono do contador de ciclos e o repassa explicitamente a cada execução.
type RecommendationSyncService struct {
	scheduler           *gocron.Scheduler
	cronSchedule        string
	syncEnabled         bool
	recommender         recommending.Recommender
	ctx                 context.Context
	cycle               int
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
	lastAdsets          int
}

func NewRecommendationSyncService(recommender recommending.Recommender, appConfig *config.Config) *RecommendationSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.RecommendationSync.CronSchedule,
		"sync_enabled":  appConfig.RecommendationSync.Enabled,
	}).Info("Configuração do agendador de recomendações carregada")

	return &RecommendationSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		cronSchedule: appConfig.RecommendationSync.CronSchedule,
		syncEnabled:  appConfig.RecommendationSync.Enabled,
		recommender:  recommender,
		ctx:          context.Background(),
	}
}

// Start inicia o agendador
func (s *RecommendationSyncService) Start(ctx context.Context) error {
	if !s.syncEnabled {
		logrus.Info("Geração periódica de recomendações desabilitada por configuração")
		return nil
	}

	s.ctx = ctx
	logrus.WithField("cron", s.cronSchedule).Info("Iniciando agendador de recomendações")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.runDaily()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração de recomendações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recomendações")
		s.scheduler.Stop()
	}()

	return nil
}

// NextCycle devolve o ciclo da próxima execução e avança o contador
func (s *RecommendationSyncService) NextCycle() int {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	cycle := s.cycle
	s.cycle = (s.cycle + 1) % cycleStates
	return cycle
}

func (s *RecommendationSyncService) runDaily() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de recomendações já em andamento, ignorando")
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

	cycle := s.NextCycle()
	result, err := s.recommender.DailyRecommendations(s.ctx, cycle)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"cycle": cycle,
			"error": err.Error(),
		}).Error("Erro ao gerar recomendações do dia")
		return
	}

	s.syncMutex.Lock()
	s.lastRunID = result.RunID
	s.lastAdsets = result.Summary.TotalAdset
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"run_id": result.RunID,
		"cycle":  cycle,
		"adsets": result.Summary.TotalAdset,
	}).Info("Recomendações do dia geradas")
}

// TriggerManualSync inicia manualmente a geração das recomendações
func (s *RecommendationSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de recomendações já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual de recomendações")
	go s.runDaily()
}

// GetStatus retorna o status atual do agendador
func (s *RecommendationSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.syncEnabled,
		"sync_cron":              s.cronSchedule,
		"sync_running":           s.syncRunning,
		"next_cycle":             s.cycle,
		"last_run_id":            s.lastRunID,
		"last_adsets":            s.lastAdsets,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
