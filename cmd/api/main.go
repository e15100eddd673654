package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-advisor-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-advisor-api/infrastructure/geo"
	"github.com/vfg2006/campaign-advisor-api/infrastructure/integrator/clustering"
	"github.com/vfg2006/campaign-advisor-api/infrastructure/integrator/statusapi"
	"github.com/vfg2006/campaign-advisor-api/infrastructure/integrator/tracker"
	"github.com/vfg2006/campaign-advisor-api/infrastructure/integrator/tracker/trackerclient"
	"github.com/vfg2006/campaign-advisor-api/infrastructure/repository"
	"github.com/vfg2006/campaign-advisor-api/internal/api"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
	"github.com/vfg2006/campaign-advisor-api/internal/scheduler"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/recommending"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	adsetStatusRepo := repository.NewAdsetStatusRepository(pgConn)
	decisionRepo := repository.NewDecisionRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	trackerClient := trackerclient.NewClient(cfg)
	trackerIntegrator := tracker.New(cfg, trackerClient)

	oracle, err := clustering.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o oráculo de clusterização")
	}

	countries := geo.LoadResolver(cfg.Geo.CountryFile)

	recommender := recommending.NewService(
		cfg,
		trackerIntegrator,
		oracle,
		countries,
		adsetStatusRepo,
		decisionRepo,
	)

	statusClient := statusapi.NewClient(cfg)

	statusSyncService := scheduler.NewStatusSyncService(adsetStatusRepo, statusClient, cfg)
	recommendationSyncService := scheduler.NewRecommendationSyncService(recommender, cfg)

	// Inicia os agendadores em background
	if err := statusSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de status")
	} else {
		logrus.Info("Agendador de sincronização de status iniciado com sucesso")
	}

	if err := recommendationSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recomendações")
	} else {
		logrus.Info("Agendador de recomendações iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		recommender,
		authenticator,
		decisionRepo,
		statusSyncService,
		recommendationSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
