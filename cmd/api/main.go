package main

import (
	"context"
	"time"

	"github.com/gpaizante/gestao-caixa-api/infrastructure/database/postgres"
	"github.com/gpaizante/gestao-caixa-api/infrastructure/migration/script"
	"github.com/gpaizante/gestao-caixa-api/infrastructure/repository"
	"github.com/gpaizante/gestao-caixa-api/infrastructure/repository/memory"
	"github.com/gpaizante/gestao-caixa-api/internal/api"
	"github.com/gpaizante/gestao-caixa-api/internal/config"
	"github.com/gpaizante/gestao-caixa-api/internal/scheduler"
	"github.com/gpaizante/gestao-caixa-api/internal/usecases/forecasting"
	"github.com/gpaizante/gestao-caixa-api/internal/usecases/ledgering"
	"github.com/sirupsen/logrus"
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

	var (
		ledgerRepo   repository.LedgerRepository
		forecastRepo repository.ForecastRepository
		historyRepo  repository.IndicatorHistoryRepository
	)

	switch cfg.Database.Driver {
	case "memory":
		logrus.Warn("Usando armazenamento em memória, os dados serão perdidos ao reiniciar")
		store := memory.NewStore()
		ledgerRepo = store
		forecastRepo = store
		historyRepo = store
	default:
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		if err := script.Run(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar o esquema do banco de dados")
		}

		ledgerRepo = repository.NewLedgerRepository(pgConn)
		forecastRepo = repository.NewForecastRepository(pgConn)
		historyRepo = repository.NewIndicatorHistoryRepository(pgConn)
	}

	ledgerService := ledgering.NewService(ledgerRepo)
	forecastService := forecasting.NewService(ledgerRepo, forecastRepo, historyRepo)

	snapshotSyncService := scheduler.NewSnapshotSyncService(forecastService, cfg)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de indicadores")
	} else {
		logrus.Info("Agendador de snapshots de indicadores iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		ledgerService,
		forecastService,
		snapshotSyncService,
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
