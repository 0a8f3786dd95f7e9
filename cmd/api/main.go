package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dashmeta/intraday-metrics-api/infrastructure/database/postgres"
	"github.com/dashmeta/intraday-metrics-api/infrastructure/integrator/meta"
	"github.com/dashmeta/intraday-metrics-api/infrastructure/integrator/meta/metaclient"
	"github.com/dashmeta/intraday-metrics-api/infrastructure/repository"
	"github.com/dashmeta/intraday-metrics-api/internal/api"
	"github.com/dashmeta/intraday-metrics-api/internal/config"
	"github.com/dashmeta/intraday-metrics-api/internal/scheduler"
	"github.com/dashmeta/intraday-metrics-api/internal/usecases/insighting"
	"github.com/dashmeta/intraday-metrics-api/internal/usecases/snapshotting"
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

	snapshotRepo := repository.NewSnapshotRepository(pgConn)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	collectorService := snapshotting.NewService(cfg, metaIntegrator, snapshotRepo)
	intradayService := insighting.NewService(snapshotRepo)

	snapshotSyncService := scheduler.NewSnapshotSyncService(collectorService, cfg)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de coleta de snapshots")
	} else {
		logrus.Info("Agendador de coleta de snapshots iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		collectorService,
		intradayService,
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
