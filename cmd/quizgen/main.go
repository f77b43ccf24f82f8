package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/carlyclark26/PharmC-Quiz/internal/config"
	"github.com/carlyclark26/PharmC-Quiz/internal/domain/entities"
	"github.com/carlyclark26/PharmC-Quiz/internal/infra/postgres"
	pgrepository "github.com/carlyclark26/PharmC-Quiz/internal/infra/postgres/repository"
	"github.com/carlyclark26/PharmC-Quiz/internal/logger"
	"github.com/carlyclark26/PharmC-Quiz/internal/repository"
	"github.com/carlyclark26/PharmC-Quiz/internal/service"
)

func main() {
	// Load optional .env before reading configuration.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	records, err := loadRecords(ctx, cfg)
	if err != nil {
		zl.Fatal("load drug records", zap.Error(err))
	}

	// The whole document is built in memory before the single output write,
	// so a generation failure leaves no partial artifact.
	doc := service.BuildQuiz(records, cfg.Distractors, cfg.Seed)

	if err := repository.WriteQuizDocument(cfg.OutputPath, doc); err != nil {
		zl.Fatal("write quiz document", zap.Error(err))
	}

	zl.Info("wrote quiz document",
		zap.String("output", cfg.OutputPath),
		zap.Int("pairs", len(records)),
	)
}

// loadRecords builds the configured record source and fetches all records.
func loadRecords(ctx context.Context, cfg *config.Config) ([]entities.DrugRecord, error) {
	var source service.RecordSource

	switch cfg.Source {
	case config.SourcePostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, err
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        cfg.DB.MaxConnections,
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, err
		}
		defer pool.Close()

		source = pgrepository.NewDrugRepository(pool, cfg.DB.Table)
	default:
		csvRepo, err := repository.NewDrugRepository(cfg.DataPath)
		if err != nil {
			return nil, err
		}
		source = csvRepo
	}

	return source.GetAll(ctx)
}
