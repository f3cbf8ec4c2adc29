package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/viniciuslidington/marketplace-database/internal/cfg"
	v1Http "github.com/viniciuslidington/marketplace-database/internal/delivery/v1/http"
	"github.com/viniciuslidington/marketplace-database/internal/infrastructure/kafka"
	"github.com/viniciuslidington/marketplace-database/internal/repository/pgdb"
	"github.com/viniciuslidington/marketplace-database/internal/usecase"
	"github.com/viniciuslidington/marketplace-database/pkg/closer"
	"github.com/viniciuslidington/marketplace-database/pkg/e"
	"github.com/viniciuslidington/marketplace-database/pkg/logger"
	"github.com/viniciuslidington/marketplace-database/pkg/metrics"
	"github.com/viniciuslidington/marketplace-database/pkg/postgres"
)

const (
	shutdownTimeout   = 10 * time.Second
	topicEnsureWindow = 10 * time.Second
)

// Run wires the application together and blocks until a shutdown
// signal or a fatal server error.
func Run(cfg *config.Config, log logger.Logger) error {
	db, err := initPGDB(log, cfg)
	if err != nil {
		log.Errorf(err, "failed to initialize database")
		return err
	}

	cl := closer.NewCloser(0)
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	productRepo := pgdb.NewProductRepo(db.Pool)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool)
	buyerRepo := pgdb.NewBuyerRepo(db.Pool)
	orderRepo := pgdb.NewOrderRepo(db.Pool)
	reportRepo := pgdb.NewReportRepo(db.Pool)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool)

	orderUC := usecase.NewOrderUC(orderRepo, productRepo, outboxRepo, db.Pool, log)
	catalogUC := usecase.NewCatalogUC(productRepo, categoryRepo, buyerRepo, log)
	reportUC := usecase.NewReportUC(reportRepo, log)

	// Kafka is optional: without brokers the outbox table still fills
	// up inside order transactions, it just is not drained.
	if cfg.Kafka != nil {
		producer, err := kafka.NewProducer(log, cfg.Kafka)
		if err != nil {
			log.Errorf(err, "failed to initialize kafka producer")
			return err
		}

		if err := producer.EnsureTopic(topicEnsureWindow); err != nil {
			log.Errorf(err, "failed to ensure kafka topic")
			return err
		}

		worker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
		worker.Start(context.Background())

		cl.Add(func(ctx context.Context) error {
			worker.Stop()
			return producer.Close()
		})
	} else {
		log.Warnf("KAFKA_BROKERS not set, outbox worker disabled")
	}

	srvMetrics := metrics.NewServerMetrics("api")

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(orderUC, catalogUC, reportUC, db, srvMetrics)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(httpSrv.Stop)

	errCh := make(chan error, 1)
	go func() {
		log.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		log.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		log.Infof("received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := cl.Close(shutdownCtx); err != nil {
		log.Errorf(err, "shutdown finished with errors")
	} else {
		log.Infof("application shutdown complete")
	}

	return appErr
}

func initPGDB(log logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(log); err != nil {
		log.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		log.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
