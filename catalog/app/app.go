package app

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/Astemirdum/catalog-service/catalog/config"
	"github.com/Astemirdum/catalog-service/catalog/internal/handler"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/catalog/internal/queue"
	"github.com/Astemirdum/catalog-service/catalog/internal/repository"
	"github.com/Astemirdum/catalog-service/catalog/internal/server"
	"github.com/Astemirdum/catalog-service/catalog/internal/service"
	"github.com/Astemirdum/catalog-service/catalog/migrations"
	"github.com/Astemirdum/catalog-service/pkg/circuit_breaker"
	"github.com/Astemirdum/catalog-service/pkg/kafka"
	"github.com/Astemirdum/catalog-service/pkg/logger"
	"github.com/Astemirdum/catalog-service/pkg/postgres"
	"github.com/Astemirdum/catalog-service/pkg/sqlite"
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// OpenStorage connects to the configured backend and brings its schema up to date.
func OpenStorage(ctx context.Context, cfg config.Storage) (*sqlx.DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.NewPostgresDB(ctx, &cfg.Postgres, migrations.Postgres())
	case config.DriverSQLite:
		return sqlite.NewSQLiteDB(ctx, cfg.SQLite, migrations.SQLite())
	default:
		return nil, errors.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func newEnqueuer(cfg *config.Config, log *zap.Logger) (queue.Enqueuer, error) {
	if !cfg.Kafka.Enabled() {
		log.Info("kafka is not configured, change events are dropped")
		return queue.NewNoop(), nil
	}
	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return nil, errors.Wrap(err, "kafka.NewProducer")
	}
	return queue.NewEnqueuer(producer, cfg.Kafka.Topic, circuit_breaker.New(cfg.CircuitBreaker), log), nil
}

// Catalog is the service together with the resources it owns.
type Catalog struct {
	Service *service.Service
	Log     *zap.Logger

	db    *sqlx.DB
	queue queue.Enqueuer
}

// NewCatalog opens storage and, when withEvents is set, the event producer.
func NewCatalog(ctx context.Context, cfg *config.Config, withEvents bool) (*Catalog, error) {
	log := logger.NewLogger(cfg.Log, "catalog")
	db, err := OpenStorage(ctx, cfg.Storage)
	if err != nil {
		return nil, errors.Wrap(err, "db init")
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "repo")
	}

	enq := queue.NewNoop()
	if withEvents {
		if enq, err = newEnqueuer(cfg, log); err != nil {
			db.Close()
			return nil, err
		}
	}
	return &Catalog{
		Service: service.NewService(repo, enq, log),
		Log:     log,
		db:      db,
		queue:   enq,
	}, nil
}

func (c *Catalog) Close() {
	if err := c.queue.Close(); err != nil {
		c.Log.Warn("queue close", zap.Error(err))
	}
	if err := c.db.Close(); err != nil {
		c.Log.Warn("db close", zap.Error(err))
	}
}

// Run serves the HTTP API until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg *config.Config) error {
	catalog, err := NewCatalog(ctx, cfg, true)
	if err != nil {
		return err
	}
	defer catalog.Close()
	log := catalog.Log

	h := handler.New(catalog.Service, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ", zap.String("addr", srv.Addr()))
		return srv.Run()
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "server")
	}
	log.Info("Graceful shutdown finished")
	return nil
}

// WatchEvents writes every catalog change event to w as a JSON line until ctx is done.
func WatchEvents(ctx context.Context, cfg *config.Config, group string, w io.Writer) error {
	if !cfg.Kafka.Enabled() {
		return errors.New("KAFKA_ADDRS is empty")
	}
	log := logger.NewLogger(cfg.Log, "events")
	consumerGroup, err := kafka.NewConsumerGroup(cfg.Kafka, group)
	if err != nil {
		return errors.Wrap(err, "kafka.NewConsumerGroup")
	}
	defer consumerGroup.Close()

	// claims of different partitions are consumed concurrently
	var mu sync.Mutex
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	consumer := queue.NewConsumer(func(_ context.Context, ev model.Event) error {
		mu.Lock()
		defer mu.Unlock()
		return enc.Encode(ev)
	}, log)
	return kafka.Consume(ctx, consumerGroup, consumer, cfg.Kafka.Topic)
}
