package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/storefront/internal/cfg"
	v1Http "github.com/DRSN-tech/storefront/internal/delivery/v1/http"
	"github.com/DRSN-tech/storefront/internal/infrastructure/kafka"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/storefront/internal/repository/pgdb/converter/generated"
	"github.com/DRSN-tech/storefront/internal/repository/redis"
	redisConv "github.com/DRSN-tech/storefront/internal/repository/redis/converter/generated"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/closer"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/DRSN-tech/storefront/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	shutdownTimeout   = 10 * time.Second
	ensureTopicWindow = 10 * time.Second
)

// App связывает все слои приложения и управляет их жизненным циклом.
type App struct {
	cfg    *config.Config
	logger logger.Logger

	httpSrv      *v1Http.Server
	outboxWorker *kafka.OutboxWorker
	closer       *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(2 * time.Second)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	redisClient := clients.NewRedisClient(cfg.Redis)

	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		log.Errorf(err, "failed to connect to redis")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	productConv := &pgdbConv.ProductConverterImpl{}
	cartConv := &pgdbConv.CartConverterImpl{}
	orderConv := &pgdbConv.OrderConverterImpl{}
	userConv := &pgdbConv.UserConverterImpl{}
	outboxConv := &pgdbConv.OutboxEventConverterImpl{}
	cacheConv := &redisConv.ProductConverterImpl{}

	productRepo := pgdb.NewProductRepo(db.Pool, productConv)
	cartRepo := pgdb.NewCartRepo(db.Pool, cartConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orderConv)
	userRepo := pgdb.NewUserRepo(db.Pool, userConv)
	paymentEventRepo := pgdb.NewPaymentEventRepo(db.Pool)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)
	cacheRepo := redis.NewCacheRepo(redisClient, cacheConv, cfg.Redis, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		log.Errorf(err, "failed to initialize kafka producer")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	if err := producer.EnsureTopic(ensureTopicWindow); err != nil {
		log.Errorf(err, "failed to ensure kafka topic")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
	cl.Add(func(ctx context.Context) error {
		outboxWorker.Stop()
		return nil
	})

	catalogUC := usecase.NewCatalogUC(productRepo, cacheRepo, cfg.Store, log)
	cartUC := usecase.NewCartUC(cartRepo, productRepo, db.Pool, cfg.Store, log)
	orderUC := usecase.NewOrderUC(orderRepo, cartRepo, outboxRepo, db.Pool, cfg.Store, log)
	paymentUC := usecase.NewPaymentUC(paymentEventRepo, cartRepo, orderRepo, outboxRepo, db.Pool, cfg.Store, log)
	userUC := usecase.NewUserUC(userRepo, cfg.Store, log)

	mux := chi.NewRouter()
	router := v1Http.NewRouter(mux, log)
	router.Init(catalogUC, cartUC, orderUC, userUC, paymentUC, cfg.Webhook)

	httpSrv := v1Http.NewServer(mux, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	return &App{
		cfg:          cfg,
		logger:       log,
		httpSrv:      httpSrv,
		outboxWorker: outboxWorker,
		closer:       cl,
	}, nil
}

// Run запускает воркер outbox и HTTP-сервер и блокируется до сигнала
// завершения либо фатальной ошибки сервера.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	a.outboxWorker.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	workerCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown error")
		if appErr == nil {
			appErr = err
		}
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
