package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"insurance_quotes/internal/adapter/http/routes"
	"insurance_quotes/internal/adapter/messaging"
	"insurance_quotes/internal/adapter/messaging/redisstream"
	"insurance_quotes/internal/adapter/persistence/memory"
	"insurance_quotes/internal/adapter/persistence/repository"
	"insurance_quotes/internal/infrastructure/cache"
	"insurance_quotes/internal/infrastructure/config"
	"insurance_quotes/internal/infrastructure/database"
	"insurance_quotes/internal/infrastructure/lock"
	"insurance_quotes/internal/infrastructure/logger"
	"insurance_quotes/internal/infrastructure/metrics"
	"insurance_quotes/internal/usecase/interfaces"
)

const shutdownTimeout = 10 * time.Second

// app holds the infrastructure shared by both services.
type app struct {
	cfg      config.Config
	log      *logger.Logger
	metrics  *metrics.Metrics
	redis    *goredis.Client
	channel  *redisstream.Channel
	requests interfaces.IQuoteRequestRepository
	policies interfaces.IPolicyRepository
	locker   interfaces.IAggregateLocker
}

func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	log = log.With("service", cfg.Service)

	rdb, err := cache.ConnectRedis(ctx, cfg.RedisAddr)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:     cfg,
		log:     log,
		metrics: metrics.New(cfg.Service),
		redis:   rdb,
		channel: redisstream.NewChannel(rdb, cfg.ConsumerGroup, cfg.ConsumerName, cfg.StreamMaxLen),
	}

	switch cfg.StoreBackend {
	case config.StoreMemory:
		a.requests = memory.NewQuoteRequestMemoryRepository()
		a.policies = memory.NewPolicyMemoryRepository()
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			_ = rdb.Close()
			return nil, err
		}
		a.requests = repository.NewQuoteRequestDynamoRepository(ddb, cfg.QuoteRequestsTable)
		a.policies = repository.NewPolicyDynamoRepository(ddb, cfg.PoliciesTable)
	default:
		_ = rdb.Close()
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	switch cfg.LockBackend {
	case config.LockMemory:
		a.locker = lock.NewKeyedMutex()
	case config.LockRedis:
		a.locker = lock.NewRedisLocker(rdb, cfg.Service+":", cfg.LockTTL, log)
	default:
		_ = rdb.Close()
		return nil, fmt.Errorf("unknown lock backend %q", cfg.LockBackend)
	}

	log.Info("service configured",
		"env", cfg.Env,
		"store", cfg.StoreBackend,
		"lock", cfg.LockBackend,
		"redis", cfg.RedisAddr,
		"consumer_group", cfg.ConsumerGroup,
		"consumer", cfg.ConsumerName,
	)
	return a, nil
}

func (a *app) close() {
	if err := a.redis.Close(); err != nil {
		a.log.Warn("redis close failed", "error", err)
	}
	a.log.Sync()
}

func (a *app) newDispatcher(registry *messaging.Registry) *messaging.Dispatcher {
	return messaging.NewDispatcher(a.channel, registry, a.metrics, a.log, messaging.DispatcherConfig{
		Workers:        a.cfg.WorkerConcurrency,
		Block:          a.cfg.ConsumerBlock,
		RedeliveryIdle: a.cfg.RedeliveryIdle,
	})
}

// run serves HTTP and runs the background loops until SIGINT/SIGTERM or until
// one of them fails.
func (a *app) run(ctx context.Context, router http.Handler, loops ...func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := routes.NewServer(router, a.cfg.HTTPPort)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	for _, loop := range loops {
		g.Go(func() error { return loop(gctx) })
	}

	err := g.Wait()
	if err != nil {
		a.log.Error("service stopped with error", "error", err)
		return err
	}
	a.log.Info("service stopped")
	return nil
}
