package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"moonpump/internal/cache"
	"moonpump/internal/config"
	"moonpump/internal/core"
	"moonpump/internal/db"
	"moonpump/internal/ethereum"
	"moonpump/internal/http/handler"
	"moonpump/internal/http/handler/middleware"
	"moonpump/internal/http/payload"
	"moonpump/internal/http/server"
	"moonpump/internal/httpclient"
	"moonpump/internal/market"
	"moonpump/internal/metadata"
	"moonpump/internal/registry"
	"moonpump/internal/repository"
	"moonpump/internal/trade"
	"moonpump/pkg/jwt"
	"moonpump/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const httpTimeout = 15 * time.Second

func serve() error {
	logger := log.NewZapLogger("moonpump", zapcore.InfoLevel)
	defer func() { _ = logger.Sync() }()

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	if config.SentryDSN != "" {
		logger, err = log.WithSentry(logger, config.SentryDSN, config.Environment)
		if err != nil {
			logger.Warnw("sentry disabled", "error", err)
		}
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewRepository(dbConn)
	if err = repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	redisClient, err := cache.NewRedisClient(logger, config.RedisURL)
	if err != nil {
		logger.Errorw("failed to connect to redis", "error", err)
		return err
	}
	defer redisClient.Close()

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("eth node connection failed", "error", err)
		return err
	}
	defer client.Close()

	ethService := ethereum.NewEthService(logger, client, ethereum.Contracts{
		Factory: config.Contracts.Factory,
		Trader:  config.Contracts.Trader,
	})

	httpClient := httpclient.New(logger, httpTimeout, httpclient.DefaultRetryPolicy())
	metadataClient := metadata.NewClient(logger, httpClient, "", "", config.GatewayURL)
	dexScreener := market.NewDexScreener(logger, httpClient, config.Market.URL, config.Market.Chain)

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret), "moonpump")

	moonPump := core.NewMoonPump(logger, repo, jwtService, metadataClient)
	defer moonPump.Close()

	quotes := trade.NewQuoteGateway(logger, ethService)

	// handler
	moonPumpHlr := handler.NewMoonPumpHandler(
		logger,
		payload.Decoder{},
		moonPump,
		quotes)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	moonPumpHlr.Register(mux)

	// background workers
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	syncer := registry.NewSyncer(logger, repo, dexScreener, registry.Options{
		BatchSize:    registry.DefaultBatchSize,
		Pause:        registry.DefaultPause,
		Placeholders: config.Market.Placeholders,
	})
	scheduler := registry.NewScheduler(logger, syncer, redisClient, config.SyncInterval)
	watcher := core.NewTokenWatcher(logger, ethService, repo)

	var workers sync.WaitGroup
	workers.Add(2)
	go func() {
		defer workers.Done()
		scheduler.Run(ctx)
	}()
	go func() {
		defer workers.Done()
		if err := watcher.Run(ctx); err != nil {
			logger.Errorw("token watcher stopped", "error", err)
		}
	}()

	srv := server.NewHTTP(logger, hdlr, config.Port)
	err = run(ctx, logger, srv)

	stop()
	if scheduler.Running() {
		logger.Infow("waiting for the running registry sync to finish")
	}
	workers.Wait()
	return err
}

func run(ctx context.Context, logger *zap.SugaredLogger, server *server.HTTPServer) error {
	errChan := server.Run()

	var err error
	select {
	case <-ctx.Done():
		logger.Infow("shutdown signal received")
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
