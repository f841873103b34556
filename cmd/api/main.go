package main

import (
	"Inkwell/internal/api"
	"Inkwell/internal/api/config"
	icron "Inkwell/internal/pkg/cron"
	"Inkwell/internal/pkg/database"
	ikafka "Inkwell/internal/pkg/kafka"
	"Inkwell/internal/pkg/llm"
	"Inkwell/internal/pkg/logger"
	iminio "Inkwell/internal/pkg/minio"
	imongo "Inkwell/internal/pkg/mongo"
	iredis "Inkwell/internal/pkg/redis"
	"Inkwell/internal/wire"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		log.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadConfig(); err != nil {
		return err
	}
	logger.InitLogger()

	db, err := database.NewGormDB(&config.Cfg.DB)
	if err != nil {
		return err
	}
	if err := iredis.InitRedis(config.Cfg.Redis); err != nil {
		return err
	}
	mongoDB, err := imongo.InitMongo(config.Cfg.Mongo)
	if err != nil {
		return err
	}
	if err := iminio.Init(); err != nil {
		return err
	}
	if err := llm.InitLLM(); err != nil {
		return err
	}

	app, err := wire.BuildApp(config.Cfg, db, mongoDB)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Producer.Close(); err != nil {
			log.Error("close producer failed", "err", err)
		}
	}()

	cronManager := icron.NewCronManager(app.WarmJob)
	if err := icron.InitCron(cronManager); err != nil {
		return err
	}
	defer cronManager.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Cfg.Server.Port),
		Handler: api.NewRouter(app.Handlers),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return startConsumer(gctx, app.Consumer)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func startConsumer(ctx context.Context, consumer *ikafka.ConsumerManager) error {
	return consumer.Start(ctx, config.Cfg)
}
