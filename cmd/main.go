package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/api"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/api/events"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/clients/bitrix"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/clients/gomail"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/clients/mailbox"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/entity"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/repository"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/service"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/pkg/broker"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/pkg/config"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/pkg/job"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/pkg/logger"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/pkg/postgres"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 10 * time.Minute
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	cache, err := repository.NewContractCache(cfg.Cache.Dir)
	panicOnErr("open contract cache", err)

	crm := bitrix.NewClient(cfg.Bitrix)
	imap := mailbox.New(cfg.Mailbox)
	mailer := gomail.New(cfg.Mailer)

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.CardsCreatedTopic)
	defer producer.Close()

	ingest := service.NewIngest(imap, cache)
	syncService := service.NewSync(cache, repo, service.NewEngine(crm), ingest, producer, service.SyncOptions{
		DeleteReconciled: cfg.Cache.DeleteReconciled,
	})

	notifier := service.NewNotifier(mailer, service.NotifierOptions{
		PortalURL: cfg.Bitrix.PortalURL,
		Recipients: map[entity.ProductLineName][]string{
			entity.ProductLineSittax:     cfg.Mailer.SittaxRecipients,
			entity.ProductLineAcessorias: cfg.Mailer.AcessoriasRecipients,
		},
	})

	eventHandler := events.NewEventHandler(notifier)

	consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.CardsCreatedTopic).
		Handle(cfg.Kafka.CardsCreatedTopic, eventHandler.RunFinished).
		Consume(ctx)
	defer consumer.Close()

	scheduler := job.NewScheduler().
		TryRegisterJob(cfg.Jobs.FetchEnabled, "fetch contract emails", cfg.Jobs.FetchInterval, func(ctx context.Context) error {
			_, err := ingest.Fetch(ctx)
			return err
		}).
		TryRegisterJob(cfg.Jobs.SyncEnabled, "reconcile pending contracts", cfg.Jobs.SyncInterval, func(ctx context.Context) error {
			_, err := syncService.Run(ctx, false)
			if errors.Is(err, entity.ErrRunInProgress) {
				return job.ErrSkipped
			}

			return err
		})
	scheduler.Start(ctx)

	handler := api.NewHandler(syncService)
	mw := api.NewMiddleware(cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ReadTimeout)
		defer shutdownCancel()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
	scheduler.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
