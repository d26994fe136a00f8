package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/daily-expenses/internal/clients/amqp"
	"max.ks1230/daily-expenses/internal/clients/console"
	"max.ks1230/daily-expenses/internal/clients/kafka"
	"max.ks1230/daily-expenses/internal/clients/tg"
	"max.ks1230/daily-expenses/internal/config"
	"max.ks1230/daily-expenses/internal/entity/expense"
	"max.ks1230/daily-expenses/internal/logger"
	"max.ks1230/daily-expenses/internal/model/expenses"
	"max.ks1230/daily-expenses/internal/model/expiry"
	"max.ks1230/daily-expenses/internal/model/export"
	"max.ks1230/daily-expenses/internal/model/messages"
	"max.ks1230/daily-expenses/internal/model/notify"
	"max.ks1230/daily-expenses/internal/model/state"
	"max.ks1230/daily-expenses/internal/tracing"
)

const shutdownTimeout = 5 * time.Second

func main() {
	defer logger.Sync()
	logger.Info("Tracker init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	tracerCloser, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer tracerCloser.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	st, err := openStores(ctx, conf)
	if err != nil {
		logger.Fatal("failed to init storage:", zap.Error(err))
	}
	defer st.Close()

	outcome, err := expiry.NewGuard(st.markers, st.expenses).Run(ctx, time.Now())
	if err != nil {
		logger.Error("expiry check failed", zap.Error(err))
	}
	logger.Info("expiry check done", zap.Stringer("outcome", outcome))

	items := state.New(ctx, st.expenses)
	items.Subscribe(func(items []expense.Expense) {
		logger.Debug("expenses saved", zap.Int("count", len(items)))
	})

	sinks := notify.Fanout{notify.LogSink{}}

	var tgClient *tg.Client
	if conf.Telegram().Enabled() {
		tgClient, err = tg.New(conf.Telegram())
		if err != nil {
			logger.Fatal("failed to init telegram client:", zap.Error(err))
		}
		sinks = append(sinks, tgClient)
	}

	if conf.Kafka().Enabled() {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer:", zap.Error(err))
		}
		defer producer.Close()
		sinks = append(sinks, producer)
	}

	if conf.AMQP().Enabled() {
		publisher, err := amqp.NewPublisher(conf.AMQP())
		if err != nil {
			logger.Fatal("failed to init amqp publisher:", zap.Error(err))
		}
		defer publisher.Close()
		sinks = append(sinks, publisher)
	}

	notifier := notify.NewAsync(sinks, notify.DefaultQueueSize)
	defer notifier.Close()

	exporter := export.NewExporter(export.NewDirSaver(conf.Export()))
	service, err := expenses.NewService(conf.App(), items, exporter, notifier)
	if err != nil {
		logger.Fatal("failed to init expenses service:", zap.Error(err))
	}
	handler := messages.NewHandler(service, conf.App())

	logger.Info("Tracker init - end")

	g, gctx := errgroup.WithContext(ctx)

	cons := console.New(os.Stdin, os.Stdout)
	g.Go(func() error {
		err := cons.ListenLines(gctx, messages.NewService(cons, handler))
		if tgClient == nil {
			cancel()
		}
		return err
	})

	if tgClient != nil {
		g.Go(func() error {
			return tgClient.ListenUpdates(gctx, messages.NewService(tgClient, handler))
		})
	}

	if addr := conf.Metrics().Addr(); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: shutdownTimeout}

		g.Go(func() error {
			logger.Info("metrics server listening", zap.String("addr", addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return errors.Wrap(err, "serve metrics")
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})
	}

	if err = g.Wait(); err != nil {
		logger.Error("tracker stopped with error", zap.Error(err))
	}
	logger.Info("Tracker stopped")
}
