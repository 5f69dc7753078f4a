package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/tournament-pool-poc/internal/ledger-worker/consumer"
	"github.com/radieske/tournament-pool-poc/internal/ledger-worker/repository"
	"github.com/radieske/tournament-pool-poc/internal/shared/config"
	"github.com/radieske/tournament-pool-poc/internal/shared/db"
	sharedkafka "github.com/radieske/tournament-pool-poc/internal/shared/kafka"
	"github.com/radieske/tournament-pool-poc/internal/shared/logger"
	"github.com/radieske/tournament-pool-poc/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Postgres: destino do razão append-only
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()

	repo := repository.NewPostgresRepo(pg)

	// Consumers Kafka (consumer group ledger-worker), um por tópico financeiro
	brokers := strings.Split(cfg.KafkaBrokers, ",")
	betsReader := sharedkafka.NewReader(brokers, cfg.TopicBetPlaced, "ledger-worker")
	payoutsReader := sharedkafka.NewReader(brokers, cfg.TopicPayoutEvents, "ledger-worker")
	defer betsReader.Close()
	defer payoutsReader.Close()

	// Métricas Prometheus para monitoramento do processamento
	consumed := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "ledger_messages_consumed_total", Help: "mensagens consumidas"}, []string{"topic"})
	persist := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "ledger_entries_total", Help: "lançamentos gravados"}, []string{"topic"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "ledger_errors_total", Help: "erros por estágio"}, []string{"topic", "stage"})
	prometheus.MustRegister(consumed, persist, errorsBy)

	newProcessor := func(topic string, reader *kafka.Reader, decode func([]byte) (repository.Entry, error)) *consumer.Processor {
		return &consumer.Processor{
			Log:        log.With(zap.String("topic", topic)),
			Reader:     reader,
			Repo:       repo,
			Decode:     decode,
			OnConsumed: func() { consumed.WithLabelValues(topic).Inc() },
			OnPersist:  func() { persist.WithLabelValues(topic).Inc() },
			OnError:    func(stage string) { errorsBy.WithLabelValues(topic, stage).Inc() },
		}
	}
	betsProc := newProcessor(cfg.TopicBetPlaced, betsReader, consumer.DecodeBetPlaced)
	payoutsProc := newProcessor(cfg.TopicPayoutEvents, payoutsReader, consumer.DecodePayout)

	// Servidor HTTP para métricas e health check
	metricsSrv := metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return pg.PingContext(ctx)
	})
	defer metricsSrv.Close()
	log.Info("metrics/health listening", zap.String("addr", metricsSrv.Addr))

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("ledger-worker started",
		zap.String("bets", cfg.TopicBetPlaced),
		zap.String("payouts", cfg.TopicPayoutEvents),
	)

	errCh := make(chan error, 2)
	go func() { errCh <- betsProc.Run(ctx) }()
	go func() { errCh <- payoutsProc.Run(ctx) }()

	if err := <-errCh; err != nil && ctx.Err() == nil {
		log.Fatal("processor stopped with error", zap.Error(err))
	}
	log.Info("ledger-worker stopped")
}
