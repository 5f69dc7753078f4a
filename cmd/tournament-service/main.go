package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/radieske/tournament-pool-poc/internal/engine"
	sharedcache "github.com/radieske/tournament-pool-poc/internal/shared/cache"
	"github.com/radieske/tournament-pool-poc/internal/shared/config"
	"github.com/radieske/tournament-pool-poc/internal/shared/db"
	sharedkafka "github.com/radieske/tournament-pool-poc/internal/shared/kafka"
	"github.com/radieske/tournament-pool-poc/internal/shared/logger"
	"github.com/radieske/tournament-pool-poc/internal/tournament-service/cache"
	thttp "github.com/radieske/tournament-pool-poc/internal/tournament-service/http"
	kpub "github.com/radieske/tournament-pool-poc/internal/tournament-service/producer"
	"github.com/radieske/tournament-pool-poc/internal/tournament-service/repo"
	"github.com/radieske/tournament-pool-poc/internal/tournament-service/wallet"
)

func main() {
	cfg := config.Load()
	log, _ := logger.New(cfg.ServiceName, cfg.Env)
	defer log.Sync()

	// Postgres
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg", zap.Error(err))
	}
	defer pg.Close()

	// Redis
	rdb, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis", zap.Error(err))
	}
	defer rdb.Close()

	// Kafka writers, um por tópico do contrato
	wMatches := sharedkafka.NewWriter(cfg.KafkaBrokers, cfg.TopicMatchEvents)
	wBets := sharedkafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetPlaced)
	wPayouts := sharedkafka.NewWriter(cfg.KafkaBrokers, cfg.TopicPayoutEvents)
	wAdmin := sharedkafka.NewWriter(cfg.KafkaBrokers, cfg.TopicAdminEvents)
	defer wMatches.Close()
	defer wBets.Close()
	defer wPayouts.Close()
	defer wAdmin.Close()

	// deps
	repository := repo.NewPostgres(pg)
	scores := cache.NewScoresCache(rdb, 5*time.Minute)
	wcli := wallet.New(cfg.WalletURL) // wallet-service, primitiva de transferência
	publ := kpub.NewKafkaPublisher(wMatches, wBets, wPayouts, wAdmin)

	// Motor pari-mutuel em memória, a carteira é o banco de pagamentos
	eng := engine.New(log, wcli, cfg.PresidentAccount,
		engine.WithRewardRate(cfg.RewardRate),
		engine.WithMinBet(cfg.MinBetCents),
	)

	// Métricas Prometheus para monitoramento das operações
	bets := prometheus.NewCounter(prometheus.CounterOpts{Name: "tournament_bets_total", Help: "apostas aceitas"})
	claims := prometheus.NewCounter(prometheus.CounterOpts{Name: "tournament_claims_total", Help: "prêmios sacados"})
	refunds := prometheus.NewCounter(prometheus.CounterOpts{Name: "tournament_refunds_total", Help: "estornos de partidas anuladas"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "tournament_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(bets, claims, refunds, errorsBy)

	// HTTP público
	api := thttp.NewServer(log, eng, repository, wcli, scores, publ)
	api.OnBet = func() { bets.Inc() }
	api.OnClaim = func() { claims.Inc() }
	api.OnRefund = func() { refunds.Inc() }
	api.OnError = func(stage string) { errorsBy.WithLabelValues(stage).Inc() }

	apiSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: api.Router(),
	}

	// metrics/health
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := pg.PingContext(r.Context()); err != nil {
			http.Error(w, "pg", http.StatusServiceUnavailable)
			return
		}
		if err := rdb.Ping(r.Context()).Err(); err != nil {
			http.Error(w, "redis", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	go func() {
		addr := fmt.Sprintf(":%s", cfg.MetricsPort)
		log.Info("metrics/health", zap.String("addr", addr))
		_ = http.ListenAndServe(addr, metricsMux)
	}()

	log.Info("tournament-service listening", zap.String("addr", fmt.Sprintf(":%s", cfg.HTTPPort)))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
