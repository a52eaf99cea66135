package main

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/bet-tracker/internal/bet-ingest/consumer"
	irepo "github.com/radieske/bet-tracker/internal/bet-ingest/repo"
	"github.com/radieske/bet-tracker/internal/shared/cache"
	"github.com/radieske/bet-tracker/internal/shared/config"
	"github.com/radieske/bet-tracker/internal/shared/db"
	"github.com/radieske/bet-tracker/internal/shared/kafka"
	"github.com/radieske/bet-tracker/internal/shared/logger"
	"github.com/radieske/bet-tracker/internal/shared/metrics"
	scache "github.com/radieske/bet-tracker/internal/stats-service/cache"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Postgres para materializar apostas/movimentações do canal externo
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg connect", zap.Error(err))
	}
	defer pg.Close()

	// Redis para invalidar as views calculadas após cada escrita
	rdb, err := cache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer rdb.Close()

	// Métricas Prometheus do pipeline de ingestão
	consumed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bet_ingest_messages_consumed_total", Help: "mensagens consumidas",
	}, []string{"topic"})
	persisted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bet_ingest_records_persisted_total", Help: "registros gravados",
	}, []string{"kind"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bet_ingest_errors_total", Help: "erros por estágio",
	}, []string{"stage"})
	deadLettered := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bet_ingest_dead_lettered_total", Help: "mensagens enviadas pra DLQ",
	}, []string{"topic"})
	prometheus.MustRegister(consumed, persisted, errorsBy, deadLettered)

	proc := &consumer.Processor{
		Log:         log,
		Store:       irepo.NewPostgres(pg),
		Cache:       scache.New(rdb, cfg.StatsCacheTTL),
		OnPersisted: func(kind string) { persisted.WithLabelValues(kind).Inc() },
		OnError:     func(stage string) { errorsBy.WithLabelValues(stage).Inc() },
	}

	// Servidor de métricas e health (pg + redis)
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := pg.PingContext(ctx); err != nil {
			return err
		}
		return rdb.Ping(ctx).Err()
	})
	log.Info("metrics/health", zap.String("addr", ":"+cfg.MetricsPort))

	ctx := context.Background()

	// Um loop de consumo por tópico, cada um com sua DLQ
	go runLoop(ctx, log, cfg, consumer.GroupID, cfg.TopicBetRecorded, cfg.TopicBetRecordedDLQ,
		proc.HandleBetRecorded, consumed, deadLettered)
	go runLoop(ctx, log, cfg, consumer.GroupID, cfg.TopicBetSettled, cfg.TopicBetSettledDLQ,
		proc.HandleBetSettled, consumed, deadLettered)

	log.Info("bet-ingest-worker started",
		zap.String("betRecorded", cfg.TopicBetRecorded),
		zap.String("betSettled", cfg.TopicBetSettled),
		zap.String("capitalRecorded", cfg.TopicCapitalRecorded),
	)

	runLoop(ctx, log, cfg, consumer.GroupID, cfg.TopicCapitalRecorded, cfg.TopicCapitalRecordedDLQ,
		proc.HandleCapitalRecorded, consumed, deadLettered)
}

// runLoop consome um tópico e aplica o handler. Evento inválido vai direto
// pra DLQ; erro transitório tenta de novo com backoff antes de desistir.
func runLoop(
	ctx context.Context,
	log *zap.Logger,
	cfg config.Config,
	groupID, topic, dlqTopic string,
	handle func(context.Context, []byte) error,
	consumed *prometheus.CounterVec,
	deadLettered *prometheus.CounterVec,
) {
	reader := kafka.NewReader(cfg.KafkaBrokers, topic, groupID)
	defer reader.Close()

	var dlqWriter *kafkago.Writer
	if dlqTopic != "" {
		dlqWriter = kafka.NewWriter(cfg.KafkaBrokers, dlqTopic)
		defer dlqWriter.Close()
	}

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			log.Warn("kafka read", zap.String("topic", topic), zap.Error(err))
			time.Sleep(time.Second)
			continue
		}
		consumed.WithLabelValues(topic).Inc()

		if err := handle(ctx, msg.Value); err != nil {
			if errors.Is(err, consumer.ErrBadEvent) {
				log.Error("bad event", zap.String("topic", topic), zap.Error(err))
				sendToDLQ(ctx, log, dlqWriter, topic, msg, deadLettered)
				continue
			}

			// Retry simples: tenta até 3 vezes antes de enviar para DLQ
			const retries = 3
			for i := 0; i < retries; i++ {
				time.Sleep(time.Duration(300*(i+1)) * time.Millisecond)
				if err = handle(ctx, msg.Value); err == nil {
					break
				}
			}
			if err != nil {
				log.Error("process message", zap.String("topic", topic), zap.Error(err))
				sendToDLQ(ctx, log, dlqWriter, topic, msg, deadLettered)
			}
		}
	}
}

func sendToDLQ(
	ctx context.Context,
	log *zap.Logger,
	dlqWriter *kafkago.Writer,
	topic string,
	msg kafkago.Message,
	deadLettered *prometheus.CounterVec,
) {
	if dlqWriter == nil {
		return
	}
	if err := kafka.WriteJSON(ctx, dlqWriter, string(msg.Key), msg.Value); err != nil {
		log.Error("dlq write", zap.String("topic", topic), zap.Error(err))
		return
	}
	deadLettered.WithLabelValues(topic).Inc()
}
