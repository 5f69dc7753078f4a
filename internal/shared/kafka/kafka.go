package kafka

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// NewWriter cria um writer para um dos tópicos do contrato (match_events,
// bet_placed, payout_events, admin_events).
func NewWriter(brokers string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

// NewReader cria um reader no consumer group informado.
// As mensagens são chaveadas por matchId, então a ordem por partida é preservada.
func NewReader(brokers []string, topic string, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
	})
}
