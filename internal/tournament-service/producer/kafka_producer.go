package producer

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/radieske/tournament-pool-poc/pkg/contracts/events"
)

// KafkaPublisher publica as notificações do motor nos tópicos do contrato.
// A chave das mensagens é o matchId, preservando a ordem por partida.
type KafkaPublisher struct {
	Matches *kafka.Writer
	Bets    *kafka.Writer
	Payouts *kafka.Writer
	Admin   *kafka.Writer
}

func NewKafkaPublisher(matches, bets, payouts, admin *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Matches: matches, Bets: bets, Payouts: payouts, Admin: admin}
}

func (p *KafkaPublisher) PublishMatchCreated(ctx context.Context, e events.MatchCreated) error {
	e.TsUnixMs = time.Now().UnixMilli()
	return write(ctx, p.Matches, e.MatchID, e)
}

func (p *KafkaPublisher) PublishDeadlineUpdated(ctx context.Context, e events.DeadlineUpdated) error {
	e.TsUnixMs = time.Now().UnixMilli()
	return write(ctx, p.Matches, e.MatchID, e)
}

func (p *KafkaPublisher) PublishMatchCompleted(ctx context.Context, e events.MatchCompleted) error {
	e.TsUnixMs = time.Now().UnixMilli()
	return write(ctx, p.Matches, e.MatchID, e)
}

func (p *KafkaPublisher) PublishMatchForfeited(ctx context.Context, e events.MatchForfeited) error {
	e.TsUnixMs = time.Now().UnixMilli()
	return write(ctx, p.Matches, e.MatchID, e)
}

func (p *KafkaPublisher) PublishBetPlaced(ctx context.Context, e events.BetPlaced) error {
	e.TsUnixMs = time.Now().UnixMilli()
	return write(ctx, p.Bets, e.MatchID, e)
}

func (p *KafkaPublisher) PublishClaimed(ctx context.Context, e events.Claimed) error {
	e.Kind = events.PayoutKindClaim
	e.TsUnixMs = time.Now().UnixMilli()
	return write(ctx, p.Payouts, e.MatchID, e)
}

func (p *KafkaPublisher) PublishRefunded(ctx context.Context, e events.Refunded) error {
	e.Kind = events.PayoutKindRefund
	e.TsUnixMs = time.Now().UnixMilli()
	return write(ctx, p.Payouts, e.MatchID, e)
}

func (p *KafkaPublisher) PublishRateUpdated(ctx context.Context, e events.RateUpdated) error {
	e.TsUnixMs = time.Now().UnixMilli()
	return write(ctx, p.Admin, 0, e)
}

func (p *KafkaPublisher) PublishMinBetUpdated(ctx context.Context, e events.MinBetUpdated) error {
	e.TsUnixMs = time.Now().UnixMilli()
	return write(ctx, p.Admin, 0, e)
}

func (p *KafkaPublisher) PublishPaused(ctx context.Context, e events.Paused) error {
	e.TsUnixMs = time.Now().UnixMilli()
	return write(ctx, p.Admin, 0, e)
}

func (p *KafkaPublisher) PublishUnpaused(ctx context.Context, e events.Unpaused) error {
	e.TsUnixMs = time.Now().UnixMilli()
	return write(ctx, p.Admin, 0, e)
}

func write(ctx context.Context, w *kafka.Writer, matchID int64, payload any) error {
	b, _ := json.Marshal(payload)
	return w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(matchID, 10)),
		Value: b,
		Time:  time.Now(),
	})
}
