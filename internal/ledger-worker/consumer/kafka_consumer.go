package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/tournament-pool-poc/internal/ledger-worker/repository"
	"github.com/radieske/tournament-pool-poc/pkg/contracts/events"
)

// Processor consome mensagens de um tópico e grava os lançamentos no razão
// Callbacks de métricas podem ser usadas para monitoramento de cada etapa
type Processor struct {
	Log    *zap.Logger
	Reader *kafka.Reader
	Repo   *repository.PostgresRepo
	Decode func([]byte) (repository.Entry, error)

	OnConsumed func()       // métricas (counter++)
	OnPersist  func()       // métricas
	OnError    func(string) // métricas por fase
}

// Run inicia o loop principal de consumo e gravação das mensagens Kafka
func (p *Processor) Run(ctx context.Context) error {
	for {
		m, err := p.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err() // encerra se o contexto for cancelado
			}
			p.Log.Warn("kafka read failed", zap.Error(err))
			if p.OnError != nil {
				p.OnError("read")
			}
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if p.OnConsumed != nil {
			p.OnConsumed() // callback de métrica: mensagem consumida
		}

		entry, err := p.Decode(m.Value)
		if err != nil {
			p.Log.Warn("invalid message", zap.Error(err))
			if p.OnError != nil {
				p.OnError("decode")
			}
			continue
		}

		if err := p.Repo.InsertEntry(ctx, entry); err != nil {
			p.Log.Warn("db insert failed", zap.Error(err))
			if p.OnError != nil {
				p.OnError("db_insert")
			}
			continue
		}
		if p.OnPersist != nil {
			p.OnPersist() // callback de métrica: persistência concluída
		}
	}
}

// DecodeBetPlaced converte um evento bet_placed em lançamento de débito do apostador.
func DecodeBetPlaced(b []byte) (repository.Entry, error) {
	var ev events.BetPlaced
	if err := json.Unmarshal(b, &ev); err != nil {
		return repository.Entry{}, err
	}
	return repository.Entry{
		MatchID:     ev.MatchID,
		Account:     ev.Sender,
		Kind:        "BET",
		Score:       ev.Score,
		AmountCents: ev.AmountCents,
		OccurredAt:  time.UnixMilli(ev.TsUnixMs),
	}, nil
}

// DecodePayout converte claims e refunds em lançamentos de crédito (valor negativo).
func DecodePayout(b []byte) (repository.Entry, error) {
	var ev events.Claimed
	if err := json.Unmarshal(b, &ev); err != nil {
		return repository.Entry{}, err
	}
	switch ev.Kind {
	case events.PayoutKindClaim, events.PayoutKindRefund:
	default:
		return repository.Entry{}, fmt.Errorf("unknown payout kind %q", ev.Kind)
	}
	return repository.Entry{
		MatchID:     ev.MatchID,
		Account:     ev.Sender,
		Kind:        ev.Kind,
		AmountCents: -ev.AmountCents,
		OccurredAt:  time.UnixMilli(ev.TsUnixMs),
	}, nil
}
