package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ScoresCache mantém em Redis o total apostado por (partida, bucket). O motor
// é a fonte de verdade; o cache só alivia as leituras de getBetsAtScore.
type ScoresCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewScoresCache cria a instância com TTL configurável
func NewScoresCache(c *redis.Client, ttl time.Duration) *ScoresCache {
	return &ScoresCache{Client: c, TTL: ttl}
}

// key gera a chave Redis do total de um bucket
func key(matchID, score int64) string {
	return fmt.Sprintf("scores:%d:%d", matchID, score)
}

// SetTotal armazena o total corrente do bucket com TTL definido
func (s *ScoresCache) SetTotal(ctx context.Context, matchID, score, totalCents int64) error {
	return s.Client.Set(ctx, key(matchID, score), totalCents, s.TTL).Err()
}

// GetTotal retorna o total em cache; ok=false em miss
func (s *ScoresCache) GetTotal(ctx context.Context, matchID, score int64) (int64, bool, error) {
	val, err := s.Client.Get(ctx, key(matchID, score)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}
