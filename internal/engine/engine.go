package engine

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TotalRate é a base percentual da divisão recompensa/tesouraria.
const TotalRate int64 = 100

// Limites do rewardRate (inclusivos).
const (
	minRewardRate int64 = 90
	maxRewardRate       = TotalRate
)

// Bank é a primitiva externa de movimentação de fundos (payouts). A
// transferência é atômica: se falhar, a operação que a envolve falha por
// inteiro e nenhuma flag de claim/refund é gravada.
type Bank interface {
	Transfer(ctx context.Context, account string, amountCents int64) error
}

// Engine é o motor pari-mutuel: registro de partidas, ledger de apostas,
// liquidação e tesouraria. Toda operação mutante roda sob seção crítica
// exclusiva; leituras usam o lock compartilhado. É o equivalente explícito
// da execução serializada assumida pelos argumentos de corretude
// (sem double-claim, sem double-bet, conservação exata de fundos).
type Engine struct {
	mu   sync.RWMutex
	log  *zap.Logger
	bank Bank
	now  func() time.Time

	president        string
	pendingPresident string
	roles            map[Role]map[string]bool

	rewardRate   int64
	minBetAmount int64
	paused       bool
	treasury     int64

	matches []*match // ids sequenciais a partir de 1 (índice id-1)
}

// Option ajusta dependências do motor na construção.
type Option func(*Engine)

// WithClock troca a fonte de tempo usada nos deadlines (testes).
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRewardRate define o rewardRate inicial. Fora de 90..100 o default
// (90) é mantido.
func WithRewardRate(rate int64) Option {
	return func(e *Engine) {
		if rate >= minRewardRate && rate <= maxRewardRate {
			e.rewardRate = rate
		}
	}
}

// WithMinBet define o piso de aposta inicial em centavos.
func WithMinBet(cents int64) Option {
	return func(e *Engine) {
		if cents >= 0 {
			e.minBetAmount = cents
		}
	}
}

// New cria o motor com o presidente inicial e rewardRate padrão de 90.
func New(log *zap.Logger, bank Bank, president string, opts ...Option) *Engine {
	e := &Engine{
		log:        log,
		bank:       bank,
		now:        time.Now,
		president:  president,
		roles:      map[Role]map[string]bool{RoleUmpire: {}, RoleScorer: {}},
		rewardRate: minRewardRate,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// RewardRate retorna a fração (em %) do pool distribuída aos vencedores.
func (e *Engine) RewardRate() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.rewardRate
}

// TreasuryRate é derivado: TotalRate - rewardRate.
func (e *Engine) TreasuryRate() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return TotalRate - e.rewardRate
}

// MinBetAmount retorna o piso de aposta em centavos.
func (e *Engine) MinBetAmount() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.minBetAmount
}

// SetRewardRate ajusta a divisão recompensa/tesouraria. Somente o presidente;
// faixa válida 90..100.
func (e *Engine) SetRewardRate(caller string, rate int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.paused {
		return ErrPaused
	}
	if caller != e.president {
		return ErrUnauthorized
	}
	if rate < minRewardRate || rate > maxRewardRate {
		return ErrOutOfRange
	}
	e.rewardRate = rate
	e.log.Info("reward rate updated", zap.Int64("reward_rate", rate))
	return nil
}

// SetMinBetAmount ajusta o piso de aposta. Somente o presidente.
func (e *Engine) SetMinBetAmount(caller string, cents int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.paused {
		return ErrPaused
	}
	if caller != e.president {
		return ErrUnauthorized
	}
	if cents < 0 {
		return ErrInvalidInput
	}
	e.minBetAmount = cents
	e.log.Info("min bet updated", zap.Int64("min_bet_cents", cents))
	return nil
}

// TreasuryAmount retorna o saldo corrente da tesouraria.
func (e *Engine) TreasuryAmount() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.treasury
}

// ClaimTreasury saca parte do saldo da tesouraria para o presidente. O saque
// é limitado pelo saldo; a transferência precede o débito (fail-closed).
func (e *Engine) ClaimTreasury(ctx context.Context, caller string, amountCents int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.paused {
		return ErrPaused
	}
	if caller != e.president {
		return ErrUnauthorized
	}
	if amountCents <= 0 {
		return ErrInvalidInput
	}
	if amountCents > e.treasury {
		return ErrInsufficientTreasury
	}
	if err := e.bank.Transfer(ctx, caller, amountCents); err != nil {
		return err
	}
	e.treasury -= amountCents
	e.log.Info("treasury claimed",
		zap.String("account", caller),
		zap.Int64("amount_cents", amountCents),
		zap.Int64("balance_cents", e.treasury),
	)
	return nil
}

// matchByID resolve um id sequencial para a partida. Chamado sob lock.
func (e *Engine) matchByID(id int64) (*match, error) {
	if id < 1 || id > int64(len(e.matches)) {
		return nil, ErrMatchNotFound
	}
	return e.matches[id-1], nil
}
