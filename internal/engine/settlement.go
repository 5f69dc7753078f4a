package engine

import (
	"context"

	"go.uber.org/zap"
)

// BetScore registra a aposta de caller no bucket score. O valor já deve ter
// sido garantido pelo chamador (reserva na carteira); o motor só faz a
// contabilidade. Uma aposta por conta por partida, sem exceção.
func (e *Engine) BetScore(caller string, matchID, score, amountCents int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.paused {
		return ErrPaused
	}
	m, err := e.matchByID(matchID)
	if err != nil {
		return err
	}
	if m.stage != StageCreated || !e.now().Before(m.deadline) {
		return ErrInvalidState
	}
	if !m.validScore(score) {
		return ErrInvalidInput
	}
	if amountCents <= 0 || amountCents < e.minBetAmount {
		return ErrInsufficientValue
	}
	if _, exists := m.bets[caller]; exists {
		return ErrDuplicateBet
	}

	m.bets[caller] = &bet{score: score, stake: amountCents}
	m.totals[score] += amountCents
	m.totalAmount += amountCents

	e.log.Info("bet placed",
		zap.Int64("match_id", matchID),
		zap.String("sender", caller),
		zap.Int64("score", score),
		zap.Int64("amount_cents", amountCents),
	)
	return nil
}

// BetsAtScore retorna o total apostado no bucket. Leitura pura, válida em
// qualquer estágio.
func (e *Engine) BetsAtScore(matchID, score int64) (int64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	m, err := e.matchByID(matchID)
	if err != nil {
		return 0, err
	}
	return m.totals[score], nil
}

// EndMatch reporta o placar final e liquida a partida de forma síncrona.
// Umpire/scorer. Se ninguém apostou no bucket vencedor, todo o pool vai para
// a tesouraria (house win) e nenhuma conta fica com claim. Caso contrário o
// pool dos perdedores é dividido por flooring entre recompensa
// (rewardRate/100) e tesouraria (treasuryRate/100); o resíduo do flooring
// (< TotalRate centavos) fica retido no pool, sem dono.
func (e *Engine) EndMatch(caller string, matchID, winningScore int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.paused {
		return ErrPaused
	}
	if !e.hasRole(RoleScorer, caller) && !e.hasRole(RoleUmpire, caller) {
		return ErrUnauthorized
	}
	m, err := e.matchByID(matchID)
	if err != nil {
		return err
	}
	if m.stage != StageCreated {
		return ErrInvalidState
	}
	if !m.validScore(winningScore) {
		return ErrInvalidInput
	}

	winningTotal := m.totals[winningScore]
	if winningTotal == 0 {
		// House win: nada a distribuir, pool inteiro vira receita.
		e.treasury += m.totalAmount
		m.rewardAmount = 0
	} else {
		pool := m.totalAmount - winningTotal
		m.rewardAmount = pool * e.rewardRate / TotalRate
		e.treasury += pool * (TotalRate - e.rewardRate) / TotalRate
	}
	m.stage = StageCompleted
	m.winningScore = winningScore
	m.reporter = caller

	e.log.Info("match completed",
		zap.Int64("match_id", matchID),
		zap.String("reporter", caller),
		zap.Int64("winning_score", winningScore),
		zap.Int64("reward_cents", m.rewardAmount),
		zap.Bool("house_win", winningTotal == 0),
	)
	return nil
}

// IsHouseWin informa se a partida foi liquidada sem aposta no bucket
// vencedor. Os totais por bucket são imutáveis após a liquidação, então a
// consulta é estável. rewardAmount == 0 sozinho não basta: se todos apostam
// no bucket vencedor o pool excedente é zero e ainda assim cada vencedor
// saca o próprio stake.
func (e *Engine) IsHouseWin(matchID int64) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	m, err := e.matchByID(matchID)
	if err != nil {
		return false, err
	}
	return m.stage == StageCompleted && m.totalAmount > 0 && m.totals[m.winningScore] == 0, nil
}

// Claimable informa se a conta tem prêmio não sacado na partida.
func (e *Engine) Claimable(matchID int64, account string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	m, err := e.matchByID(matchID)
	if err != nil || m.stage != StageCompleted {
		return false
	}
	b, ok := m.bets[account]
	return ok && !b.settled && b.score == m.winningScore
}

// Claim paga o prêmio do vencedor: stake + floor(stake*rewardAmount/
// winningTotal). Write-once: a repetição falha com ErrAlreadyClaimed. A
// transferência precede a marcação; se falhar, a entrada continua sacável.
func (e *Engine) Claim(ctx context.Context, caller string, matchID int64) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.paused {
		return 0, ErrPaused
	}
	m, err := e.matchByID(matchID)
	if err != nil {
		return 0, err
	}
	if m.stage != StageCompleted {
		return 0, ErrNotClaimable
	}
	b, ok := m.bets[caller]
	if !ok || b.score != m.winningScore {
		return 0, ErrNotClaimable
	}
	if b.settled {
		return 0, ErrAlreadyClaimed
	}

	// winningTotal > 0 aqui: a entrada do caller está no bucket vencedor.
	winningTotal := m.totals[m.winningScore]
	payout := b.stake + b.stake*m.rewardAmount/winningTotal
	if err := e.bank.Transfer(ctx, caller, payout); err != nil {
		return 0, err
	}
	b.settled = true

	e.log.Info("claimed",
		zap.Int64("match_id", matchID),
		zap.String("sender", caller),
		zap.Int64("amount_cents", payout),
	)
	return payout, nil
}

// ForfeitMatch anula uma partida ainda em CREATED. Nenhum fundo se move
// aqui; cada apostador recupera o stake via Refund.
func (e *Engine) ForfeitMatch(caller string, matchID int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.paused {
		return ErrPaused
	}
	if !e.hasRole(RoleUmpire, caller) {
		return ErrUnauthorized
	}
	m, err := e.matchByID(matchID)
	if err != nil {
		return err
	}
	if m.stage != StageCreated {
		return ErrInvalidState
	}

	m.stage = StageForfeited
	m.reporter = caller
	e.log.Info("match forfeited", zap.Int64("match_id", matchID), zap.String("reporter", caller))
	return nil
}

// Refund devolve exatamente o stake original em partida anulada. Write-once:
// repetição falha com ErrNotRefundable.
func (e *Engine) Refund(ctx context.Context, caller string, matchID int64) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.paused {
		return 0, ErrPaused
	}
	m, err := e.matchByID(matchID)
	if err != nil {
		return 0, err
	}
	if m.stage != StageForfeited {
		return 0, ErrNotRefundable
	}
	b, ok := m.bets[caller]
	if !ok || b.settled {
		return 0, ErrNotRefundable
	}

	if err := e.bank.Transfer(ctx, caller, b.stake); err != nil {
		return 0, err
	}
	b.settled = true

	e.log.Info("refunded",
		zap.Int64("match_id", matchID),
		zap.String("sender", caller),
		zap.Int64("amount_cents", b.stake),
	)
	return b.stake, nil
}
