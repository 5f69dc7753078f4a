package engine

import (
	"time"

	"go.uber.org/zap"
)

// CreateMatch registra uma nova partida e devolve o id sequencial e o
// deadline absoluto (now + delta). Umpire ou superior.
func (e *Engine) CreateMatch(caller, uri string, minScore, scoreMultiple int64, deadlineDelta time.Duration) (int64, time.Time, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.paused {
		return 0, time.Time{}, ErrPaused
	}
	if !e.hasRole(RoleUmpire, caller) {
		return 0, time.Time{}, ErrUnauthorized
	}
	if uri == "" || scoreMultiple <= 0 || minScore < 0 {
		return 0, time.Time{}, ErrInvalidInput
	}

	deadline := e.now().Add(deadlineDelta)
	e.matches = append(e.matches, &match{
		uri:           uri,
		minScore:      minScore,
		scoreMultiple: scoreMultiple,
		deadline:      deadline,
		stage:         StageCreated,
		bets:          map[string]*bet{},
		totals:        map[int64]int64{},
	})
	id := int64(len(e.matches))

	e.log.Info("match created",
		zap.Int64("match_id", id),
		zap.String("reporter", caller),
		zap.String("uri", uri),
		zap.Time("deadline", deadline),
	)
	return id, deadline, nil
}

// UpdateDeadline re-ancora o prazo de apostas em now + delta (não é aditivo
// ao prazo anterior). Válido apenas em CREATED, inclusive depois de o prazo
// antigo já ter passado — é assim que um operador estende uma partida
// estagnada.
func (e *Engine) UpdateDeadline(caller string, matchID int64, delta time.Duration) (time.Time, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.paused {
		return time.Time{}, ErrPaused
	}
	if !e.hasRole(RoleUmpire, caller) {
		return time.Time{}, ErrUnauthorized
	}
	m, err := e.matchByID(matchID)
	if err != nil {
		return time.Time{}, err
	}
	if m.stage != StageCreated {
		return time.Time{}, ErrInvalidState
	}

	m.deadline = e.now().Add(delta)
	e.log.Info("deadline updated",
		zap.Int64("match_id", matchID),
		zap.Time("deadline", m.deadline),
	)
	return m.deadline, nil
}

// MatchCount retorna o maior id já atribuído (0 se nenhuma partida).
func (e *Engine) MatchCount() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return int64(len(e.matches))
}

// Match retorna o snapshot de uma partida.
func (e *Engine) Match(matchID int64) (MatchView, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	m, err := e.matchByID(matchID)
	if err != nil {
		return MatchView{}, err
	}
	return m.view(matchID), nil
}
