package engine

import "go.uber.org/zap"

// Role é o conjunto fechado de papéis reconhecidos pelo motor. O presidente
// não é um papel: é a autoridade máxima e satisfaz qualquer verificação.
type Role uint8

const (
	RoleUmpire Role = iota + 1
	RoleScorer
)

func (r Role) String() string {
	switch r {
	case RoleUmpire:
		return "umpire"
	case RoleScorer:
		return "scorer"
	}
	return "unknown"
}

// ParseRole converte o nome público do papel. ok=false para nome desconhecido.
func ParseRole(name string) (Role, bool) {
	switch name {
	case "umpire":
		return RoleUmpire, true
	case "scorer":
		return RoleScorer, true
	}
	return 0, false
}

// President retorna a conta que detém a autoridade máxima.
func (e *Engine) President() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.president
}

// HasRole informa se a conta detém o papel ("umpire ou superior": o
// presidente passa em qualquer verificação).
func (e *Engine) HasRole(role Role, account string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hasRole(role, account)
}

func (e *Engine) hasRole(role Role, account string) bool {
	if account == e.president {
		return true
	}
	return e.roles[role][account]
}

// GrantRole concede um papel. Somente o presidente.
func (e *Engine) GrantRole(caller string, role Role, account string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if caller != e.president {
		return ErrUnauthorized
	}
	holders, ok := e.roles[role]
	if !ok || account == "" {
		return ErrInvalidInput
	}
	holders[account] = true
	e.log.Info("role granted", zap.String("role", role.String()), zap.String("account", account))
	return nil
}

// RevokeRole revoga um papel. Somente o presidente.
func (e *Engine) RevokeRole(caller string, role Role, account string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if caller != e.president {
		return ErrUnauthorized
	}
	holders, ok := e.roles[role]
	if !ok {
		return ErrInvalidInput
	}
	delete(holders, account)
	e.log.Info("role revoked", zap.String("role", role.String()), zap.String("account", account))
	return nil
}

// OfferPresidency registra um sucessor pendente. Sem efeito até o aceite;
// uma nova oferta substitui a anterior.
func (e *Engine) OfferPresidency(caller, candidate string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if caller != e.president {
		return ErrUnauthorized
	}
	if candidate == "" || candidate == e.president {
		return ErrInvalidInput
	}
	e.pendingPresident = candidate
	e.log.Info("presidency offered", zap.String("candidate", candidate))
	return nil
}

// AcceptPresidency efetiva a sucessão. Somente o candidato ofertado; a troca
// é atômica e limpa a oferta pendente.
func (e *Engine) AcceptPresidency(caller string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pendingPresident == "" || caller != e.pendingPresident {
		return ErrUnauthorized
	}
	e.log.Info("presidency transferred",
		zap.String("from", e.president),
		zap.String("to", caller),
	)
	e.president = caller
	e.pendingPresident = ""
	return nil
}

// Paused informa se o gate global está engatado.
func (e *Engine) Paused() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.paused
}

// Pause engata o gate global. Presidente ou umpire; falha se já pausado.
func (e *Engine) Pause(caller string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.hasRole(RoleUmpire, caller) {
		return ErrUnauthorized
	}
	if e.paused {
		return ErrInvalidState
	}
	e.paused = true
	e.log.Info("paused", zap.String("account", caller))
	return nil
}

// Unpause solta o gate global. Presidente ou umpire; falha se não pausado.
func (e *Engine) Unpause(caller string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.hasRole(RoleUmpire, caller) {
		return ErrUnauthorized
	}
	if !e.paused {
		return ErrInvalidState
	}
	e.paused = false
	e.log.Info("unpaused", zap.String("account", caller))
	return nil
}
