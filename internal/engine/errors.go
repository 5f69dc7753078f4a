package engine

import "errors"

// Erros de domínio do motor. Toda falha é síncrona e não deixa mutação
// parcial: cabe ao chamador decidir reenviar.
var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidState         = errors.New("invalid state")
	ErrInvalidInput         = errors.New("invalid input")
	ErrOutOfRange           = errors.New("rate out of range")
	ErrPaused               = errors.New("paused")
	ErrDuplicateBet         = errors.New("duplicate bet")
	ErrAlreadyClaimed       = errors.New("already claimed")
	ErrNotClaimable         = errors.New("not claimable")
	ErrNotRefundable        = errors.New("not refundable")
	ErrInsufficientValue    = errors.New("insufficient value")
	ErrInsufficientTreasury = errors.New("insufficient treasury")
	ErrMatchNotFound        = errors.New("match not found")
)
