package repo

import "time"

// Match é o registro persistido de uma partida. O motor em memória é a fonte
// de verdade; estas linhas são trilha de auditoria e base de consulta fria.
type Match struct {
	ID            int64
	URI           string
	MinScore      int64
	ScoreMultiple int64
	Deadline      time.Time
	Stage         string
	WinningScore  int64
	RewardCents   int64
	Reporter      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Bet é a entrada persistida do ledger por (partida, conta).
type Bet struct {
	MatchID     int64
	Account     string
	Score       int64
	AmountCents int64
	Status      string // PLACED | CLAIMED | REFUNDED
	ReservedRef string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
