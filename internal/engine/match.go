package engine

import "time"

// Stage é o estágio do ciclo de vida de uma partida. A numeração (1..3) segue
// o contrato público: CREATED é o único estágio não terminal.
type Stage uint8

const (
	StageCreated   Stage = 1
	StageCompleted Stage = 2
	StageForfeited Stage = 3
)

func (s Stage) String() string {
	switch s {
	case StageCreated:
		return "CREATED"
	case StageCompleted:
		return "COMPLETED"
	case StageForfeited:
		return "FORFEITED"
	}
	return "UNKNOWN"
}

// bet é a entrada do ledger por (partida, apostador). settled é write-once:
// cobre tanto claim quanto refund, conforme o estágio terminal da partida.
type bet struct {
	score   int64
	stake   int64
	settled bool
}

// match guarda o estado de uma partida e seu ledger de apostas. Entradas
// nunca são removidas; estágios terminais e a flag settled impedem reuso.
type match struct {
	uri           string
	minScore      int64
	scoreMultiple int64
	deadline      time.Time
	stage         Stage
	totalAmount   int64
	winningScore  int64
	rewardAmount  int64
	reporter      string

	bets   map[string]*bet // conta -> aposta
	totals map[int64]int64 // bucket -> soma dos stakes
}

// validScore valida um bucket contra o domínio da partida: múltiplo de
// scoreMultiple e não abaixo de minScore.
func (m *match) validScore(score int64) bool {
	return score >= m.minScore && score%m.scoreMultiple == 0
}

// MatchView é o snapshot imutável exposto pelo motor.
type MatchView struct {
	ID            int64
	URI           string
	MinScore      int64
	ScoreMultiple int64
	Deadline      time.Time
	Stage         Stage
	TotalAmount   int64
	WinningScore  int64
	RewardAmount  int64
	Reporter      string
}

func (m *match) view(id int64) MatchView {
	return MatchView{
		ID:            id,
		URI:           m.uri,
		MinScore:      m.minScore,
		ScoreMultiple: m.scoreMultiple,
		Deadline:      m.deadline,
		Stage:         m.stage,
		TotalAmount:   m.totalAmount,
		WinningScore:  m.winningScore,
		RewardAmount:  m.rewardAmount,
		Reporter:      m.reporter,
	}
}
