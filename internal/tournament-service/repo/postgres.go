package repo

import (
	"context"
	"database/sql"
	"time"
)

// Postgres implementa a persistência de partidas e apostas em banco Postgres
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do repositório
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// InsertMatch grava uma partida recém-criada (stage CREATED)
func (p *Postgres) InsertMatch(ctx context.Context, m *Match) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO matches (id, uri, min_score, score_multiple, deadline, stage, reporter)
		VALUES ($1,$2,$3,$4,$5,'CREATED',$6)`,
		m.ID, m.URI, m.MinScore, m.ScoreMultiple, m.Deadline, m.Reporter,
	)
	return err
}

// UpdateDeadline registra o novo prazo re-ancorado
func (p *Postgres) UpdateDeadline(ctx context.Context, matchID int64, deadline time.Time) error {
	_, err := p.db.ExecContext(ctx,
		`UPDATE matches SET deadline=$1, updated_at=NOW() WHERE id=$2`, deadline, matchID)
	return err
}

// MarkCompleted registra a liquidação da partida
func (p *Postgres) MarkCompleted(ctx context.Context, matchID, winningScore, rewardCents int64, reporter string) error {
	_, err := p.db.ExecContext(ctx, `
		UPDATE matches
		SET stage='COMPLETED', winning_score=$1, reward_cents=$2, reporter=$3, updated_at=NOW()
		WHERE id=$4`,
		winningScore, rewardCents, reporter, matchID,
	)
	return err
}

// MarkForfeited registra a anulação da partida
func (p *Postgres) MarkForfeited(ctx context.Context, matchID int64, reporter string) error {
	_, err := p.db.ExecContext(ctx,
		`UPDATE matches SET stage='FORFEITED', reporter=$1, updated_at=NOW() WHERE id=$2`,
		reporter, matchID)
	return err
}

// InsertBet grava uma aposta aceita pelo motor
func (p *Postgres) InsertBet(ctx context.Context, b *Bet) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO bets (match_id, account, score, amount_cents, status, reserved_ref)
		VALUES ($1,$2,$3,$4,'PLACED',$5)`,
		b.MatchID, b.Account, b.Score, b.AmountCents, b.ReservedRef,
	)
	return err
}

// SettleBet marca a entrada como CLAIMED ou REFUNDED com o valor pago
func (p *Postgres) SettleBet(ctx context.Context, matchID int64, account, status string, paidCents int64) error {
	_, err := p.db.ExecContext(ctx, `
		UPDATE bets SET status=$1, paid_cents=$2, updated_at=NOW()
		WHERE match_id=$3 AND account=$4`,
		status, paidCents, matchID, account,
	)
	return err
}
