package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Entry é um lançamento imutável do livro-razão do torneio.
// Débitos (stake) entram positivos; créditos (prêmio, estorno) entram negativos.
type Entry struct {
	MatchID     int64
	Account     string
	Kind        string // BET | CLAIM | REFUND
	Score       int64  // só faz sentido para BET
	AmountCents int64
	OccurredAt  time.Time
}

// PostgresRepo persiste lançamentos na tabela tournament_ledger (append-only)
// DB: conexão com o banco de dados
type PostgresRepo struct {
	DB *sql.DB
}

// NewPostgresRepo retorna uma instância de repositório Postgres
func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{DB: db}
}

// InsertEntry insere um lançamento no razão. Nunca atualiza linhas existentes.
func (r *PostgresRepo) InsertEntry(ctx context.Context, e Entry) error {
	const q = `
		INSERT INTO tournament_ledger
		  (id, match_id, account, kind, score, amount_cents, occurred_at)
		VALUES
		  ($1,$2,$3,$4,$5,$6,$7)
	`
	_, err := r.DB.ExecContext(ctx, q,
		uuid.NewString(), e.MatchID, e.Account, e.Kind, e.Score, e.AmountCents, e.OccurredAt,
	)
	return err
}
