package topics

const (
	// Ciclo de vida das partidas
	MatchEvents = "match_events"

	// Apostas aceitas pelo motor
	BetPlaced = "bet_placed"

	// Pagamentos (claims e refunds)
	PayoutEvents = "payout_events"

	// Administração: taxas, pausa, sucessão
	AdminEvents = "admin_events"
)
