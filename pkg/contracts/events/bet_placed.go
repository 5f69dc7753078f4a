package events

type BetPlaced struct {
	MatchID     int64  `json:"match_id"`
	Sender      string `json:"sender"`
	Score       int64  `json:"score"`
	AmountCents int64  `json:"amount_cents"`
	ReservedRef string `json:"reserved_ref"` // external_ref usado na reserva da carteira
	TsUnixMs    int64  `json:"ts_unix_ms"`
}
