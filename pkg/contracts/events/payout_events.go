package events

// Tipos de pagamento publicados no tópico payout_events.
// O campo kind discrimina o tipo no consumo, já que os dois payloads têm o mesmo formato.
const (
	PayoutKindClaim  = "CLAIM"
	PayoutKindRefund = "REFUND"
)

// Claimed é emitido quando um vencedor saca o prêmio (stake + fração do pool).
type Claimed struct {
	Kind        string `json:"kind"`
	MatchID     int64  `json:"match_id"`
	Sender      string `json:"sender"`
	AmountCents int64  `json:"amount_cents"`
	TsUnixMs    int64  `json:"ts_unix_ms"`
}

// Refunded é emitido quando um apostador recupera o stake de partida anulada.
type Refunded struct {
	Kind        string `json:"kind"`
	MatchID     int64  `json:"match_id"`
	Sender      string `json:"sender"`
	AmountCents int64  `json:"amount_cents"`
	TsUnixMs    int64  `json:"ts_unix_ms"`
}
