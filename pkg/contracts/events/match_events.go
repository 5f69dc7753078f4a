package events

// MatchCreated é emitido quando o umpire registra uma nova partida.
// Deadline é o timestamp absoluto (unix) já resolvido pelo motor.
type MatchCreated struct {
	MatchID       int64  `json:"match_id"`
	Reporter      string `json:"reporter"`
	URI           string `json:"uri"`
	MinScore      int64  `json:"min_score"`
	ScoreMultiple int64  `json:"score_multiple"`
	Deadline      int64  `json:"deadline"`
	TsUnixMs      int64  `json:"ts_unix_ms"`
}

// DeadlineUpdated é emitido quando o prazo de apostas é re-ancorado.
type DeadlineUpdated struct {
	MatchID  int64  `json:"match_id"`
	Reporter string `json:"reporter"`
	Deadline int64  `json:"deadline"`
	TsUnixMs int64  `json:"ts_unix_ms"`
}

// MatchCompleted é emitido na liquidação da partida.
type MatchCompleted struct {
	MatchID      int64  `json:"match_id"`
	Reporter     string `json:"reporter"`
	WinningScore int64  `json:"winning_score"`
	TsUnixMs     int64  `json:"ts_unix_ms"`
}

// MatchForfeited é emitido quando uma partida é anulada antes do resultado.
type MatchForfeited struct {
	MatchID  int64  `json:"match_id"`
	Reporter string `json:"reporter"`
	TsUnixMs int64  `json:"ts_unix_ms"`
}
