package dto

type CreateMatchResponse struct {
	MatchID      int64 `json:"match_id"`
	DeadlineUnix int64 `json:"deadline_unix"`
}

type MatchResponse struct {
	MatchID       int64  `json:"match_id"`
	URI           string `json:"uri"`
	MinScore      int64  `json:"min_score"`
	ScoreMultiple int64  `json:"score_multiple"`
	DeadlineUnix  int64  `json:"deadline_unix"`
	Stage         string `json:"stage"`
	TotalCents    int64  `json:"total_cents"`
	WinningScore  int64  `json:"winning_score"`
	RewardCents   int64  `json:"reward_cents"`
	Reporter      string `json:"reporter,omitempty"`
	HouseWin      bool   `json:"house_win"`
}

type PlaceBetResponse struct {
	MatchID     int64  `json:"match_id"`
	Score       int64  `json:"score"`
	AmountCents int64  `json:"amount_cents"`
	Status      string `json:"status"` // ACCEPTED
}

type ScoreTotalResponse struct {
	MatchID    int64 `json:"match_id"`
	Score      int64 `json:"score"`
	TotalCents int64 `json:"total_cents"`
}

type ClaimableResponse struct {
	MatchID   int64  `json:"match_id"`
	Account   string `json:"account"`
	Claimable bool   `json:"claimable"`
}

type PayoutResponse struct {
	MatchID     int64  `json:"match_id"`
	Account     string `json:"account"`
	AmountCents int64  `json:"amount_cents"`
	Status      string `json:"status"` // CLAIMED | REFUNDED
}

type TreasuryResponse struct {
	BalanceCents int64 `json:"balance_cents"`
}

type RatesResponse struct {
	RewardRate   int64 `json:"reward_rate"`
	TreasuryRate int64 `json:"treasury_rate"`
	MinBetCents  int64 `json:"min_bet_cents"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
