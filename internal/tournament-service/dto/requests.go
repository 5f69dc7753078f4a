package dto

// Account identifica o chamador em todas as operações mutantes; o motor
// decide a autorização.

type CreateMatchRequest struct {
	Account         string `json:"account"`
	URI             string `json:"uri"`
	MinScore        int64  `json:"min_score"`
	ScoreMultiple   int64  `json:"score_multiple"`
	DeadlineSeconds int64  `json:"deadline_seconds"`
}

type UpdateDeadlineRequest struct {
	Account         string `json:"account"`
	MatchID         int64  `json:"match_id"`
	DeadlineSeconds int64  `json:"deadline_seconds"`
}

type PlaceBetRequest struct {
	Account     string `json:"account"`
	MatchID     int64  `json:"match_id"`
	Score       int64  `json:"score"`
	AmountCents int64  `json:"amount_cents"`
}

type EndMatchRequest struct {
	Account      string `json:"account"`
	MatchID      int64  `json:"match_id"`
	WinningScore int64  `json:"winning_score"`
}

type ForfeitMatchRequest struct {
	Account string `json:"account"`
	MatchID int64  `json:"match_id"`
}

type ClaimRequest struct {
	Account string `json:"account"`
	MatchID int64  `json:"match_id"`
}

type RefundRequest struct {
	Account string `json:"account"`
	MatchID int64  `json:"match_id"`
}

type RewardRateRequest struct {
	Account    string `json:"account"`
	RewardRate int64  `json:"reward_rate"`
}

type MinBetRequest struct {
	Account     string `json:"account"`
	MinBetCents int64  `json:"min_bet_cents"`
}

type TreasuryClaimRequest struct {
	Account     string `json:"account"`
	AmountCents int64  `json:"amount_cents"`
}

type PauseRequest struct {
	Account string `json:"account"`
}

type RoleRequest struct {
	Account string `json:"account"`
	Role    string `json:"role"` // "umpire" | "scorer"
	Target  string `json:"target"`
}

type OfferPresidencyRequest struct {
	Account   string `json:"account"`
	Candidate string `json:"candidate"`
}

type AcceptPresidencyRequest struct {
	Account string `json:"account"`
}
