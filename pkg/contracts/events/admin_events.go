package events

type RateUpdated struct {
	RewardRate int64 `json:"reward_rate"`
	TsUnixMs   int64 `json:"ts_unix_ms"`
}

type MinBetUpdated struct {
	MinBetCents int64 `json:"min_bet_cents"`
	TsUnixMs    int64 `json:"ts_unix_ms"`
}

type Paused struct {
	Account  string `json:"account"`
	TsUnixMs int64  `json:"ts_unix_ms"`
}

type Unpaused struct {
	Account  string `json:"account"`
	TsUnixMs int64  `json:"ts_unix_ms"`
}
