package dto

// ReserveResponse representa a resposta do endpoint de reserva do wallet-service.
type ReserveResponse struct {
	ReservationID string `json:"reservation_id"`
	Status        string `json:"status"`
}

type WalletResponse struct {
	UserID       string `json:"userId"`
	WalletID     string `json:"walletId"`
	BalanceCents int64  `json:"balance_cents"`
}
