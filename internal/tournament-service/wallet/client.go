package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	walletdto "github.com/radieske/tournament-pool-poc/internal/tournament-service/wallet/dto"
)

// Client fala com o wallet-service externo: a perna de stake usa
// reserve/commit/refund (idempotente por external_ref) e a perna de payout
// usa deposit.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(base string) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: 2 * time.Second},
	}
}

// Reserve bloqueia o stake do apostador antes do registro da aposta.
func (c *Client) Reserve(ctx context.Context, userID string, cents int64, externalRef string) (string, error) {
	body, _ := json.Marshal(walletdto.ReserveRequest{UserID: userID, AmountCents: cents, ExternalRef: externalRef})
	var out walletdto.ReserveResponse
	if err := c.post(ctx, "/wallet/reserve", body, &out); err != nil {
		return "", err
	}
	return out.ReservationID, nil
}

// Commit efetiva a reserva depois que o motor aceitou a aposta.
func (c *Client) Commit(ctx context.Context, userID, externalRef string) error {
	body, _ := json.Marshal(walletdto.CommitRequest{UserID: userID, ExternalRef: externalRef})
	return c.post(ctx, "/wallet/commit", body, nil)
}

// Refund desfaz a reserva quando o motor rejeita a aposta.
func (c *Client) Refund(ctx context.Context, userID, externalRef string) error {
	body, _ := json.Marshal(walletdto.RefundRequest{UserID: userID, ExternalRef: externalRef})
	return c.post(ctx, "/wallet/refund", body, nil)
}

// Deposit credita valor na carteira do usuário (payouts e saque de tesouraria).
func (c *Client) Deposit(ctx context.Context, userID string, cents int64, externalRef string) error {
	body, _ := json.Marshal(walletdto.DepositRequest{UserID: userID, AmountCents: cents, ExternalRef: externalRef})
	return c.post(ctx, "/wallet/deposit", body, nil)
}

// Transfer implementa a primitiva de movimentação de fundos do motor
// (engine.Bank): um depósito com ref gerada aqui.
func (c *Client) Transfer(ctx context.Context, account string, cents int64) error {
	return c.Deposit(ctx, account, cents, "payout:"+uuid.NewString())
}

func (c *Client) post(ctx context.Context, path string, body []byte, out any) error {
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return fmt.Errorf("wallet %s http %d", path, res.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
