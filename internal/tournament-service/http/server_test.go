package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/tournament-pool-poc/internal/engine"
	"github.com/radieske/tournament-pool-poc/internal/tournament-service/dto"
	"github.com/radieske/tournament-pool-poc/internal/tournament-service/repo"
	"github.com/radieske/tournament-pool-poc/internal/tournament-service/wallet"
	walletdto "github.com/radieske/tournament-pool-poc/internal/tournament-service/wallet/dto"
	"github.com/radieske/tournament-pool-poc/pkg/contracts/events"
)

// fakeWallet simula o wallet-service externo e registra as chamadas.
type fakeWallet struct {
	mu       sync.Mutex
	reserves int
	commits  int
	refunds  int
	deposits map[string]int64 // conta -> total creditado
}

func newFakeWallet(t *testing.T) (*fakeWallet, *wallet.Client) {
	t.Helper()
	fw := &fakeWallet{deposits: map[string]int64{}}
	mux := http.NewServeMux()
	mux.HandleFunc("/wallet/reserve", func(w http.ResponseWriter, r *http.Request) {
		fw.mu.Lock()
		fw.reserves++
		fw.mu.Unlock()
		_ = json.NewEncoder(w).Encode(walletdto.ReserveResponse{ReservationID: "res-1", Status: "PENDING"})
	})
	mux.HandleFunc("/wallet/commit", func(w http.ResponseWriter, r *http.Request) {
		fw.mu.Lock()
		fw.commits++
		fw.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/wallet/refund", func(w http.ResponseWriter, r *http.Request) {
		fw.mu.Lock()
		fw.refunds++
		fw.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/wallet/deposit", func(w http.ResponseWriter, r *http.Request) {
		var req walletdto.DepositRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		fw.mu.Lock()
		fw.deposits[req.UserID] += req.AmountCents
		fw.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return fw, wallet.New(srv.URL)
}

type fakeRepo struct{}

func (fakeRepo) InsertMatch(context.Context, *repo.Match) error { return nil }
func (fakeRepo) UpdateDeadline(context.Context, int64, time.Time) error {
	return nil
}
func (fakeRepo) MarkCompleted(context.Context, int64, int64, int64, string) error { return nil }
func (fakeRepo) MarkForfeited(context.Context, int64, string) error               { return nil }
func (fakeRepo) InsertBet(context.Context, *repo.Bet) error                       { return nil }
func (fakeRepo) SettleBet(context.Context, int64, string, string, int64) error    { return nil }

type fakeCache struct {
	mu     sync.Mutex
	totals map[string]int64
}

func (c *fakeCache) SetTotal(_ context.Context, matchID, score, total int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.totals[fmt.Sprintf("%d:%d", matchID, score)] = total
	return nil
}

func (c *fakeCache) GetTotal(_ context.Context, matchID, score int64) (int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.totals[fmt.Sprintf("%d:%d", matchID, score)]
	return v, ok, nil
}

// fakePublisher registra quantos eventos saíram por tipo.
type fakePublisher struct {
	mu     sync.Mutex
	counts map[string]int
}

func (p *fakePublisher) bump(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.counts[name]++
	return nil
}

func (p *fakePublisher) PublishMatchCreated(_ context.Context, _ events.MatchCreated) error {
	return p.bump("match_created")
}
func (p *fakePublisher) PublishDeadlineUpdated(_ context.Context, _ events.DeadlineUpdated) error {
	return p.bump("deadline_updated")
}
func (p *fakePublisher) PublishMatchCompleted(_ context.Context, _ events.MatchCompleted) error {
	return p.bump("match_completed")
}
func (p *fakePublisher) PublishMatchForfeited(_ context.Context, _ events.MatchForfeited) error {
	return p.bump("match_forfeited")
}
func (p *fakePublisher) PublishBetPlaced(_ context.Context, _ events.BetPlaced) error {
	return p.bump("bet_placed")
}
func (p *fakePublisher) PublishClaimed(_ context.Context, _ events.Claimed) error {
	return p.bump("claimed")
}
func (p *fakePublisher) PublishRefunded(_ context.Context, _ events.Refunded) error {
	return p.bump("refunded")
}
func (p *fakePublisher) PublishRateUpdated(_ context.Context, _ events.RateUpdated) error {
	return p.bump("rate_updated")
}
func (p *fakePublisher) PublishMinBetUpdated(_ context.Context, _ events.MinBetUpdated) error {
	return p.bump("min_bet_updated")
}
func (p *fakePublisher) PublishPaused(_ context.Context, _ events.Paused) error {
	return p.bump("paused")
}
func (p *fakePublisher) PublishUnpaused(_ context.Context, _ events.Unpaused) error {
	return p.bump("unpaused")
}

type testEnv struct {
	api    *httptest.Server
	wallet *fakeWallet
	publ   *fakePublisher
	eng    *engine.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	fw, wcli := newFakeWallet(t)
	eng := engine.New(zap.NewNop(), wcli, "president")
	if err := eng.GrantRole("president", engine.RoleUmpire, "umpire"); err != nil {
		t.Fatalf("grant umpire: %v", err)
	}
	publ := &fakePublisher{counts: map[string]int{}}
	srv := NewServer(zap.NewNop(), eng, fakeRepo{}, wcli, &fakeCache{totals: map[string]int64{}}, publ)
	api := httptest.NewServer(srv.Router())
	t.Cleanup(api.Close)
	return &testEnv{api: api, wallet: fw, publ: publ, eng: eng}
}

func (e *testEnv) post(t *testing.T, path string, body any, out any) int {
	t.Helper()
	b, _ := json.Marshal(body)
	res, err := http.Post(e.api.URL+path, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer res.Body.Close()
	if out != nil && res.StatusCode < 300 {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return res.StatusCode
}

func (e *testEnv) get(t *testing.T, path string, out any) int {
	t.Helper()
	res, err := http.Get(e.api.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer res.Body.Close()
	if out != nil && res.StatusCode < 300 {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return res.StatusCode
}

func createTestMatch(t *testing.T, e *testEnv) int64 {
	t.Helper()
	var out dto.CreateMatchResponse
	code := e.post(t, "/matches", dto.CreateMatchRequest{
		Account:         "umpire",
		URI:             "Qmc...",
		MinScore:        100,
		ScoreMultiple:   10,
		DeadlineSeconds: 3600,
	}, &out)
	if code != http.StatusOK {
		t.Fatalf("create match: status %d", code)
	}
	return out.MatchID
}

func TestCreateMatchEndpoint(t *testing.T) {
	env := newTestEnv(t)

	code := env.post(t, "/matches", dto.CreateMatchRequest{
		Account: "player1", URI: "Qmc...", MinScore: 100, ScoreMultiple: 10, DeadlineSeconds: 3600,
	}, nil)
	if code != http.StatusForbidden {
		t.Errorf("player create: status %d, want 403", code)
	}

	id := createTestMatch(t, env)
	if id != 1 {
		t.Errorf("match id = %d, want 1", id)
	}
	if env.publ.counts["match_created"] != 1 {
		t.Errorf("match_created events = %d, want 1", env.publ.counts["match_created"])
	}

	var m dto.MatchResponse
	if code := env.get(t, "/matches/1", &m); code != http.StatusOK {
		t.Fatalf("get match: status %d", code)
	}
	if m.Stage != "CREATED" || m.ScoreMultiple != 10 {
		t.Errorf("unexpected match response: %+v", m)
	}
	if code := env.get(t, "/matches/99", nil); code != http.StatusNotFound {
		t.Errorf("get unknown match: status %d, want 404", code)
	}
}

func TestPlaceBetFlow(t *testing.T) {
	env := newTestEnv(t)
	id := createTestMatch(t, env)

	var out dto.PlaceBetResponse
	code := env.post(t, "/bets", dto.PlaceBetRequest{
		Account: "player1", MatchID: id, Score: 320, AmountCents: 500,
	}, &out)
	if code != http.StatusOK || out.Status != "ACCEPTED" {
		t.Fatalf("place bet: status %d resp %+v", code, out)
	}
	if env.wallet.reserves != 1 || env.wallet.commits != 1 || env.wallet.refunds != 0 {
		t.Errorf("wallet calls = %d/%d/%d, want reserve=1 commit=1 refund=0",
			env.wallet.reserves, env.wallet.commits, env.wallet.refunds)
	}
	if env.publ.counts["bet_placed"] != 1 {
		t.Errorf("bet_placed events = %d, want 1", env.publ.counts["bet_placed"])
	}

	// Aposta duplicada: motor rejeita e a reserva é estornada.
	code = env.post(t, "/bets", dto.PlaceBetRequest{
		Account: "player1", MatchID: id, Score: 290, AmountCents: 100,
	}, nil)
	if code != http.StatusConflict {
		t.Errorf("duplicate bet: status %d, want 409", code)
	}
	if env.wallet.refunds != 1 {
		t.Errorf("wallet refunds = %d, want 1", env.wallet.refunds)
	}

	var total dto.ScoreTotalResponse
	if code := env.get(t, fmt.Sprintf("/bets/score?matchId=%d&score=320", id), &total); code != http.StatusOK {
		t.Fatalf("score total: status %d", code)
	}
	if total.TotalCents != 500 {
		t.Errorf("total = %d, want 500", total.TotalCents)
	}
}

func TestEndMatchAndClaim(t *testing.T) {
	env := newTestEnv(t)
	id := createTestMatch(t, env)

	bets := []struct {
		account string
		score   int64
		amount  int64
	}{
		{"player1", 320, 2000},
		{"player2", 320, 1500},
		{"player3", 290, 1000},
		{"player4", 360, 1100},
		{"player5", 290, 200},
	}
	for _, b := range bets {
		if code := env.post(t, "/bets", dto.PlaceBetRequest{
			Account: b.account, MatchID: id, Score: b.score, AmountCents: b.amount,
		}, nil); code != http.StatusOK {
			t.Fatalf("bet %s: status %d", b.account, code)
		}
	}

	if code := env.post(t, "/matches/end", dto.EndMatchRequest{
		Account: "umpire", MatchID: id, WinningScore: 320,
	}, nil); code != http.StatusOK {
		t.Fatalf("end match: status %d", code)
	}
	if code := env.post(t, "/matches/end", dto.EndMatchRequest{
		Account: "umpire", MatchID: id, WinningScore: 320,
	}, nil); code != http.StatusConflict {
		t.Errorf("double end: status %d, want 409", code)
	}

	var cl dto.ClaimableResponse
	if code := env.get(t, fmt.Sprintf("/claimable?matchId=%d&account=player1", id), &cl); code != http.StatusOK {
		t.Fatalf("claimable: status %d", code)
	}
	if !cl.Claimable {
		t.Error("player1 should be claimable")
	}

	// pool=2300, reward=2070, payout p1 = 2000 + floor(2000*2070/3500)
	var pay dto.PayoutResponse
	if code := env.post(t, "/claims", dto.ClaimRequest{Account: "player1", MatchID: id}, &pay); code != http.StatusOK {
		t.Fatalf("claim: status %d", code)
	}
	want := int64(2000 + 2000*2070/3500)
	if pay.AmountCents != want {
		t.Errorf("payout = %d, want %d", pay.AmountCents, want)
	}
	if env.wallet.deposits["player1"] != want {
		t.Errorf("wallet deposit player1 = %d, want %d", env.wallet.deposits["player1"], want)
	}

	if code := env.post(t, "/claims", dto.ClaimRequest{Account: "player1", MatchID: id}, nil); code != http.StatusConflict {
		t.Errorf("replay claim: status %d, want 409", code)
	}
	if code := env.post(t, "/claims", dto.ClaimRequest{Account: "player3", MatchID: id}, nil); code != http.StatusConflict {
		t.Errorf("loser claim: status %d, want 409", code)
	}

	var tr dto.TreasuryResponse
	env.get(t, "/treasury", &tr)
	if want := int64(2300 * 10 / 100); tr.BalanceCents != want {
		t.Errorf("treasury = %d, want %d", tr.BalanceCents, want)
	}
}

func TestForfeitAndRefundEndpoints(t *testing.T) {
	env := newTestEnv(t)
	id := createTestMatch(t, env)

	if code := env.post(t, "/bets", dto.PlaceBetRequest{
		Account: "player1", MatchID: id, Score: 320, AmountCents: 700,
	}, nil); code != http.StatusOK {
		t.Fatalf("bet: status %d", code)
	}

	if code := env.post(t, "/matches/forfeit", dto.ForfeitMatchRequest{
		Account: "umpire", MatchID: id,
	}, nil); code != http.StatusOK {
		t.Fatalf("forfeit: status %d", code)
	}

	var pay dto.PayoutResponse
	if code := env.post(t, "/refunds", dto.RefundRequest{Account: "player1", MatchID: id}, &pay); code != http.StatusOK {
		t.Fatalf("refund: status %d", code)
	}
	if pay.AmountCents != 700 {
		t.Errorf("refund = %d, want 700", pay.AmountCents)
	}
	if env.wallet.deposits["player1"] != 700 {
		t.Errorf("wallet deposit = %d, want 700", env.wallet.deposits["player1"])
	}
	if code := env.post(t, "/refunds", dto.RefundRequest{Account: "player1", MatchID: id}, nil); code != http.StatusConflict {
		t.Errorf("replay refund: status %d, want 409", code)
	}
	if env.publ.counts["refunded"] != 1 {
		t.Errorf("refunded events = %d, want 1", env.publ.counts["refunded"])
	}
}

func TestRatesEndpoints(t *testing.T) {
	env := newTestEnv(t)

	var rates dto.RatesResponse
	if code := env.get(t, "/rates", &rates); code != http.StatusOK {
		t.Fatalf("get rates: status %d", code)
	}
	if rates.RewardRate != 90 || rates.TreasuryRate != 10 {
		t.Errorf("rates = %+v, want 90/10", rates)
	}

	if code := env.post(t, "/rates/reward", dto.RewardRateRequest{Account: "player1", RewardRate: 95}, nil); code != http.StatusForbidden {
		t.Errorf("player sets rate: status %d, want 403", code)
	}
	if code := env.post(t, "/rates/reward", dto.RewardRateRequest{Account: "president", RewardRate: 89}, nil); code != http.StatusBadRequest {
		t.Errorf("rate 89: status %d, want 400", code)
	}
	if code := env.post(t, "/rates/reward", dto.RewardRateRequest{Account: "president", RewardRate: 98}, &rates); code != http.StatusOK {
		t.Fatalf("set rate: status %d", code)
	}
	if rates.RewardRate != 98 || rates.TreasuryRate != 2 {
		t.Errorf("rates after update = %+v, want 98/2", rates)
	}
}

func TestPauseEndpoints(t *testing.T) {
	env := newTestEnv(t)
	id := createTestMatch(t, env)

	if code := env.post(t, "/pause", dto.PauseRequest{Account: "player1"}, nil); code != http.StatusForbidden {
		t.Errorf("player pauses: status %d, want 403", code)
	}
	if code := env.post(t, "/pause", dto.PauseRequest{Account: "umpire"}, nil); code != http.StatusOK {
		t.Fatalf("pause: status %d", code)
	}
	if code := env.post(t, "/bets", dto.PlaceBetRequest{
		Account: "player1", MatchID: id, Score: 320, AmountCents: 100,
	}, nil); code != http.StatusConflict {
		t.Errorf("bet while paused: status %d, want 409", code)
	}
	// A reserva feita antes do motor rejeitar precisa ser estornada.
	if env.wallet.refunds != 1 {
		t.Errorf("wallet refunds = %d, want 1", env.wallet.refunds)
	}
	if code := env.post(t, "/unpause", dto.PauseRequest{Account: "umpire"}, nil); code != http.StatusOK {
		t.Fatalf("unpause: status %d", code)
	}
	if code := env.post(t, "/bets", dto.PlaceBetRequest{
		Account: "player1", MatchID: id, Score: 320, AmountCents: 100,
	}, nil); code != http.StatusOK {
		t.Errorf("bet after unpause: status %d, want 200", code)
	}
}

func TestSuccessionEndpoints(t *testing.T) {
	env := newTestEnv(t)

	if code := env.post(t, "/president/offer", dto.OfferPresidencyRequest{
		Account: "umpire", Candidate: "player1",
	}, nil); code != http.StatusForbidden {
		t.Errorf("umpire offers: status %d, want 403", code)
	}
	if code := env.post(t, "/president/offer", dto.OfferPresidencyRequest{
		Account: "president", Candidate: "player1",
	}, nil); code != http.StatusOK {
		t.Fatalf("offer: status %d", code)
	}
	if code := env.post(t, "/president/accept", dto.AcceptPresidencyRequest{Account: "player2"}, nil); code != http.StatusForbidden {
		t.Errorf("wrong account accepts: status %d, want 403", code)
	}
	if code := env.post(t, "/president/accept", dto.AcceptPresidencyRequest{Account: "player1"}, nil); code != http.StatusOK {
		t.Fatalf("accept: status %d", code)
	}
	if got := env.eng.President(); got != "player1" {
		t.Errorf("president = %q, want player1", got)
	}
}

func TestTreasuryClaimEndpoint(t *testing.T) {
	env := newTestEnv(t)
	id := createTestMatch(t, env)

	if code := env.post(t, "/bets", dto.PlaceBetRequest{
		Account: "player1", MatchID: id, Score: 320, AmountCents: 1000,
	}, nil); code != http.StatusOK {
		t.Fatalf("bet: status %d", code)
	}
	// Ninguém apostou em 350: house win, pool inteiro vira tesouraria.
	if code := env.post(t, "/matches/end", dto.EndMatchRequest{
		Account: "umpire", MatchID: id, WinningScore: 350,
	}, nil); code != http.StatusOK {
		t.Fatalf("end match: status %d", code)
	}

	var m dto.MatchResponse
	env.get(t, fmt.Sprintf("/matches/%d", id), &m)
	if !m.HouseWin {
		t.Error("house_win = false, want true")
	}

	if code := env.post(t, "/treasury/claim", dto.TreasuryClaimRequest{
		Account: "player1", AmountCents: 10,
	}, nil); code != http.StatusForbidden {
		t.Errorf("player claims treasury: status %d, want 403", code)
	}
	if code := env.post(t, "/treasury/claim", dto.TreasuryClaimRequest{
		Account: "president", AmountCents: 2000,
	}, nil); code != http.StatusUnprocessableEntity {
		t.Errorf("over balance: status %d, want 422", code)
	}
	var tr dto.TreasuryResponse
	if code := env.post(t, "/treasury/claim", dto.TreasuryClaimRequest{
		Account: "president", AmountCents: 1000,
	}, &tr); code != http.StatusOK {
		t.Fatalf("claim treasury: status %d", code)
	}
	if tr.BalanceCents != 0 {
		t.Errorf("balance after claim = %d, want 0", tr.BalanceCents)
	}
	if env.wallet.deposits["president"] != 1000 {
		t.Errorf("wallet deposit president = %d, want 1000", env.wallet.deposits["president"])
	}
}
