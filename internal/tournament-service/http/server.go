package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radieske/tournament-pool-poc/internal/engine"
	"github.com/radieske/tournament-pool-poc/internal/tournament-service/dto"
	"github.com/radieske/tournament-pool-poc/internal/tournament-service/repo"
	"github.com/radieske/tournament-pool-poc/internal/tournament-service/wallet"
	"github.com/radieske/tournament-pool-poc/pkg/contracts/events"
)

// Repo define as escritas de auditoria usadas pelo handler HTTP. Falha de
// auditoria não derruba a operação já aceita pelo motor: só loga.
type Repo interface {
	InsertMatch(ctx context.Context, m *repo.Match) error
	UpdateDeadline(ctx context.Context, matchID int64, deadline time.Time) error
	MarkCompleted(ctx context.Context, matchID, winningScore, rewardCents int64, reporter string) error
	MarkForfeited(ctx context.Context, matchID int64, reporter string) error
	InsertBet(ctx context.Context, b *repo.Bet) error
	SettleBet(ctx context.Context, matchID int64, account, status string, paidCents int64) error
}

// Publisher publica as notificações do motor nos tópicos do contrato.
type Publisher interface {
	PublishMatchCreated(ctx context.Context, e events.MatchCreated) error
	PublishDeadlineUpdated(ctx context.Context, e events.DeadlineUpdated) error
	PublishMatchCompleted(ctx context.Context, e events.MatchCompleted) error
	PublishMatchForfeited(ctx context.Context, e events.MatchForfeited) error
	PublishBetPlaced(ctx context.Context, e events.BetPlaced) error
	PublishClaimed(ctx context.Context, e events.Claimed) error
	PublishRefunded(ctx context.Context, e events.Refunded) error
	PublishRateUpdated(ctx context.Context, e events.RateUpdated) error
	PublishMinBetUpdated(ctx context.Context, e events.MinBetUpdated) error
	PublishPaused(ctx context.Context, e events.Paused) error
	PublishUnpaused(ctx context.Context, e events.Unpaused) error
}

// ScoresCache é o read-model dos totais por bucket.
type ScoresCache interface {
	SetTotal(ctx context.Context, matchID, score, totalCents int64) error
	GetTotal(ctx context.Context, matchID, score int64) (int64, bool, error)
}

// Server expõe a API HTTP do motor pari-mutuel.
type Server struct {
	log   *zap.Logger
	eng   *engine.Engine
	repo  Repo
	wcli  *wallet.Client
	cache ScoresCache
	publ  Publisher

	// callbacks de métricas (counter++), opcionais
	OnBet    func()
	OnClaim  func()
	OnRefund func()
	OnError  func(stage string)
}

// NewServer instancia o servidor HTTP do tournament-service
func NewServer(log *zap.Logger, eng *engine.Engine, r Repo, w *wallet.Client, c ScoresCache, p Publisher) *Server {
	return &Server{log: log, eng: eng, repo: r, wcli: w, cache: c, publ: p}
}

// Router retorna o mux HTTP com as rotas da API
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/matches", s.createMatch) // POST
	mux.HandleFunc("/matches/", s.getMatch)   // GET /matches/{id}
	mux.HandleFunc("/matches/deadline", s.updateDeadline)
	mux.HandleFunc("/matches/end", s.endMatch)
	mux.HandleFunc("/matches/forfeit", s.forfeitMatch)
	mux.HandleFunc("/bets", s.placeBet)         // POST
	mux.HandleFunc("/bets/score", s.scoreTotal) // GET ?matchId=&score=
	mux.HandleFunc("/claimable", s.claimable)   // GET ?matchId=&account=
	mux.HandleFunc("/claims", s.claim)
	mux.HandleFunc("/refunds", s.refund)
	mux.HandleFunc("/treasury", s.treasury) // GET
	mux.HandleFunc("/treasury/claim", s.claimTreasury)
	mux.HandleFunc("/rates", s.rates) // GET
	mux.HandleFunc("/rates/reward", s.setRewardRate)
	mux.HandleFunc("/rates/minbet", s.setMinBet)
	mux.HandleFunc("/pause", s.pause)
	mux.HandleFunc("/unpause", s.unpause)
	mux.HandleFunc("/roles/grant", s.grantRole)
	mux.HandleFunc("/roles/revoke", s.revokeRole)
	mux.HandleFunc("/president/offer", s.offerPresidency)
	mux.HandleFunc("/president/accept", s.acceptPresidency)
	return mux
}

// errStatus mapeia os erros de domínio do motor para status HTTP
func errStatus(err error) int {
	switch {
	case errors.Is(err, engine.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, engine.ErrInvalidInput), errors.Is(err, engine.ErrOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, engine.ErrMatchNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrInsufficientValue), errors.Is(err, engine.ErrInsufficientTreasury):
		return http.StatusUnprocessableEntity
	default:
		// estado inválido, pausa, duplicidade, replay de claim/refund
		return http.StatusConflict
	}
}

func (s *Server) fail(w http.ResponseWriter, stage string, err error) {
	if s.OnError != nil {
		s.OnError(stage)
	}
	http.Error(w, err.Error(), errStatus(err))
}

func (s *Server) createMatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Account == "" || req.DeadlineSeconds <= 0 {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	id, deadline, err := s.eng.CreateMatch(req.Account, req.URI, req.MinScore, req.ScoreMultiple,
		time.Duration(req.DeadlineSeconds)*time.Second)
	if err != nil {
		s.fail(w, "create_match", err)
		return
	}

	if err := s.repo.InsertMatch(r.Context(), &repo.Match{
		ID:            id,
		URI:           req.URI,
		MinScore:      req.MinScore,
		ScoreMultiple: req.ScoreMultiple,
		Deadline:      deadline,
		Reporter:      req.Account,
	}); err != nil {
		s.log.Warn("audit insert match", zap.Int64("matchId", id), zap.Error(err))
	}

	_ = s.publ.PublishMatchCreated(r.Context(), events.MatchCreated{
		MatchID:       id,
		Reporter:      req.Account,
		URI:           req.URI,
		MinScore:      req.MinScore,
		ScoreMultiple: req.ScoreMultiple,
		Deadline:      deadline.Unix(),
	})

	writeJSON(w, dto.CreateMatchResponse{MatchID: id, DeadlineUnix: deadline.Unix()})
}

func (s *Server) getMatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id, err := strconv.ParseInt(r.URL.Path[len("/matches/"):], 10, 64)
	if err != nil {
		http.Error(w, "matchId required", http.StatusBadRequest)
		return
	}
	m, err := s.eng.Match(id)
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	hw, _ := s.eng.IsHouseWin(id)
	writeJSON(w, dto.MatchResponse{
		MatchID:       m.ID,
		URI:           m.URI,
		MinScore:      m.MinScore,
		ScoreMultiple: m.ScoreMultiple,
		DeadlineUnix:  m.Deadline.Unix(),
		Stage:         m.Stage.String(),
		TotalCents:    m.TotalAmount,
		WinningScore:  m.WinningScore,
		RewardCents:   m.RewardAmount,
		Reporter:      m.Reporter,
		HouseWin:      hw,
	})
}

func (s *Server) updateDeadline(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.UpdateDeadlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Account == "" || req.MatchID <= 0 || req.DeadlineSeconds <= 0 {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	deadline, err := s.eng.UpdateDeadline(req.Account, req.MatchID,
		time.Duration(req.DeadlineSeconds)*time.Second)
	if err != nil {
		s.fail(w, "update_deadline", err)
		return
	}
	if err := s.repo.UpdateDeadline(r.Context(), req.MatchID, deadline); err != nil {
		s.log.Warn("audit update deadline", zap.Int64("matchId", req.MatchID), zap.Error(err))
	}
	_ = s.publ.PublishDeadlineUpdated(r.Context(), events.DeadlineUpdated{
		MatchID:  req.MatchID,
		Reporter: req.Account,
		Deadline: deadline.Unix(),
	})
	writeJSON(w, dto.CreateMatchResponse{MatchID: req.MatchID, DeadlineUnix: deadline.Unix()})
}

// placeBet reserva o stake na carteira, registra a aposta no motor e efetiva
// a reserva. Se o motor rejeitar, a reserva é desfeita.
func (s *Server) placeBet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.PlaceBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Account == "" || req.MatchID <= 0 || req.AmountCents <= 0 {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	// 1) Bloqueia o stake na carteira
	ref := uuid.NewString()
	if _, err := s.wcli.Reserve(r.Context(), req.Account, req.AmountCents, ref); err != nil {
		if s.OnError != nil {
			s.OnError("wallet_reserve")
		}
		http.Error(w, "wallet reserve failed", http.StatusConflict)
		return
	}

	// 2) Registra no motor; rejeição desfaz a reserva
	if err := s.eng.BetScore(req.Account, req.MatchID, req.Score, req.AmountCents); err != nil {
		if rerr := s.wcli.Refund(r.Context(), req.Account, ref); rerr != nil {
			s.log.Error("wallet refund after reject", zap.String("ref", ref), zap.Error(rerr))
		}
		s.fail(w, "bet", err)
		return
	}

	// 3) Efetiva a reserva (idempotente no wallet-service)
	if err := s.wcli.Commit(r.Context(), req.Account, ref); err != nil {
		s.log.Error("wallet commit", zap.String("ref", ref), zap.Error(err))
	}

	if err := s.repo.InsertBet(r.Context(), &repo.Bet{
		MatchID:     req.MatchID,
		Account:     req.Account,
		Score:       req.Score,
		AmountCents: req.AmountCents,
		ReservedRef: ref,
	}); err != nil {
		s.log.Warn("audit insert bet", zap.Int64("matchId", req.MatchID), zap.Error(err))
	}

	// 4) Atualiza o read-model de totais por bucket
	if total, err := s.eng.BetsAtScore(req.MatchID, req.Score); err == nil {
		if cerr := s.cache.SetTotal(r.Context(), req.MatchID, req.Score, total); cerr != nil {
			s.log.Warn("scores cache set", zap.Error(cerr))
		}
	}

	_ = s.publ.PublishBetPlaced(r.Context(), events.BetPlaced{
		MatchID:     req.MatchID,
		Sender:      req.Account,
		Score:       req.Score,
		AmountCents: req.AmountCents,
		ReservedRef: ref,
	})
	if s.OnBet != nil {
		s.OnBet()
	}

	writeJSON(w, dto.PlaceBetResponse{
		MatchID:     req.MatchID,
		Score:       req.Score,
		AmountCents: req.AmountCents,
		Status:      "ACCEPTED",
	})
}

func (s *Server) scoreTotal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	matchID, err1 := strconv.ParseInt(r.URL.Query().Get("matchId"), 10, 64)
	score, err2 := strconv.ParseInt(r.URL.Query().Get("score"), 10, 64)
	if err1 != nil || err2 != nil {
		http.Error(w, "matchId and score required", http.StatusBadRequest)
		return
	}

	if total, ok, err := s.cache.GetTotal(r.Context(), matchID, score); err == nil && ok {
		writeJSON(w, dto.ScoreTotalResponse{MatchID: matchID, Score: score, TotalCents: total})
		return
	}

	total, err := s.eng.BetsAtScore(matchID, score)
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if cerr := s.cache.SetTotal(r.Context(), matchID, score, total); cerr != nil {
		s.log.Warn("scores cache set", zap.Error(cerr))
	}
	writeJSON(w, dto.ScoreTotalResponse{MatchID: matchID, Score: score, TotalCents: total})
}

func (s *Server) endMatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.EndMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Account == "" || req.MatchID <= 0 {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if err := s.eng.EndMatch(req.Account, req.MatchID, req.WinningScore); err != nil {
		s.fail(w, "end_match", err)
		return
	}

	m, _ := s.eng.Match(req.MatchID)
	if err := s.repo.MarkCompleted(r.Context(), req.MatchID, req.WinningScore, m.RewardAmount, req.Account); err != nil {
		s.log.Warn("audit mark completed", zap.Int64("matchId", req.MatchID), zap.Error(err))
	}
	_ = s.publ.PublishMatchCompleted(r.Context(), events.MatchCompleted{
		MatchID:      req.MatchID,
		Reporter:     req.Account,
		WinningScore: req.WinningScore,
	})
	writeJSON(w, dto.StatusResponse{Status: "COMPLETED"})
}

func (s *Server) forfeitMatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.ForfeitMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if err := s.eng.ForfeitMatch(req.Account, req.MatchID); err != nil {
		s.fail(w, "forfeit", err)
		return
	}
	if err := s.repo.MarkForfeited(r.Context(), req.MatchID, req.Account); err != nil {
		s.log.Warn("audit mark forfeited", zap.Int64("matchId", req.MatchID), zap.Error(err))
	}
	_ = s.publ.PublishMatchForfeited(r.Context(), events.MatchForfeited{
		MatchID:  req.MatchID,
		Reporter: req.Account,
	})
	writeJSON(w, dto.StatusResponse{Status: "FORFEITED"})
}

func (s *Server) claimable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	matchID, err := strconv.ParseInt(r.URL.Query().Get("matchId"), 10, 64)
	account := r.URL.Query().Get("account")
	if err != nil || account == "" {
		http.Error(w, "matchId and account required", http.StatusBadRequest)
		return
	}
	writeJSON(w, dto.ClaimableResponse{
		MatchID:   matchID,
		Account:   account,
		Claimable: s.eng.Claimable(matchID, account),
	})
}

func (s *Server) claim(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.ClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	payout, err := s.eng.Claim(r.Context(), req.Account, req.MatchID)
	if err != nil {
		s.fail(w, "claim", err)
		return
	}
	if err := s.repo.SettleBet(r.Context(), req.MatchID, req.Account, "CLAIMED", payout); err != nil {
		s.log.Warn("audit settle bet", zap.Int64("matchId", req.MatchID), zap.Error(err))
	}
	_ = s.publ.PublishClaimed(r.Context(), events.Claimed{
		MatchID:     req.MatchID,
		Sender:      req.Account,
		AmountCents: payout,
	})
	if s.OnClaim != nil {
		s.OnClaim()
	}
	writeJSON(w, dto.PayoutResponse{MatchID: req.MatchID, Account: req.Account, AmountCents: payout, Status: "CLAIMED"})
}

func (s *Server) refund(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.RefundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	amount, err := s.eng.Refund(r.Context(), req.Account, req.MatchID)
	if err != nil {
		s.fail(w, "refund", err)
		return
	}
	if err := s.repo.SettleBet(r.Context(), req.MatchID, req.Account, "REFUNDED", amount); err != nil {
		s.log.Warn("audit settle bet", zap.Int64("matchId", req.MatchID), zap.Error(err))
	}
	_ = s.publ.PublishRefunded(r.Context(), events.Refunded{
		MatchID:     req.MatchID,
		Sender:      req.Account,
		AmountCents: amount,
	})
	if s.OnRefund != nil {
		s.OnRefund()
	}
	writeJSON(w, dto.PayoutResponse{MatchID: req.MatchID, Account: req.Account, AmountCents: amount, Status: "REFUNDED"})
}

func (s *Server) treasury(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, dto.TreasuryResponse{BalanceCents: s.eng.TreasuryAmount()})
}

func (s *Server) claimTreasury(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.TreasuryClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if err := s.eng.ClaimTreasury(r.Context(), req.Account, req.AmountCents); err != nil {
		s.fail(w, "treasury_claim", err)
		return
	}
	writeJSON(w, dto.TreasuryResponse{BalanceCents: s.eng.TreasuryAmount()})
}

func (s *Server) rates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, dto.RatesResponse{
		RewardRate:   s.eng.RewardRate(),
		TreasuryRate: s.eng.TreasuryRate(),
		MinBetCents:  s.eng.MinBetAmount(),
	})
}

func (s *Server) setRewardRate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.RewardRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if err := s.eng.SetRewardRate(req.Account, req.RewardRate); err != nil {
		s.fail(w, "set_reward_rate", err)
		return
	}
	_ = s.publ.PublishRateUpdated(r.Context(), events.RateUpdated{RewardRate: req.RewardRate})
	writeJSON(w, dto.RatesResponse{
		RewardRate:   s.eng.RewardRate(),
		TreasuryRate: s.eng.TreasuryRate(),
		MinBetCents:  s.eng.MinBetAmount(),
	})
}

func (s *Server) setMinBet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.MinBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if err := s.eng.SetMinBetAmount(req.Account, req.MinBetCents); err != nil {
		s.fail(w, "set_min_bet", err)
		return
	}
	_ = s.publ.PublishMinBetUpdated(r.Context(), events.MinBetUpdated{MinBetCents: req.MinBetCents})
	writeJSON(w, dto.RatesResponse{
		RewardRate:   s.eng.RewardRate(),
		TreasuryRate: s.eng.TreasuryRate(),
		MinBetCents:  s.eng.MinBetAmount(),
	})
}

func (s *Server) pause(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.PauseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if err := s.eng.Pause(req.Account); err != nil {
		s.fail(w, "pause", err)
		return
	}
	_ = s.publ.PublishPaused(r.Context(), events.Paused{Account: req.Account})
	writeJSON(w, dto.StatusResponse{Status: "PAUSED"})
}

func (s *Server) unpause(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.PauseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if err := s.eng.Unpause(req.Account); err != nil {
		s.fail(w, "unpause", err)
		return
	}
	_ = s.publ.PublishUnpaused(r.Context(), events.Unpaused{Account: req.Account})
	writeJSON(w, dto.StatusResponse{Status: "RUNNING"})
}

func (s *Server) grantRole(w http.ResponseWriter, r *http.Request) {
	s.roleChange(w, r, true)
}

func (s *Server) revokeRole(w http.ResponseWriter, r *http.Request) {
	s.roleChange(w, r, false)
}

func (s *Server) roleChange(w http.ResponseWriter, r *http.Request, grant bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.RoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	role, ok := engine.ParseRole(req.Role)
	if !ok {
		http.Error(w, "unknown role", http.StatusBadRequest)
		return
	}
	var err error
	if grant {
		err = s.eng.GrantRole(req.Account, role, req.Target)
	} else {
		err = s.eng.RevokeRole(req.Account, role, req.Target)
	}
	if err != nil {
		s.fail(w, "role_change", err)
		return
	}
	writeJSON(w, dto.StatusResponse{Status: "OK"})
}

func (s *Server) offerPresidency(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.OfferPresidencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if err := s.eng.OfferPresidency(req.Account, req.Candidate); err != nil {
		s.fail(w, "offer_presidency", err)
		return
	}
	writeJSON(w, dto.StatusResponse{Status: "OFFERED"})
}

func (s *Server) acceptPresidency(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.AcceptPresidencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if err := s.eng.AcceptPresidency(req.Account); err != nil {
		s.fail(w, "accept_presidency", err)
		return
	}
	writeJSON(w, dto.StatusResponse{Status: "ACCEPTED"})
}

// writeJSON serializa e envia resposta JSON
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
