package consumer

import (
	"testing"

	"github.com/radieske/tournament-pool-poc/pkg/contracts/events"
)

func TestDecodeBetPlaced(t *testing.T) {
	raw := []byte(`{"match_id":3,"sender":"player1","score":320,"amount_cents":500,"ts_unix_ms":1700000000000}`)
	e, err := DecodeBetPlaced(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if e.Kind != "BET" || e.MatchID != 3 || e.Account != "player1" || e.Score != 320 || e.AmountCents != 500 {
		t.Errorf("unexpected entry: %+v", e)
	}
}

func TestDecodePayout(t *testing.T) {
	raw := []byte(`{"kind":"CLAIM","match_id":3,"sender":"player1","amount_cents":3182,"ts_unix_ms":1700000000000}`)
	e, err := DecodePayout(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if e.Kind != events.PayoutKindClaim || e.AmountCents != -3182 {
		t.Errorf("unexpected entry: %+v", e)
	}

	if _, err := DecodePayout([]byte(`{"kind":"WAT","match_id":1}`)); err == nil {
		t.Error("unknown kind should fail")
	}
	if _, err := DecodePayout([]byte(`{not json`)); err == nil {
		t.Error("invalid json should fail")
	}
}
