package consumer

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/radieske/bet-tracker/internal/analytics"
	ev "github.com/radieske/bet-tracker/pkg/contracts/events"
)

// ErrBadEvent marca evento irrecuperável: vai direto pra DLQ, sem retry.
var ErrBadEvent = errors.New("bad event")

func badEvent(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadEvent, fmt.Sprintf(format, args...))
}

// betFromEvent valida o evento do canal externo e monta o registro de aposta.
// Retorno potencial ausente é derivado de stake*odd, como na origem.
func betFromEvent(e *ev.BetRecorded) (*analytics.Bet, error) {
	if e.UserID == "" {
		return nil, badEvent("missing user_id")
	}
	if e.Sport == "" {
		return nil, badEvent("missing sport")
	}
	if e.StakeCents <= 0 {
		return nil, badEvent("stake_cents must be positive, got %d", e.StakeCents)
	}
	if e.OddValue < 1 {
		return nil, badEvent("odd_value must be >= 1, got %v", e.OddValue)
	}
	if e.PlacedAtUnixMs <= 0 {
		return nil, badEvent("missing placed_at_unix_ms")
	}

	potential := e.PotentialReturnCents
	if potential == 0 {
		potential = int64(math.Round(float64(e.StakeCents) * e.OddValue))
	}
	if potential < e.StakeCents {
		return nil, badEvent("potential_return_cents below stake")
	}

	b := &analytics.Bet{
		ID:                   e.BetID,
		UserID:               e.UserID,
		Sport:                e.Sport,
		League:               e.League,
		Description:          e.Description,
		MatchName:            e.MatchName,
		OddValue:             e.OddValue,
		StakeCents:           e.StakeCents,
		PotentialReturnCents: potential,
		Status:               analytics.StatusPending,
		PlacedAt:             time.UnixMilli(e.PlacedAtUnixMs).UTC(),
	}
	if e.MatchAtUnixMs > 0 {
		t := time.UnixMilli(e.MatchAtUnixMs).UTC()
		b.MatchAt = &t
	}
	return b, nil
}

// settlementFromEvent valida a liquidação: status do conjunto fechado,
// cashout só com valor presente. half_* é rejeitado em vez de virar zero.
func settlementFromEvent(e *ev.BetSettled) (status string, cashoutCents *int64, cashoutAt sql.NullTime, err error) {
	if e.BetID == "" || e.UserID == "" {
		return "", nil, sql.NullTime{}, badEvent("missing bet_id or user_id")
	}

	switch analytics.BetStatus(e.Status) {
	case analytics.StatusWon, analytics.StatusLost, analytics.StatusVoid:
		if e.CashoutCents != nil {
			return "", nil, sql.NullTime{}, badEvent("cashout_cents present for status %q", e.Status)
		}
	case analytics.StatusCashout:
		if e.CashoutCents == nil || *e.CashoutCents < 0 {
			return "", nil, sql.NullTime{}, badEvent("cashout requires non-negative cashout_cents")
		}
		cashoutCents = e.CashoutCents
		if e.SettledAtUnixMs > 0 {
			cashoutAt = sql.NullTime{Time: time.UnixMilli(e.SettledAtUnixMs).UTC(), Valid: true}
		}
	default:
		return "", nil, sql.NullTime{}, badEvent("status %q outside closed set", e.Status)
	}

	return e.Status, cashoutCents, cashoutAt, nil
}

// movementFromEvent valida e monta a movimentação de capital.
func movementFromEvent(e *ev.CapitalMovementRecorded) (*analytics.CapitalMovement, error) {
	if e.UserID == "" {
		return nil, badEvent("missing user_id")
	}
	if e.AmountCents <= 0 {
		return nil, badEvent("amount_cents must be positive, got %d", e.AmountCents)
	}
	if e.MovedAtUnixMs <= 0 {
		return nil, badEvent("missing moved_at_unix_ms")
	}

	mType := analytics.MovementType(e.Type)
	if mType != analytics.MovementDeposit && mType != analytics.MovementWithdrawal {
		return nil, badEvent("type %q must be deposit or withdrawal", e.Type)
	}
	source := analytics.MovementSource(e.Source)
	if source != analytics.SourceManual && source != analytics.SourceBankrollEdit {
		return nil, badEvent("source %q must be manual or bankroll_edit", e.Source)
	}

	return &analytics.CapitalMovement{
		ID:             e.MovementID,
		UserID:         e.UserID,
		Type:           mType,
		AmountCents:    e.AmountCents,
		MovedAt:        time.UnixMilli(e.MovedAtUnixMs).UTC(),
		Description:    e.Description,
		Source:         source,
		AffectsBalance: e.AffectsBalance,
	}, nil
}
