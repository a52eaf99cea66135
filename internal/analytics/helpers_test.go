package analytics

import (
	"math"
	"time"
)

// bet monta uma aposta válida para os testes, com retorno potencial
// derivado de stake*odd como no momento da criação.
func bet(status BetStatus, stakeCents int64, odd float64, placedAt string) Bet {
	return Bet{
		ID:                   string(status) + "-" + placedAt,
		UserID:               "user-1",
		Sport:                "football",
		OddValue:             odd,
		StakeCents:           stakeCents,
		PotentialReturnCents: int64(math.Round(float64(stakeCents) * odd)),
		Status:               status,
		PlacedAt:             ts(placedAt),
	}
}

func cashoutBet(stakeCents, cashoutCents int64, placedAt string) Bet {
	b := bet(StatusCashout, stakeCents, 2.0, placedAt)
	b.CashoutCents = &cashoutCents
	return b
}

func deposit(amountCents int64, movedAt string) CapitalMovement {
	return CapitalMovement{
		ID:             "dep-" + movedAt,
		UserID:         "user-1",
		Type:           MovementDeposit,
		AmountCents:    amountCents,
		MovedAt:        ts(movedAt),
		Source:         SourceManual,
		AffectsBalance: true,
	}
}

func withdrawal(amountCents int64, movedAt string) CapitalMovement {
	m := deposit(amountCents, movedAt)
	m.ID = "wd-" + movedAt
	m.Type = MovementWithdrawal
	return m
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
