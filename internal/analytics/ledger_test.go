package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLedgerOrdersChronologicallyRegardlessOfInputOrder(t *testing.T) {
	// entrada invertida: aposta antes do depósito que aconteceu primeiro
	bets := []Bet{bet(StatusWon, 10000, 1.5, "2024-03-02T12:00:00Z")} // +5000
	movements := []CapitalMovement{deposit(100000, "2024-03-01T09:00:00Z")}

	ledger := BuildLedger(bets, movements, 0)
	require.Len(t, ledger, 3)

	assert.Equal(t, CategoryInitial, ledger[0].Category)
	assert.Equal(t, int64(0), ledger[0].BalanceCents)

	assert.Equal(t, CategoryDeposit, ledger[1].Category)
	assert.Equal(t, int64(100000), ledger[1].BalanceCents)

	assert.Equal(t, CategoryBet, ledger[2].Category)
	assert.Equal(t, int64(105000), ledger[2].BalanceCents)
}

func TestBuildLedgerFinalBalanceMatchesContributionSum(t *testing.T) {
	bets := []Bet{
		bet(StatusWon, 10000, 2.0, "2024-03-03T10:00:00Z"),
		bet(StatusLost, 4000, 1.8, "2024-03-05T10:00:00Z"),
		cashoutBet(6000, 7500, "2024-03-04T10:00:00Z"),
		bet(StatusPending, 9000, 2.5, "2024-03-06T10:00:00Z"),
		bet(StatusVoid, 2000, 1.5, "2024-03-07T10:00:00Z"),
	}
	movements := []CapitalMovement{
		deposit(50000, "2024-03-01T10:00:00Z"),
		withdrawal(20000, "2024-03-08T10:00:00Z"),
	}
	initial := int64(30000)

	var expected = initial
	for _, b := range bets {
		if contribution, settled, _ := Classify(b); settled {
			expected += contribution
		}
	}
	for _, m := range movements {
		expected += m.signedAmount()
	}

	ledger := BuildLedger(bets, movements, initial)
	assert.Equal(t, expected, ledger[len(ledger)-1].BalanceCents)
}

func TestBuildLedgerExcludesPendingVoidAndNonAffecting(t *testing.T) {
	bets := []Bet{
		bet(StatusPending, 5000, 2.0, "2024-03-01T10:00:00Z"),
		bet(StatusVoid, 5000, 2.0, "2024-03-02T10:00:00Z"),
	}
	informational := deposit(99999, "2024-03-03T10:00:00Z")
	informational.AffectsBalance = false

	ledger := BuildLedger(bets, []CapitalMovement{informational}, 12345)

	require.Len(t, ledger, 1)
	assert.Equal(t, CategoryInitial, ledger[0].Category)
	assert.Equal(t, int64(12345), ledger[0].BalanceCents)
}

func TestBuildLedgerStableTieBreakOnEqualTimestamps(t *testing.T) {
	a := bet(StatusWon, 10000, 2.0, "2024-03-01T10:00:00Z")
	a.ID = "bet-a"
	b := bet(StatusLost, 5000, 2.0, "2024-03-01T10:00:00Z")
	b.ID = "bet-b"
	m := deposit(1000, "2024-03-01T10:00:00Z")

	first := BuildLedger([]Bet{a, b}, []CapitalMovement{m}, 0)
	second := BuildLedger([]Bet{a, b}, []CapitalMovement{m}, 0)

	require.Equal(t, first, second)
	// empate de timestamp preserva a ordem de montagem: apostas na ordem
	// de entrada, movimentações depois
	assert.Equal(t, "bet-a", first[1].ID)
	assert.Equal(t, "bet-b", first[2].ID)
	assert.Equal(t, m.ID, first[3].ID)
}

func TestBuildLedgerSkipsMalformedBet(t *testing.T) {
	broken := bet(StatusCashout, 10000, 2.0, "2024-03-01T10:00:00Z")
	broken.CashoutCents = nil

	ledger := BuildLedger([]Bet{broken, bet(StatusWon, 10000, 2.0, "2024-03-02T10:00:00Z")}, nil, 0)

	require.Len(t, ledger, 2)
	assert.Equal(t, int64(10000), ledger[1].BalanceCents)
}

func TestBuildLedgerEmptyInputYieldsOpeningEntryOnly(t *testing.T) {
	ledger := BuildLedger(nil, nil, 5000)

	require.Len(t, ledger, 1)
	assert.Equal(t, "initial", ledger[0].ID)
	assert.Equal(t, int64(5000), ledger[0].BalanceCents)
	assert.Zero(t, ledger[0].AmountCents)
}
