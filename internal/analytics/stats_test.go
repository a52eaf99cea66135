package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStatsEmptyCollectionIsZeroed(t *testing.T) {
	s := ComputeStats(nil)

	assert.Equal(t, Stats{}, s)
	assert.False(t, s.WinRate != s.WinRate, "win rate must never be NaN")
	assert.False(t, s.ROI != s.ROI, "roi must never be NaN")
}

func TestComputeStatsEndToEndScenario(t *testing.T) {
	// cenário do dashboard: won 100@2.0, lost 50, pending 30
	bets := []Bet{
		bet(StatusWon, 10000, 2.0, "2024-03-01T10:00:00Z"),
		bet(StatusLost, 5000, 1.5, "2024-03-02T10:00:00Z"),
		bet(StatusPending, 3000, 3.0, "2024-03-03T10:00:00Z"),
	}

	s := ComputeStats(bets)

	assert.Equal(t, 3, s.TotalBets)
	assert.Equal(t, int64(18000), s.TotalStakedCents)
	assert.Equal(t, int64(15000), s.TotalStakedSettledCents)
	assert.Equal(t, int64(20000), s.TotalReturnCents)
	assert.Equal(t, int64(5000), s.ProfitCents)
	assert.InDelta(t, 33.33, s.ROI, 0.01)
	assert.Equal(t, int64(3000), s.PendingAmountCents)
	assert.Equal(t, int64(5000), s.LostAmountCents)
	assert.InDelta(t, 50.0, s.WinRate, 1e-9)
}

func TestComputeStatsPendingNeverReducesProfit(t *testing.T) {
	base := []Bet{
		bet(StatusWon, 10000, 2.0, "2024-03-01T10:00:00Z"),
		bet(StatusLost, 5000, 1.5, "2024-03-02T10:00:00Z"),
	}
	before := ComputeStats(base)

	withPending := append(append([]Bet{}, base...), bet(StatusPending, 7000, 2.5, "2024-03-03T10:00:00Z"))
	after := ComputeStats(withPending)

	assert.Equal(t, before.ProfitCents, after.ProfitCents)
	assert.Equal(t, before.ROI, after.ROI)
	assert.Equal(t, before.PendingAmountCents+7000, after.PendingAmountCents)
	assert.Equal(t, before.TotalStakedCents+7000, after.TotalStakedCents)
}

func TestComputeStatsProfitMatchesClassifierSum(t *testing.T) {
	bets := []Bet{
		bet(StatusWon, 10000, 1.9, "2024-03-01T10:00:00Z"),
		bet(StatusLost, 4000, 2.2, "2024-03-02T10:00:00Z"),
		cashoutBet(6000, 5000, "2024-03-03T10:00:00Z"),
		bet(StatusVoid, 2500, 1.5, "2024-03-04T10:00:00Z"),
		bet(StatusPending, 8000, 3.0, "2024-03-05T10:00:00Z"),
	}

	var sum int64
	for _, b := range bets {
		contribution, settled, err := Classify(b)
		require.NoError(t, err)
		if settled {
			sum += contribution
		}
	}

	assert.Equal(t, sum, ComputeStats(bets).ProfitCents)
}

func TestComputeStatsVoidExcludedFromRates(t *testing.T) {
	bets := []Bet{
		bet(StatusVoid, 5000, 2.0, "2024-03-01T10:00:00Z"),
		bet(StatusWon, 10000, 2.0, "2024-03-02T10:00:00Z"),
	}

	s := ComputeStats(bets)

	assert.Equal(t, int64(10000), s.TotalStakedSettledCents)
	assert.InDelta(t, 100.0, s.WinRate, 1e-9)
	assert.InDelta(t, 100.0, s.ROI, 1e-9)
}

func TestComputeStatsCashoutSupersedesPotentialReturn(t *testing.T) {
	// cashout de 8000 numa aposta que pagaria 20000: conta uma vez só
	bets := []Bet{cashoutBet(10000, 8000, "2024-03-01T10:00:00Z")}

	s := ComputeStats(bets)

	assert.Equal(t, int64(8000), s.TotalReturnCents)
	assert.Equal(t, int64(-2000), s.ProfitCents)
	assert.Equal(t, 1, s.TotalCashouts)
	assert.Equal(t, int64(8000), s.CashoutAmountCents)
	assert.InDelta(t, 100.0, s.WinRate, 1e-9)
}

func TestComputeStatsExtrema(t *testing.T) {
	bets := []Bet{
		bet(StatusWon, 10000, 3.0, "2024-03-01T10:00:00Z"),  // +20000
		cashoutBet(5000, 9000, "2024-03-02T10:00:00Z"),      // +4000
		bet(StatusLost, 12000, 1.8, "2024-03-03T10:00:00Z"), // -12000
		bet(StatusLost, 3000, 2.1, "2024-03-04T10:00:00Z"),  // -3000
	}

	s := ComputeStats(bets)

	assert.Equal(t, int64(20000), s.BiggestWinCents)
	assert.Equal(t, int64(12000), s.BiggestLossCents)
}

func TestComputeStatsAverageOddsIncludesPending(t *testing.T) {
	bets := []Bet{
		bet(StatusWon, 10000, 2.0, "2024-03-01T10:00:00Z"),
		bet(StatusPending, 10000, 4.0, "2024-03-02T10:00:00Z"),
	}

	assert.InDelta(t, 3.0, ComputeStats(bets).AverageOdds, 1e-9)
}

func TestComputeStatsIsIdempotent(t *testing.T) {
	bets := []Bet{
		bet(StatusWon, 10000, 2.0, "2024-03-01T10:00:00Z"),
		cashoutBet(6000, 5000, "2024-03-02T10:00:00Z"),
		bet(StatusPending, 3000, 3.0, "2024-03-03T10:00:00Z"),
	}

	assert.Equal(t, ComputeStats(bets), ComputeStats(bets))
}
