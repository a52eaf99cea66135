package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyWon(t *testing.T) {
	contribution, settled, err := Classify(bet(StatusWon, 10000, 2.0, "2024-03-01T10:00:00Z"))
	require.NoError(t, err)
	assert.True(t, settled)
	assert.Equal(t, int64(10000), contribution)
}

func TestClassifyLost(t *testing.T) {
	contribution, settled, err := Classify(bet(StatusLost, 5000, 1.8, "2024-03-01T10:00:00Z"))
	require.NoError(t, err)
	assert.True(t, settled)
	assert.Equal(t, int64(-5000), contribution)
}

func TestClassifyCashout(t *testing.T) {
	contribution, settled, err := Classify(cashoutBet(10000, 13000, "2024-03-01T10:00:00Z"))
	require.NoError(t, err)
	assert.True(t, settled)
	assert.Equal(t, int64(3000), contribution)
}

func TestClassifyCashoutWithoutAmountIsDataError(t *testing.T) {
	b := bet(StatusCashout, 10000, 2.0, "2024-03-01T10:00:00Z")
	b.CashoutCents = nil

	_, settled, err := Classify(b)
	assert.ErrorIs(t, err, ErrMissingCashout)
	assert.False(t, settled)
}

func TestClassifyPendingAndVoidAreNotSettled(t *testing.T) {
	for _, status := range []BetStatus{StatusPending, StatusVoid} {
		contribution, settled, err := Classify(bet(status, 10000, 2.0, "2024-03-01T10:00:00Z"))
		require.NoError(t, err)
		assert.False(t, settled)
		assert.Zero(t, contribution)
	}
}

func TestClassifyRejectsStatusOutsideClosedSet(t *testing.T) {
	for _, status := range []BetStatus{StatusHalfWon, StatusHalfLost, BetStatus("refunded")} {
		_, _, err := Classify(bet(status, 10000, 2.0, "2024-03-01T10:00:00Z"))
		assert.ErrorIs(t, err, ErrUnknownStatus, "status %q", status)
	}
}

func TestCheckRecordsFlagsMalformedWithoutStopping(t *testing.T) {
	broken := bet(StatusCashout, 10000, 2.0, "2024-03-01T10:00:00Z")
	broken.ID = "broken"
	broken.CashoutCents = nil

	negative := bet(StatusWon, -100, 2.0, "2024-03-02T10:00:00Z")
	negative.ID = "negative"

	lowOdd := bet(StatusLost, 5000, 0.5, "2024-03-03T10:00:00Z")
	lowOdd.ID = "low-odd"

	bets := []Bet{
		bet(StatusWon, 10000, 2.0, "2024-03-04T10:00:00Z"),
		broken,
		negative,
		lowOdd,
	}

	anomalies := CheckRecords(bets)
	require.Len(t, anomalies, 3)
	assert.Equal(t, "broken", anomalies[0].BetID)
	assert.Equal(t, "negative", anomalies[1].BetID)
	assert.Equal(t, "low-odd", anomalies[2].BetID)

	// um registro ruim não impede a estatística dos válidos
	stats := ComputeStats(bets)
	assert.Equal(t, 1, stats.TotalBets)
	assert.Equal(t, int64(10000), stats.ProfitCents)
}
