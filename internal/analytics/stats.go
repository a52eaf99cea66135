package analytics

// Stats é o resumo agregado de uma coleção de apostas.
// Função total: coleção vazia produz o registro zerado, nunca NaN.
type Stats struct {
	TotalBets int `json:"total_bets"`

	TotalStakedCents        int64 `json:"total_staked_cents"`         // inclui pending (capital em risco)
	TotalStakedSettledCents int64 `json:"total_staked_settled_cents"` // só won/lost/cashout
	TotalReturnCents        int64 `json:"total_return_cents"`

	WinRate float64 `json:"win_rate"`
	ROI     float64 `json:"roi"`

	ProfitCents int64   `json:"profit_cents"`
	AverageOdds float64 `json:"average_odds"`

	BiggestWinCents  int64 `json:"biggest_win_cents"`
	BiggestLossCents int64 `json:"biggest_loss_cents"` // magnitude positiva

	TotalCashouts      int   `json:"total_cashouts"`
	CashoutAmountCents int64 `json:"cashout_amount_cents"`

	PendingAmountCents int64 `json:"pending_amount_cents"`
	LostAmountCents    int64 `json:"lost_amount_cents"`
}

// ComputeStats reduz a coleção ao resumo agregado.
//
// Lucro e ROI usam exclusivamente o stake liquidado (won/lost/cashout):
// stake pendente conta em TotalStakedCents mas nunca abate o lucro.
func ComputeStats(bets []Bet) Stats {
	var s Stats
	var countWon, countLost, countCashout, oddsCount int
	var oddsSum float64

	for _, b := range bets {
		if err := checkBet(b); err != nil {
			continue
		}

		s.TotalBets++
		s.TotalStakedCents += b.StakeCents
		oddsSum += b.OddValue
		oddsCount++

		contribution, settled, _ := Classify(b)
		if settled {
			s.TotalStakedSettledCents += b.StakeCents
		}

		switch b.Status {
		case StatusWon:
			countWon++
			s.TotalReturnCents += b.PotentialReturnCents
			if contribution > s.BiggestWinCents {
				s.BiggestWinCents = contribution
			}
		case StatusLost:
			countLost++
			s.LostAmountCents += b.StakeCents
			if b.StakeCents > s.BiggestLossCents {
				s.BiggestLossCents = b.StakeCents
			}
		case StatusCashout:
			countCashout++
			s.TotalCashouts++
			s.TotalReturnCents += *b.CashoutCents
			s.CashoutAmountCents += *b.CashoutCents
			if contribution > s.BiggestWinCents {
				s.BiggestWinCents = contribution
			}
		case StatusPending:
			s.PendingAmountCents += b.StakeCents
		}
	}

	s.ProfitCents = s.TotalReturnCents - s.TotalStakedSettledCents

	if denom := countWon + countLost + countCashout; denom > 0 {
		s.WinRate = float64(countWon+countCashout) / float64(denom) * 100
	}
	if s.TotalStakedSettledCents > 0 {
		s.ROI = float64(s.ProfitCents) / float64(s.TotalStakedSettledCents) * 100
	}
	if oddsCount > 0 {
		s.AverageOdds = oddsSum / float64(oddsCount)
	}

	return s
}
