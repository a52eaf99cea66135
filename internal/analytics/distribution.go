package analytics

import "sort"

// SportShare é a fatia de um esporte na coleção: contagem, percentual
// sobre o total e lucro liquidado do grupo.
type SportShare struct {
	Sport       string  `json:"sport"`
	Count       int     `json:"count"`
	Percentage  float64 `json:"percentage"`
	ProfitCents int64   `json:"profit_cents"`
}

// ComputeSportDistribution agrupa por esporte e calcula fatia e lucro.
// Saída ordenada por contagem decrescente (o esporte mais apostado primeiro;
// a UI de "melhor esporte" depende dessa ordem), empate por nome.
func ComputeSportDistribution(bets []Bet) []SportShare {
	bySport := make(map[string]*SportShare)
	total := 0
	for _, b := range bets {
		if err := checkBet(b); err != nil {
			continue
		}
		total++
		share, ok := bySport[b.Sport]
		if !ok {
			share = &SportShare{Sport: b.Sport}
			bySport[b.Sport] = share
		}
		share.Count++
		if contribution, settled, _ := Classify(b); settled {
			share.ProfitCents += contribution
		}
	}

	out := make([]SportShare, 0, len(bySport))
	for _, share := range bySport {
		share.Percentage = float64(share.Count) / float64(total) * 100
		out = append(out, *share)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Sport < out[j].Sport
	})
	return out
}
