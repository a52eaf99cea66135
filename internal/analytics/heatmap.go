package analytics

import "sort"

// HeatmapCell é uma célula (dia-da-semana, hora) da superfície de acerto.
// DayOfWeek segue time.Weekday: 0 = domingo.
type HeatmapCell struct {
	DayOfWeek int     `json:"day_of_week"`
	Hour      int     `json:"hour"`
	HitRate   float64 `json:"hit_rate"`
	BetCount  int     `json:"bet_count"`
}

// ComputeHeatmap agrupa as apostas pelo horário em que foram feitas e
// calcula a taxa de acerto (won+cashout sobre o total) por célula.
// Só células com aposta são emitidas, ordenadas por (dia, hora).
func ComputeHeatmap(bets []Bet) []HeatmapCell {
	type cellAgg struct {
		total int
		hits  int
	}
	cells := make(map[[2]int]*cellAgg)
	for _, b := range bets {
		if err := checkBet(b); err != nil {
			continue
		}
		key := [2]int{int(b.PlacedAt.Weekday()), b.PlacedAt.Hour()}
		agg, ok := cells[key]
		if !ok {
			agg = &cellAgg{}
			cells[key] = agg
		}
		agg.total++
		if b.Status == StatusWon || b.Status == StatusCashout {
			agg.hits++
		}
	}

	out := make([]HeatmapCell, 0, len(cells))
	for key, agg := range cells {
		out = append(out, HeatmapCell{
			DayOfWeek: key[0],
			Hour:      key[1],
			HitRate:   float64(agg.hits) / float64(agg.total) * 100,
			BetCount:  agg.total,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DayOfWeek != out[j].DayOfWeek {
			return out[i].DayOfWeek < out[j].DayOfWeek
		}
		return out[i].Hour < out[j].Hour
	})
	return out
}
