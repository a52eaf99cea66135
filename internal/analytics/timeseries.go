package analytics

import (
	"sort"
	"time"
)

// Granularity seleciona o agrupamento temporal das séries de volume.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// VolumeBucket é um balde da série de volume, com contagem por status.
type VolumeBucket struct {
	Key     string `json:"key"` // YYYY-MM-DD (day/week) ou YYYY-MM (month)
	Total   int    `json:"total"`
	Won     int    `json:"won"`
	Lost    int    `json:"lost"`
	Pending int    `json:"pending"`
	Cashout int    `json:"cashout"`
	Void    int    `json:"void"`
}

// ProfitPoint é um ponto da linha do tempo de lucro (granularidade diária).
type ProfitPoint struct {
	Date                  string `json:"date"`
	DailyProfitCents      int64  `json:"daily_profit_cents"`
	CumulativeProfitCents int64  `json:"cumulative_profit_cents"`
	BetCount              int    `json:"bet_count"`
}

// bucketKey deriva a chave do balde a partir da data da aposta.
// Semanas começam no domingo, consistente com o eixo do heatmap.
func bucketKey(t time.Time, g Granularity) string {
	switch g {
	case GranularityWeek:
		return t.AddDate(0, 0, -int(t.Weekday())).Format("2006-01-02")
	case GranularityMonth:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

// ComputeVolumeSeries agrupa as apostas por balde temporal e conta por status.
// Série esparsa: balde sem aposta não é emitido. Saída ascendente por chave.
func ComputeVolumeSeries(bets []Bet, g Granularity) []VolumeBucket {
	byKey := make(map[string]*VolumeBucket)
	for _, b := range bets {
		if err := checkBet(b); err != nil {
			continue
		}
		key := bucketKey(b.PlacedAt, g)
		bucket, ok := byKey[key]
		if !ok {
			bucket = &VolumeBucket{Key: key}
			byKey[key] = bucket
		}
		bucket.Total++
		switch b.Status {
		case StatusWon:
			bucket.Won++
		case StatusLost:
			bucket.Lost++
		case StatusPending:
			bucket.Pending++
		case StatusCashout:
			bucket.Cashout++
		case StatusVoid:
			bucket.Void++
		}
	}

	out := make([]VolumeBucket, 0, len(byKey))
	for _, bucket := range byKey {
		out = append(out, *bucket)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// ComputeProfitTimeline produz a série diária de lucro de apostas com o
// acumulado corrente. Acumulador independente do saldo do ledger: aqui só
// entra lucro de aposta, movimentações de capital ficam de fora.
func ComputeProfitTimeline(bets []Bet) []ProfitPoint {
	type dayAgg struct {
		profit int64
		count  int
	}
	byDay := make(map[string]*dayAgg)
	for _, b := range bets {
		if err := checkBet(b); err != nil {
			continue
		}
		key := bucketKey(b.PlacedAt, GranularityDay)
		agg, ok := byDay[key]
		if !ok {
			agg = &dayAgg{}
			byDay[key] = agg
		}
		agg.count++
		contribution, settled, _ := Classify(b)
		if settled {
			agg.profit += contribution
		}
	}

	keys := make([]string, 0, len(byDay))
	for k := range byDay {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]ProfitPoint, 0, len(keys))
	var cumulative int64
	for _, k := range keys {
		agg := byDay[k]
		cumulative += agg.profit
		out = append(out, ProfitPoint{
			Date:                  k,
			DailyProfitCents:      agg.profit,
			CumulativeProfitCents: cumulative,
			BetCount:              agg.count,
		})
	}
	return out
}
