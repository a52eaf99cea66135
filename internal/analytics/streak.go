package analytics

import "sort"

// StreakType indica a direção da sequência atual.
type StreakType string

const (
	StreakWin  StreakType = "win"
	StreakLoss StreakType = "loss"
	StreakNone StreakType = "none"
)

// Streak é a sequência atual de vitórias ou derrotas do usuário.
type Streak struct {
	Type  StreakType `json:"type"`
	Count int        `json:"count"`
}

// ComputeStreak encontra a sequência corrente varrendo as apostas da mais
// recente para a mais antiga.
//
// A aposta mais recente define o tipo: won/cashout → win, lost → loss,
// pending/void → sequência nenhuma. Na varredura seguinte, pending/void é
// pulada sem quebrar a sequência; o resultado oposto encerra a contagem.
// Varredura linear com saída antecipada, nunca um group-by.
func ComputeStreak(bets []Bet) Streak {
	ordered := make([]Bet, 0, len(bets))
	for _, b := range bets {
		if err := checkBet(b); err != nil {
			continue
		}
		ordered = append(ordered, b)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PlacedAt.After(ordered[j].PlacedAt)
	})

	if len(ordered) == 0 {
		return Streak{Type: StreakNone}
	}

	var current StreakType
	switch ordered[0].Status {
	case StatusWon, StatusCashout:
		current = StreakWin
	case StatusLost:
		current = StreakLoss
	default:
		return Streak{Type: StreakNone}
	}

	count := 0
	for _, b := range ordered {
		switch b.Status {
		case StatusPending, StatusVoid:
			continue
		case StatusWon, StatusCashout:
			if current != StreakWin {
				return Streak{Type: current, Count: count}
			}
			count++
		case StatusLost:
			if current != StreakLoss {
				return Streak{Type: current, Count: count}
			}
			count++
		}
	}
	return Streak{Type: current, Count: count}
}
