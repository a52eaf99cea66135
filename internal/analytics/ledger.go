package analytics

import (
	"sort"
	"time"
)

// LedgerCategory identifica a origem de uma linha do extrato.
type LedgerCategory string

const (
	CategoryInitial    LedgerCategory = "initial"
	CategoryBet        LedgerCategory = "bet"
	CategoryDeposit    LedgerCategory = "deposit"
	CategoryWithdrawal LedgerCategory = "withdrawal"
)

// LedgerEntry é uma linha do extrato de fluxo de caixa, com saldo acumulado.
type LedgerEntry struct {
	ID           string         `json:"id"`
	Timestamp    time.Time      `json:"timestamp"`
	Description  string         `json:"description"`
	Category     LedgerCategory `json:"category"`
	AmountCents  int64          `json:"amount_cents"`
	BalanceCents int64          `json:"balance_cents"`
}

// BuildLedger reconstrói o extrato cronológico da banca: apostas liquidadas
// (won/lost/cashout) mais movimentações de capital com affects_balance,
// ordenadas por timestamp, com saldo corrente em cada linha.
//
// A data da aposta serve de proxy para a data de liquidação — simplificação
// deliberada, não existe settled_at consistente no armazenamento.
//
// A ordenação é estável: eventos com o mesmo timestamp preservam a ordem de
// montagem (apostas antes de movimentações, depois ordem de entrada), então
// a mesma entrada produz sempre a mesma saída. O saldo é acumulado depois
// da ordenação e as linhas nunca podem ser reordenadas em seguida.
func BuildLedger(bets []Bet, movements []CapitalMovement, initialBalanceCents int64) []LedgerEntry {
	entries := make([]LedgerEntry, 0, len(bets)+len(movements)+1)

	for _, b := range bets {
		if err := checkBet(b); err != nil {
			continue
		}
		contribution, settled, _ := Classify(b)
		if !settled {
			continue // pending/void nunca viram linha do extrato
		}
		entries = append(entries, LedgerEntry{
			ID:          b.ID,
			Timestamp:   b.PlacedAt,
			Description: betDescription(b),
			Category:    CategoryBet,
			AmountCents: contribution,
		})
	}

	for _, m := range movements {
		if !m.AffectsBalance || m.AmountCents <= 0 {
			continue
		}
		category := CategoryDeposit
		if m.Type == MovementWithdrawal {
			category = CategoryWithdrawal
		}
		entries = append(entries, LedgerEntry{
			ID:          m.ID,
			Timestamp:   m.MovedAt,
			Description: movementDescription(m),
			Category:    category,
			AmountCents: m.signedAmount(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})

	out := make([]LedgerEntry, 0, len(entries)+1)
	opening := LedgerEntry{
		ID:           "initial",
		Description:  "initial balance",
		Category:     CategoryInitial,
		BalanceCents: initialBalanceCents,
	}
	if len(entries) > 0 {
		opening.Timestamp = entries[0].Timestamp
	}
	out = append(out, opening)

	balance := initialBalanceCents
	for _, e := range entries {
		balance += e.AmountCents
		e.BalanceCents = balance
		out = append(out, e)
	}

	return out
}

func betDescription(b Bet) string {
	if b.Description != "" {
		return b.Description
	}
	if b.Sport != "" {
		return b.Sport
	}
	return "bet"
}

func movementDescription(m CapitalMovement) string {
	if m.Description != "" {
		return m.Description
	}
	return string(m.Type)
}
