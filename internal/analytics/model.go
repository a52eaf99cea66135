package analytics

import "time"

// BetStatus é o estado de liquidação de uma aposta.
type BetStatus string

const (
	StatusPending BetStatus = "pending"
	StatusWon     BetStatus = "won"
	StatusLost    BetStatus = "lost"
	StatusVoid    BetStatus = "void"
	StatusCashout BetStatus = "cashout"

	// Variantes estendidas emitidas por alguns canais de ingestão.
	// Não entram no conjunto fechado dos cálculos (ver Classify).
	StatusHalfWon  BetStatus = "half_won"
	StatusHalfLost BetStatus = "half_lost"
)

// Bet é o registro bruto de uma aposta, como vem do armazenamento.
// Valores monetários sempre em centavos (int64), odds em decimal.
type Bet struct {
	ID     string
	UserID string

	Sport       string
	League      string
	Description string
	MatchName   string

	OddValue             float64
	StakeCents           int64
	PotentialReturnCents int64 // stake * odd, congelado no momento da aposta

	Status       BetStatus
	CashoutCents *int64 // obrigatório quando Status == cashout
	CashoutAt    *time.Time

	PlacedAt time.Time
	MatchAt  *time.Time

	Tags []Tag
}

// Tag é um rótulo de classificação livre (só filtro/UI, ignorado pelos cálculos).
type Tag struct {
	Name  string
	Color string
}

// MovementType indica a direção de uma movimentação de capital.
type MovementType string

const (
	MovementDeposit    MovementType = "deposit"
	MovementWithdrawal MovementType = "withdrawal"
)

// MovementSource indica a origem da movimentação.
type MovementSource string

const (
	SourceManual       MovementSource = "manual"
	SourceBankrollEdit MovementSource = "bankroll_edit"
)

// CapitalMovement é um depósito ou saque na banca, independente de apostas.
// AmountCents é sempre positivo; o sinal vem do Type.
type CapitalMovement struct {
	ID          string
	UserID      string
	Type        MovementType
	AmountCents int64
	MovedAt     time.Time
	Description string
	Source      MovementSource

	// Quando false a movimentação é só informativa e fica fora do ledger.
	AffectsBalance bool
}

// signedAmount devolve o efeito da movimentação sobre o saldo, em centavos.
func (m CapitalMovement) signedAmount() int64 {
	if m.Type == MovementWithdrawal {
		return -m.AmountCents
	}
	return m.AmountCents
}
