package events

// BetRecorded é o evento emitido pelo canal externo (chat-bot) quando o
// usuário registra uma aposta. PotentialReturnCents vem congelado da origem;
// se zerado, o consumidor deriva de stake*odd.
type BetRecorded struct {
	BetID       string  `json:"bet_id"` // opcional; vazio → o worker gera
	UserID      string  `json:"user_id"`
	Sport       string  `json:"sport"`
	League      string  `json:"league,omitempty"`
	Description string  `json:"description,omitempty"`
	MatchName   string  `json:"match_name,omitempty"`
	StakeCents  int64   `json:"stake_cents"`
	OddValue    float64 `json:"odd_value"`

	PotentialReturnCents int64 `json:"potential_return_cents,omitempty"`

	PlacedAtUnixMs int64 `json:"placed_at_unix_ms"`
	MatchAtUnixMs  int64 `json:"match_at_unix_ms,omitempty"`
}
