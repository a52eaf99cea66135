package events

// CapitalMovementRecorded é o evento de depósito/saque registrado pelo
// canal externo, independente de resultado de aposta.
type CapitalMovementRecorded struct {
	MovementID  string `json:"movement_id"` // opcional; vazio → o worker gera
	UserID      string `json:"user_id"`
	Type        string `json:"type"` // deposit | withdrawal
	AmountCents int64  `json:"amount_cents"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source"` // manual | bankroll_edit

	AffectsBalance bool  `json:"affects_balance"`
	MovedAtUnixMs  int64 `json:"moved_at_unix_ms"`
}
