package events

// BetSettled é o evento de liquidação vindo do canal externo.
// Status segue o vocabulário do tracker: won|lost|void|cashout
// (variantes half_* podem chegar e são rejeitadas para a DLQ).
// CashoutCents é obrigatório quando Status == cashout.
type BetSettled struct {
	BetID  string `json:"bet_id"`
	UserID string `json:"user_id"`
	Status string `json:"status"`

	CashoutCents    *int64 `json:"cashout_cents,omitempty"`
	SettledAtUnixMs int64  `json:"settled_at_unix_ms"`
}
