package analytics

import "errors"

var (
	ErrMissingCashout = errors.New("cashout bet without cashout amount")
	ErrInvalidStake   = errors.New("stake must be positive")
	ErrInvalidOdd     = errors.New("odd must be >= 1")
	ErrUnknownStatus  = errors.New("unknown bet status")
)

// Classify devolve a contribuição realizada de uma aposta sobre a banca,
// em centavos, e se a aposta conta como liquidada.
//
// É a única fonte da aritmética won/lost/cashout: todo cálculo do pacote
// passa por aqui, nunca reimplementa os branches.
//
//	won:     potential_return - stake
//	lost:    -stake
//	cashout: cashout - stake (cashout ausente é erro de dado, não zero)
//	pending: 0, não liquidada (stake segue em risco)
//	void:    0, não liquidada (stake devolvido)
//
// Status fora do conjunto fechado (inclusive half_won/half_lost) retorna
// ErrUnknownStatus em vez de contribuir zero silenciosamente.
func Classify(b Bet) (contributionCents int64, settled bool, err error) {
	switch b.Status {
	case StatusWon:
		return b.PotentialReturnCents - b.StakeCents, true, nil
	case StatusLost:
		return -b.StakeCents, true, nil
	case StatusCashout:
		if b.CashoutCents == nil {
			return 0, false, ErrMissingCashout
		}
		return *b.CashoutCents - b.StakeCents, true, nil
	case StatusPending, StatusVoid:
		return 0, false, nil
	default:
		return 0, false, ErrUnknownStatus
	}
}

// checkBet valida a integridade de um registro. Registros que falham aqui
// são pulados por todos os cálculos (skip-and-flag, nunca crash).
func checkBet(b Bet) error {
	if b.StakeCents <= 0 {
		return ErrInvalidStake
	}
	if b.OddValue < 1 {
		return ErrInvalidOdd
	}
	if _, _, err := Classify(b); err != nil {
		return err
	}
	return nil
}

// Anomaly descreve um registro malformado encontrado na coleção.
type Anomaly struct {
	BetID  string `json:"bet_id"`
	Reason string `json:"reason"`
}

// CheckRecords varre a coleção e reporta os registros que os cálculos
// vão ignorar, para log/alerta. Nunca interrompe o processamento.
func CheckRecords(bets []Bet) []Anomaly {
	var out []Anomaly
	for _, b := range bets {
		if err := checkBet(b); err != nil {
			out = append(out, Anomaly{BetID: b.ID, Reason: err.Error()})
		}
	}
	return out
}
