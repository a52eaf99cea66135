package repo

import (
	"context"
	"database/sql"

	"github.com/radieske/bet-tracker/internal/analytics"
)

// ReadRepo é o colaborador de armazenamento dos cálculos: devolve snapshots
// completos e desordenados por usuário, nunca escreve.
type ReadRepo struct {
	DB *sql.DB
}

func NewReadRepo(pg *sql.DB) *ReadRepo { return &ReadRepo{DB: pg} }

// ListBets devolve todas as apostas do usuário, sem ordem garantida.
func (r *ReadRepo) ListBets(ctx context.Context, userID string) ([]analytics.Bet, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, sport, league, description, match_name,
		       odd_value, stake_cents, potential_return_cents,
		       status, cashout_cents, cashout_at, placed_at, match_at
		FROM bets
		WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []analytics.Bet
	for rows.Next() {
		var (
			b            analytics.Bet
			league       sql.NullString
			description  sql.NullString
			matchName    sql.NullString
			cashoutCents sql.NullInt64
			cashoutAt    sql.NullTime
			matchAt      sql.NullTime
			status       string
		)
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.Sport, &league, &description, &matchName,
			&b.OddValue, &b.StakeCents, &b.PotentialReturnCents,
			&status, &cashoutCents, &cashoutAt, &b.PlacedAt, &matchAt,
		); err != nil {
			return nil, err
		}
		b.Status = analytics.BetStatus(status)
		b.League = league.String
		b.Description = description.String
		b.MatchName = matchName.String
		if cashoutCents.Valid {
			v := cashoutCents.Int64
			b.CashoutCents = &v
		}
		if cashoutAt.Valid {
			t := cashoutAt.Time
			b.CashoutAt = &t
		}
		if matchAt.Valid {
			t := matchAt.Time
			b.MatchAt = &t
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ListCapitalMovements devolve todas as movimentações do usuário,
// inclusive as que não afetam saldo (o filtro é do cálculo).
func (r *ReadRepo) ListCapitalMovements(ctx context.Context, userID string) ([]analytics.CapitalMovement, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, type, amount_cents, moved_at, description, source, affects_balance
		FROM capital_movements
		WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []analytics.CapitalMovement
	for rows.Next() {
		var (
			m           analytics.CapitalMovement
			mType       string
			source      string
			description sql.NullString
		)
		if err := rows.Scan(
			&m.ID, &m.UserID, &mType, &m.AmountCents, &m.MovedAt,
			&description, &source, &m.AffectsBalance,
		); err != nil {
			return nil, err
		}
		m.Type = analytics.MovementType(mType)
		m.Source = analytics.MovementSource(source)
		m.Description = description.String
		out = append(out, m)
	}
	return out, rows.Err()
}

// InitialBankroll devolve a banca inicial configurada pelo usuário.
// Usuário sem configuração conta como banca zero.
func (r *ReadRepo) InitialBankroll(ctx context.Context, userID string) (int64, error) {
	var cents int64
	err := r.DB.QueryRowContext(ctx, `
		SELECT COALESCE(initial_bankroll_cents, 0)
		FROM user_settings
		WHERE user_id = $1`, userID).Scan(&cents)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return cents, err
}
