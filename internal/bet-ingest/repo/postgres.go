package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/radieske/bet-tracker/internal/analytics"
)

// Postgres implementa a escrita de apostas e movimentações vindas do
// canal de ingestão. Único ponto do sistema que escreve nessas tabelas.
type Postgres struct{ db *sql.DB }

func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

var ErrBetNotFound = errors.New("bet not found")

// InsertBet grava uma aposta recém registrada com status pending.
func (p *Postgres) InsertBet(ctx context.Context, b *analytics.Bet) (string, error) {
	id := b.ID
	if id == "" {
		id = uuid.NewString()
	}
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO bets (id, user_id, sport, league, description, match_name,
		                  odd_value, stake_cents, potential_return_cents,
		                  status, placed_at, match_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,'pending',$10,$11)`,
		id, b.UserID, b.Sport, nullString(b.League), nullString(b.Description),
		nullString(b.MatchName), b.OddValue, b.StakeCents, b.PotentialReturnCents,
		b.PlacedAt, b.MatchAt,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// SettleBet atualiza o status de liquidação de uma aposta existente.
// cashoutCents/cashoutAt só para status cashout, nil nos demais.
func (p *Postgres) SettleBet(ctx context.Context, betID, userID, status string, cashoutCents *int64, cashoutAt sql.NullTime) error {
	res, err := p.db.ExecContext(ctx, `
		UPDATE bets
		SET status=$1, cashout_cents=$2, cashout_at=$3, updated_at=NOW()
		WHERE id=$4 AND user_id=$5`,
		status, cashoutCents, cashoutAt, betID, userID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBetNotFound
	}
	return nil
}

// InsertCapitalMovement grava um depósito/saque do canal de ingestão.
// Movimentações bankroll_edit chegam por aqui quando o usuário ajusta a
// banca inicial pelo bot.
func (p *Postgres) InsertCapitalMovement(ctx context.Context, m *analytics.CapitalMovement) (string, error) {
	id := m.ID
	if id == "" {
		id = uuid.NewString()
	}
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO capital_movements (id, user_id, type, amount_cents, moved_at,
		                               description, source, affects_balance)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		id, m.UserID, string(m.Type), m.AmountCents, m.MovedAt,
		nullString(m.Description), string(m.Source), m.AffectsBalance,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
