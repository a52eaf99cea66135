package consumer

import (
	"context"
	"database/sql"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/radieske/bet-tracker/internal/analytics"
	ev "github.com/radieske/bet-tracker/pkg/contracts/events"
)

// GroupID é o consumer group do worker de ingestão.
const GroupID = "bet-ingest"

// Store é a escrita de apostas/movimentações usada pelo processor.
type Store interface {
	InsertBet(ctx context.Context, b *analytics.Bet) (string, error)
	SettleBet(ctx context.Context, betID, userID, status string, cashoutCents *int64, cashoutAt sql.NullTime) error
	InsertCapitalMovement(ctx context.Context, m *analytics.CapitalMovement) (string, error)
}

// Invalidator derruba as views cacheadas de um usuário após escrita.
type Invalidator interface {
	InvalidateUser(ctx context.Context, userID string) error
}

// Processor consome os eventos do canal de ingestão e materializa os
// registros que alimentam os cálculos do dashboard.
type Processor struct {
	Log   *zap.Logger
	Store Store
	Cache Invalidator

	// callbacks de métricas, ligados no main
	OnPersisted func(kind string)
	OnError     func(stage string)
}

// HandleBetRecorded processa um evento bet_recorded: valida, insere e
// invalida o cache do usuário. Erro ErrBadEvent → DLQ sem retry.
func (p *Processor) HandleBetRecorded(ctx context.Context, value []byte) error {
	var e ev.BetRecorded
	if err := json.Unmarshal(value, &e); err != nil {
		p.countError("unmarshal")
		return badEvent("unmarshal bet_recorded: %v", err)
	}

	b, err := betFromEvent(&e)
	if err != nil {
		p.countError("validate")
		return err
	}

	id, err := p.Store.InsertBet(ctx, b)
	if err != nil {
		p.countError("persist")
		return err
	}

	p.invalidate(ctx, b.UserID)
	p.countPersisted("bet")
	p.Log.Info("bet recorded",
		zap.String("betId", id),
		zap.String("userId", b.UserID),
		zap.String("sport", b.Sport),
		zap.Int64("stakeCents", b.StakeCents),
	)
	return nil
}

// HandleBetSettled processa um evento bet_settled.
func (p *Processor) HandleBetSettled(ctx context.Context, value []byte) error {
	var e ev.BetSettled
	if err := json.Unmarshal(value, &e); err != nil {
		p.countError("unmarshal")
		return badEvent("unmarshal bet_settled: %v", err)
	}

	status, cashoutCents, cashoutAt, err := settlementFromEvent(&e)
	if err != nil {
		p.countError("validate")
		return err
	}

	if err := p.Store.SettleBet(ctx, e.BetID, e.UserID, status, cashoutCents, cashoutAt); err != nil {
		p.countError("persist")
		return err
	}

	p.invalidate(ctx, e.UserID)
	p.countPersisted("settlement")
	p.Log.Info("bet settled",
		zap.String("betId", e.BetID),
		zap.String("userId", e.UserID),
		zap.String("status", status),
	)
	return nil
}

// HandleCapitalRecorded processa um evento capital_movement_recorded.
func (p *Processor) HandleCapitalRecorded(ctx context.Context, value []byte) error {
	var e ev.CapitalMovementRecorded
	if err := json.Unmarshal(value, &e); err != nil {
		p.countError("unmarshal")
		return badEvent("unmarshal capital_movement_recorded: %v", err)
	}

	m, err := movementFromEvent(&e)
	if err != nil {
		p.countError("validate")
		return err
	}

	id, err := p.Store.InsertCapitalMovement(ctx, m)
	if err != nil {
		p.countError("persist")
		return err
	}

	p.invalidate(ctx, m.UserID)
	p.countPersisted("movement")
	p.Log.Info("capital movement recorded",
		zap.String("movementId", id),
		zap.String("userId", m.UserID),
		zap.String("type", string(m.Type)),
		zap.Int64("amountCents", m.AmountCents),
	)
	return nil
}

// invalidate derruba o cache; falha aqui só gera warn, o TTL curto corrige
func (p *Processor) invalidate(ctx context.Context, userID string) {
	if p.Cache == nil {
		return
	}
	if err := p.Cache.InvalidateUser(ctx, userID); err != nil {
		p.Log.Warn("cache invalidate", zap.String("userId", userID), zap.Error(err))
	}
}

func (p *Processor) countPersisted(kind string) {
	if p.OnPersisted != nil {
		p.OnPersisted(kind)
	}
}

func (p *Processor) countError(stage string) {
	if p.OnError != nil {
		p.OnError(stage)
	}
}
