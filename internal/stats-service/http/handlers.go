package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/radieske/bet-tracker/internal/analytics"
	"github.com/radieske/bet-tracker/internal/stats-service/cache"
	"github.com/radieske/bet-tracker/internal/stats-service/dto"
)

// loadBets busca o snapshot do usuário e loga registros malformados.
// Registro ruim vira warn, nunca derruba o cálculo dos válidos.
func (a *API) loadBets(ctx context.Context, userID string) ([]analytics.Bet, error) {
	bets, err := a.Repo.ListBets(ctx, userID)
	if err != nil {
		return nil, err
	}
	if anomalies := analytics.CheckRecords(bets); len(anomalies) > 0 {
		a.Log.Warn("malformed bet records skipped",
			zap.String("userId", userID),
			zap.Int("count", len(anomalies)),
			zap.Any("anomalies", anomalies),
		)
	}
	return bets, nil
}

func (a *API) getStats(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var cached analytics.Stats
	if ok, _ := a.Cache.Get(r.Context(), userID, cache.ViewStats, &cached); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	bets, err := a.loadBets(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	stats := analytics.ComputeStats(bets)
	_ = a.Cache.Set(r.Context(), userID, cache.ViewStats, stats)
	writeJSON(w, http.StatusOK, stats)
}

func (a *API) getLedger(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var resp dto.LedgerResponse
	ok, _ := a.Cache.Get(r.Context(), userID, cache.ViewLedger, &resp)
	if !ok {
		bets, err := a.loadBets(r.Context(), userID)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
			return
		}
		movements, err := a.Repo.ListCapitalMovements(r.Context(), userID)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
			return
		}
		initial, err := a.Repo.InitialBankroll(r.Context(), userID)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
			return
		}

		resp = dto.LedgerResponse{
			InitialBalanceCents: initial,
			Entries:             analytics.BuildLedger(bets, movements, initial),
		}
		_ = a.Cache.Set(r.Context(), userID, cache.ViewLedger, resp)
	}

	// o cálculo entrega ascendente; "mais recente primeiro" é só exibição
	if r.URL.Query().Get("order") == "desc" {
		reversed := make([]analytics.LedgerEntry, len(resp.Entries))
		for i, e := range resp.Entries {
			reversed[len(resp.Entries)-1-i] = e
		}
		resp.Entries = reversed
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) getTimeline(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var cached []analytics.ProfitPoint
	if ok, _ := a.Cache.Get(r.Context(), userID, cache.ViewTimeline, &cached); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	bets, err := a.loadBets(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	timeline := analytics.ComputeProfitTimeline(bets)
	_ = a.Cache.Set(r.Context(), userID, cache.ViewTimeline, timeline)
	writeJSON(w, http.StatusOK, timeline)
}

func (a *API) getVolume(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	granularity := analytics.Granularity(r.URL.Query().Get("granularity"))
	switch granularity {
	case "":
		granularity = analytics.GranularityDay
	case analytics.GranularityDay, analytics.GranularityWeek, analytics.GranularityMonth:
	default:
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "granularity must be day, week or month"})
		return
	}

	view := cache.VolumeView(string(granularity))
	var resp dto.VolumeResponse
	if ok, _ := a.Cache.Get(r.Context(), userID, view, &resp); ok {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	bets, err := a.loadBets(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp = dto.VolumeResponse{
		Granularity: string(granularity),
		Buckets:     analytics.ComputeVolumeSeries(bets, granularity),
	}
	_ = a.Cache.Set(r.Context(), userID, view, resp)
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) getStreak(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var cached analytics.Streak
	if ok, _ := a.Cache.Get(r.Context(), userID, cache.ViewStreak, &cached); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	bets, err := a.loadBets(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	streak := analytics.ComputeStreak(bets)
	_ = a.Cache.Set(r.Context(), userID, cache.ViewStreak, streak)
	writeJSON(w, http.StatusOK, streak)
}

func (a *API) getSports(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var cached []analytics.SportShare
	if ok, _ := a.Cache.Get(r.Context(), userID, cache.ViewSports, &cached); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	bets, err := a.loadBets(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	dist := analytics.ComputeSportDistribution(bets)
	_ = a.Cache.Set(r.Context(), userID, cache.ViewSports, dist)
	writeJSON(w, http.StatusOK, dist)
}

func (a *API) getHeatmap(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var cached []analytics.HeatmapCell
	if ok, _ := a.Cache.Get(r.Context(), userID, cache.ViewHeatmap, &cached); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	bets, err := a.loadBets(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	cells := analytics.ComputeHeatmap(bets)
	_ = a.Cache.Set(r.Context(), userID, cache.ViewHeatmap, cells)
	writeJSON(w, http.StatusOK, cells)
}
