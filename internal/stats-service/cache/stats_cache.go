package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Views conhecidas do dashboard; InvalidateUser apaga todas de uma vez.
const (
	ViewStats    = "stats"
	ViewLedger   = "ledger"
	ViewTimeline = "timeline"
	ViewStreak   = "streak"
	ViewSports   = "sports"
	ViewHeatmap  = "heatmap"
)

// VolumeView compõe a view de volume com a granularidade pedida.
func VolumeView(granularity string) string { return "volume:" + granularity }

var allViews = []string{
	ViewStats, ViewLedger, ViewTimeline, ViewStreak, ViewSports, ViewHeatmap,
	VolumeView("day"), VolumeView("week"), VolumeView("month"),
}

// Cache guarda payloads calculados do dashboard por usuário, com TTL curto.
// Otimização apenas: recomputar do snapshot dá sempre o mesmo resultado.
type Cache struct {
	R   *redis.Client
	TTL time.Duration
}

func New(r *redis.Client, ttl time.Duration) *Cache { return &Cache{R: r, TTL: ttl} }

func key(userID, view string) string { return "dashboard:user:" + userID + ":" + view }

func (c *Cache) Get(ctx context.Context, userID, view string, dst any) (bool, error) {
	b, err := c.R.Get(ctx, key(userID, view)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(b, dst)
}

func (c *Cache) Set(ctx context.Context, userID, view string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.R.Set(ctx, key(userID, view), b, c.TTL).Err()
}

// InvalidateUser derruba todas as views calculadas de um usuário.
// Chamada pelo worker de ingestão após cada escrita.
func (c *Cache) InvalidateUser(ctx context.Context, userID string) error {
	keys := make([]string, 0, len(allViews))
	for _, view := range allViews {
		keys = append(keys, key(userID, view))
	}
	return c.R.Del(ctx, keys...).Err()
}
