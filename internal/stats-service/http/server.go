package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/radieske/bet-tracker/internal/stats-service/cache"
	"github.com/radieske/bet-tracker/internal/stats-service/repo"
)

// API expõe os endpoints REST de leitura do dashboard.
// Busca snapshots no Postgres, roda os cálculos puros e cacheia o resultado.
type API struct {
	Log   *zap.Logger
	Repo  *repo.ReadRepo // acesso ao banco de dados
	Cache *cache.Cache   // cache dos payloads calculados
}

func NewAPI(log *zap.Logger, r *repo.ReadRepo, c *cache.Cache) *API {
	return &API{Log: log, Repo: r, Cache: c}
}

// Router retorna o roteador HTTP com os endpoints REST
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.Route("/v1/users/{id}", func(r chi.Router) {
		r.Get("/stats", a.getStats)       // resumo agregado
		r.Get("/ledger", a.getLedger)     // extrato de fluxo de caixa
		r.Get("/timeline", a.getTimeline) // lucro diário + acumulado
		r.Get("/volume", a.getVolume)     // série de volume por granularidade
		r.Get("/streak", a.getStreak)     // sequência atual
		r.Get("/sports", a.getSports)     // distribuição por esporte
		r.Get("/heatmap", a.getHeatmap)   // taxa de acerto por dia/hora
	})
	return r
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
