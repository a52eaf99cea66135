package dto

import "github.com/radieske/bet-tracker/internal/analytics"

// ErrorResponse é o envelope de erro padrão da API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LedgerResponse embrulha o extrato com a banca inicial usada no cálculo.
type LedgerResponse struct {
	InitialBalanceCents int64                   `json:"initial_balance_cents"`
	Entries             []analytics.LedgerEntry `json:"entries"`
}

// VolumeResponse embrulha a série de volume com a granularidade resolvida.
type VolumeResponse struct {
	Granularity string                   `json:"granularity"`
	Buckets     []analytics.VolumeBucket `json:"buckets"`
}
