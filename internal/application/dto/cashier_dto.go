package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenSessionRequest abre la caja con un fondo inicial. El monto llega como
// texto libre del formulario: un valor no numérico o negativo se trata como 0.
type OpenSessionRequest struct {
	OpeningAmount string `json:"openingAmount"`
}

// CloseSessionRequest cierra la caja; con Print se genera el reporte de cierre.
type CloseSessionRequest struct {
	Print bool `json:"print"`
}

// SessionResponse estado actual de la caja.
type SessionResponse struct {
	IsOpen        bool            `json:"isOpen"`
	OpeningAmount decimal.Decimal `json:"openingAmount"`
	OpenedAt      *time.Time      `json:"openedAt,omitempty"`
	ExpectedCash  decimal.Decimal `json:"expectedCash"` // significativo solo con la caja abierta
}

// ClosingReportResponse cifras del arqueo de cierre.
type ClosingReportResponse struct {
	TransactionCount int             `json:"transactionCount"`
	CashTotal        decimal.Decimal `json:"cashTotal"`
	CardTotal        decimal.Decimal `json:"cardTotal"`
	GrandTotal       decimal.Decimal `json:"grandTotal"`
	OpeningAmount    decimal.Decimal `json:"openingAmount"`
	ExpectedCash     decimal.Decimal `json:"expectedCash"`
	OpenedAt         *time.Time      `json:"openedAt,omitempty"`
	ClosedAt         time.Time       `json:"closedAt"`
	PrintError       string          `json:"printError,omitempty"` // la caja cierra aunque imprimir falle
}
