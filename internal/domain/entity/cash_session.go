package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashSession es el estado de la caja del terminal: si está abierta, con qué
// fondo inicial y desde cuándo. Es estado local del dispositivo (no vive en la
// base compartida) y persiste entre reinicios vía un archivo local.
//
// OpeningAmount y OpenedAt solo tienen significado mientras IsOpen es true;
// el cierre los devuelve a sus valores vacíos.
type CashSession struct {
	IsOpen        bool            `json:"isOpen"`
	OpeningAmount decimal.Decimal `json:"openingAmount"`
	OpenedAt      *time.Time      `json:"openedAt,omitempty"`
}

// ExpectedCash devuelve fondo inicial + ventas en efectivo del día.
// Solo es significativo con la caja abierta; el llamador debe verificar IsOpen.
func (s CashSession) ExpectedCash(todayCashTotal decimal.Decimal) decimal.Decimal {
	return s.OpeningAmount.Add(todayCashTotal)
}
