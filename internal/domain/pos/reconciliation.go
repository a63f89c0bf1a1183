package pos

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/olayos/pos-api/internal/domain/entity"
)

// ClosingReport son las cifras del arqueo al cerrar la caja: resumen de ventas
// por método de pago más el efectivo esperado en el cajón.
type ClosingReport struct {
	TransactionCount int
	CashTotal        decimal.Decimal
	CardTotal        decimal.Decimal
	GrandTotal       decimal.Decimal
	OpeningAmount    decimal.Decimal
	ExpectedCash     decimal.Decimal // fondo inicial + ventas en efectivo
	OpenedAt         *time.Time
	ClosedAt         time.Time
}

// BuildClosingReport deriva el arqueo a partir de la sesión y las ventas del
// día. Es una función pura: no muta la sesión ni las ventas.
func BuildClosingReport(session entity.CashSession, todaySales []entity.Sale, closedAt time.Time) ClosingReport {
	cash, card := TotalsByPayment(todaySales)
	return ClosingReport{
		TransactionCount: len(todaySales),
		CashTotal:        cash,
		CardTotal:        card,
		GrandTotal:       TodayTotal(todaySales),
		OpeningAmount:    session.OpeningAmount,
		ExpectedCash:     session.ExpectedCash(cash),
		OpenedAt:         session.OpenedAt,
		ClosedAt:         closedAt,
	}
}
