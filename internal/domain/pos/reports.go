package pos

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/olayos/pos-api/internal/domain/entity"
)

// Agregaciones puras sobre la colección de ventas. Se recalculan completas en
// cada snapshot del feed; la corrección nunca depende de mantenimiento
// incremental.

// sameDay compara solo la fecha calendario en la zona horaria local del equipo.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// TodaySales filtra las ventas cuya fecha cae en el mismo día calendario que now.
func TodaySales(sales []entity.Sale, now time.Time) []entity.Sale {
	var out []entity.Sale
	for _, s := range sales {
		if sameDay(s.Date, now) {
			out = append(out, s)
		}
	}
	return out
}

// TodayTotal suma los totales de las ventas del día.
func TodayTotal(todaySales []entity.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range todaySales {
		total = total.Add(s.Total)
	}
	return total
}

// AverageTicket devuelve total del día / transacciones del día, o 0 si no hay
// transacciones (evita la división por cero).
func AverageTicket(todaySales []entity.Sale) decimal.Decimal {
	if len(todaySales) == 0 {
		return decimal.Zero
	}
	return TodayTotal(todaySales).Div(decimal.NewFromInt(int64(len(todaySales))))
}

// TotalsByPayment devuelve los totales del día separados por método de pago.
func TotalsByPayment(todaySales []entity.Sale) (cash, card decimal.Decimal) {
	cash, card = decimal.Zero, decimal.Zero
	for _, s := range todaySales {
		switch s.PaymentMethod {
		case entity.PaymentEfectivo:
			cash = cash.Add(s.Total)
		case entity.PaymentTarjeta:
			card = card.Add(s.Total)
		}
	}
	return cash, card
}

// LowStockProducts filtra los productos en o bajo su umbral de reposición
// (stock <= minStock, límite inclusive), en el orden del snapshot de origen.
func LowStockProducts(products []entity.Product) []entity.Product {
	var out []entity.Product
	for _, p := range products {
		if p.LowStock() {
			out = append(out, p)
		}
	}
	return out
}
