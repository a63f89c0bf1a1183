package pos_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olayos/pos-api/internal/domain/entity"
	"github.com/olayos/pos-api/internal/domain/pos"
)

func venta(id string, total int64, pago string, date time.Time) entity.Sale {
	return entity.Sale{
		ID:            id,
		Total:         decimal.NewFromInt(total),
		Date:          date,
		PaymentMethod: pago,
	}
}

func TestTodaySales_FiltraPorDiaCalendario(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)
	sales := []entity.Sale{
		venta("hoy-1", 1000, entity.PaymentEfectivo, now.Add(-2*time.Hour)),
		venta("hoy-2", 2000, entity.PaymentTarjeta, time.Date(2025, 6, 15, 0, 0, 1, 0, time.Local)),
		venta("ayer", 9999, entity.PaymentEfectivo, now.AddDate(0, 0, -1)),
		venta("mañana", 9999, entity.PaymentEfectivo, now.AddDate(0, 0, 1)),
	}

	today := pos.TodaySales(sales, now)
	require.Len(t, today, 2)
	assert.Equal(t, "hoy-1", today[0].ID)
	assert.Equal(t, "hoy-2", today[1].ID)
}

func TestTodayTotal_SumaLosTotales(t *testing.T) {
	now := time.Now()
	today := []entity.Sale{
		venta("a", 1000, entity.PaymentEfectivo, now),
		venta("b", 2500, entity.PaymentTarjeta, now),
	}
	assert.True(t, pos.TodayTotal(today).Equal(decimal.NewFromInt(3500)))
}

func TestAverageTicket_SinVentasEsCero(t *testing.T) {
	assert.True(t, pos.AverageTicket(nil).IsZero(),
		"sin transacciones el ticket promedio debe ser 0, no una división por cero")
}

func TestAverageTicket_PromedioSimple(t *testing.T) {
	now := time.Now()
	today := []entity.Sale{
		venta("a", 1000, entity.PaymentEfectivo, now),
		venta("b", 2000, entity.PaymentEfectivo, now),
		venta("c", 3000, entity.PaymentTarjeta, now),
	}
	assert.True(t, pos.AverageTicket(today).Equal(decimal.NewFromInt(2000)))
}

func TestTotalsByPayment_SeparaEfectivoYTarjeta(t *testing.T) {
	now := time.Now()
	today := []entity.Sale{
		venta("a", 1000, entity.PaymentEfectivo, now),
		venta("b", 500, entity.PaymentEfectivo, now),
		venta("c", 3000, entity.PaymentTarjeta, now),
	}
	cash, card := pos.TotalsByPayment(today)
	assert.True(t, cash.Equal(decimal.NewFromInt(1500)))
	assert.True(t, card.Equal(decimal.NewFromInt(3000)))
}

func TestLowStockProducts_LimiteInclusive(t *testing.T) {
	products := []entity.Product{
		{ID: "bajo", Stock: 2, MinStock: 5},
		{ID: "en-el-limite", Stock: 5, MinStock: 5},
		{ID: "sobre", Stock: 6, MinStock: 5},
	}
	low := pos.LowStockProducts(products)
	require.Len(t, low, 2, "stock == minStock también cuenta como stock bajo")
	assert.Equal(t, "bajo", low[0].ID)
	assert.Equal(t, "en-el-limite", low[1].ID)
}

func TestBuildClosingReport_EfectivoEsperado(t *testing.T) {
	openedAt := time.Now().Add(-8 * time.Hour)
	session := entity.CashSession{
		IsOpen:        true,
		OpeningAmount: decimal.NewFromInt(5000),
		OpenedAt:      &openedAt,
	}
	now := time.Now()
	today := []entity.Sale{
		venta("a", 1500, entity.PaymentEfectivo, now),
		venta("b", 2500, entity.PaymentTarjeta, now),
	}

	closedAt := time.Now()
	report := pos.BuildClosingReport(session, today, closedAt)

	assert.Equal(t, 2, report.TransactionCount)
	assert.True(t, report.CashTotal.Equal(decimal.NewFromInt(1500)))
	assert.True(t, report.CardTotal.Equal(decimal.NewFromInt(2500)))
	assert.True(t, report.GrandTotal.Equal(decimal.NewFromInt(4000)))
	assert.True(t, report.OpeningAmount.Equal(decimal.NewFromInt(5000)))
	// efectivo esperado = fondo inicial + ventas en efectivo (la tarjeta no entra al cajón)
	assert.True(t, report.ExpectedCash.Equal(decimal.NewFromInt(6500)))
	assert.Equal(t, closedAt, report.ClosedAt)
	require.NotNil(t, report.OpenedAt)
	assert.Equal(t, openedAt, *report.OpenedAt)
}

func TestBuildClosingReport_SinVentas(t *testing.T) {
	session := entity.CashSession{IsOpen: true, OpeningAmount: decimal.NewFromInt(10000)}
	report := pos.BuildClosingReport(session, nil, time.Now())

	assert.Equal(t, 0, report.TransactionCount)
	assert.True(t, report.GrandTotal.IsZero())
	assert.True(t, report.ExpectedCash.Equal(decimal.NewFromInt(10000)),
		"sin ventas el efectivo esperado es solo el fondo inicial")
}
