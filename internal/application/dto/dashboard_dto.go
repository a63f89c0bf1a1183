package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen del día para el panel principal.
type DashboardSummaryDTO struct {
	TodayTotal        decimal.Decimal   `json:"todayTotal"`
	TodayTransactions int               `json:"todayTransactions"`
	AverageTicket     decimal.Decimal   `json:"averageTicket"`
	CashTotal         decimal.Decimal   `json:"cashTotal"`
	CardTotal         decimal.Decimal   `json:"cardTotal"`
	LowStock          []ProductResponse `json:"lowStock"`
}
