// Package analytics contiene los casos de uso de reportes del punto de venta,
// derivados por completo de los snapshots vivos de catálogo y ventas.
package analytics

import (
	"time"

	"github.com/olayos/pos-api/internal/application/dto"
	"github.com/olayos/pos-api/internal/application/feed"
	"github.com/olayos/pos-api/internal/domain/entity"
	"github.com/olayos/pos-api/internal/domain/pos"
)

// DashboardUseCase resumen del día y historial para las vistas de panel.
//
// No mantiene estado propio: cada llamada re-deriva las cifras desde el
// snapshot vigente de los feeds (modelo snapshot completo, sin deltas).
type DashboardUseCase struct {
	catalogFeed *feed.CatalogFeed
	salesFeed   *feed.SalesFeed
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(catalogFeed *feed.CatalogFeed, salesFeed *feed.SalesFeed) *DashboardUseCase {
	return &DashboardUseCase{catalogFeed: catalogFeed, salesFeed: salesFeed}
}

// Summary construye el resumen del día: total vendido, transacciones, ticket
// promedio, split efectivo/tarjeta y productos con stock bajo.
func (uc *DashboardUseCase) Summary() *dto.DashboardSummaryDTO {
	today := pos.TodaySales(uc.salesFeed.Current(), time.Now())
	cash, card := pos.TotalsByPayment(today)

	low := pos.LowStockProducts(uc.catalogFeed.Current())
	lowDTO := make([]dto.ProductResponse, 0, len(low))
	for _, p := range low {
		lowDTO = append(lowDTO, ToProductResponse(p))
	}

	return &dto.DashboardSummaryDTO{
		TodayTotal:        pos.TodayTotal(today),
		TodayTransactions: len(today),
		AverageTicket:     pos.AverageTicket(today),
		CashTotal:         cash,
		CardTotal:         card,
		LowStock:          lowDTO,
	}
}

// History devuelve el historial completo de ventas, más recientes primero.
func (uc *DashboardUseCase) History() []entity.Sale {
	return uc.salesFeed.Current()
}

// ToProductResponse mapea la entidad al DTO HTTP.
func ToProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		Category:  p.Category,
		MinStock:  p.MinStock,
		Barcode:   p.Barcode,
		LowStock:  p.LowStock(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
