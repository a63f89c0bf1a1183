package checkout

import (
	"context"

	"github.com/olayos/pos-api/internal/domain/entity"
	"github.com/olayos/pos-api/internal/domain/repository"
)

// TxRunner ejecuta el callback con repositorios atados a una misma
// transacción: o se aplican todos los descuentos de stock y la venta, o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReceiptPDFGenerator genera la boleta en PDF de una venta ya registrada.
// Es un colaborador de presentación: no contiene lógica de negocio.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale) ([]byte, error)
}
