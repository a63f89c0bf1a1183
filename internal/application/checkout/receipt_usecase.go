package checkout

import (
	"context"
	"fmt"

	"github.com/olayos/pos-api/internal/domain"
	"github.com/olayos/pos-api/internal/domain/repository"
)

// ReceiptUseCase genera la boleta en PDF de una venta registrada.
type ReceiptUseCase struct {
	saleRepo  repository.SaleRepository
	generator ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(saleRepo repository.SaleRepository, generator ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, generator: generator}
}

// ReceiptPDF recupera la venta y genera su boleta.
// Retorna (pdfBytes, filename, nil) o domain.ErrNotFound si la venta no existe.
func (uc *ReceiptUseCase) ReceiptPDF(ctx context.Context, saleID string) ([]byte, string, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err := uc.generator.GenerateReceiptPDF(ctx, sale)
	if err != nil {
		return nil, "", fmt.Errorf("generar boleta: %w", err)
	}
	return pdf, fmt.Sprintf("boleta-%s.pdf", sale.ID), nil
}
