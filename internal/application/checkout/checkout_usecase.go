// Package checkout orquesta la finalización de la venta: carrito → descuento
// de inventario → registro de la venta → actualización de los feeds.
package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/olayos/pos-api/internal/application/cart"
	"github.com/olayos/pos-api/internal/application/feed"
	"github.com/olayos/pos-api/internal/domain"
	"github.com/olayos/pos-api/internal/domain/entity"
	"github.com/olayos/pos-api/internal/domain/repository"
	"github.com/olayos/pos-api/pkg/logger"
)

// CheckoutUseCase finaliza la venta del carrito en una sola transacción.
//
// El descuento condicional y el alta de la venta corren dentro de una misma
// transacción: si algún producto quedó sin stock entre el último chequeo del
// carrito y el descuento, la venta completa se rechaza con
// ErrStockInsuficiente y el inventario queda intacto.
type CheckoutUseCase struct {
	txRunner    TxRunner
	carts       *cart.Service
	catalogFeed *feed.CatalogFeed
	salesFeed   *feed.SalesFeed
	log         *logger.Logger
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(
	txRunner TxRunner,
	carts *cart.Service,
	catalogFeed *feed.CatalogFeed,
	salesFeed *feed.SalesFeed,
	log *logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		txRunner:    txRunner,
		carts:       carts,
		catalogFeed: catalogFeed,
		salesFeed:   salesFeed,
		log:         log,
	}
}

// Checkout registra la venta del carrito del operador y devuelve la venta
// creada. El carrito NO se vacía aquí: queda disponible para la boleta y se
// vacía recién con la acción terminal del llamador (imprimir-y-cerrar o
// cerrar-sin-imprimir, vía Complete).
func (uc *CheckoutUseCase) Checkout(ctx context.Context, ownerID, paymentMethod string) (*entity.Sale, error) {
	if paymentMethod == "" {
		paymentMethod = entity.PaymentEfectivo
	}
	if !entity.ValidPaymentMethod(paymentMethod) {
		return nil, domain.ErrInvalidInput
	}

	// Una sola captura del carrito: líneas y total salen del mismo snapshot,
	// así el total de la venta siempre iguala la suma de sus subtotales aunque
	// el carrito mute mientras el checkout corre.
	items := uc.carts.Snapshot(ownerID)
	if len(items) == 0 {
		return nil, domain.ErrCarritoVacio
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		Items:         items,
		Total:         total,
		Date:          time.Now(),
		PaymentMethod: paymentMethod,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Descuento condicional por línea: stock = stock - qty solo si alcanza.
		// Cualquier falla revierte la transacción completa.
		for _, it := range items {
			if err := productRepo.DecrementStock(it.ProductID, it.Quantity); err != nil {
				return fmt.Errorf("descontar stock de %q: %w", it.Name, err)
			}
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	// Refresco inmediato de los snapshots; el listener de la base también
	// los refresca al llegar la notificación, así que los errores aquí solo
	// se registran.
	if err := uc.catalogFeed.Refresh(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("refrescar catálogo tras la venta")
	}
	if err := uc.salesFeed.Refresh(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("refrescar ventas tras la venta")
	}

	return sale, nil
}

// Complete es la acción terminal del ciclo de venta: vacía el carrito del
// operador, se haya impreso la boleta o no.
func (uc *CheckoutUseCase) Complete(ownerID string) {
	uc.carts.Clear(ownerID)
}
