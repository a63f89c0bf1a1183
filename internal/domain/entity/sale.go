package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago admitidos.
const (
	PaymentEfectivo = "efectivo"
	PaymentTarjeta  = "tarjeta"
)

// ValidPaymentMethod indica si el método de pago pertenece al conjunto admitido.
func ValidPaymentMethod(m string) bool {
	return m == PaymentEfectivo || m == PaymentTarjeta
}

// SaleItem es la copia de un producto al momento de la venta, más la cantidad vendida.
// Que la venta guarde la copia (y no una referencia) permite borrar productos del
// catálogo sin afectar el historial.
type SaleItem struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Category  string
	Barcode   string
}

// Subtotal devuelve precio × cantidad de la línea.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale representa una venta completada. Es inmutable: no existe operación de
// actualización ni de borrado sobre ventas.
type Sale struct {
	ID            string
	Items         []SaleItem
	Total         decimal.Decimal // debe igualar la suma de los subtotales
	Date          time.Time       // asignada al crear, nunca se actualiza
	PaymentMethod string          // "efectivo" | "tarjeta"
}
