package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddCartItemRequest agrega una unidad de un producto al carrito.
type AddCartItemRequest struct {
	ProductID string `json:"productId"`
}

// SetCartQuantityRequest fija la cantidad de una línea del carrito.
type SetCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartItemResponse línea del carrito.
type CartItemResponse struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartResponse carrito de la venta en curso.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

// CheckoutRequest finaliza la venta del carrito con el método de pago dado.
type CheckoutRequest struct {
	PaymentMethod string `json:"paymentMethod"` // "efectivo" | "tarjeta"; vacío = efectivo
}

// SaleItemResponse línea de una venta registrada.
type SaleItemResponse struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse representación HTTP de una venta.
type SaleResponse struct {
	ID            string             `json:"id"`
	Items         []SaleItemResponse `json:"items"`
	Total         decimal.Decimal    `json:"total"`
	Date          time.Time          `json:"date"`
	PaymentMethod string             `json:"paymentMethod"`
}

// SaleListResponse historial de ventas, más recientes primero.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}
