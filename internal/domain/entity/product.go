package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías del catálogo. El filtro "Todos" es de presentación, no una categoría real.
const (
	CategoryMetales = "Metales"
	CategoryTintas  = "Tintas"
)

// Categories es el conjunto cerrado de categorías admitidas.
var Categories = []string{CategoryMetales, CategoryTintas}

// ValidCategory indica si la categoría pertenece al conjunto admitido.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Product representa un producto del catálogo de la tienda.
// Stock se descuenta en el checkout; MinStock es el umbral de reposición.
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal // precio de venta en CLP
	Stock     int
	Category  string
	MinStock  int
	Barcode   string // opcional
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LowStock indica si el producto está en o bajo su umbral de reposición (inclusive).
func (p Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
