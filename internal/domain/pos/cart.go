// Package pos contiene la lógica pura del punto de venta: el carrito de la
// venta en curso, las agregaciones de reportes y el arqueo de caja.
package pos

import (
	"github.com/shopspring/decimal"
	"github.com/olayos/pos-api/internal/domain"
	"github.com/olayos/pos-api/internal/domain/entity"
)

// CartItem es una copia del producto más la cantidad elegida.
// Invariante: Quantity >= 1; nunca existe una línea con cantidad 0.
type CartItem struct {
	Product  entity.Product
	Quantity int
}

// Subtotal devuelve precio × cantidad de la línea.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart es la colección en memoria de líneas de la venta en curso. Mantiene el
// orden de primera inserción y a lo más una línea por producto: agregar un
// producto repetido incrementa la cantidad en vez de duplicar la línea.
// Nunca se persiste; se vacía al finalizar la venta o al vaciarlo manualmente.
type Cart struct {
	items []CartItem
}

// New crea un carrito vacío.
func New() *Cart {
	return &Cart{}
}

// Add agrega una unidad del producto. Rechaza con ErrSinStock si el producto
// no tiene stock, y con ErrStockInsuficiente si la cantidad ya en el carrito
// alcanzaría o superaría el stock disponible. La cantidad de una línea nunca
// excede el stock del producto al momento del último Add exitoso; el stock se
// vuelve a verificar recién en el checkout.
func (c *Cart) Add(p entity.Product) error {
	if p.Stock <= 0 {
		return domain.ErrSinStock
	}
	for idx := range c.items {
		if c.items[idx].Product.ID == p.ID {
			if c.items[idx].Quantity >= p.Stock {
				return domain.ErrStockInsuficiente
			}
			c.items[idx].Quantity++
			c.items[idx].Product = p // refrescar la copia con el stock vigente
			return nil
		}
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: 1})
	return nil
}

// Remove elimina la línea completa del producto, sin importar la cantidad.
func (c *Cart) Remove(productID string) {
	for idx := range c.items {
		if c.items[idx].Product.ID == productID {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return
		}
	}
}

// SetQuantity reemplaza la cantidad de la línea. Una cantidad <= 0 equivale a
// Remove. No se revalida contra el stock actual: eso ocurre en el checkout.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	for idx := range c.items {
		if c.items[idx].Product.ID == productID {
			c.items[idx].Quantity = qty
			return
		}
	}
}

// Total devuelve la suma de precio × cantidad de todas las líneas.
// Se recalcula en cada llamada; no hay caché.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Items devuelve una copia de las líneas en orden de primera inserción.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// IsEmpty indica si el carrito no tiene líneas.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Len devuelve la cantidad de líneas (no de unidades).
func (c *Cart) Len() int {
	return len(c.items)
}

// Clear vacía el carrito.
func (c *Cart) Clear() {
	c.items = nil
}

// Snapshot convierte las líneas en ítems de venta inmutables.
func (c *Cart) Snapshot() []entity.SaleItem {
	out := make([]entity.SaleItem, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, entity.SaleItem{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			Price:     it.Product.Price,
			Quantity:  it.Quantity,
			Category:  it.Product.Category,
			Barcode:   it.Product.Barcode,
		})
	}
	return out
}
