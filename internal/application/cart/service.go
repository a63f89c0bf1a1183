// Package cart mantiene los carritos en memoria del terminal, uno por
// operador. Los carritos nunca se persisten: viven lo que dura la venta.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"
	"github.com/olayos/pos-api/internal/domain/entity"
	"github.com/olayos/pos-api/internal/domain/pos"
)

// Service registro de carritos por operador. El mutex cubre el mapa y las
// mutaciones de cada carrito; el diseño asume un checkout a la vez por
// operador (la UI deshabilita el reintento mientras hay uno en vuelo).
type Service struct {
	mu    sync.Mutex
	carts map[string]*pos.Cart
}

// NewService construye el registro vacío.
func NewService() *Service {
	return &Service{carts: make(map[string]*pos.Cart)}
}

func (s *Service) cart(ownerID string) *pos.Cart {
	c, ok := s.carts[ownerID]
	if !ok {
		c = pos.New()
		s.carts[ownerID] = c
	}
	return c
}

// Add agrega una unidad del producto al carrito del operador.
func (s *Service) Add(ownerID string, p entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(ownerID).Add(p)
}

// Remove elimina la línea completa del producto.
func (s *Service) Remove(ownerID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(ownerID).Remove(productID)
}

// SetQuantity fija la cantidad de una línea; <= 0 equivale a Remove.
func (s *Service) SetQuantity(ownerID, productID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(ownerID).SetQuantity(productID, qty)
}

// Items devuelve una copia de las líneas del carrito.
func (s *Service) Items(ownerID string) []pos.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(ownerID).Items()
}

// Total devuelve el total del carrito.
func (s *Service) Total(ownerID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(ownerID).Total()
}

// Snapshot devuelve las líneas como ítems de venta inmutables.
func (s *Service) Snapshot(ownerID string) []entity.SaleItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(ownerID).Snapshot()
}

// IsEmpty indica si el carrito del operador no tiene líneas.
func (s *Service) IsEmpty(ownerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(ownerID).IsEmpty()
}

// Clear vacía el carrito del operador.
func (s *Service) Clear(ownerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(ownerID).Clear()
}
