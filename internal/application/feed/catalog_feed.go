// Package feed implementa el modelo de suscripción de la tienda en tiempo
// real: cada feed conserva el último snapshot COMPLETO de su colección, lo
// recarga ante cada notificación de cambio y lo reparte entero a los
// suscriptores (snapshots, no deltas). Las agregaciones derivan siempre del
// snapshot vigente.
package feed

import (
	"context"
	"fmt"
	"sync"

	"github.com/olayos/pos-api/internal/domain/entity"
	"github.com/olayos/pos-api/internal/domain/repository"
)

// CatalogFeed snapshot vivo del catálogo de productos.
type CatalogFeed struct {
	repo repository.ProductRepository

	mu      sync.RWMutex
	current []entity.Product
	subs    map[int]func([]entity.Product)
	nextID  int
}

// NewCatalogFeed construye el feed sin datos; llamar Refresh para la carga inicial.
func NewCatalogFeed(repo repository.ProductRepository) *CatalogFeed {
	return &CatalogFeed{repo: repo, subs: make(map[int]func([]entity.Product))}
}

// Refresh recarga el snapshot completo desde el repositorio y lo publica a
// todos los suscriptores. Se invoca en el arranque, tras cada escritura local
// y ante cada notificación del listener de la base.
func (f *CatalogFeed) Refresh(ctx context.Context) error {
	list, err := f.repo.List()
	if err != nil {
		return fmt.Errorf("refrescar catálogo: %w", err)
	}
	snapshot := make([]entity.Product, 0, len(list))
	for _, p := range list {
		snapshot = append(snapshot, *p)
	}

	f.mu.Lock()
	f.current = snapshot
	subs := make([]func([]entity.Product), 0, len(f.subs))
	for _, fn := range f.subs {
		subs = append(subs, fn)
	}
	f.mu.Unlock()

	for _, fn := range subs {
		fn(f.Current())
	}
	return nil
}

// Current devuelve una copia del snapshot vigente.
func (f *CatalogFeed) Current() []entity.Product {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]entity.Product, len(f.current))
	copy(out, f.current)
	return out
}

// Subscribe registra un consumidor de snapshots y le entrega de inmediato el
// vigente. Devuelve la función para desuscribirse.
func (f *CatalogFeed) Subscribe(fn func([]entity.Product)) func() {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = fn
	f.mu.Unlock()

	fn(f.Current())

	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

// Find busca un producto por ID en el snapshot vigente.
func (f *CatalogFeed) Find(productID string) (entity.Product, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, p := range f.current {
		if p.ID == productID {
			return p, true
		}
	}
	return entity.Product{}, false
}
