package feed

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/olayos/pos-api/internal/domain/entity"
	"github.com/olayos/pos-api/internal/domain/repository"
)

// SalesFeed snapshot vivo del historial de ventas, más recientes primero.
// El orden se impone del lado del cliente (sort por fecha); no se asume
// ningún orden del almacén.
type SalesFeed struct {
	repo repository.SaleRepository

	mu      sync.RWMutex
	current []entity.Sale
	subs    map[int]func([]entity.Sale)
	nextID  int
}

// NewSalesFeed construye el feed sin datos; llamar Refresh para la carga inicial.
func NewSalesFeed(repo repository.SaleRepository) *SalesFeed {
	return &SalesFeed{repo: repo, subs: make(map[int]func([]entity.Sale))}
}

// Refresh recarga el snapshot completo, lo ordena por fecha descendente y lo
// publica a los suscriptores.
func (f *SalesFeed) Refresh(ctx context.Context) error {
	list, err := f.repo.List()
	if err != nil {
		return fmt.Errorf("refrescar ventas: %w", err)
	}
	snapshot := make([]entity.Sale, 0, len(list))
	for _, s := range list {
		snapshot = append(snapshot, *s)
	}
	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].Date.After(snapshot[j].Date)
	})

	f.mu.Lock()
	f.current = snapshot
	subs := make([]func([]entity.Sale), 0, len(f.subs))
	for _, fn := range f.subs {
		subs = append(subs, fn)
	}
	f.mu.Unlock()

	for _, fn := range subs {
		fn(f.Current())
	}
	return nil
}

// Current devuelve una copia del snapshot vigente (más recientes primero).
func (f *SalesFeed) Current() []entity.Sale {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]entity.Sale, len(f.current))
	copy(out, f.current)
	return out
}

// Subscribe registra un consumidor de snapshots y le entrega de inmediato el
// vigente. Devuelve la función para desuscribirse.
func (f *SalesFeed) Subscribe(fn func([]entity.Sale)) func() {
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
