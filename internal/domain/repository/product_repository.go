package repository

import "github.com/olayos/pos-api/internal/domain/entity"

// ProductRepository puerto de persistencia del catálogo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	// DecrementStock descuenta qty del stock solo si alcanza
	// (stock >= qty); si no alcanza retorna domain.ErrStockInsuficiente.
	DecrementStock(id string, qty int) error
}
