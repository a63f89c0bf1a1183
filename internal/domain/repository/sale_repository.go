package repository

import "github.com/olayos/pos-api/internal/domain/entity"

// SaleRepository puerto de persistencia de ventas. Las ventas son inmutables:
// solo se agregan y se leen, nunca se actualizan ni se borran.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List() ([]*entity.Sale, error)
}
