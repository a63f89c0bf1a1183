package repository

import "github.com/olayos/pos-api/internal/domain/entity"

// UserRepository puerto de persistencia de operadores del terminal.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
