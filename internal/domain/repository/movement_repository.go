package repository

import "github.com/tu-usuario/estoque-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para Movement (DIP).
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// List devuelve movimientos ordenados del más reciente al más antiguo.
	// itemID vacío = todos los ítems.
	List(itemID string, limit, offset int) ([]*entity.Movement, error)
	Count() (int, error)
	DeleteByItem(itemID string) error
	DeleteAll() error
}
