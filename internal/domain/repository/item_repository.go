package repository

import "github.com/tu-usuario/estoque-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
// Los métodos de lectura devuelven (nil, nil) si el ítem no existe.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	// GetForUpdate obtiene el ítem bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción (ver TxRunner).
	GetForUpdate(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	UpdateQuantity(id string, quantity int) error
	List() ([]*entity.Item, error)
	Delete(id string) error
	DeleteAll() error
}
