package inventory

import (
	"context"

	"github.com/tu-usuario/estoque-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que el alta del movimiento y la actualización de la
// cantidad del ítem se confirmen o se reviertan juntas (sin ventana de fallo parcial).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
	) error) error
}
