package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/estoque-api/internal/application/dto"
	"github.com/tu-usuario/estoque-api/internal/domain"
	"github.com/tu-usuario/estoque-api/internal/domain/entity"
	"github.com/tu-usuario/estoque-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de inventario de forma transaccional
// (entry/exit) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, movRepo repository.MovementRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, movRepo: movRepo}
}

// Register inicia una transacción, bloquea la fila del ítem (SELECT FOR UPDATE),
// valida la salida contra la cantidad disponible, inserta el movimiento y
// actualiza la cantidad del ítem. Commit si ambas escrituras van bien, Rollback si no.
//
// El bloqueo de fila serializa los movimientos por ítem: dos salidas concurrentes
// no pueden pasar ambas la validación contra una cantidad vieja.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, in dto.RegisterMovementRequest) (*entity.Movement, error) {
	if in.ItemID == "" || !entity.ValidDirection(in.Direction) || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.Movement
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
	) error {
		item, err := itemRepo.GetForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if in.Direction == entity.DirectionExit && in.Quantity > item.Quantity {
			return &domain.InsufficientStockError{Available: item.Quantity}
		}

		newQuantity := item.Quantity + in.Quantity
		if in.Direction == entity.DirectionExit {
			newQuantity = item.Quantity - in.Quantity
		}

		mov := &entity.Movement{
			ID:        uuid.New().String(),
			ItemID:    item.ID,
			Material:  item.Material, // copia desnormalizada al momento del movimiento
			Direction: in.Direction,
			Quantity:  in.Quantity,
			Timestamp: time.Now(),
			Note:      in.Note,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := itemRepo.UpdateQuantity(item.ID, newQuantity); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// List devuelve movimientos del más reciente al más antiguo, con filtro opcional por ítem.
func (uc *RegisterMovementUseCase) List(itemID string, page dto.PageRequest) ([]*entity.Movement, error) {
	page.DefaultPage()
	return uc.movRepo.List(itemID, page.Limit, page.Offset)
}

// ToMovementResponse convierte la entidad a DTO.
func ToMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Material:  m.Material,
		Direction: m.Direction,
		Quantity:  m.Quantity,
		Timestamp: m.Timestamp,
		Note:      m.Note,
	}
}
