package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/estoque-api/internal/application/dto"
	"github.com/tu-usuario/estoque-api/internal/domain"
	"github.com/tu-usuario/estoque-api/internal/domain/entity"
	"github.com/tu-usuario/estoque-api/internal/domain/repository"
)

// ItemUseCase altas, ediciones y bajas de ítems de inventario.
// Las bajas en cascada (ítem + sus movimientos) y el vaciado total corren en transacción.
type ItemUseCase struct {
	itemRepo repository.ItemRepository
	txRunner TxRunner
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(itemRepo repository.ItemRepository, txRunner TxRunner) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, txRunner: txRunner}
}

// Add crea un ítem con ID nuevo y ambos timestamps en ahora. Cantidad >= 0.
func (uc *ItemUseCase) Add(in dto.CreateItemRequest) (*entity.Item, error) {
	if strings.TrimSpace(in.Category) == "" || strings.TrimSpace(in.Material) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.Item{
		ID:        uuid.New().String(),
		Category:  in.Category,
		Material:  in.Material,
		Quantity:  in.Quantity,
		Note:      in.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update aplica los campos presentes sobre el ítem y refresca UpdatedAt.
// Devuelve ErrNotFound si el ID no existe.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Category != nil {
		if strings.TrimSpace(*in.Category) == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Category = *in.Category
	}
	if in.Material != nil {
		if strings.TrimSpace(*in.Material) == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Material = *in.Material
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.Note != nil {
		item.Note = *in.Note
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Remove elimina el ítem y, en la misma transacción, todos los movimientos que lo referencian.
// Ningún movimiento puede quedar apuntando a un ítem inexistente.
func (uc *ItemUseCase) Remove(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
	) error {
		item, err := itemRepo.GetByID(id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if err := movRepo.DeleteByItem(id); err != nil {
			return err
		}
		return itemRepo.Delete(id)
	})
}

// GetByID obtiene un ítem. Devuelve ErrNotFound si no existe.
func (uc *ItemUseCase) GetByID(id string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// List devuelve todos los ítems.
func (uc *ItemUseCase) List() ([]*entity.Item, error) {
	return uc.itemRepo.List()
}

// ClearAll borra todos los movimientos y luego todos los ítems, en una transacción.
// El orden importa por la FK de movements hacia items.
func (uc *ItemUseCase) ClearAll(ctx context.Context) error {
	return uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
	) error {
		if err := movRepo.DeleteAll(); err != nil {
			return err
		}
		return itemRepo.DeleteAll()
	})
}

// ToItemResponse convierte la entidad a DTO.
func ToItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:        i.ID,
		Category:  i.Category,
		Material:  i.Material,
		Quantity:  i.Quantity,
		Note:      i.Note,
		LowStock:  i.LowStock(),
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
