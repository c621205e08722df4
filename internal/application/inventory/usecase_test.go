package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/estoque-api/internal/application/dto"
	"github.com/tu-usuario/estoque-api/internal/domain"
	"github.com/tu-usuario/estoque-api/internal/domain/entity"
)

func ptr[T any](v T) *T { return &v }

func TestAdd_CreaConTimestampsYCantidadCero(t *testing.T) {
	itemUC, _, _, _ := newTestEnv()

	item, err := itemUC.Add(dto.CreateItemRequest{Category: "Cemento", Material: "Cal hidratada", Quantity: 0, Note: "pallet incompleto"})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.False(t, item.CreatedAt.IsZero())
	assert.Equal(t, item.CreatedAt, item.UpdatedAt)
	assert.Equal(t, 0, item.Quantity, "cantidad cero es válida en el alta")
}

func TestAdd_Invalido(t *testing.T) {
	itemUC, _, _, _ := newTestEnv()

	_, err := itemUC.Add(dto.CreateItemRequest{Category: "", Material: "Cal", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = itemUC.Add(dto.CreateItemRequest{Category: "Cemento", Material: "  ", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = itemUC.Add(dto.CreateItemRequest{Category: "Cemento", Material: "Cal", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_AplicaSoloCamposPresentes(t *testing.T) {
	itemUC, _, _, _ := newTestEnv()

	item, err := itemUC.Add(dto.CreateItemRequest{Category: "Pintura", Material: "Esmalte blanco", Quantity: 4, Note: "original"})
	require.NoError(t, err)

	updated, err := itemUC.Update(item.ID, dto.UpdateItemRequest{Quantity: ptr(9)})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Quantity)
	assert.Equal(t, "Pintura", updated.Category, "los campos ausentes no cambian")
	assert.Equal(t, "original", updated.Note)
	assert.True(t, !updated.UpdatedAt.Before(item.UpdatedAt), "updated_at se refresca")

	_, err = itemUC.Update("no-existe", dto.UpdateItemRequest{Quantity: ptr(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = itemUC.Update(item.ID, dto.UpdateItemRequest{Quantity: ptr(-3)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Eliminar un ítem borra exactamente sus movimientos y ningún otro.
func TestRemove_CascadaDeMovimientos(t *testing.T) {
	itemUC, movUC, itemRepo, movRepo := newTestEnv()
	ctx := context.Background()

	a, err := itemUC.Add(dto.CreateItemRequest{Category: "Cemento", Material: "Cemento CP-II", Quantity: 10})
	require.NoError(t, err)
	b, err := itemUC.Add(dto.CreateItemRequest{Category: "Acero", Material: "Varilla 3/8", Quantity: 10})
	require.NoError(t, err)

	_, err = movUC.Register(ctx, dto.RegisterMovementRequest{ItemID: a.ID, Direction: entity.DirectionEntry, Quantity: 1})
	require.NoError(t, err)
	_, err = movUC.Register(ctx, dto.RegisterMovementRequest{ItemID: a.ID, Direction: entity.DirectionExit, Quantity: 2})
	require.NoError(t, err)
	_, err = movUC.Register(ctx, dto.RegisterMovementRequest{ItemID: b.ID, Direction: entity.DirectionEntry, Quantity: 3})
	require.NoError(t, err)

	require.NoError(t, itemUC.Remove(ctx, a.ID))

	gone, err := itemRepo.GetByID(a.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	n, _ := movRepo.Count()
	assert.Equal(t, 1, n, "solo sobrevive el movimiento del otro ítem")
	rest, err := movUC.List("", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, b.ID, rest[0].ItemID)

	assert.ErrorIs(t, itemUC.Remove(ctx, a.ID), domain.ErrNotFound)
}

func TestClearAll_VaciaTodo(t *testing.T) {
	itemUC, movUC, itemRepo, movRepo := newTestEnv()
	ctx := context.Background()

	item, err := itemUC.Add(dto.CreateItemRequest{Category: "Cemento", Material: "Cal", Quantity: 10})
	require.NoError(t, err)
	_, err = movUC.Register(ctx, dto.RegisterMovementRequest{ItemID: item.ID, Direction: entity.DirectionExit, Quantity: 4})
	require.NoError(t, err)

	require.NoError(t, itemUC.ClearAll(ctx))

	items, err := itemRepo.List()
	require.NoError(t, err)
	assert.Empty(t, items)
	n, _ := movRepo.Count()
	assert.Equal(t, 0, n)
}
