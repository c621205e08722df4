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

func newTestEnv() (*ItemUseCase, *RegisterMovementUseCase, *fakeItemRepo, *fakeMovementRepo) {
	itemRepo := newFakeItemRepo()
	movRepo := &fakeMovementRepo{}
	tx := &fakeTxRunner{items: itemRepo, movs: movRepo}
	return NewItemUseCase(itemRepo, tx), NewRegisterMovementUseCase(tx, movRepo), itemRepo, movRepo
}

// Escenario completo: entrada, salida rechazada por stock insuficiente, salida total.
func TestRegister_EscenarioEntradaYSalidas(t *testing.T) {
	itemUC, movUC, _, movRepo := newTestEnv()
	ctx := context.Background()

	item, err := itemUC.Add(dto.CreateItemRequest{Category: "Cemento", Material: "Cemento CP-II", Quantity: 5})
	require.NoError(t, err)

	// Entrada de 10 → cantidad 15, un movimiento entry
	mov, err := movUC.Register(ctx, dto.RegisterMovementRequest{ItemID: item.ID, Direction: entity.DirectionEntry, Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, entity.DirectionEntry, mov.Direction)
	assert.Equal(t, item.Material, mov.Material, "el movimiento lleva copia del material")

	got, err := itemUC.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, got.Quantity)

	// Salida de 20 → rechazada con la cantidad disponible, estado intacto
	_, err = movUC.Register(ctx, dto.RegisterMovementRequest{ItemID: item.ID, Direction: entity.DirectionExit, Quantity: 20})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 15, insufficient.Available, "el error debe llevar la cantidad disponible")

	got, err = itemUC.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, got.Quantity, "la cantidad no debe cambiar tras un rechazo")
	n, _ := movRepo.Count()
	assert.Equal(t, 1, n, "no debe registrarse movimiento en un rechazo")

	// Salida de 15 → cantidad 0, dos movimientos en total
	_, err = movUC.Register(ctx, dto.RegisterMovementRequest{ItemID: item.ID, Direction: entity.DirectionExit, Quantity: 15})
	require.NoError(t, err)

	got, err = itemUC.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)
	n, _ = movRepo.Count()
	assert.Equal(t, 2, n)
}

// Invariante: cantidad final = inicial + suma de entradas - suma de salidas.
func TestRegister_InvarianteDeCantidad(t *testing.T) {
	itemUC, movUC, _, _ := newTestEnv()
	ctx := context.Background()

	item, err := itemUC.Add(dto.CreateItemRequest{Category: "Acero", Material: "Varilla 3/8", Quantity: 100})
	require.NoError(t, err)

	ops := []struct {
		direction string
		quantity  int
	}{
		{entity.DirectionEntry, 7},
		{entity.DirectionExit, 30},
		{entity.DirectionEntry, 12},
		{entity.DirectionExit, 1},
		{entity.DirectionEntry, 3},
	}
	expected := 100
	for _, op := range ops {
		_, err := movUC.Register(ctx, dto.RegisterMovementRequest{ItemID: item.ID, Direction: op.direction, Quantity: op.quantity})
		require.NoError(t, err)
		if op.direction == entity.DirectionEntry {
			expected += op.quantity
		} else {
			expected -= op.quantity
		}
	}

	got, err := itemUC.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, expected, got.Quantity)
}

func TestRegister_ItemInexistente(t *testing.T) {
	_, movUC, _, _ := newTestEnv()
	_, err := movUC.Register(context.Background(), dto.RegisterMovementRequest{ItemID: "no-existe", Direction: entity.DirectionEntry, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_EntradaInvalida(t *testing.T) {
	itemUC, movUC, _, _ := newTestEnv()
	ctx := context.Background()
	item, err := itemUC.Add(dto.CreateItemRequest{Category: "Cemento", Material: "Cal", Quantity: 1})
	require.NoError(t, err)

	cases := []dto.RegisterMovementRequest{
		{ItemID: "", Direction: entity.DirectionEntry, Quantity: 1},
		{ItemID: item.ID, Direction: "transfer", Quantity: 1},
		{ItemID: item.ID, Direction: entity.DirectionEntry, Quantity: 0},
		{ItemID: item.ID, Direction: entity.DirectionExit, Quantity: -5},
	}
	for _, in := range cases {
		_, err := movUC.Register(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// Una salida que agota exactamente el stock es válida; la cantidad nunca queda negativa.
func TestRegister_SalidaExacta(t *testing.T) {
	itemUC, movUC, _, _ := newTestEnv()
	ctx := context.Background()
	item, err := itemUC.Add(dto.CreateItemRequest{Category: "Pintura", Material: "Esmalte blanco", Quantity: 3})
	require.NoError(t, err)

	_, err = movUC.Register(ctx, dto.RegisterMovementRequest{ItemID: item.ID, Direction: entity.DirectionExit, Quantity: 3})
	require.NoError(t, err)

	got, err := itemUC.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)

	// Con stock en cero cualquier salida se rechaza con available 0
	_, err = movUC.Register(ctx, dto.RegisterMovementRequest{ItemID: item.ID, Direction: entity.DirectionExit, Quantity: 1})
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 0, insufficient.Available)
}

func TestList_FiltraPorItemYOrdenReciente(t *testing.T) {
	itemUC, movUC, _, _ := newTestEnv()
	ctx := context.Background()

	a, err := itemUC.Add(dto.CreateItemRequest{Category: "Cemento", Material: "Cemento CP-II", Quantity: 50})
	require.NoError(t, err)
	b, err := itemUC.Add(dto.CreateItemRequest{Category: "Acero", Material: "Varilla 3/8", Quantity: 50})
	require.NoError(t, err)

	_, err = movUC.Register(ctx, dto.RegisterMovementRequest{ItemID: a.ID, Direction: entity.DirectionEntry, Quantity: 1})
	require.NoError(t, err)
	_, err = movUC.Register(ctx, dto.RegisterMovementRequest{ItemID: b.ID, Direction: entity.DirectionEntry, Quantity: 2})
	require.NoError(t, err)
	_, err = movUC.Register(ctx, dto.RegisterMovementRequest{ItemID: a.ID, Direction: entity.DirectionExit, Quantity: 3})
	require.NoError(t, err)

	all, err := movUC.List("", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 3, all[0].Quantity, "el más reciente primero")

	onlyA, err := movUC.List(a.ID, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, onlyA, 2)
	for _, m := range onlyA {
		assert.Equal(t, a.ID, m.ItemID)
	}
}
