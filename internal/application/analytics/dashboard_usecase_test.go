package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/estoque-api/internal/domain/entity"
)

// Stubs mínimos de los puertos: solo implementan lo que usa el dashboard.

type stubItemRepo struct {
	items []*entity.Item
}

func (r *stubItemRepo) Create(*entity.Item) error                  { return nil }
func (r *stubItemRepo) GetByID(string) (*entity.Item, error)       { return nil, nil }
func (r *stubItemRepo) GetForUpdate(string) (*entity.Item, error)  { return nil, nil }
func (r *stubItemRepo) Update(*entity.Item) error                  { return nil }
func (r *stubItemRepo) UpdateQuantity(string, int) error           { return nil }
func (r *stubItemRepo) List() ([]*entity.Item, error)              { return r.items, nil }
func (r *stubItemRepo) Delete(string) error                        { return nil }
func (r *stubItemRepo) DeleteAll() error                           { return nil }

type stubMovementRepo struct {
	movements []*entity.Movement
}

func (r *stubMovementRepo) Create(*entity.Movement) error { return nil }
func (r *stubMovementRepo) List(_ string, limit, _ int) ([]*entity.Movement, error) {
	if limit > len(r.movements) {
		limit = len(r.movements)
	}
	return r.movements[:limit], nil
}
func (r *stubMovementRepo) Count() (int, error)        { return len(r.movements), nil }
func (r *stubMovementRepo) DeleteByItem(string) error  { return nil }
func (r *stubMovementRepo) DeleteAll() error           { return nil }

// Estadísticas con cantidades [10, 3, 5, 0]: total 18, stock bajo 3 (3, 5 y 0),
// 4 ítems distintos.
func TestGetSummary_Estadisticas(t *testing.T) {
	itemRepo := &stubItemRepo{items: []*entity.Item{
		{ID: "a", Material: "Cemento CP-II", Quantity: 10},
		{ID: "b", Material: "Varilla 3/8", Quantity: 3},
		{ID: "c", Material: "Esmalte blanco", Quantity: 5},
		{ID: "d", Material: "Cal hidratada", Quantity: 0},
	}}
	movRepo := &stubMovementRepo{movements: []*entity.Movement{
		{ID: "m1", ItemID: "a", Direction: entity.DirectionEntry, Quantity: 10},
		{ID: "m2", ItemID: "b", Direction: entity.DirectionExit, Quantity: 2},
	}}

	uc := NewDashboardUseCase(itemRepo, movRepo)
	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 18, summary.TotalQuantity)
	assert.Equal(t, 2, summary.TotalMovements)
	assert.Equal(t, 3, summary.LowStockItems)
	assert.Equal(t, 4, summary.DistinctItems)
	assert.Len(t, summary.RecentMovements, 2)
}

func TestGetSummary_InventarioVacio(t *testing.T) {
	uc := NewDashboardUseCase(&stubItemRepo{}, &stubMovementRepo{})
	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalQuantity)
	assert.Equal(t, 0, summary.TotalMovements)
	assert.Equal(t, 0, summary.LowStockItems)
	assert.Equal(t, 0, summary.DistinctItems)
	assert.Empty(t, summary.RecentMovements)
}
