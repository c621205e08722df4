// Package analytics contiene el caso de uso del dashboard: estadísticas
// agregadas del inventario y movimientos recientes.
package analytics

import (
	"context"
	"fmt"

	"github.com/tu-usuario/estoque-api/internal/application/dto"
	"github.com/tu-usuario/estoque-api/internal/application/inventory"
	"github.com/tu-usuario/estoque-api/internal/domain/entity"
	"github.com/tu-usuario/estoque-api/internal/domain/repository"
)

const dashboardRecentMovements = 5 // movimientos en el widget del dashboard

// DashboardUseCase genera el resumen del inventario: cantidad total, número de
// movimientos, ítems en stock bajo (cantidad <= umbral) e ítems distintos.
//
// Lectura pura: no modifica estado y puede reintentarse libremente.
type DashboardUseCase struct {
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{itemRepo: itemRepo, movRepo: movRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres lecturas en paralelo:
//  1. List de ítems            → TotalQuantity, LowStockItems, DistinctItems
//  2. Count de movimientos     → TotalMovements
//  3. List de movimientos (5)  → RecentMovements
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type itemsResult struct {
		items []*entity.Item
		err   error
	}
	type countResult struct {
		n   int
		err error
	}
	type recentResult struct {
		movs []*entity.Movement
		err  error
	}

	itemsCh := make(chan itemsResult, 1)
	countCh := make(chan countResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		items, err := uc.itemRepo.List()
		itemsCh <- itemsResult{items, err}
	}()
	go func() {
		n, err := uc.movRepo.Count()
		countCh <- countResult{n, err}
	}()
	go func() {
		movs, err := uc.movRepo.List("", dashboardRecentMovements, 0)
		recentCh <- recentResult{movs, err}
	}()

	items := <-itemsCh
	count := <-countCh
	recent := <-recentCh

	if items.err != nil {
		return nil, fmt.Errorf("dashboard: listar ítems: %w", items.err)
	}
	if count.err != nil {
		return nil, fmt.Errorf("dashboard: contar movimientos: %w", count.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos recientes: %w", recent.err)
	}

	summary := &dto.DashboardSummaryDTO{
		TotalMovements:  count.n,
		DistinctItems:   len(items.items),
		RecentMovements: make([]dto.MovementResponse, 0, len(recent.movs)),
	}
	for _, it := range items.items {
		summary.TotalQuantity += it.Quantity
		if it.LowStock() {
			summary.LowStockItems++
		}
	}
	for _, m := range recent.movs {
		summary.RecentMovements = append(summary.RecentMovements, *inventory.ToMovementResponse(m))
	}
	return summary, nil
}
