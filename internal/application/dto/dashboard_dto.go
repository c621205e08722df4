package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalQuantity   int                `json:"total_quantity"`  // suma de cantidades de todos los ítems
	TotalMovements  int                `json:"total_movements"` // número de movimientos registrados
	LowStockItems   int                `json:"low_stock_items"` // ítems con cantidad <= umbral
	DistinctItems   int                `json:"distinct_items"`  // número de ítems distintos
	RecentMovements []MovementResponse `json:"recent_movements"`
}
