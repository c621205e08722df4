package entity

import "time"

// LowStockThreshold cantidad a partir de la cual un ítem se considera en stock bajo (<= 5).
const LowStockThreshold = 5

// Item representa un material rastreado con su cantidad actual en bodega.
// Quantity nunca es negativa: la regla se aplica en RegisterMovement.
type Item struct {
	ID        string
	Category  string
	Material  string
	Quantity  int
	Note      string // opcional
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LowStock true si la cantidad está en o por debajo del umbral fijo.
func (i *Item) LowStock() bool {
	return i.Quantity <= LowStockThreshold
}
