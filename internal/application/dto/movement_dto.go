package dto

import "time"

// RegisterMovementRequest body para POST /api/movements.
type RegisterMovementRequest struct {
	ItemID    string `json:"item_id" validate:"required"`
	Direction string `json:"direction" validate:"required,oneof=entry exit"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Note      string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// MovementResponse salida de un movimiento de inventario.
type MovementResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	Material  string    `json:"material"`
	Direction string    `json:"direction"`
	Quantity  int       `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}
