package dto

import "time"

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Category string `json:"category" validate:"required,min=1,max=200"`
	Material string `json:"material" validate:"required,min=1,max=200"`
	Quantity int    `json:"quantity" validate:"min=0"`
	Note     string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// UpdateItemRequest body parcial para PUT /api/items/:id. Solo los campos presentes se aplican.
type UpdateItemRequest struct {
	Category *string `json:"category,omitempty" validate:"omitempty,min=1,max=200"`
	Material *string `json:"material,omitempty" validate:"omitempty,min=1,max=200"`
	Quantity *int    `json:"quantity,omitempty" validate:"omitempty,min=0"`
	Note     *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// ItemResponse salida de un ítem de inventario.
type ItemResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Material  string    `json:"material"`
	Quantity  int       `json:"quantity"`
	Note      string    `json:"note,omitempty"`
	LowStock  bool      `json:"low_stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
