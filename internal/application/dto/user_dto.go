package dto

import "time"

// LoginRequest entrada para login (username + password).
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT, usuario y sus permisos.
type LoginResponse struct {
	Token       string              `json:"token"`
	User        UserResponse        `json:"user"`
	Permissions PermissionsResponse `json:"permissions"`
}

// MeResponse restauración de sesión: usuario actual y permisos derivados del rol.
type MeResponse struct {
	User        UserResponse        `json:"user"`
	Permissions PermissionsResponse `json:"permissions"`
}

// PermissionsResponse los cuatro predicados de permisos para la capa de presentación.
type PermissionsResponse struct {
	CanAdd         bool `json:"can_add"`
	CanEdit        bool `json:"can_edit"`
	CanDelete      bool `json:"can_delete"`
	CanManageUsers bool `json:"can_manage_users"`
}

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"required,oneof=admin manager viewer"`
}

// UpdateUserRequest entrada parcial para editar un usuario. Password vacío = sin cambio.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin manager viewer"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
