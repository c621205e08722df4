package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleViewer  = "viewer"
)

// ValidRole verifica que el rol sea uno de los tres valores permitidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleViewer
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string // único, case-sensitive
	Name         string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, manager, viewer
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Predicados de permisos: función pura del rol del usuario actual.
// Un receptor nil representa "sin sesión" y todos los predicados devuelven false.

// CanAdd true si el usuario puede crear ítems (admin o manager).
func (u *User) CanAdd() bool {
	return u != nil && (u.Role == RoleAdmin || u.Role == RoleManager)
}

// CanEdit true si el usuario puede editar ítems (admin o manager).
func (u *User) CanEdit() bool {
	return u != nil && (u.Role == RoleAdmin || u.Role == RoleManager)
}

// CanDelete true si el usuario puede eliminar ítems (admin o manager).
func (u *User) CanDelete() bool {
	return u != nil && (u.Role == RoleAdmin || u.Role == RoleManager)
}

// CanManageUsers true solo para admin.
func (u *User) CanManageUsers() bool {
	return u != nil && u.Role == RoleAdmin
}
