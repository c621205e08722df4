package entity

import "time"

// Direcciones de movimiento de inventario.
const (
	DirectionEntry = "entry" // entrada
	DirectionExit  = "exit"  // salida
)

// ValidDirection verifica que la dirección sea entry o exit.
func ValidDirection(d string) bool {
	return d == DirectionEntry || d == DirectionExit
}

// Movement representa un movimiento de inventario contra un ítem.
// Es inmutable después de creado; solo desaparece por cascada al eliminar su Item.
// Material es una copia desnormalizada del material del ítem al momento del movimiento.
type Movement struct {
	ID        string
	ItemID    string
	Material  string
	Direction string // entry, exit
	Quantity  int    // siempre positivo; la dirección indica el signo
	Timestamp time.Time
	Note      string // opcional
}
