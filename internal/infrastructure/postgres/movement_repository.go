package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/estoque-api/internal/domain/entity"
	"github.com/tu-usuario/estoque-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento de inventario.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, item_id, material, direction, quantity, ts, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ItemID, movement.Material, movement.Direction,
		movement.Quantity, movement.Timestamp, nullable(movement.Note),
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List devuelve movimientos del más reciente al más antiguo.
// itemID vacío = todos los ítems.
func (r *MovementRepo) List(itemID string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, item_id, material, direction, quantity, ts, note
		FROM movements`
	args := []any{limit, offset}
	if itemID != "" {
		query += ` WHERE item_id = $3`
		args = append(args, itemID)
	}
	query += ` ORDER BY ts DESC LIMIT $1 OFFSET $2`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var note *string
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Material, &m.Direction, &m.Quantity, &m.Timestamp, &note); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if note != nil {
			m.Note = *note
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Count devuelve el número total de movimientos.
func (r *MovementRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM movements`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}

// DeleteByItem elimina todos los movimientos que referencian el ítem (cascada de Remove).
func (r *MovementRepo) DeleteByItem(itemID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete movements by item: %w", err)
	}
	return nil
}

// DeleteAll elimina todos los movimientos.
func (r *MovementRepo) DeleteAll() error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movements`)
	if err != nil {
		return fmt.Errorf("delete all movements: %w", err)
	}
	return nil
}
