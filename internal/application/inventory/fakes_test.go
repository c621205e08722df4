package inventory

import (
	"context"

	"github.com/tu-usuario/estoque-api/internal/domain/entity"
	"github.com/tu-usuario/estoque-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia, para probar los casos de uso
// sin PostgreSQL. No simulan bloqueo de fila: los tests son secuenciales.

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[string]*entity.Item{}}
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) UpdateQuantity(id string, quantity int) error {
	if it, ok := r.items[id]; ok {
		it.Quantity = quantity
	}
	return nil
}

func (r *fakeItemRepo) List() ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.items))
	for _, it := range r.items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) DeleteAll() error {
	r.items = map[string]*entity.Item{}
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

// List devuelve en orden inverso de inserción (el más reciente primero).
func (r *fakeMovementRepo) List(itemID string, limit, offset int) ([]*entity.Movement, error) {
	var filtered []*entity.Movement
	for i := len(r.movements) - 1; i >= 0; i-- {
		m := r.movements[i]
		if itemID != "" && m.ItemID != itemID {
			continue
		}
		filtered = append(filtered, m)
	}
	if offset >= len(filtered) {
		return nil, nil
	}
	filtered = filtered[offset:]
	if limit < len(filtered) {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

func (r *fakeMovementRepo) Count() (int, error) {
	return len(r.movements), nil
}

func (r *fakeMovementRepo) DeleteByItem(itemID string) error {
	kept := r.movements[:0]
	for _, m := range r.movements {
		if m.ItemID != itemID {
			kept = append(kept, m)
		}
	}
	r.movements = kept
	return nil
}

func (r *fakeMovementRepo) DeleteAll() error {
	r.movements = nil
	return nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes, sin transacción real.
type fakeTxRunner struct {
	items *fakeItemRepo
	movs  *fakeMovementRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
) error) error {
	return fn(r.items, r.movs)
}
