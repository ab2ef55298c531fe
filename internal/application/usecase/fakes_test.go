package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/tu-usuario/stockcontrol-api/internal/domain"
	"github.com/tu-usuario/stockcontrol-api/internal/domain/entity"
	"github.com/tu-usuario/stockcontrol-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso de productos y alertas.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(id string, quantity int, status string, updatedAt time.Time) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	p.Status = status
	p.UpdatedAt = updatedAt
	return nil
}

func (r *fakeProductRepo) List(f repository.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if f.ActiveOnly && !p.Active {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List(f repository.MovementFilter) ([]*entity.StockMovement, error) {
	out := make([]*entity.StockMovement, 0, len(r.movements))
	for _, m := range r.movements {
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeMovementRepo) CountByProduct(productID string) (int64, error) {
	var n int64
	for _, m := range r.movements {
		if m.ProductID == productID {
			n++
		}
	}
	return n, nil
}

type fakeAlertRepo struct {
	alerts []*entity.Alert
}

func (r *fakeAlertRepo) Create(a *entity.Alert) error {
	cp := *a
	r.alerts = append(r.alerts, &cp)
	return nil
}

func (r *fakeAlertRepo) GetByID(id string) (*entity.Alert, error) {
	for _, a := range r.alerts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAlertRepo) List(unreadOnly bool, limit, offset int) ([]*entity.Alert, error) {
	out := make([]*entity.Alert, 0, len(r.alerts))
	for _, a := range r.alerts {
		if unreadOnly && a.Read {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeAlertRepo) MarkRead(id string) error {
	for _, a := range r.alerts {
		if a.ID == id {
			a.Read = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeAlertRepo) DeleteByProduct(productID string) error {
	kept := r.alerts[:0]
	for _, a := range r.alerts {
		if a.ProductID != productID {
			kept = append(kept, a)
		}
	}
	r.alerts = kept
	return nil
}

// fakeTxRunner pasa los fakes directamente a fn; suficiente para probar la
// lógica de protect/cascada sin una BD real. beforeRun, si está definido,
// corre justo antes de fn: emula una escritura concurrente que hace commit
// mientras esta transacción espera el bloqueo de fila.
type fakeTxRunner struct {
	productRepo  *fakeProductRepo
	movementRepo *fakeMovementRepo
	alertRepo    *fakeAlertRepo
	beforeRun    func()
}

func (tr *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	alertRepo repository.AlertRepository,
) error) error {
	if tr.beforeRun != nil {
		tr.beforeRun()
	}
	return fn(tr.movementRepo, tr.productRepo, tr.alertRepo)
}
