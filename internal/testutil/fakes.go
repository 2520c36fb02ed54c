// Package testutil implementa repositorios en memoria para probar los casos
// de uso y los handlers sin PostgreSQL. Comparten un Store común para que las
// escrituras de un repositorio sean visibles desde los demás, igual que en la
// base de datos real.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/control-inventario/internal/application/dto"
	"github.com/jhoicas/control-inventario/internal/domain"
	"github.com/jhoicas/control-inventario/internal/domain/entity"
	"github.com/jhoicas/control-inventario/internal/domain/repository"
)

// Store estado compartido de los repositorios en memoria.
type Store struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	users     map[string]*entity.User
	movements []*entity.StockMovement
}

// NewStore construye un Store vacío.
func NewStore() *Store {
	return &Store{
		products: make(map[string]*entity.Product),
		users:    make(map[string]*entity.User),
	}
}

// Products devuelve el repositorio de productos sobre este Store.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Users devuelve el repositorio de usuarios sobre este Store.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Movements devuelve el repositorio de movimientos sobre este Store.
func (s *Store) Movements() *MovementRepo { return &MovementRepo{s: s} }

// SeedProduct inserta un producto directamente (sin pasar por el caso de uso).
func (s *Store) SeedProduct(p *entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.products[p.ID] = &cp
}

// SeedUser inserta un usuario directamente.
func (s *Store) SeedUser(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.users[u.ID] = &cp
}

// SeedMovement inserta un movimiento directamente.
func (s *Store) SeedMovement(m *entity.StockMovement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *m
	s.movements = append(s.movements, &cp)
}

// ProductQuantity cantidad actual de un producto (-1 si no existe).
func (s *Store) ProductQuantity(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return -1
	}
	return p.Quantity
}

// HasProduct indica si la fila del producto sigue existiendo.
func (s *Store) HasProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.products[id]
	return ok
}

// HasUser indica si la fila del usuario sigue existiendo.
func (s *Store) HasUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[id]
	return ok
}

// ProductActive flag activo de un producto (false si no existe).
func (s *Store) ProductActive(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	return ok && p.Active
}

// UserActive flag activo de un usuario (false si no existe).
func (s *Store) UserActive(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return ok && u.Active
}

// MovementCount total de movimientos persistidos.
func (s *Store) MovementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movements)
}

// ── ProductRepo ───────────────────────────────────────────────────────────────

// ProductRepo implementación en memoria de repository.ProductRepository.
type ProductRepo struct{ s *Store }

var _ repository.ProductRepository = (*ProductRepo)(nil)

func (r *ProductRepo) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// GetForUpdate en memoria equivale a GetByID; la serialización de las
// transacciones la garantiza TxRunner.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *ProductRepo) Update(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *ProductRepo) UpdateQuantity(id string, quantity int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.products[id]; ok {
		p.Quantity = quantity
	}
	return nil
}

func (r *ProductRepo) List(f repository.ProductFilter) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Active != nil && p.Active != *f.Active {
			continue
		}
		if f.Search != "" && !containsFold(p.Name, f.Search) && !containsFold(p.Description, f.Search) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, f.Limit, f.Offset), nil
}

func (r *ProductRepo) Deactivate(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.products[id]; ok {
		p.Active = false
	}
	return nil
}

func (r *ProductRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, id)
	return nil
}

// ── UserRepo ──────────────────────────────────────────────────────────────────

// UserRepo implementación en memoria de repository.UserRepository. Replica la
// constraint UNIQUE de email de la base de datos real.
type UserRepo struct{ s *Store }

var _ repository.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.users {
		if other.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, other := range r.s.users {
		if id != u.ID && other.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *UserRepo) List(f repository.UserFilter) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.Active != nil && u.Active != *f.Active {
			continue
		}
		if f.Search != "" && !containsFold(u.Name, f.Search) && !containsFold(u.Email, f.Search) {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, f.Limit, f.Offset), nil
}

func (r *UserRepo) Deactivate(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		u.Active = false
	}
	return nil
}

func (r *UserRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id)
	return nil
}

// ── MovementRepo ──────────────────────────────────────────────────────────────

// MovementRepo implementación en memoria de repository.StockMovementRepository.
type MovementRepo struct{ s *Store }

var _ repository.StockMovementRepository = (*MovementRepo)(nil)

func (r *MovementRepo) Create(m *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *m
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *MovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MovementRepo) List(f repository.MovementFilter) ([]*entity.StockMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.StockMovement, 0, len(r.s.movements))
	for _, m := range r.s.movements {
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		if f.UserID != "" && m.UserID != f.UserID {
			continue
		}
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if f.From != nil && m.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && m.Date.After(*f.To) {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	sortByDateDesc(out)
	return paginate(out, f.Limit, f.Offset), nil
}

func (r *MovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	return r.List(repository.MovementFilter{ProductID: productID})
}

func (r *MovementRepo) ListByUser(userID string) ([]*entity.StockMovement, error) {
	return r.List(repository.MovementFilter{UserID: userID})
}

func (r *MovementRepo) CountByProduct(productID string) (int, error) {
	list, err := r.ListByProduct(productID)
	return len(list), err
}

func (r *MovementRepo) CountByUser(userID string) (int, error) {
	list, err := r.ListByUser(userID)
	return len(list), err
}

func (r *MovementRepo) RecentByProducts(productIDs []string, perProduct int) (map[string][]*entity.StockMovement, error) {
	out := make(map[string][]*entity.StockMovement, len(productIDs))
	for _, id := range productIDs {
		list, err := r.ListByProduct(id)
		if err != nil {
			return nil, err
		}
		if len(list) > perProduct {
			list = list[:perProduct]
		}
		if len(list) > 0 {
			out[id] = list
		}
	}
	return out, nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// TxRunner serializa las "transacciones" con un mutex propio, de modo que dos
// Run concurrentes nunca se solapan (análogo al bloqueo de fila de PostgreSQL).
// No simula rollback: los casos de uso validan antes de escribir.
type TxRunner struct {
	s    *Store
	txMu sync.Mutex
}

// NewTxRunner construye el runner sobre el Store dado.
func NewTxRunner(s *Store) *TxRunner { return &TxRunner{s: s} }

func (t *TxRunner) Run(
	_ context.Context,
	fn func(movRepo repository.StockMovementRepository, productRepo repository.ProductRepository) error,
) error {
	t.txMu.Lock()
	defer t.txMu.Unlock()
	return fn(t.s.Movements(), t.s.Products())
}

// ── PDFStub ───────────────────────────────────────────────────────────────────

// PDFStub implementación trivial de inventory.ReportPDFGenerator que registra
// el reporte recibido y devuelve bytes fijos.
type PDFStub struct {
	Bytes      []byte
	Err        error
	LastReport *dto.StockReport
}

func (g *PDFStub) GenerateStockReportPDF(_ context.Context, report *dto.StockReport) ([]byte, error) {
	g.LastReport = report
	if g.Err != nil {
		return nil, g.Err
	}
	return g.Bytes, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func sortByDateDesc(list []*entity.StockMovement) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
}

func paginate[T any](list []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(list) {
			return nil
		}
		list = list[offset:]
	}
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}
