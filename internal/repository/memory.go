package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/model"
)

// MemoryStore is an in-memory stand-in for the PostgreSQL store, used by
// service and handler tests. Its sub-repositories satisfy the same interfaces
// as the pgx-backed ones, including the membership-join semantics of order
// reconstruction.
type MemoryStore struct {
	mu        sync.Mutex
	users     map[int64]model.User
	products  map[int64]model.Product
	orders    []model.Order
	nextUser  int64
	nextOrder int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[int64]model.User),
		products: make(map[int64]model.Product),
	}
}

// SeedUser inserts a user with a fixed id, bypassing id assignment.
func (s *MemoryStore) SeedUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
	if u.ID > s.nextUser {
		s.nextUser = u.ID
	}
}

func (s *MemoryStore) Users() *MemoryUserRepository { return &MemoryUserRepository{s: s} }

func (s *MemoryStore) Products() *MemoryProductRepository { return &MemoryProductRepository{s: s} }

func (s *MemoryStore) Orders() *MemoryOrderRepository { return &MemoryOrderRepository{s: s} }

type MemoryUserRepository struct{ s *MemoryStore }

func (r *MemoryUserRepository) Create(ctx context.Context, name, email, passwordDigest string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return 0, fmt.Errorf("creating user: %w", apperr.ErrConflict)
		}
	}

	r.s.nextUser++
	id := r.s.nextUser
	r.s.users[id] = model.User{ID: id, Name: name, Email: email, Password: passwordDigest}
	return id, nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user by email: %w", apperr.ErrNotFound)
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, apperr.ErrNotFound)
	}
	return &u, nil
}

type MemoryProductRepository struct{ s *MemoryStore }

func (r *MemoryProductRepository) List(ctx context.Context, namePrefix string) ([]model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var products []model.Product
	for _, p := range r.s.products {
		if strings.HasPrefix(p.Name, namePrefix) {
			products = append(products, p)
		}
	}
	slices.SortFunc(products, func(a, b model.Product) int { return cmp.Compare(a.ID, b.ID) })
	return products, nil
}

func (r *MemoryProductRepository) Get(ctx context.Context, id int64) (*model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, apperr.ErrNotFound)
	}
	return &p, nil
}

func (r *MemoryProductRepository) Create(ctx context.Context, p *model.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[p.ID]; ok {
		return fmt.Errorf("creating product: %w", apperr.ErrConflict)
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *MemoryProductRepository) Update(ctx context.Context, p *model.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[p.ID]; !ok {
		return fmt.Errorf("product %d: %w", p.ID, apperr.ErrNotFound)
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *MemoryProductRepository) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[id]; !ok {
		return fmt.Errorf("product %d: %w", id, apperr.ErrNotFound)
	}
	delete(r.s.products, id)
	return nil
}

func (r *MemoryProductRepository) Featured(ctx context.Context) ([]model.Product, error) {
	products, err := r.List(ctx, "")
	if err != nil {
		return nil, err
	}
	if len(products) > 6 {
		products = products[:6]
	}
	return products, nil
}

type MemoryOrderRepository struct{ s *MemoryStore }

func (r *MemoryOrderRepository) Create(ctx context.Context, order *model.Order) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextOrder++
	stored := *order
	stored.ID = r.s.nextOrder
	r.s.orders = append(r.s.orders, stored)
	return stored.ID, nil
}

// ListRowsByUser mirrors the SQL membership join: orders ascending by id, each
// expanded into one row per referenced product that still exists, products
// ascending by id. Dangling references yield no row.
func (r *MemoryOrderRepository) ListRowsByUser(ctx context.Context, userID int64) ([]model.OrderProductRow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, hasUser := r.s.users[userID]

	var rows []model.OrderProductRow
	for _, o := range r.s.orders {
		if o.UserID != userID || !hasUser {
			continue
		}
		ids, err := model.SplitProductIDs(o.ProductIDs)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w: %v", apperr.ErrPersistence, err)
		}
		slices.Sort(ids)
		for _, pid := range ids {
			p, ok := r.s.products[pid]
			if !ok {
				continue
			}
			rows = append(rows, model.OrderProductRow{
				OrderID:    o.ID,
				Reference:  o.Reference,
				AmountPaid: o.AmountPaid,
				Quantity:   o.Quantity,
				UserName:   user.Name,
				UserEmail:  user.Email,
				Product:    p,
			})
		}
	}
	return rows, nil
}
