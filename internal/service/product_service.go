package service

import (
	"context"
	"fmt"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/model"
)

type ProductRepository interface {
	List(ctx context.Context, namePrefix string) ([]model.Product, error)
	Get(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id int64) error
	Featured(ctx context.Context) ([]model.Product, error)
}

// ProductService is a thin pass-through over the catalog; the store enforces
// id uniqueness.
type ProductService struct {
	products ProductRepository
}

func NewProductService(products ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) List(ctx context.Context, namePrefix string) ([]model.Product, error) {
	return s.products.List(ctx, namePrefix)
}

func (s *ProductService) Get(ctx context.Context, id int64) (*model.Product, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid product id", apperr.ErrValidation)
	}
	return s.products.Get(ctx, id)
}

// Create inserts a catalog item. The id is supplied by the caller, not
// generated.
func (s *ProductService) Create(ctx context.Context, p *model.Product) error {
	if p.ID <= 0 || p.Name == "" {
		return fmt.Errorf("%w: product id and name are required", apperr.ErrValidation)
	}
	return s.products.Create(ctx, p)
}

func (s *ProductService) Update(ctx context.Context, p *model.Product) error {
	if p.ID <= 0 || p.Name == "" {
		return fmt.Errorf("%w: product id and name are required", apperr.ErrValidation)
	}
	return s.products.Update(ctx, p)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid product id", apperr.ErrValidation)
	}
	return s.products.Delete(ctx, id)
}

func (s *ProductService) Featured(ctx context.Context) ([]model.Product, error) {
	return s.products.Featured(ctx)
}
