package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/model"
)

const productColumns = "id, name, overview, long_description, price, poster, image_local, rating, in_stock, size, best_seller"

type ProductRepository struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewProductRepository(db *pgxpool.Pool, timeout time.Duration) *ProductRepository {
	return &ProductRepository{db: db, timeout: timeout}
}

func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Overview, &p.LongDescription, &p.Price,
		&p.Poster, &p.ImageLocal, &p.Rating, &p.InStock, &p.Size, &p.BestSeller,
	)
}

// List returns products whose name starts with namePrefix; an empty prefix
// matches everything.
func (r *ProductRepository) List(ctx context.Context, namePrefix string) ([]model.Product, error) {
	ctx, cancel := callCtx(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx,
		"SELECT "+productColumns+" FROM products WHERE name LIKE $1 || '%' ORDER BY id",
		namePrefix,
	)
	if err != nil {
		return nil, storeErr("listing products", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, storeErr("scanning product", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("listing products", err)
	}
	return products, nil
}

func (r *ProductRepository) Get(ctx context.Context, id int64) (*model.Product, error) {
	ctx, cancel := callCtx(ctx, r.timeout)
	defer cancel()

	p := &model.Product{}
	err := scanProduct(r.db.QueryRow(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", id), p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", id, apperr.ErrNotFound)
		}
		return nil, storeErr("getting product", err)
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *model.Product) error {
	ctx, cancel := callCtx(ctx, r.timeout)
	defer cancel()

	_, err := r.db.Exec(ctx,
		`INSERT INTO products (`+productColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.Name, p.Overview, p.LongDescription, p.Price,
		p.Poster, p.ImageLocal, p.Rating, p.InStock, p.Size, p.BestSeller,
	)
	if err != nil {
		return storeErr("creating product", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	ctx, cancel := callCtx(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(ctx,
		`UPDATE products
		 SET name = $2, overview = $3, long_description = $4, price = $5, poster = $6,
		     image_local = $7, rating = $8, in_stock = $9, size = $10, best_seller = $11
		 WHERE id = $1`,
		p.ID, p.Name, p.Overview, p.LongDescription, p.Price,
		p.Poster, p.ImageLocal, p.Rating, p.InStock, p.Size, p.BestSeller,
	)
	if err != nil {
		return storeErr("updating product", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", p.ID, apperr.ErrNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := callCtx(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return storeErr("deleting product", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// Featured returns up to six random products.
func (r *ProductRepository) Featured(ctx context.Context) ([]model.Product, error) {
	ctx, cancel := callCtx(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY random() LIMIT 6")
	if err != nil {
		return nil, storeErr("listing featured products", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, storeErr("scanning product", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("listing featured products", err)
	}
	return products, nil
}
