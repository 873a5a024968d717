package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-backend/internal/model"
)

type OrderRepository struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewOrderRepository(db *pgxpool.Pool, timeout time.Duration) *OrderRepository {
	return &OrderRepository{db: db, timeout: timeout}
}

// Create inserts one order row and returns the store-assigned id. The order's
// ProductIDs field must already be encoded with model.JoinProductIDs.
func (r *OrderRepository) Create(ctx context.Context, order *model.Order) (int64, error) {
	ctx, cancel := callCtx(ctx, r.timeout)
	defer cancel()

	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO orders (reference, user_id, product_ids, amount_paid, total_quantity, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		order.Reference, order.UserID, order.ProductIDs,
		order.AmountPaid, order.Quantity, order.Status,
	).Scan(&id)
	if err != nil {
		return 0, storeErr("creating order", err)
	}
	return id, nil
}

// ListRowsByUser joins the user's orders against users and products. Product
// membership is tested against the delimited product_ids field; ids that no
// longer resolve to a catalog row produce no rows and are therefore absent
// from reconstruction. Rows come back ordered by order id, then product id.
func (r *OrderRepository) ListRowsByUser(ctx context.Context, userID int64) ([]model.OrderProductRow, error) {
	ctx, cancel := callCtx(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx,
		`SELECT
		     o.id, o.reference, o.amount_paid, o.total_quantity,
		     u.name, u.email,
		     p.id, p.name, p.overview, p.long_description, p.price, p.poster,
		     p.image_local, p.rating, p.in_stock, p.size, p.best_seller
		 FROM orders o
		 JOIN users u ON o.user_id = u.id
		 JOIN products p ON p.id = ANY (string_to_array(o.product_ids, ',')::bigint[])
		 WHERE o.user_id = $1
		 ORDER BY o.id, p.id`,
		userID,
	)
	if err != nil {
		return nil, storeErr("listing orders", err)
	}
	defer rows.Close()

	var result []model.OrderProductRow
	for rows.Next() {
		var row model.OrderProductRow
		err := rows.Scan(
			&row.OrderID, &row.Reference, &row.AmountPaid, &row.Quantity,
			&row.UserName, &row.UserEmail,
			&row.Product.ID, &row.Product.Name, &row.Product.Overview,
			&row.Product.LongDescription, &row.Product.Price, &row.Product.Poster,
			&row.Product.ImageLocal, &row.Product.Rating, &row.Product.InStock,
			&row.Product.Size, &row.Product.BestSeller,
		)
		if err != nil {
			return nil, storeErr("scanning order row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("listing orders", err)
	}
	return result, nil
}
