package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (int64, error)
	ListRowsByUser(ctx context.Context, userID int64) ([]model.OrderProductRow, error)
}

type OrderService struct {
	orders   OrderRepository
	products ProductRepository
}

func NewOrderService(orders OrderRepository, products ProductRepository) *OrderService {
	return &OrderService{orders: orders, products: products}
}

type CreateOrderInput struct {
	UserID     int64
	Items      []model.CartItem
	AmountPaid float64
	Reference  string
	Quantity   int
}

// Create persists a purchase as a single row whose product references are
// comma-joined ids, status pending. Every referenced product must exist at
// creation time; dangling references can only arise from catalog deletions
// after the fact. Returns the store-assigned order id.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (int64, error) {
	switch {
	case in.UserID <= 0:
		return 0, fmt.Errorf("%w: invalid user id", apperr.ErrValidation)
	case len(in.Items) == 0:
		return 0, fmt.Errorf("%w: order has no items", apperr.ErrValidation)
	case in.Quantity <= 0:
		return 0, fmt.Errorf("%w: invalid quantity", apperr.ErrValidation)
	}
	for _, item := range in.Items {
		if item.ProductID <= 0 {
			return 0, fmt.Errorf("%w: invalid product id", apperr.ErrValidation)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, item := range in.Items {
		item := item
		g.Go(func() error {
			if _, err := s.products.Get(gctx, item.ProductID); err != nil {
				if errors.Is(err, apperr.ErrNotFound) {
					return fmt.Errorf("%w: unknown product %d", apperr.ErrValidation, item.ProductID)
				}
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	ids := make([]int64, len(in.Items))
	for i, item := range in.Items {
		ids[i] = item.ProductID
	}

	return s.orders.Create(ctx, &model.Order{
		Reference:  in.Reference,
		UserID:     in.UserID,
		ProductIDs: model.JoinProductIDs(ids),
		AmountPaid: in.AmountPaid,
		Quantity:   in.Quantity,
		Status:     model.OrderStatusPending,
	})
}

// ListByUser reconstructs the user's orders. The flat join rows arrive ordered
// by order id then product id; grouping preserves that order, so the returned
// views ascend by order id and each product list ascends by product id.
// Referenced products that no longer exist are simply absent.
func (s *OrderService) ListByUser(ctx context.Context, userID int64) ([]model.OrderView, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user id", apperr.ErrValidation)
	}

	rows, err := s.orders.ListRowsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no orders for user %d", apperr.ErrNotFound, userID)
	}

	var views []model.OrderView
	index := make(map[int64]int)
	for _, row := range rows {
		i, ok := index[row.OrderID]
		if !ok {
			views = append(views, model.OrderView{
				ID:         row.OrderID,
				Reference:  row.Reference,
				AmountPaid: row.AmountPaid,
				Quantity:   row.Quantity,
				User: model.UserSummary{
					ID:    userID,
					Name:  row.UserName,
					Email: row.UserEmail,
				},
			})
			i = len(views) - 1
			index[row.OrderID] = i
		}
		views[i].Products = append(views[i].Products, row.Product)
	}
	return views, nil
}
