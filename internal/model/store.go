package model

import (
	"strconv"
	"strings"
	"time"
)

// OrderStatusPending is the status every order carries on creation.
const OrderStatusPending = 1

type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"` // bcrypt digest, never serialized
}

type Product struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Overview        string  `json:"overview"`
	LongDescription string  `json:"long_description"`
	Price           float64 `json:"price"`
	Poster          string  `json:"poster"`
	ImageLocal      string  `json:"image_local"`
	Rating          float64 `json:"rating"`
	InStock         bool    `json:"in_stock"`
	Size            string  `json:"size"`
	BestSeller      bool    `json:"best_seller"`
}

type CartItem struct {
	ProductID int64 `json:"id"`
	Quantity  int   `json:"quantity"`
}

type Order struct {
	ID         int64     `json:"id"`
	Reference  string    `json:"orders_id"`
	UserID     int64     `json:"user_id"`
	ProductIDs string    `json:"product_ids"`
	AmountPaid float64   `json:"amount_paid"`
	Quantity   int       `json:"total_quantity"`
	Status     int       `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserSummary is the public slice of a user embedded in order views.
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderView is the on-demand reconstruction of an order together with its
// owning user and the full records of every product that still exists.
type OrderView struct {
	ID         int64       `json:"id"`
	Reference  string      `json:"orders_id"`
	AmountPaid float64     `json:"amount_paid"`
	Quantity   int         `json:"quantity"`
	User       UserSummary `json:"user"`
	Products   []Product   `json:"cartList"`
}

// OrderProductRow is one flat row of the orders × users × products join,
// before grouping into views.
type OrderProductRow struct {
	OrderID    int64
	Reference  string
	AmountPaid float64
	Quantity   int
	UserName   string
	UserEmail  string
	Product    Product
}

// JoinProductIDs encodes product ids into the persisted form: comma-joined
// decimal ids, no spaces, caller order preserved. This codec is the single
// authority on the delimited field; the retrieval join parses the same format
// on the database side.
func JoinProductIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

// SplitProductIDs decodes the persisted form back into ids.
func SplitProductIDs(s string) ([]int64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
