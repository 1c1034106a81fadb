package order

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem is one product line within an order. Price is the unit price
// resolved at creation time: the product service's price when the lookup
// succeeded, the requested price otherwise. Storage does not distinguish
// the two cases.
type OrderItem struct {
	ID        string          `bson:"id"`
	ProductID string          `bson:"product_id"`
	Quantity  int             `bson:"quantity"`
	Price     decimal.Decimal `bson:"price"`
}

// Order is the persisted record of one purchase. TotalAmount is computed
// once at creation and never recomputed afterwards.
type Order struct {
	ID          string          `bson:"_id"`
	OrderDate   time.Time       `bson:"order_date"`
	Items       []OrderItem     `bson:"items"`
	TotalAmount decimal.Decimal `bson:"total_amount"`
}

func NewOrderItem(productID string, quantity int, price decimal.Decimal) OrderItem {
	return OrderItem{
		ID:        uuid.Must(uuid.NewV4()).String(),
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	}
}

// NewOrder builds an order with a fresh identity and a UTC creation
// timestamp, and derives the total from the given items.
func NewOrder(items []OrderItem) Order {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return Order{
		ID:          uuid.Must(uuid.NewV4()).String(),
		OrderDate:   time.Now().UTC(),
		Items:       items,
		TotalAmount: total,
	}
}
