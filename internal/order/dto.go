package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is one element of the POST /create-order body.
type CreateOrderRequest struct {
	Items []CreateOrderItemRequest `json:"items"`
}

type CreateOrderItemRequest struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CreatedOrderResponse is the wire shape returned for each created order.
type CreatedOrderResponse struct {
	ID          string                     `json:"id"`
	OrderDate   time.Time                  `json:"orderDate"`
	TotalAmount decimal.Decimal            `json:"totalAmount"`
	Items       []CreatedOrderItemResponse `json:"items"`
}

type CreatedOrderItemResponse struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

func NewCreatedOrderResponse(o Order) CreatedOrderResponse {
	items := make([]CreatedOrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, CreatedOrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return CreatedOrderResponse{
		ID:          o.ID,
		OrderDate:   o.OrderDate,
		TotalAmount: o.TotalAmount,
		Items:       items,
	}
}

// OrderView is a stored order re-hydrated with current product data for
// GET /orders. TotalAmount is passed through from storage as-is, so it can
// legitimately diverge from the freshly looked-up item prices.
type OrderView struct {
	ID          string          `json:"id"`
	OrderDate   time.Time       `json:"orderDate"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Items       []OrderItemView `json:"items"`
}

type OrderItemView struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}
