package order

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/order-service/internal/product"
)

// UnknownProductName is shown for listing items whose product lookup failed.
const UnknownProductName = "Unknown Product"

// ProductGetter resolves a product record by its external identifier.
type ProductGetter interface {
	GetByID(ctx context.Context, productID string) (*product.Product, error)
}

type Service interface {
	CreateOrders(ctx context.Context, requests []CreateOrderRequest) ([]Order, error)
	ListOrders(ctx context.Context) ([]OrderView, error)
}

type service struct {
	repo     Repository
	products ProductGetter
}

func NewService(repo Repository, products ProductGetter) Service {
	return &service{
		repo:     repo,
		products: products,
	}
}

// CreateOrders builds one order per request, pricing each item from the
// product service when possible and from the request itself when the lookup
// fails. Lookups run sequentially, so item order is preserved. All created
// orders are persisted with a single bulk insert; nothing is written for an
// empty batch.
func (s *service) CreateOrders(ctx context.Context, requests []CreateOrderRequest) ([]Order, error) {
	orders := make([]Order, 0, len(requests))

	for _, req := range requests {
		items := make([]OrderItem, 0, len(req.Items))

		for _, item := range req.Items {
			price := item.Price

			p, err := s.products.GetByID(ctx, item.ProductID)
			if err != nil {
				log.Warn().Err(err).Str("product_id", item.ProductID).Msg("service: product lookup failed, using requested price")
			} else {
				price = p.Price
			}

			items = append(items, NewOrderItem(item.ProductID, item.Quantity, price))
		}

		orders = append(orders, NewOrder(items))
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err := s.repo.InsertMany(ctx, orders); err != nil {
		log.Error().Err(err).Int("order_count", len(orders)).Msg("service: failed to persist orders")
		return nil, fmt.Errorf("service: failed to persist orders: %w", err)
	}

	log.Info().Int("order_count", len(orders)).Msg("service: orders created")

	return orders, nil
}

// ListOrders reads every stored order and re-hydrates each item with the
// product's current name and price. Items whose lookup fails fall back to
// the stored price under a placeholder name. Stored totals pass through
// untouched even when current prices differ.
func (s *service) ListOrders(ctx context.Context) ([]OrderView, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to fetch orders")
		return nil, fmt.Errorf("service: failed to fetch orders: %w", err)
	}

	views := make([]OrderView, 0, len(orders))

	for _, o := range orders {
		items := make([]OrderItemView, 0, len(o.Items))

		for _, item := range o.Items {
			p, err := s.products.GetByID(ctx, item.ProductID)
			if err != nil {
				log.Debug().Err(err).Str("product_id", item.ProductID).Msg("service: product lookup failed for listing")
				items = append(items, OrderItemView{
					ProductID:   item.ProductID,
					ProductName: UnknownProductName,
					Quantity:    item.Quantity,
					Price:       item.Price,
				})
				continue
			}

			items = append(items, OrderItemView{
				ProductID:   item.ProductID,
				ProductName: p.Name,
				Quantity:    item.Quantity,
				Price:       p.Price,
			})
		}

		views = append(views, OrderView{
			ID:          o.ID,
			OrderDate:   o.OrderDate,
			TotalAmount: o.TotalAmount,
			Items:       items,
		})
	}

	return views, nil
}
