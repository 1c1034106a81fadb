package order

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const ordersCollection = "orders"

type Repository interface {
	InsertMany(ctx context.Context, orders []Order) error
	FindAll(ctx context.Context) ([]Order, error)
}

type mongoRepository struct {
	coll *mongo.Collection
}

func NewRepository(database *mongo.Database) Repository {
	return &mongoRepository{coll: database.Collection(ordersCollection)}
}

// InsertMany bulk-writes the given orders. Identities are client-generated;
// the store assigns nothing. Atomicity is whatever the driver's InsertMany
// provides.
func (r *mongoRepository) InsertMany(ctx context.Context, orders []Order) error {
	docs := make([]interface{}, 0, len(orders))
	for _, o := range orders {
		docs = append(docs, o)
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("repository: failed to insert orders: %w", err)
	}

	return nil
}

// FindAll returns every stored order. Full scan, no filter, natural order.
func (r *mongoRepository) FindAll(ctx context.Context) ([]Order, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query orders: %w", err)
	}

	orders := make([]Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("repository: failed to decode orders: %w", err)
	}

	return orders, nil
}
