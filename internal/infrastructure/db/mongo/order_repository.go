package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/uteeni/storefront-api/internal/core/domain"
)

const (
	orderCollection   = "orders"
	counterCollection = "counters"
	orderCounterID    = "orders"

	// firstOrderID is where the sequence starts on an empty database; seed
	// data occupies ids below it.
	firstOrderID = 2003
)

// MongoOrderRepository persists orders. Ids come from a counter document
// incremented atomically with FindOneAndUpdate, so concurrent creates across
// any number of processes never share an id.
type MongoOrderRepository struct {
	orders   *mongo.Collection
	counters *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{
		orders:   db.Collection(orderCollection),
		counters: db.Collection(counterCollection),
	}
}

type counterDoc struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// EnsureCounter seeds the order id counter if it does not exist yet. Call
// once at startup; a concurrent insert by another instance is not an error.
func (r *MongoOrderRepository) EnsureCounter(ctx context.Context) error {
	_, err := r.counters.InsertOne(ctx, counterDoc{ID: orderCounterID, Seq: firstOrderID - 1})
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("ensure order counter: %w", err)
	}
	return nil
}

func (r *MongoOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}

	order.ID = id
	if _, err := r.orders.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *MongoOrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	if err := r.orders.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return &order, nil
}

// nextID atomically increments and returns the order sequence.
func (r *MongoOrderRepository) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter counterDoc
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": orderCounterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next order id: %w", err)
	}
	return counter.Seq, nil
}
