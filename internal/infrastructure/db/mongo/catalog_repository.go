package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/uteeni/storefront-api/internal/core/domain"
)

const productCollection = "products"

// MongoCatalogRepository reads the immutable product catalog from MongoDB.
type MongoCatalogRepository struct {
	coll *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *MongoCatalogRepository {
	return &MongoCatalogRepository{coll: db.Collection(productCollection)}
}

func (r *MongoCatalogRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &product, nil
}

func (r *MongoCatalogRepository) List(ctx context.Context) ([]domain.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}
