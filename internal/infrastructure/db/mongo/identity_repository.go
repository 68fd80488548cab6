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
	identityCollection   = "identities"
	credentialCollection = "credentials"
)

// MongoIdentityRepository reads the identity directory and the opaque
// credential table from MongoDB.
type MongoIdentityRepository struct {
	identities  *mongo.Collection
	credentials *mongo.Collection
}

func NewIdentityRepository(db *mongo.Database) *MongoIdentityRepository {
	return &MongoIdentityRepository{
		identities:  db.Collection(identityCollection),
		credentials: db.Collection(credentialCollection),
	}
}

// credentialDoc maps one opaque bearer token to its identity.
type credentialDoc struct {
	Token      string `bson:"_id"`
	IdentityID int64  `bson:"identity_id"`
}

func (r *MongoIdentityRepository) FindByCredential(ctx context.Context, token string) (*domain.Identity, error) {
	var cred credentialDoc
	if err := r.credentials.FindOne(ctx, bson.M{"_id": token}).Decode(&cred); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}
	return r.FindByID(ctx, cred.IdentityID)
}

func (r *MongoIdentityRepository) FindByID(ctx context.Context, id int64) (*domain.Identity, error) {
	var identity domain.Identity
	if err := r.identities.FindOne(ctx, bson.M{"_id": id}).Decode(&identity); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find identity: %w", err)
	}
	return &identity, nil
}

func (r *MongoIdentityRepository) List(ctx context.Context) ([]domain.Identity, error) {
	cursor, err := r.identities.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list identities: %w", err)
	}
	defer cursor.Close(ctx)

	var identities []domain.Identity
	if err := cursor.All(ctx, &identities); err != nil {
		return nil, fmt.Errorf("decode identities: %w", err)
	}
	return identities, nil
}
