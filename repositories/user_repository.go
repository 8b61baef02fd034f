package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stafflyhq/staffly_backend/config"
	"github.com/stafflyhq/staffly_backend/models"
)

// QueryTimeout bounds every single-document lookup.
const QueryTimeout = 10 * time.Second

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Client) *UserRepository {
	return &UserRepository{
		collection: config.GetCollection(db, "users"),
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// UpdateRole persists a role onto a user profile.
func (r *UserRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) error {
	update := bson.M{
		"$set": bson.M{
			"role":      role,
			"updatedAt": time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

// DeleteByCompanyIDs removes the login users linked to the given companies.
func (r *UserRepository) DeleteByCompanyIDs(ctx context.Context, companyIDs []primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"companyId": bson.M{"$in": companyIDs}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
