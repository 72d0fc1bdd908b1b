package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"formlab/internal/model"
)

// ResponseRepo handles MongoDB operations for form responses
type ResponseRepo interface {
	Create(ctx context.Context, response *model.FormResponse) (string, error)
	GetByID(ctx context.Context, id string) (*model.FormResponse, error)
	ListByFormID(ctx context.Context, formID string) ([]*model.FormResponse, error)
}

type responseRepo struct {
	collection *mongo.Collection
}

// NewResponseRepo creates a new response repository
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("responses"),
	}
}

func (r *responseRepo) Create(ctx context.Context, response *model.FormResponse) (string, error) {
	if response.SubmittedAt.IsZero() {
		response.SubmittedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, response)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	response.ID = oid.Hex()
	return response.ID, nil
}

func (r *responseRepo) GetByID(ctx context.Context, id string) (*model.FormResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var response model.FormResponse
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&response)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	response.ID = id
	return &response, nil
}

func (r *responseRepo) ListByFormID(ctx context.Context, formID string) ([]*model.FormResponse, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"formId": formID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.FormResponse
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}
