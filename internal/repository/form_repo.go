package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"formlab/internal/model"
)

// FormRepo handles MongoDB operations for forms
type FormRepo interface {
	Create(ctx context.Context, form *model.Form) (string, error)
	GetByID(ctx context.Context, id string) (*model.Form, error)
	List(ctx context.Context) ([]*model.FormSummary, error)
	Delete(ctx context.Context, id string) (*model.Form, error)
}

type formRepo struct {
	collection *mongo.Collection
}

// NewFormRepo creates a new form repository
func NewFormRepo(db *mongo.Database) FormRepo {
	return &formRepo{
		collection: db.Collection("forms"),
	}
}

func (r *formRepo) Create(ctx context.Context, form *model.Form) (string, error) {
	form.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, form)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *formRepo) GetByID(ctx context.Context, id string) (*model.Form, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var form model.Form
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&form)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	form.ID = id
	return &form, nil
}

func (r *formRepo) List(ctx context.Context) ([]*model.FormSummary, error) {
	opts := options.Find().
		SetProjection(bson.M{"title": 1, "createdAt": 1}).
		SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []*model.FormSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// Delete removes a form and returns the deleted document, or nil if the id
// was not found.
func (r *formRepo) Delete(ctx context.Context, id string) (*model.Form, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var form model.Form
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&form)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	form.ID = id
	return &form, nil
}
