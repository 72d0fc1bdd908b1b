package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"formlab/internal/model"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database("formlab")
	formColl := db.Collection("forms")

	form := model.Form{
		ID:    primitive.NewObjectID().Hex(),
		Title: "Demo Form",
		Questions: []model.Question{
			{
				Type:       model.QuestionTypeCategorize,
				Question:   "Sort the following into fruits and vegetables",
				Categories: []string{"Fruit", "Vegetable"},
				Items: []model.Item{
					{Text: "Apple", Category: "Fruit"},
					{Text: "Carrot", Category: "Vegetable"},
					{Text: "Banana", Category: "Fruit"},
					{Text: "Spinach", Category: "Vegetable"},
				},
			},
			{
				Type:   model.QuestionTypeCloze,
				Text:   "The [...] jumped over the [...]",
				Blanks: []string{"fox", "fence"},
			},
			{
				Type:    model.QuestionTypeComprehension,
				Passage: "The quick brown fox jumps over the lazy dog. This sentence contains every letter of the English alphabet, which makes it useful for testing typefaces and keyboards.",
				Questions: []model.SubQuestion{
					{
						Question:      "What does the fox jump over?",
						Options:       []string{"The fence", "The lazy dog", "The river", "The wall"},
						CorrectAnswer: "The lazy dog",
					},
					{
						Question:      "Why is the sentence useful?",
						Options:       []string{"It is short", "It rhymes", "It contains every letter", "It is famous"},
						CorrectAnswer: "It contains every letter",
					},
				},
			},
		},
		CreatedAt: time.Now(),
	}

	_, err = formColl.InsertOne(ctx, form)
	if err != nil {
		log.Fatalf("Failed to insert form: %v", err)
	}

	fmt.Printf("Successfully created demo form '%s' (%s)\n", form.Title, form.ID)
}
