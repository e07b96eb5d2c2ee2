package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection       *mongo.Collection
	EventsCollection     *mongo.Collection
	QuotationsCollection *mongo.Collection
	CategoriesCollection *mongo.Collection
	SettingsCollection   *mongo.Collection
	ActivitiesCollection *mongo.Collection
	Client               *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("marketdb")
	UserCollection = database.Collection("users")
	EventsCollection = database.Collection("events")
	QuotationsCollection = database.Collection("quotations")
	CategoriesCollection = database.Collection("categories")
	SettingsCollection = database.Collection("settings")
	ActivitiesCollection = database.Collection("activities")

	createIndexes()
}

// createIndexes enforces the uniqueness rules the handlers rely on:
// one account per email, one quotation per (vendor, event) pair.
func createIndexes() {
	_, err := UserCollection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("users email index: %v", err)
	}

	_, err = QuotationsCollection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys: bson.D{
			{Key: "vendorid", Value: 1},
			{Key: "eventid", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("quotations vendor/event index: %v", err)
	}
}
