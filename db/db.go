package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	EventsCollection       *mongo.Collection
	BookingsCollection     *mongo.Collection
	MusiciansCollection    *mongo.Collection
	SongsCollection        *mongo.Collection
	SiteSettingsCollection *mongo.Collection
	MigrationsCollection   *mongo.Collection
	Client                 *mongo.Client
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
	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "twohtsounds"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database(dbName)
	EventsCollection = database.Collection("events")
	BookingsCollection = database.Collection("bookings")
	MusiciansCollection = database.Collection("musicians")
	SongsCollection = database.Collection("songs")
	SiteSettingsCollection = database.Collection("sitesettings")
	MigrationsCollection = database.Collection("migrations")
}
