package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	mongoClient *mongo.Client
	mongoDB     *mongo.Database
)

func GetMongoDB() *mongo.Database {
	return mongoDB
}

func GetMongoClient() *mongo.Client {
	return mongoClient
}

func init() {
	// Load env from .env
	godotenv.Load()
	// Do NOT block startup in init() waiting for the database.
	// Cloud Run requires the container to start listening on $PORT quickly.
}

// ConnectMongoWithRetry connects and sets the global Mongo handles.
// Call this from main() AFTER the HTTP server is listening.
func ConnectMongoWithRetry() {
	uri := strings.TrimSpace(os.Getenv("MONGODB_URL"))
	if uri == "" {
		uri = "mongodb://localhost:27017"
		log.Printf("MONGODB_URL not set; defaulting to %s", uri)
	}
	dbName := strings.TrimSpace(os.Getenv("MONGODB_DATABASE"))
	if dbName == "" {
		dbName = "xero_mirror"
	}

	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(uint64(intFromEnv("MONGODB_MAX_POOL_SIZE", 50))).
		SetMaxConnIdleTime(time.Duration(intFromEnv("MONGODB_CONN_MAX_IDLE_TIME_SECONDS", 60)) * time.Second)

	var attempt int
	for {
		attempt++

		connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := mongo.Connect(connectCtx, opts)
		if err == nil {
			err = client.Ping(connectCtx, readpref.Primary())
		}
		cancel()

		if err == nil {
			mongoClient = client
			mongoDB = client.Database(dbName)
			log.Printf("connected to mongodb (attempt=%d db=%s)", attempt, dbName)
			return
		}

		sleep := time.Second * time.Duration(1<<min(attempt, 5))
		if sleep > 30*time.Second {
			sleep = 30 * time.Second
		}
		log.Printf("failed to connect mongodb (attempt=%d): %v; retrying in %s", attempt, err, sleep)
		time.Sleep(sleep)
	}
}

func intFromEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
