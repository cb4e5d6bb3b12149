// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
type DBDeps struct {
	AcademyMongoClient   *mongo.Client
	AcademyMongoDatabase *mongo.Database
	AcademyRedisClient   *redis.Client
}
