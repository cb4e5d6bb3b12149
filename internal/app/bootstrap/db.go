// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/timeouts"
)

// ConnectDB establishes the MongoDB and Redis connections and bundles
// them into DBDeps.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	var deps DBDeps

	clientOpts := mongoopts.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	connectCtx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return deps, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, timeouts.Ping())
	defer cancelPing()
	if err := client.Ping(pingCtx, nil); err != nil {
		return deps, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	rdb := redis.NewClient(&redis.Options{
		Addr:     appCfg.RedisAddr,
		Password: appCfg.RedisPassword,
		DB:       appCfg.RedisDB,
	})
	redisCtx, cancelRedis := context.WithTimeout(ctx, timeouts.Ping())
	defer cancelRedis()
	if err := rdb.Ping(redisCtx).Err(); err != nil {
		_ = client.Disconnect(ctx)
		return deps, fmt.Errorf("redis ping: %w", err)
	}

	logger.Info("connected to Redis", zap.String("addr", appCfg.RedisAddr))

	deps.AcademyMongoClient = client
	deps.AcademyMongoDatabase = client.Database(appCfg.MongoDatabase)
	deps.AcademyRedisClient = rdb
	return deps, nil
}

// EnsureSchema creates the indexes the queries rely on.
//
// session_bookings deliberately has NO unique index on
// (user_id, session_group_id): the one-booking-per-group rule is
// enforced by the booking coordinator so legacy duplicate rows keep
// loading.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.AcademyMongoDatabase

	type spec struct {
		collection string
		models     []mongo.IndexModel
	}

	unique := mongoopts.Index().SetUnique(true)

	specs := []spec{
		{"courses", []mongo.IndexModel{
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "title_ci", Value: 1}}},
			{Keys: bson.D{{Key: "category", Value: 1}, {Key: "created_at", Value: -1}}},
		}},
		{"session_groups", []mongo.IndexModel{
			{Keys: bson.D{{Key: "course_id", Value: 1}, {Key: "start_date", Value: 1}}},
			{Keys: bson.D{{Key: "name_ci", Value: 1}}},
		}},
		{"course_timetable", []mongo.IndexModel{
			{Keys: bson.D{{Key: "session_group_id", Value: 1}, {Key: "start_at", Value: 1}}},
			{Keys: bson.D{{Key: "course_id", Value: 1}, {Key: "start_at", Value: 1}}},
		}},
		{"session_bookings", []mongo.IndexModel{
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "booked_at", Value: -1}}},
			{Keys: bson.D{{Key: "session_group_id", Value: 1}}},
		}},
		{"course_syllabus", []mongo.IndexModel{
			{Keys: bson.D{{Key: "course_id", Value: 1}, {Key: "order_num", Value: 1}}},
		}},
		{"course_syllabus_details", []mongo.IndexModel{
			{Keys: bson.D{{Key: "syllabus_id", Value: 1}, {Key: "order_num", Value: 1}}},
		}},
		{"course_objectives", []mongo.IndexModel{
			{Keys: bson.D{{Key: "course_id", Value: 1}, {Key: "order_num", Value: 1}}},
		}},
		{"users", []mongo.IndexModel{
			{Keys: bson.D{{Key: "email_ci", Value: 1}}, Options: unique},
		}},
	}

	for _, s := range specs {
		idxCtx, cancel := context.WithTimeout(ctx, timeouts.Medium())
		_, err := db.Collection(s.collection).Indexes().CreateMany(idxCtx, s.models)
		cancel()
		if err != nil {
			return fmt.Errorf("create indexes on %s: %w", s.collection, err)
		}
	}

	logger.Info("database indexes ensured")
	return nil
}
