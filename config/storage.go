package config

import (
	"context"
	"fmt"
	"io"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"hotel-frontdesk/messaging"
	"hotel-frontdesk/services"
	"hotel-frontdesk/storage"
)

// OpenSnapshotRepository builds the persistence backend named by
// cfg.StorageDriver.
func OpenSnapshotRepository(ctx context.Context, cfg Config, log *zap.Logger) (storage.SnapshotRepository, error) {
	switch cfg.StorageDriver {
	case "", DriverMemory:
		log.Warn("using in-memory storage; state is lost on restart")
		return storage.NewMemoryRepository(), nil

	case DriverMySQL:
		db, err := OpenMySQL(cfg.MySQL, log)
		if err != nil {
			return nil, fmt.Errorf("mysql connect failed: %w", err)
		}
		repo := storage.NewGormRepository(db)
		if err := repo.Migrate(); err != nil {
			return nil, fmt.Errorf("mysql migrate failed: %w", err)
		}
		return repo, nil

	case DriverSQLite:
		return storage.OpenSQLite(ctx, cfg.SQLitePath)

	case DriverPostgres:
		return storage.OpenPostgres(ctx, cfg.PostgresDSN)

	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		repo := storage.NewRedisRepository(client, cfg.Redis.KeyPrefix)
		if err := repo.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis ping failed: %w", err)
		}
		return repo, nil

	case DriverS3:
		client, err := storage.NewS3Client(ctx, storage.S3Config{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			PathStyle: cfg.S3.PathStyle,

			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
		if err != nil {
			return nil, fmt.Errorf("s3 client: %w", err)
		}
		return storage.NewS3Repository(client, cfg.S3.Bucket, cfg.S3.Prefix), nil

	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}

// OpenEventPublisher returns a Kafka publisher when brokers are configured,
// otherwise a no-op publisher.
func OpenEventPublisher(cfg Config, log *zap.Logger) (services.EventPublisher, io.Closer) {
	if len(cfg.KafkaBrokers) == 0 {
		return services.NopPublisher{}, nopCloser{}
	}
	w := messaging.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
	log.Info("publishing events to kafka", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", w.Topic))
	return messaging.NewKafkaPublisher(w, log), w
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
