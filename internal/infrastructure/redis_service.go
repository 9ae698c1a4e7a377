package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"task-service/internal/domain/entities"
)

type RedisOptions struct {
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
}

// RedisService caches resolved identities. A service built without a
// reachable server is disabled: writes are dropped and reads miss.
type RedisService struct {
	client *redis.Client
}

func NewRedisService(ctx context.Context, opts RedisOptions) *RedisService {
	// REDIS_URL wins over the individual settings
	if opts.URL != "" {
		opt, err := redis.ParseURL(opts.URL)
		if err == nil {
			client := redis.NewClient(opt)
			if err := client.Ping(ctx).Err(); err != nil {
				log.Printf("redis connection failed with REDIS_URL: %v", err)
				_ = client.Close()
			} else {
				log.Println("connected to Redis using REDIS_URL")
				return &RedisService{client: client}
			}
		} else {
			log.Printf("invalid REDIS_URL: %v", err)
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis connection failed: %v; identity cache disabled", err)
		_ = client.Close()
		return &RedisService{client: nil}
	}

	log.Printf("connected to Redis at %s:%s", opts.Host, opts.Port)
	return &RedisService{client: client}
}

// NewRedisServiceFromClient wraps an existing client; nil yields a disabled service.
func NewRedisServiceFromClient(client *redis.Client) *RedisService {
	return &RedisService{client: client}
}

func (r *RedisService) Enabled() bool {
	return r != nil && r.client != nil
}

func profileKey(userID string) string {
	return "profile:" + userID
}

func (r *RedisService) SetProfile(ctx context.Context, user *entities.User, ttl time.Duration) error {
	if !r.Enabled() {
		return nil
	}
	// Password is tagged json:"-", the hash never reaches the cache
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, profileKey(user.Id), data, ttl).Err()
}

// GetProfile returns (nil, nil) on a miss.
func (r *RedisService) GetProfile(ctx context.Context, userID string) (*entities.User, error) {
	if !r.Enabled() {
		return nil, nil
	}
	data, err := r.client.Get(ctx, profileKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var user entities.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *RedisService) DeleteProfile(ctx context.Context, userID string) error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Del(ctx, profileKey(userID)).Err()
}

func (r *RedisService) Close() error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Close()
}
