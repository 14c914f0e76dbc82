package repositories

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheRepository memoizes prompt → public image URL so re-runs skip
// regenerating identical prompts. Optional: the pipeline runs without it.
type CacheRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheRepository(host, port string, ttl time.Duration) (*CacheRepository, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port),
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &CacheRepository{client: rdb, ttl: ttl}, nil
}

func (r *CacheRepository) GetImageURL(ctx context.Context, prompt string) (string, bool, error) {
	url, err := r.client.Get(ctx, cacheKey(prompt)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return url, true, nil
}

func (r *CacheRepository) SetImageURL(ctx context.Context, prompt, url string) error {
	return r.client.Set(ctx, cacheKey(prompt), url, r.ttl).Err()
}

// Prompts carry the full style suffix, so hash them into a fixed-size key.
func cacheKey(prompt string) string {
	return fmt.Sprintf("recipe:image:%x", sha256.Sum256([]byte(prompt)))
}
