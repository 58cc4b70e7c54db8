package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/builditdreamz/builditdreamz_backend/models"
)

const (
	postsCacheKey   = "blog:posts"
	postsVersionKey = "blog:posts:version"
	postsCacheTTL   = 5 * time.Minute
)

// PostCache keeps the rendered blog listing in Redis. A nil client makes
// every call a miss or a no-op.
type PostCache struct {
	client *redis.Client
}

func NewPostCache(client *redis.Client) *PostCache {
	return &PostCache{client: client}
}

// Get returns the cached listing. ok is false on a miss.
func (c *PostCache) Get(ctx context.Context) (posts []models.Post, ok bool, err error) {
	if c == nil || c.client == nil {
		return nil, false, nil
	}

	raw, err := c.client.Get(ctx, postsCacheKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, false, err
	}
	return posts, true, nil
}

// Version returns the listing generation. Read it before loading posts from
// the store and pass it to Set.
func (c *PostCache) Version(ctx context.Context) (int64, error) {
	if c == nil || c.client == nil {
		return 0, nil
	}

	v, err := c.client.Get(ctx, postsVersionKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return v, err
}

// Set stores posts only if no Invalidate ran since version was read, so a
// listing loaded before a new post cannot overwrite the invalidation.
func (c *PostCache) Set(ctx context.Context, version int64, posts []models.Post) error {
	if c == nil || c.client == nil {
		return nil
	}

	raw, err := json.Marshal(posts)
	if err != nil {
		return err
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, postsVersionKey).Int64()
		if err != nil && err != redis.Nil {
			return err
		}
		if current != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, postsCacheKey, raw, postsCacheTTL)
			return nil
		})
		return err
	}, postsVersionKey)
	if err == redis.TxFailedErr {
		// an Invalidate won the race
		return nil
	}
	return err
}

func (c *PostCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, postsVersionKey)
		pipe.Del(ctx, postsCacheKey)
		return nil
	})
	return err
}
