package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/artem13815/pcbuild/pkg/build"
)

const keyPrefix = "pcbuild:shared:"

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// SharedCache stores shared builds as JSON under their share token.
// Cache failures are logged and treated as misses.
type SharedCache struct {
	client goredis.Cmdable
	ttl    time.Duration
	log    *zap.Logger
}

func NewSharedCache(client goredis.Cmdable, ttl time.Duration, log *zap.Logger) *SharedCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &SharedCache{client: client, ttl: ttl, log: log}
}

func (c *SharedCache) Get(ctx context.Context, token string) (build.Build, bool) {
	raw, err := c.client.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.log.Warn("shared cache get failed", zap.Error(err))
		}
		return build.Build{}, false
	}
	var b build.Build
	if err := json.Unmarshal(raw, &b); err != nil {
		c.log.Warn("shared cache entry is corrupt", zap.String("token", token), zap.Error(err))
		return build.Build{}, false
	}
	return b, true
}

func (c *SharedCache) Set(ctx context.Context, b build.Build) {
	if b.ShareToken == nil {
		return
	}
	raw, err := json.Marshal(b)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, keyPrefix+*b.ShareToken, raw, c.ttl).Err(); err != nil {
		c.log.Warn("shared cache set failed", zap.Error(err))
	}
}
