package memory

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/artem13815/pcbuild/pkg/build"
)

const defaultSize = 256

// SharedCache is an in-process LRU of shared builds keyed by share token.
type SharedCache struct {
	entries *lru.Cache[string, build.Build]
}

func NewSharedCache(size int) (*SharedCache, error) {
	if size <= 0 {
		size = defaultSize
	}
	c, err := lru.New[string, build.Build](size)
	if err != nil {
		return nil, err
	}
	return &SharedCache{entries: c}, nil
}

func (c *SharedCache) Get(_ context.Context, token string) (build.Build, bool) {
	return c.entries.Get(token)
}

func (c *SharedCache) Set(_ context.Context, b build.Build) {
	if b.ShareToken == nil {
		return
	}
	c.entries.Add(*b.ShareToken, b)
}

func (c *SharedCache) Len() int { return c.entries.Len() }
