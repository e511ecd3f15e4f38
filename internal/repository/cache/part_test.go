package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/autoparts/internal/model"
	"github.com/you-humble/autoparts/platform/logger"
)

var _ RedisClient = (*memRedis)(nil)

type memRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemRedis() *memRedis {
	return &memRedis{data: map[string]string{}}
}

func (m *memRedis) Get(_ context.Context, key string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memRedis) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (m *memRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

type countingRepo struct {
	PartRepository

	parts    map[int64]model.Part
	byIDHits int
}

func (r *countingRepo) PartByID(_ context.Context, id int64) (*model.Part, error) {
	r.byIDHits++
	p, ok := r.parts[id]
	if !ok {
		return nil, model.ErrPartNotFound
	}
	return &p, nil
}

func (r *countingRepo) PartByCode(_ context.Context, code string) (*model.Part, error) {
	for _, p := range r.parts {
		if p.Code == code {
			return &p, nil
		}
	}
	return nil, model.ErrPartNotFound
}

func (r *countingRepo) AdjustStock(_ context.Context, id int64, delta int) (int, int, error) {
	p := r.parts[id]
	before := p.Stock
	p.Stock += delta
	r.parts[id] = p
	return before, p.Stock, nil
}

func TestCachedPartRepository(t *testing.T) {
	logger.SetNopLogger()

	ctx := context.Background()
	part := model.Part{
		ID:    7,
		Code:  "FIL001",
		Name:  "Filtro de Aceite",
		Price: decimal.RequireFromString("25.50"),
		Stock: 50,
	}

	t.Run("second lookup is served from cache", func(t *testing.T) {
		repo := &countingRepo{parts: map[int64]model.Part{part.ID: part}}
		c := NewCachedPartRepository(repo, newMemRedis(), "test", time.Minute)

		first, err := c.PartByID(ctx, part.ID)
		require.NoError(t, err)
		second, err := c.PartByID(ctx, part.ID)
		require.NoError(t, err)

		assert.Equal(t, 1, repo.byIDHits)
		assert.Equal(t, first.Code, second.Code)
		assert.True(t, second.Price.Equal(part.Price))
	})

	t.Run("lookup by code reuses id entry", func(t *testing.T) {
		repo := &countingRepo{parts: map[int64]model.Part{part.ID: part}}
		c := NewCachedPartRepository(repo, newMemRedis(), "test", time.Minute)

		_, err := c.PartByCode(ctx, part.Code)
		require.NoError(t, err)
		got, err := c.PartByCode(ctx, part.Code)
		require.NoError(t, err)

		assert.Equal(t, part.ID, got.ID)
		assert.Equal(t, 0, repo.byIDHits)
	})

	t.Run("not found is cached", func(t *testing.T) {
		repo := &countingRepo{parts: map[int64]model.Part{}}
		c := NewCachedPartRepository(repo, newMemRedis(), "test", time.Minute)

		_, err := c.PartByID(ctx, 99)
		assert.ErrorIs(t, err, model.ErrPartNotFound)
		_, err = c.PartByID(ctx, 99)
		assert.ErrorIs(t, err, model.ErrPartNotFound)

		assert.Equal(t, 1, repo.byIDHits)
	})

	t.Run("stock adjustment invalidates entry", func(t *testing.T) {
		repo := &countingRepo{parts: map[int64]model.Part{part.ID: part}}
		c := NewCachedPartRepository(repo, newMemRedis(), "test", time.Minute)

		_, err := c.PartByID(ctx, part.ID)
		require.NoError(t, err)

		before, after, err := c.AdjustStock(ctx, part.ID, -5)
		require.NoError(t, err)
		assert.Equal(t, 50, before)
		assert.Equal(t, 45, after)

		got, err := c.PartByID(ctx, part.ID)
		require.NoError(t, err)
		assert.Equal(t, 45, got.Stock)
		assert.Equal(t, 2, repo.byIDHits)
	})
}
