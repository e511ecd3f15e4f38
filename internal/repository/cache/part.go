package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/you-humble/autoparts/internal/model"
	"github.com/you-humble/autoparts/platform/db/txmanager"
	"github.com/you-humble/autoparts/platform/logger"
)

const notFoundMarker = "notfound"

type PartRepository interface {
	List(ctx context.Context, filter model.PartsFilter) ([]model.Part, error)
	PartByID(ctx context.Context, id int64) (*model.Part, error)
	PartByCode(ctx context.Context, code string) (*model.Part, error)
	PartByIDForUpdate(ctx context.Context, id int64) (*model.Part, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByCodeExcept(ctx context.Context, code string, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, p *model.Part) (*model.Part, error)
	Update(ctx context.Context, p *model.Part) (*model.Part, error)
	SetStock(ctx context.Context, id int64, stock int) (*model.Part, error)
	AdjustStock(ctx context.Context, id int64, delta int) (int, int, error)
	Delete(ctx context.Context, id int64) error
	AddMovement(ctx context.Context, m *model.StockMovement) error
	Movements(ctx context.Context, partID int64) ([]model.StockMovement, error)
}

// RedisClient is the subset of redis.Cmdable the cache uses.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CachedPartRepository serves single-part lookups from redis and falls back to
// the wrapped store. Lookups by code go through a code -> id key so stock
// changes only have to drop the id entry.
type CachedPartRepository struct {
	PartRepository

	rdb         RedisClient
	prefix      string
	ttl         time.Duration
	notFoundTTL time.Duration
}

func NewCachedPartRepository(
	repo PartRepository,
	rdb RedisClient,
	prefix string,
	ttl time.Duration,
) *CachedPartRepository {
	return &CachedPartRepository{
		PartRepository: repo,
		rdb:            rdb,
		prefix:         prefix,
		ttl:            ttl,
		notFoundTTL:    time.Minute,
	}
}

func (c *CachedPartRepository) idKey(id int64) string {
	return fmt.Sprintf("%s:part:id:%d", c.prefix, id)
}

func (c *CachedPartRepository) codeKey(code string) string {
	return fmt.Sprintf("%s:part:code:%s", c.prefix, code)
}

func (c *CachedPartRepository) PartByID(ctx context.Context, id int64) (*model.Part, error) {
	key := c.idKey(id)
	log := logger.With(logger.String("key", key))

	data, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if string(data) == notFoundMarker {
			return nil, model.ErrPartNotFound
		}

		var p model.Part
		if err := json.Unmarshal(data, &p); err != nil {
			log.Warn(ctx, "unmarshal cached part, continuing with db", logger.ErrorF(err))
			break
		}
		return &p, nil
	case errors.Is(err, redis.Nil):
	default:
		log.Warn(ctx, "redis get, continuing with db", logger.ErrorF(err))
	}

	p, err := c.PartRepository.PartByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPartNotFound) {
			c.set(ctx, key, notFoundMarker, c.notFoundTTL)
		}
		return nil, err
	}

	c.store(ctx, p)
	return p, nil
}

func (c *CachedPartRepository) PartByCode(ctx context.Context, code string) (*model.Part, error) {
	key := c.codeKey(code)
	log := logger.With(logger.String("key", key))

	raw, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		if raw == notFoundMarker {
			return nil, model.ErrPartNotFound
		}

		id, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			log.Warn(ctx, "malformed cached part id, continuing with db", logger.ErrorF(perr))
			break
		}

		p, err := c.PartByID(ctx, id)
		if err == nil && p.Code == code {
			return p, nil
		}
	case errors.Is(err, redis.Nil):
	default:
		log.Warn(ctx, "redis get, continuing with db", logger.ErrorF(err))
	}

	p, err := c.PartRepository.PartByCode(ctx, code)
	if err != nil {
		if errors.Is(err, model.ErrPartNotFound) {
			c.set(ctx, key, notFoundMarker, c.notFoundTTL)
		}
		return nil, err
	}

	c.store(ctx, p)
	return p, nil
}

func (c *CachedPartRepository) Create(ctx context.Context, p *model.Part) (*model.Part, error) {
	created, err := c.PartRepository.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	c.invalidate(ctx, c.idKey(created.ID), c.codeKey(created.Code))
	return created, nil
}

func (c *CachedPartRepository) Update(ctx context.Context, p *model.Part) (*model.Part, error) {
	keys := []string{c.idKey(p.ID), c.codeKey(p.Code)}
	if old, err := c.PartRepository.PartByID(ctx, p.ID); err == nil && old.Code != p.Code {
		keys = append(keys, c.codeKey(old.Code))
	}

	updated, err := c.PartRepository.Update(ctx, p)
	if err != nil {
		return nil, err
	}

	c.invalidate(ctx, keys...)
	return updated, nil
}

func (c *CachedPartRepository) SetStock(ctx context.Context, id int64, stock int) (*model.Part, error) {
	p, err := c.PartRepository.SetStock(ctx, id, stock)
	if err != nil {
		return nil, err
	}

	c.invalidate(ctx, c.idKey(id))
	return p, nil
}

func (c *CachedPartRepository) AdjustStock(ctx context.Context, id int64, delta int) (int, int, error) {
	before, after, err := c.PartRepository.AdjustStock(ctx, id, delta)
	if err != nil {
		return 0, 0, err
	}

	c.invalidate(ctx, c.idKey(id))
	return before, after, nil
}

func (c *CachedPartRepository) Delete(ctx context.Context, id int64) error {
	keys := []string{c.idKey(id)}
	if old, err := c.PartRepository.PartByID(ctx, id); err == nil {
		keys = append(keys, c.codeKey(old.Code))
	}

	if err := c.PartRepository.Delete(ctx, id); err != nil {
		return err
	}

	c.invalidate(ctx, keys...)
	return nil
}

func (c *CachedPartRepository) store(ctx context.Context, p *model.Part) {
	data, err := json.Marshal(p)
	if err != nil {
		logger.Warn(ctx, "marshal part for cache", logger.ErrorF(err))
		return
	}

	c.set(ctx, c.idKey(p.ID), data, c.ttl)
	c.set(ctx, c.codeKey(p.Code), strconv.FormatInt(p.ID, 10), c.ttl)
}

func (c *CachedPartRepository) set(ctx context.Context, key string, value any, ttl time.Duration) {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		logger.Warn(ctx, "redis set", logger.String("key", key), logger.ErrorF(err))
	}
}

// invalidate drops keys now and once more after the surrounding transaction
// commits, so a read racing the transaction cannot leave a stale entry behind.
func (c *CachedPartRepository) invalidate(ctx context.Context, keys ...string) {
	del := func(ctx context.Context) {
		if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
			logger.Warn(ctx, "redis del", logger.Any("keys", keys), logger.ErrorF(err))
		}
	}

	if txmanager.InTx(ctx) {
		del(ctx)
	}
	txmanager.AfterCommit(ctx, del)
}
