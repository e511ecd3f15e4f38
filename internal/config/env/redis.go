package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type redisEnv struct {
	Address   string        `env:"REDIS_ADDR"`
	Password  string        `env:"REDIS_PASSWORD"`
	DB        int           `env:"REDIS_DB" envDefault:"0"`
	KeyPrefix string        `env:"REDIS_KEY_PREFIX" envDefault:"autoparts"`
	TTL       time.Duration `env:"REDIS_CACHE_TTL" envDefault:"5m"`
}

type redis struct {
	raw redisEnv
}

func NewRedisConfig() (*redis, error) {
	var raw redisEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &redis{raw: raw}, nil
}

func (cfg *redis) Enabled() bool      { return cfg.raw.Address != "" }
func (cfg *redis) Address() string    { return cfg.raw.Address }
func (cfg *redis) Password() string   { return cfg.raw.Password }
func (cfg *redis) DB() int            { return cfg.raw.DB }
func (cfg *redis) KeyPrefix() string  { return cfg.raw.KeyPrefix }
func (cfg *redis) TTL() time.Duration { return cfg.raw.TTL }
