package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/you-humble/autoparts/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type namedFunc struct {
	name string
	fn   func(context.Context) error
}

// Closer runs registered shutdown functions in reverse order of registration.
type Closer struct {
	mu     sync.Mutex
	once   sync.Once
	funcs  []namedFunc
	logger Logger
}

var globalCloser = New()

func New() *Closer {
	return &Closer{logger: &logger.NoopLogger{}}
}

func SetLogger(l Logger)                                   { globalCloser.SetLogger(l) }
func Add(fns ...func(context.Context) error)               { globalCloser.Add(fns...) }
func AddNamed(name string, fn func(context.Context) error) { globalCloser.AddNamed(name, fn) }
func CloseAll(ctx context.Context) error                   { return globalCloser.CloseAll(ctx) }

func (c *Closer) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger = l
}

func (c *Closer) Add(fns ...func(context.Context) error) {
	for _, fn := range fns {
		c.AddNamed("func", fn)
	}
}

func (c *Closer) AddNamed(name string, fn func(context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.funcs = append(c.funcs, namedFunc{name: name, fn: fn})
}

// CloseAll is safe to call more than once; only the first call runs the functions.
func (c *Closer) CloseAll(ctx context.Context) error {
	var result error

	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.funcs = nil
		log := c.logger
		c.mu.Unlock()

		if len(funcs) == 0 {
			return
		}

		log.Info(ctx, "🛑 closing resources", logger.Int("count", len(funcs)))

		errs := make([]error, 0, len(funcs))
		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]
			start := time.Now()

			if err := safeCall(ctx, f.fn); err != nil {
				log.Error(ctx, "❌ failed to close",
					logger.String("name", f.name),
					logger.ErrorF(err),
				)
				errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
				continue
			}

			log.Info(ctx, "✅ closed",
				logger.String("name", f.name),
				logger.Duration("duration", time.Since(start)),
			)
		}

		result = errors.Join(errs...)
	})

	return result
}

func safeCall(ctx context.Context, fn func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic recovered: %v", r)
		}
	}()

	return fn(ctx)
}
