package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"grover-graphql/internal/cache"
	"grover-graphql/internal/ws"
	"grover-graphql/pkg/logger"
	"grover-graphql/pkg/validator"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("invalid input")
)

// Publisher receives change events for connected clients.
type Publisher interface {
	Publish(event ws.Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(ws.Event) {}

func publisherOrNop(p Publisher) Publisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}

func cacheOrNop(c cache.Cache) cache.Cache {
	if c == nil {
		return cache.NewNoop()
	}
	return c
}

// translate maps storage errors onto the service sentinels.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func validate(input interface{}) error {
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return errors.Wrap(ErrValidation, errs[0].Error())
	}
	return nil
}

// cached serves dst from c under key, filling it with load on a miss.
// Cache failures are logged and otherwise ignored.
func cached(ctx context.Context, c cache.Cache, key string, dst interface{}, load func() error) error {
	log := logger.FromContext(ctx)

	hit, err := c.Get(ctx, key, dst)
	if err != nil {
		log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return nil
	}

	if err := load(); err != nil {
		return err
	}

	if err := c.Set(ctx, key, dst); err != nil {
		log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return nil
}
