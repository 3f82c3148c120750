package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"mooza/internal/domain"
	"mooza/internal/search"
)

// OptionCache кэширует списки значений фасетов поверх справочника.
// Список для пары (фасет, ключ области) — чистая функция справочника,
// поэтому кэшируется с TTL без точечной инвалидации. При любой ошибке
// кэша запрос уходит в источник: кэш не должен ломать поиск.
type OptionCache struct {
	client *redis.Client
	source search.CatalogSource
	ttl    time.Duration
	logger *zap.Logger
}

func NewOptionCache(client *redis.Client, source search.CatalogSource, ttl time.Duration, logger *zap.Logger) *OptionCache {
	return &OptionCache{
		client: client,
		source: source,
		ttl:    ttl,
		logger: logger,
	}
}

func cacheKey(facet search.FacetID, scope *search.Scope) string {
	if scope == nil {
		return fmt.Sprintf("catalog:%s:all", facet)
	}
	return fmt.Sprintf("catalog:%s:%s:%d", facet, scope.Facet, scope.OptionID)
}

func (c *OptionCache) Options(ctx context.Context, facet search.FacetID, scope *search.Scope) ([]domain.Option, error) {
	key := cacheKey(facet, scope)

	cached, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var options []domain.Option
		if err := json.Unmarshal(cached, &options); err == nil {
			return options, nil
		}
		c.logger.Warn("повреждённая запись в кэше справочника", zap.String("key", key))
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("ошибка чтения из кэша справочника", zap.String("key", key), zap.Error(err))
	}

	options, err := c.source.Options(ctx, facet, scope)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(options)
	if err != nil {
		c.logger.Warn("ошибка сериализации значений справочника", zap.String("key", key), zap.Error(err))
		return options, nil
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("ошибка записи в кэш справочника", zap.String("key", key), zap.Error(err))
	}

	return options, nil
}
