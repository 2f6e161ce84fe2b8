package bootstrap

import (
	"context"

	"teetime-exchange/internal/infra/cache"
	"teetime-exchange/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		func(client *redis.Client) redis.Cmdable { return client },
		fx.Annotate(
			cache.NewRedisTokenCache,
			fx.As(new(cache.TokenCache)),
		),
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}
