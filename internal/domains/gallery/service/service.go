package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"

	"sorabora/config"
	"sorabora/infras/otel"
	"sorabora/infras/s3"
	"sorabora/shared"
	"sorabora/shared/cache"
	"sorabora/shared/constant"

	"github.com/rs/zerolog/log"
)

const cacheKeyPrefix = "gallery"

type Gallery interface {
	Images(ctx context.Context) ([]string, error)
}

type serviceImpl struct {
	storage s3.S3
	cache   cache.RedisCache
	cfg     *config.Config
	otel    otel.Otel
}

func New(storage s3.S3, redisCache cache.RedisCache, cfg *config.Config, otel otel.Otel) Gallery {
	return &serviceImpl{
		storage: storage,
		cache:   redisCache,
		cfg:     cfg,
		otel:    otel,
	}
}

// Images lists the public gallery image URLs, cache-aside over the bucket
// listing. A bucket outage degrades to an empty gallery rather than a
// broken page.
func (s *serviceImpl) Images(ctx context.Context) (urls []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Images")
	defer scope.End()
	defer scope.TraceIfError(err)

	key := shared.BuildCacheKey(cacheKeyPrefix, s.cfg.External.S3.GalleryPrefix)

	if err = s.cache.Get(ctx, key, &urls); err == nil {
		return urls, nil
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Msg("gallery cache read failed, falling back to bucket")
	}

	urls, err = s.storage.ListObjects(ctx, s.cfg.External.S3.GalleryPrefix)
	if err != nil {
		log.Error().Err(err).Msg("failed to list gallery images")

		return []string{}, nil
	}

	if err = s.cache.Save(ctx, key, urls, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to cache gallery images")
	}

	return urls, nil
}
