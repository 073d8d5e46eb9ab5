package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"sorabora/config"
	"sorabora/infras/otel/mocks"
	s3Mocks "sorabora/infras/s3/mocks"
	"sorabora/internal/domains/gallery/service"
	"sorabora/shared/cache"
	cacheMocks "sorabora/shared/cache/mocks"
)

func newGalleryService(t *testing.T) (service.Gallery, *s3Mocks.MockS3, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.GalleryPrefix = "gallery"

	return service.New(mockS3, mockCache, cfg, mockOtel), mockS3, mockCache
}

func TestGalleryService_Images(t *testing.T) {
	t.Run("cache hit skips the bucket", func(t *testing.T) {
		svc, _, mockCache := newGalleryService(t)

		cached := []string{"https://cdn.example/gallery/lake.jpg"}

		mockCache.EXPECT().
			Get(gomock.Any(), "gallery:gallery", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				target, _ := value.(*[]string)
				*target = cached

				return nil
			})

		urls, err := svc.Images(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, cached, urls)
	})

	t.Run("cache miss lists and caches", func(t *testing.T) {
		svc, mockS3, mockCache := newGalleryService(t)

		listed := []string{
			"https://cdn.example/gallery/lake.jpg",
			"https://cdn.example/gallery/garden.jpg",
		}

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		mockS3.EXPECT().
			ListObjects(gomock.Any(), "gallery").
			Return(listed, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), "gallery:gallery", listed, 3600).
			Return(nil)

		urls, err := svc.Images(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, listed, urls)
	})

	t.Run("bucket outage degrades to empty gallery", func(t *testing.T) {
		svc, mockS3, mockCache := newGalleryService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		mockS3.EXPECT().
			ListObjects(gomock.Any(), "gallery").
			Return(nil, errors.New("bucket unreachable"))

		urls, err := svc.Images(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, urls)
	})

	t.Run("cache save failure is tolerated", func(t *testing.T) {
		svc, mockS3, mockCache := newGalleryService(t)

		listed := []string{"https://cdn.example/gallery/lake.jpg"}

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		mockS3.EXPECT().
			ListObjects(gomock.Any(), "gallery").
			Return(listed, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("redis down"))

		urls, err := svc.Images(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, listed, urls)
	})
}
