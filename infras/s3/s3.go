package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"

	"sorabora/config"
	"sorabora/infras/otel"
	"sorabora/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrBucket = "bucket"
	otelAttrPrefix = "prefix"
)

// S3 exposes read access to the media bucket. The public site only lists
// objects; uploads are managed out-of-band.
type S3 interface {
	ListObjects(ctx context.Context, directory string) (urls []string, err error)
}

type s3Impl struct {
	Client *s3.Client
	Config *config.Config
	otel   otel.Otel
}

// ListObjects returns public URLs for every object beneath the directory
// prefix in the configured bucket.
func (svc *s3Impl) ListObjects(ctx context.Context, directory string) (urls []string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".ListObjects")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := svc.Config.External.S3.BucketName

	scope.SetAttributes(map[string]any{
		otelAttrBucket: bucketName,
		otelAttrPrefix: directory,
	})

	paginator := s3.NewListObjectsV2Paginator(svc.Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucketName),
		Prefix: aws.String(directory + "/"),
	})

	publicDomain := svc.Config.External.S3.PublicDomain

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			log.Error().Err(err).Str("bucket", bucketName).Msg("failed to list objects from S3")

			return nil, fmt.Errorf("failed to list objects from S3: %w", err)
		}

		for _, object := range page.Contents {
			key := aws.ToString(object.Key)
			if key == "" || key == directory+"/" {
				continue
			}

			urls = append(urls, fmt.Sprintf("%s/%s", publicDomain, key))
		}
	}

	return urls, nil
}

func New(config *config.Config, otel otel.Otel) S3 {
	endpoint := config.External.S3.APIEndpoint

	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &s3Impl{
		Client: s3Client,
		Config: config,
		otel:   otel,
	}
}
