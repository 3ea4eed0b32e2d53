package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"stylistapi/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var ErrUnsupportedFile = errors.New("unsupported file type")

// UploadFolders are the object key prefixes accepted for uploads.
var UploadFolders = []string{"clothing", "outfits", "guides", "analysis"}

type AWSServiceProvider interface {
	PresignUploadURL(ctx context.Context, objectKey string) (string, error)
	GetPresignedReadURL(ctx context.Context, objectKey string) (string, error)
}

// AWSService presigns object URLs against an R2 bucket.
type AWSService struct {
	S3PresignClient *s3.PresignClient
	BucketName      string
	Expiration      time.Duration
}

func NewAWSService(ctx context.Context, cfg config.UploadsConfig) (*AWSService, error) {
	service := &AWSService{BucketName: cfg.BucketName, Expiration: cfg.URLExpiration}
	if err := service.InitPresignClient(ctx, cfg); err != nil {
		return nil, err
	}
	return service, nil
}

func (awsService *AWSService) InitPresignClient(ctx context.Context, cfg config.UploadsConfig) error {
	r2Resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID),
		}, nil
	})
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithEndpointResolverWithOptions(r2Resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.AccessKeySecret, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %w", err)
	}

	awsService.S3PresignClient = s3.NewPresignClient(s3.NewFromConfig(awsCfg))
	return nil
}

func (awsService *AWSService) PresignUploadURL(ctx context.Context, objectKey string) (string, error) {
	request, err := awsService.S3PresignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(awsService.BucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(awsService.Expiration))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return request.URL, nil
}

func (awsService *AWSService) GetPresignedReadURL(ctx context.Context, objectKey string) (string, error) {
	request, err := awsService.S3PresignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(awsService.BucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(awsService.Expiration))
	if err != nil {
		return "", fmt.Errorf("failed to presign request: %w", err)
	}
	return request.URL, nil
}

// NewObjectKey returns a fresh key for fileName under folder, keeping the
// lowercased extension.
func NewObjectKey(folder, fileName string) (string, error) {
	if !IsAllowedImageFile(fileName) {
		return "", fmt.Errorf("%w %q, expected one of: %s", ErrUnsupportedFile, filepath.Ext(fileName), AllowedImageExtensions())
	}
	return fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), strings.ToLower(filepath.Ext(fileName))), nil
}
