package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"apridrive/internal/apperr"
	"apridrive/internal/model"
)

const metaOriginalName = "original-name"

// S3Config carries the settings of an S3-compatible backend (MinIO works
// through BaseEndpoint + path style).
type S3Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	// PublicBaseURL is the externally reachable prefix for public objects,
	// e.g. http://localhost:9000/uploads.
	PublicBaseURL string
}

// S3Store is the S3-compatible implementation of Store. Object ids are
// opaque uuids; the original file name travels in object metadata and the
// public-read grant is a separate PutObjectAcl call.
type S3Store struct {
	client    *s3.Client
	uploader  *manager.Uploader
	bucket    string
	publicURL string
}

func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Opts := []func(*s3.Options){}
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // required for MinIO
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)

	return &S3Store{
		client:    client,
		uploader:  manager.NewUploader(client),
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, staged *model.StagedFile, folder string) (*model.RemoteObject, error) {
	f, err := os.Open(staged.LocalPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrIO, err)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	id := uuid.New().String()
	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(folder, id)),
		Body:        f,
		ContentType: aws.String(staged.MimeType),
		Metadata:    map[string]string{metaOriginalName: staged.OriginalName},
	})
	if err != nil {
		return nil, classifyS3(err)
	}

	if err := s.grant(ctx, folder, id); err != nil {
		return nil, fmt.Errorf("%w: object %s: %v", apperr.ErrPermissionGrantFailed, id, err)
	}

	return &model.RemoteObject{
		ID:        path.Join(folder, id),
		Name:      staged.OriginalName,
		SizeBytes: staged.SizeBytes,
		MimeType:  staged.MimeType,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (s *S3Store) GrantPublicRead(ctx context.Context, id string) error {
	return s.grant(ctx, "", id)
}

func (s *S3Store) grant(ctx context.Context, folder, id string) error {
	_, err := s.client.PutObjectAcl(ctx, &s3.PutObjectAclInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(folder, id)),
		ACL:    types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return classifyS3(err)
	}
	return nil
}

func (s *S3Store) Stat(ctx context.Context, id string) (*model.ObjectInfo, error) {
	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(id),
	})
	if err != nil {
		return nil, classifyS3(err)
	}

	name := head.Metadata[metaOriginalName]
	if name == "" {
		name = path.Base(id)
	}

	info := &model.ObjectInfo{
		ID:         id,
		Name:       name,
		SizeBytes:  aws.ToInt64(head.ContentLength),
		MimeType:   aws.ToString(head.ContentType),
		ViewURL:    s.objectURL(id),
		ContentURL: s.objectURL(id) + "?response-content-disposition=" + url.QueryEscape("attachment"),
	}
	if head.LastModified != nil {
		info.CreatedAt = *head.LastModified
	}
	return info, nil
}

func (s *S3Store) Open(ctx context.Context, id string) (io.ReadCloser, *model.ObjectInfo, error) {
	info, err := s.Stat(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(id),
	})
	if err != nil {
		return nil, nil, classifyS3(err)
	}
	return out.Body, info, nil
}

func (s *S3Store) Links(id string) model.PreviewLinks {
	direct := s.objectURL(id)
	return model.PreviewLinks{
		Preview:       direct,
		Embed:         direct,
		PDFEmbed:      direct,
		ImageDirect:   direct,
		OfficePreview: fmt.Sprintf("https://docs.google.com/viewer?url=%s&embedded=true", url.QueryEscape(direct)),
	}
}

func (s *S3Store) key(folder, id string) string {
	if folder == "" {
		return id
	}
	return path.Join(folder, id)
}

func (s *S3Store) objectURL(id string) string {
	return s.publicURL + "/" + id
}

// classifyS3 maps S3 failures to the domain error taxonomy.
func classifyS3(err error) error {
	if err == nil {
		return nil
	}
	if mapped := classifyTransport(err); mapped != nil {
		return mapped
	}

	var noKey *types.NoSuchKey
	var notFound *types.NotFound
	if errors.As(err, &noKey) || errors.As(err, &notFound) {
		return fmt.Errorf("%w: %v", apperr.ErrNotFound, err)
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		if mapped := classifyStatus(respErr.HTTPStatusCode(), err); mapped != nil {
			return mapped
		}
	}

	return fmt.Errorf("%w: %v", apperr.ErrUpstream, err)
}
