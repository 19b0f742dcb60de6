// Package filestore stores recipe images in an S3-compatible object store
// and hands back retrievable URLs.
package filestore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const recipeImagesDir = "recipes/images"

type FileStoreInterface interface {
	WriteRecipeImage(ctx context.Context, recipeID int64, suffix, contentType string, data []byte) (url string, err error)
	DeleteRecipeImage(ctx context.Context, imageURL string) error
}

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL overrides the endpoint in returned object URLs,
	// e.g. when the store sits behind a CDN or reverse proxy.
	PublicURL string
}

type FileStore struct {
	client *minio.Client
	bucket string
	public string
}

var _ FileStoreInterface = (*FileStore)(nil)

func New(conf Config) (*FileStore, error) {
	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating object store client: %w", err)
	}

	public := conf.PublicURL
	if public == "" {
		scheme := "http"
		if conf.UseSSL {
			scheme = "https"
		}
		public = fmt.Sprintf("%s://%s", scheme, conf.Endpoint)
	}

	return &FileStore{
		client: client,
		bucket: conf.Bucket,
		public: strings.TrimRight(public, "/"),
	}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (f *FileStore) EnsureBucket(ctx context.Context) error {
	exists, err := f.client.BucketExists(ctx, f.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := f.client.MakeBucket(ctx, f.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("creating bucket: %w", err)
	}
	return nil
}

func (f *FileStore) WriteRecipeImage(
	ctx context.Context, recipeID int64, suffix, contentType string, data []byte,
) (string, error) {
	object := recipeImagePath(recipeID, suffix)
	_, err := f.client.PutObject(ctx, f.bucket, object,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("writing recipe image: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s", f.public, f.bucket, object), nil
}

func (f *FileStore) DeleteRecipeImage(ctx context.Context, imageURL string) error {
	object := f.objectFromURL(imageURL)
	if object == "" {
		return nil
	}
	if err := f.client.RemoveObject(ctx, f.bucket, object, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("removing recipe image: %w", err)
	}
	return nil
}

func recipeImagePath(recipeID int64, suffix string) string {
	return fmt.Sprintf("%s/%d%s", recipeImagesDir, recipeID, suffix)
}

func (f *FileStore) objectFromURL(imageURL string) string {
	prefix := f.public + "/" + f.bucket + "/"
	if !strings.HasPrefix(imageURL, prefix) {
		return ""
	}
	return strings.TrimPrefix(imageURL, prefix)
}
