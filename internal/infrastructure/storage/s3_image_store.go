// Package storage implementa el gateway de imágenes sobre un almacén de
// objetos S3-compatible (AWS S3, MinIO, RustFS).
package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/pkg/config"
)

var _ ports.ImageStore = (*S3ImageStore)(nil)

// S3ImageStore implementación del puerto ImageStore usando AWS SDK v2.
// El id estable de cada imagen es su clave de objeto; la URL pública se
// construye con PublicBaseURL (o endpoint/bucket si no está configurada).
type S3ImageStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3ImageStore crea el gateway desde la configuración de la app.
func NewS3ImageStore(cfg config.StorageConfig) (*S3ImageStore, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket es requerido")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("storage access key y secret key son requeridos")
	}

	endpoint := cfg.Endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("endpoint de storage inválido: %w", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("crear configuración AWS: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		o.BaseEndpoint = aws.String(endpoint)
	})

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = strings.TrimRight(endpoint, "/") + "/" + cfg.Bucket
	}

	return &S3ImageStore{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Upload sube la imagen con una clave nueva y devuelve la referencia estable.
func (s *S3ImageStore) Upload(ctx context.Context, in ports.ImageUpload) (entity.Image, error) {
	key := "catalog/" + uuid.New().String() + strings.ToLower(path.Ext(in.Filename))

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   in.Content,
	}
	if in.ContentType != "" {
		input.ContentType = aws.String(in.ContentType)
	}
	if in.Size > 0 {
		input.ContentLength = aws.Int64(in.Size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return entity.Image{}, fmt.Errorf("put object %s: %w", key, err)
	}

	return entity.Image{
		StoreID: key,
		URL:     s.baseURL + "/" + key,
	}, nil
}

// Delete elimina el objeto identificado por storeID.
func (s *S3ImageStore) Delete(ctx context.Context, storeID string) error {
	if storeID == "" {
		return errors.New("storeID es requerido")
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storeID),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", storeID, err)
	}
	return nil
}
