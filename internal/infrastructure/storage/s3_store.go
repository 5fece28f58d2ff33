package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/invenmovil/inventario-api/internal/application/equipment"
	"github.com/invenmovil/inventario-api/pkg/config"
)

var _ equipment.BlobStore = (*S3Store)(nil)

// S3Store guarda las imágenes de equipos en un bucket S3 (AWS o compatible, ej. MinIO).
// Bucket único; las keys mapean directo a object keys.
type S3Store struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
	pathStyle     bool
	endpoint      string
}

// NewS3Store construye el store desde la configuración de la app.
// Las credenciales salen de la cadena por defecto del SDK (env, perfil, rol IAM).
func NewS3Store(ctx context.Context, cfg config.StorageConfig) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket de storage requerido")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("cargar config AWS: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &S3Store{
		client:        client,
		bucket:        cfg.Bucket,
		region:        region,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		pathStyle:     cfg.PathStyle,
		endpoint:      strings.TrimRight(cfg.Endpoint, "/"),
	}, nil
}

// Put sube el objeto en una sola operación. Sin reintentos propios: si falla,
// el caso de uso decide qué hacer (el SDK ya maneja reintentos de red).
func (s *S3Store) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:        &s.bucket,
		Key:           &key,
		Body:          r,
		ContentLength: aws.Int64(size),
	}
	if contentType != "" {
		input.ContentType = &contentType
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("subir objeto %s: %w", key, err)
	}
	return nil
}

// PublicURL devuelve la URL pública de lectura de una key.
// Si hay PublicBaseURL configurada (CDN, dominio propio) se usa esa base;
// si no, la URL estándar del bucket.
func (s *S3Store) PublicURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	if s.endpoint != "" {
		if s.pathStyle {
			return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
		}
		return fmt.Sprintf("%s/%s", s.endpoint, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
