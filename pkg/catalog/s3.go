package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ilkoid/stylematch/pkg/config"
)

// S3Source — загрузка CSV каталога из объектного хранилища.
//
// "Тупой" клиент: скачивает объект целиком в память и отдаёт его
// разбору ReadCSV. Никакого кэширования и повторов.
type S3Source struct {
	api    *minio.Client
	bucket string
	key    string
}

// NewS3Source создаёт источник, используя наш конфиг.
func NewS3Source(cfg config.S3Config, key string) (*S3Source, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}

	return &S3Source{
		api:    minioClient,
		bucket: cfg.Bucket,
		key:    key,
	}, nil
}

// Records скачивает объект и разбирает его как CSV каталог.
func (s *S3Source) Records(ctx context.Context) ([]Record, error) {
	obj, err := s.api.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", s.key, err)
	}
	defer obj.Close()

	// Читаем в буфер
	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, obj); err != nil {
		return nil, fmt.Errorf("failed to download %s from bucket %s: %w", s.key, s.bucket, err)
	}

	records, err := ReadCSV(buf)
	if err != nil {
		return nil, fmt.Errorf("s3 object %s: %w", s.key, err)
	}
	return records, nil
}
