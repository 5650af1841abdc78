package anexo

import (
	"context"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
)

// ConfigStorage aponta para qualquer endpoint compatível com S3 (MinIO, R2).
type ConfigStorage struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string
	UseSSL    bool
}

// Storage guarda e devolve os bytes dos anexos. Chamadas de escrita e remoção
// repetem com recuo exponencial em falha transitória.
type Storage struct {
	Cliente *minio.Client
	Bucket  string
}

func NovoStorage(cfg ConfigStorage) (*Storage, error) {
	cliente, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}
	return &Storage{Cliente: cliente, Bucket: cfg.Bucket}, nil
}

func (s *Storage) GarantirBucket(ctx context.Context) error {
	existe, err := s.Cliente.BucketExists(ctx, s.Bucket)
	if err != nil {
		return err
	}
	if !existe {
		return s.Cliente.MakeBucket(ctx, s.Bucket, minio.MakeBucketOptions{})
	}
	return nil
}

func (s *Storage) Enviar(ctx context.Context, chave string, r io.Reader, tamanho int64, contentType string) error {
	// PutObject precisa reposicionar o reader entre tentativas
	seeker, podeSeek := r.(io.ReadSeeker)
	return tentarComRecuo(ctx, 3, 200*time.Millisecond, func() error {
		if podeSeek {
			if _, err := seeker.Seek(0, io.SeekStart); err != nil {
				return err
			}
		}
		_, err := s.Cliente.PutObject(ctx, s.Bucket, chave, r, tamanho,
			minio.PutObjectOptions{ContentType: contentType})
		return err
	})
}

func (s *Storage) Baixar(ctx context.Context, chave string) (io.ReadCloser, error) {
	obj, err := s.Cliente.GetObject(ctx, s.Bucket, chave, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// GetObject é preguiçoso; Stat confirma que o objeto existe
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, err
	}
	return obj, nil
}

func (s *Storage) Remover(ctx context.Context, chave string) error {
	return tentarComRecuo(ctx, 3, 200*time.Millisecond, func() error {
		return s.Cliente.RemoveObject(ctx, s.Bucket, chave, minio.RemoveObjectOptions{})
	})
}

// RemoverTodos apaga em melhor esforço, registrando o que ficou para trás.
func (s *Storage) RemoverTodos(ctx context.Context, chaves []string) {
	for _, chave := range chaves {
		if err := s.Remover(ctx, chave); err != nil {
			log.Warn().Err(err).Str("chave", chave).Msg("objeto de anexo não removido do storage")
		}
	}
}
