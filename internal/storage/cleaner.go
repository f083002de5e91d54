package storage

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Cleaner удаляет физический объект, на который указывает локатор записи
// медиатеки. Запись в базе первична: все ошибки удаления объекта вызывающая
// сторона логирует и глотает, откатов нет.
type Cleaner struct {
	assetsRoot   string
	s3           *minio.Client
	bucket       string
	publicPrefix string
}

// NewCleaner создаёт очиститель для локальных файлов в каталоге ассетов.
func NewCleaner(assetsRoot string) (*Cleaner, error) {
	if err := os.MkdirAll(assetsRoot, 0o755); err != nil {
		return nil, fmt.Errorf("storage: не удалось создать каталог %s: %w", assetsRoot, err)
	}

	abs, err := filepath.Abs(assetsRoot)
	if err != nil {
		return nil, fmt.Errorf("storage: не удалось определить абсолютный путь %s: %w", assetsRoot, err)
	}

	return &Cleaner{assetsRoot: abs}, nil
}

// AttachS3 подключает объектное хранилище для удаления объектов по
// bucket-ссылкам. Без него такие локаторы просто пропускаются.
func (c *Cleaner) AttachS3(endpoint, accessKey, secretKey, bucket, publicURL string, useSSL bool) error {
	// Допускаем endpoint со схемой (http:// или https://)
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		endpoint = u.Host
		if u.Scheme == "https" {
			useSSL = true
		}
	}

	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return fmt.Errorf("storage: не удалось создать minio клиент: %w", err)
	}

	c.s3 = cli
	c.bucket = bucket
	c.publicPrefix = strings.TrimSuffix(publicURL, "/")
	return nil
}

// Remove удаляет объект по локатору. Отсутствующий локальный файл не считается
// ошибкой: запись могла указывать на уже удалённый или внешний объект.
func (c *Cleaner) Remove(ctx context.Context, locator string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch {
	case locator == "":
		return nil
	case strings.HasPrefix(locator, "data:"):
		// Байты лежат внутри самой записи, чистить нечего.
		return nil
	case strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://"):
		return c.removeRemote(ctx, locator)
	default:
		return c.removeLocal(locator)
	}
}

// removeRemote разбирает bucket и ключ из публичной ссылки и удаляет объект.
func (c *Cleaner) removeRemote(ctx context.Context, locator string) error {
	if c.s3 == nil {
		return fmt.Errorf("storage: объектное хранилище не настроено для %s", locator)
	}

	bucket, key, err := c.parseBucketKey(locator)
	if err != nil {
		return err
	}

	if err := c.s3.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("storage: не удалось удалить объект %s/%s: %w", bucket, key, err)
	}
	return nil
}

// parseBucketKey извлекает bucket и ключ объекта из публичной ссылки.
// Сначала пробует настроенный публичный префикс, затем supabase-подобный
// формат /storage/v1/object/public/<bucket>/<key>, затем обычный /<bucket>/<key>.
func (c *Cleaner) parseBucketKey(locator string) (string, string, error) {
	if c.publicPrefix != "" && strings.HasPrefix(locator, c.publicPrefix+"/") {
		key := strings.TrimPrefix(locator, c.publicPrefix+"/")
		if key != "" {
			return c.bucket, key, nil
		}
	}

	u, err := url.Parse(locator)
	if err != nil {
		return "", "", fmt.Errorf("storage: некорректная ссылка %s: %w", locator, err)
	}

	path := strings.TrimPrefix(u.Path, "/")

	if idx := strings.Index(path, "object/public/"); idx >= 0 {
		path = path[idx+len("object/public/"):]
	}

	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("storage: в ссылке %s нет bucket/key", locator)
	}

	return parts[0], parts[1], nil
}

// removeLocal удаляет файл из каталога публичных ассетов.
func (c *Cleaner) removeLocal(locator string) error {
	rel := filepath.FromSlash(strings.TrimPrefix(locator, "/"))
	target := filepath.Join(c.assetsRoot, rel)

	// Защита от выхода за пределы каталога ассетов через "..".
	if !strings.HasPrefix(filepath.Clean(target), c.assetsRoot+string(filepath.Separator)) {
		return fmt.Errorf("storage: путь %s выходит за пределы каталога ассетов", locator)
	}

	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: не удалось удалить файл %s: %w", target, err)
	}
	return nil
}
