package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/joseeugenio/portfolio-backend/internal/logger"
	"github.com/joseeugenio/portfolio-backend/internal/models"
)

// ErrUnknownCategory возвращается при недопустимой категории медиафайла.
var ErrUnknownCategory = errors.New("неизвестная категория медиафайла")

// MediaRepository описывает зависимости MediaService от слоя хранилища.
type MediaRepository interface {
	List(ctx context.Context) ([]models.Media, error)
	Create(ctx context.Context, media *models.Media) error
	GetByID(ctx context.Context, id int64) (*models.Media, error)
	Delete(ctx context.Context, id int64) error
}

// ObjectCleaner удаляет физический объект по локатору.
type ObjectCleaner interface {
	Remove(ctx context.Context, locator string) error
}

// MediaService координирует запись медиатеки и её физический объект.
type MediaService struct {
	repo    MediaRepository
	cleaner ObjectCleaner
}

// NewMediaService создаёт сервис медиатеки.
func NewMediaService(repo MediaRepository, cleaner ObjectCleaner) *MediaService {
	return &MediaService{repo: repo, cleaner: cleaner}
}

// List возвращает все записи, свежие первыми.
func (s *MediaService) List(ctx context.Context) ([]models.Media, error) {
	return s.repo.List(ctx)
}

// Create регистрирует запись медиатеки. Пустая категория заменяется на
// "general", неизвестная отклоняется.
func (s *MediaService) Create(ctx context.Context, media *models.Media) error {
	if media.Category == "" {
		media.Category = models.MediaCategoryGeneral
	}
	if _, ok := models.ValidMediaCategories[media.Category]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, media.Category)
	}

	return s.repo.Create(ctx, media)
}

// Delete удаляет запись и затем, по возможности, её физический объект.
// Строка в базе первична: ошибка очистки объекта логируется и не откатывает
// удаление записи, осиротевший объект — допустимый исход.
func (s *MediaService) Delete(ctx context.Context, id int64) error {
	media, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.cleaner.Remove(ctx, media.URL); err != nil {
		if logger.Log != nil {
			logger.Log.WithFields(logrus.Fields{
				"media_id": id,
				"url":      media.URL,
				"error":    err.Error(),
			}).Warn("не удалось удалить объект медиатеки")
		}
	}

	return nil
}
