package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/joseeugenio/portfolio-backend/internal/logger"
	"github.com/joseeugenio/portfolio-backend/internal/repository"
	"github.com/joseeugenio/portfolio-backend/internal/service"
)

// ErrorHandler обрабатывает ошибки централизованно.
// Наружу проходят только известные sentinel ошибки; всё остальное считается
// внутренней ошибкой и маскируется генерным 500, детали остаются в логах.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Проверяем, не был ли уже отправлен ответ
		if c.Writer.Written() {
			return
		}

		if len(c.Errors) > 0 {
			err := c.Errors.Last()

			statusCode := http.StatusInternalServerError
			message := "внутренняя ошибка сервера"

			if logger.Log != nil {
				logger.Log.WithFields(logrus.Fields{
					"error":      err.Error(),
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"request_id": c.GetString(ContextRequestIDKey),
				}).Error("Request error")
			}

			switch {
			case errors.Is(err.Err, repository.ErrProjectNotFound):
				statusCode = http.StatusNotFound
				message = "проект не найден"
			case errors.Is(err.Err, repository.ErrSoftwareNotFound):
				statusCode = http.StatusNotFound
				message = "программа не найдена"
			case errors.Is(err.Err, repository.ErrMediaNotFound):
				statusCode = http.StatusNotFound
				message = "файл не найден"
			case errors.Is(err.Err, repository.ErrProfileNotFound):
				statusCode = http.StatusNotFound
				message = "профиль не найден"
			case errors.Is(err.Err, service.ErrUnknownCategory):
				statusCode = http.StatusBadRequest
				message = err.Error()
			}

			c.JSON(statusCode, gin.H{"error": message})
		}
	}
}
