package handlers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/h2non/filetype"

	"github.com/joseeugenio/portfolio-backend/internal/models"
	"github.com/joseeugenio/portfolio-backend/internal/repository"
	"github.com/joseeugenio/portfolio-backend/internal/service"
)

// Разрешённые типы изображений для загрузки
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// MediaHandler управляет медиатекой: список, регистрация, загрузка, удаление.
type MediaHandler struct {
	media          *service.MediaService
	maxUploadBytes int64
}

// NewMediaHandler создаёт хэндлер.
func NewMediaHandler(media *service.MediaService, maxUploadMB int64) *MediaHandler {
	return &MediaHandler{
		media:          media,
		maxUploadBytes: maxUploadMB * 1024 * 1024,
	}
}

// List обрабатывает GET /api/media. Публичный, свежие записи первыми.
func (h *MediaHandler) List(c *gin.Context) {
	media, err := h.media.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, media)
}

// Create обрабатывает POST /api/media — регистрация записи без загрузки
// байтов, когда объект уже лежит где-то снаружи.
func (h *MediaHandler) Create(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required"`
		URL         string  `json:"url" binding:"required"`
		Type        string  `json:"type"`
		Category    string  `json:"category"`
		ProjectName *string `json:"projectName"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "требуются name и url"})
		return
	}

	media := &models.Media{
		Name:        req.Name,
		URL:         req.URL,
		Type:        req.Type,
		Category:    req.Category,
		ProjectName: req.ProjectName,
	}

	if err := h.media.Create(c.Request.Context(), media); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, media)
}

// Delete обрабатывает DELETE /api/media?id=N.
// Повторное удаление того же id отвечает 404: запись уже исчезла.
func (h *MediaHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный идентификатор"})
		return
	}

	if err := h.media.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrMediaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "файл не найден"})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Upload обрабатывает POST /api/upload.
// Контент кодируется в data-URI и живёт внутри записи медиатеки: у сервиса
// может не быть записываемого диска, поэтому файловая система не используется.
func (h *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "файл не передан"})
		return
	}

	if file.Size > h.maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   fmt.Sprintf("файл слишком большой (максимум %d МБ)", h.maxUploadBytes/(1024*1024)),
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.Error(err)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, h.maxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "не удалось прочитать файл"})
		return
	}
	if int64(len(data)) > h.maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   fmt.Sprintf("файл слишком большой (максимум %d МБ)", h.maxUploadBytes/(1024*1024)),
		})
		return
	}

	// Тип определяем по магическим байтам, заголовку клиента не доверяем
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown || !allowedMimeTypes[kind.MIME.Value] {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "недопустимый тип файла, разрешены только изображения (jpeg, png, webp, gif)",
		})
		return
	}
	contentType := kind.MIME.Value

	projectName := c.PostForm("projectName")
	media := &models.Media{
		Name:     file.Filename,
		URL:      fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)),
		Type:     contentType,
		Category: c.PostForm("category"),
	}
	if projectName != "" {
		media.ProjectName = &projectName
	}

	if err := h.media.Create(c.Request.Context(), media); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "media": media})
}
