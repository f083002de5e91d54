package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joseeugenio/portfolio-backend/internal/models"
	"github.com/joseeugenio/portfolio-backend/internal/repository"
)

// SoftwareStore описывает зависимости хэндлера от слоя хранилища.
type SoftwareStore interface {
	List(ctx context.Context) ([]models.Software, error)
	Create(ctx context.Context, software *models.Software) error
	Update(ctx context.Context, software *models.Software) error
	Delete(ctx context.Context, id int64) error
}

// softwareRequest — входная схема записи о программе.
type softwareRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	SortOrder   int    `json:"order"`
}

// SoftwareHandler управляет списком программ.
type SoftwareHandler struct {
	software SoftwareStore
}

// NewSoftwareHandler создаёт хэндлер.
func NewSoftwareHandler(software SoftwareStore) *SoftwareHandler {
	return &SoftwareHandler{software: software}
}

// List обрабатывает GET /api/software. Публичный, отсортирован по order.
func (h *SoftwareHandler) List(c *gin.Context) {
	software, err := h.software.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, software)
}

// Create обрабатывает POST /api/software.
func (h *SoftwareHandler) Create(c *gin.Context) {
	var req softwareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "поле name обязательно"})
		return
	}

	software := &models.Software{
		Name:        req.Name,
		Category:    req.Category,
		Icon:        req.Icon,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}

	if err := h.software.Create(c.Request.Context(), software); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, software)
}

// Update обрабатывает PUT /api/software/:id.
func (h *SoftwareHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный идентификатор"})
		return
	}

	var req softwareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "поле name обязательно"})
		return
	}

	software := &models.Software{
		ID:          id,
		Name:        req.Name,
		Category:    req.Category,
		Icon:        req.Icon,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}

	if err := h.software.Update(c.Request.Context(), software); err != nil {
		if errors.Is(err, repository.ErrSoftwareNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "программа не найдена"})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, software)
}

// Delete обрабатывает DELETE /api/software/:id.
func (h *SoftwareHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный идентификатор"})
		return
	}

	if err := h.software.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrSoftwareNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "программа не найдена"})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
