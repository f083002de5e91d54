package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joseeugenio/portfolio-backend/internal/models"
	"github.com/joseeugenio/portfolio-backend/internal/repository"
)

// ProfileStore описывает зависимости хэндлера от слоя хранилища.
type ProfileStore interface {
	Get(ctx context.Context) (*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) error
}

// profileRequest — входная схема профиля.
type profileRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email"`
	Location  string `json:"location"`
	Education string `json:"education"`
	BioPt     string `json:"bioPt"`
	BioEn     string `json:"bioEn"`
}

// ProfileHandler управляет единственным профилем владельца сайта.
type ProfileHandler struct {
	profile ProfileStore
}

// NewProfileHandler создаёт хэндлер.
func NewProfileHandler(profile ProfileStore) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// Get обрабатывает GET /api/profile. Публичный.
// Пока профиль не сохранён, отдаёт заглушку, чтобы страница не пустовала.
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profile.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			c.JSON(http.StatusOK, models.DefaultProfile())
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Save обрабатывает POST /api/profile: upsert по фиксированному id.
func (h *ProfileHandler) Save(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "поле name обязательно"})
		return
	}

	profile := &models.Profile{
		Name:      req.Name,
		Email:     req.Email,
		Location:  req.Location,
		Education: req.Education,
		BioPt:     req.BioPt,
		BioEn:     req.BioEn,
	}

	if err := h.profile.Upsert(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
