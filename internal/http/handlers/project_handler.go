package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joseeugenio/portfolio-backend/internal/models"
	"github.com/joseeugenio/portfolio-backend/internal/repository"
)

// ProjectStore описывает зависимости хэндлера от слоя хранилища.
type ProjectStore interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id int64) error
}

// projectRequest — входная схема проекта. Поле обложки снаружи называется
// image, в базе — thumbnail; маппинг выполняется здесь в обе стороны.
type projectRequest struct {
	Title         string   `json:"title" binding:"required"`
	Location      string   `json:"location"`
	Year          string   `json:"year"`
	Image         string   `json:"image"`
	Gallery       []string `json:"gallery"`
	DescriptionPt string   `json:"descriptionPt"`
	DescriptionEn string   `json:"descriptionEn"`
}

// projectResponse — выходная схема проекта.
type projectResponse struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Location      string   `json:"location"`
	Year          string   `json:"year"`
	Image         string   `json:"image"`
	Gallery       []string `json:"gallery"`
	DescriptionPt string   `json:"descriptionPt"`
	DescriptionEn string   `json:"descriptionEn"`
}

// ProjectHandler управляет проектами портфолио.
type ProjectHandler struct {
	projects ProjectStore
}

// NewProjectHandler создаёт хэндлер.
func NewProjectHandler(projects ProjectStore) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// toProjectModel собирает модель из запроса.
func toProjectModel(req *projectRequest, id int64) *models.Project {
	gallery := req.Gallery
	if gallery == nil {
		gallery = []string{}
	}

	return &models.Project{
		ID:            id,
		Title:         req.Title,
		Location:      req.Location,
		Year:          req.Year,
		Thumbnail:     req.Image,
		Gallery:       gallery,
		DescriptionPt: req.DescriptionPt,
		DescriptionEn: req.DescriptionEn,
	}
}

// toProjectResponse собирает ответ из модели.
func toProjectResponse(p *models.Project) projectResponse {
	gallery := []string(p.Gallery)
	if gallery == nil {
		gallery = []string{}
	}

	return projectResponse{
		ID:            p.ID,
		Title:         p.Title,
		Location:      p.Location,
		Year:          p.Year,
		Image:         p.Thumbnail,
		Gallery:       gallery,
		DescriptionPt: p.DescriptionPt,
		DescriptionEn: p.DescriptionEn,
	}
}

// List обрабатывает GET /api/projects. Публичный.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	out := make([]projectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, toProjectResponse(&projects[i]))
	}

	c.JSON(http.StatusOK, out)
}

// Get обрабатывает GET /api/projects/:id. Публичный.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный идентификатор"})
		return
	}

	project, err := h.projects.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "проект не найден"})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(project))
}

// Create обрабатывает POST /api/projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "поле title обязательно"})
		return
	}

	project := toProjectModel(&req, 0)
	if err := h.projects.Create(c.Request.Context(), project); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, toProjectResponse(project))
}

// Update обрабатывает PUT /api/projects/:id.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный идентификатор"})
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "поле title обязательно"})
		return
	}

	project := toProjectModel(&req, id)
	if err := h.projects.Update(c.Request.Context(), project); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "проект не найден"})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(project))
}

// Delete обрабатывает DELETE /api/projects/:id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный идентификатор"})
		return
	}

	if err := h.projects.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "проект не найден"})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
