package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseeugenio/portfolio-backend/internal/models"
	"github.com/joseeugenio/portfolio-backend/internal/repository"
	"github.com/joseeugenio/portfolio-backend/internal/service"
)

// mediaRepoStub реализует service.MediaRepository в памяти.
type mediaRepoStub struct {
	byID   map[int64]*models.Media
	nextID int64
}

func newMediaRepoStub() *mediaRepoStub {
	return &mediaRepoStub{byID: make(map[int64]*models.Media), nextID: 1}
}

func (m *mediaRepoStub) List(ctx context.Context) ([]models.Media, error) {
	out := make([]models.Media, 0, len(m.byID))
	for _, media := range m.byID {
		out = append(out, *media)
	}
	return out, nil
}

func (m *mediaRepoStub) Create(ctx context.Context, media *models.Media) error {
	media.ID = m.nextID
	media.CreatedAt = time.Now()
	m.nextID++
	stored := *media
	m.byID[media.ID] = &stored
	return nil
}

func (m *mediaRepoStub) GetByID(ctx context.Context, id int64) (*models.Media, error) {
	if media, ok := m.byID[id]; ok {
		copied := *media
		return &copied, nil
	}
	return nil, repository.ErrMediaNotFound
}

func (m *mediaRepoStub) Delete(ctx context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return repository.ErrMediaNotFound
	}
	delete(m.byID, id)
	return nil
}

// cleanerStub — очиститель, который ничего не делает.
type cleanerStub struct{}

func (cleanerStub) Remove(ctx context.Context, locator string) error { return nil }

func newMediaTestRouter() (*gin.Engine, *mediaRepoStub) {
	gin.SetMode(gin.TestMode)
	repo := newMediaRepoStub()
	handler := NewMediaHandler(service.NewMediaService(repo, cleanerStub{}), 5)

	r := gin.New()
	r.GET("/api/media", handler.List)
	r.POST("/api/media", handler.Create)
	r.DELETE("/api/media", handler.Delete)
	r.POST("/api/upload", handler.Upload)
	return r, repo
}

// multipartUpload собирает multipart тело с файлом и полями формы.
func multipartUpload(t *testing.T, fileName string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

// pngPayload возвращает валидный по магическим байтам PNG нужного размера.
func pngPayload(size int) []byte {
	payload := make([]byte, size)
	copy(payload, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})
	return payload
}

func TestMediaHandler_UploadMissingFile(t *testing.T) {
	r, _ := newMediaTestRouter()

	body, contentType := multipartUpload(t, "", nil, map[string]string{"category": "general"})
	req, _ := http.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "файл не передан")
}

func TestMediaHandler_UploadTooLarge(t *testing.T) {
	r, repo := newMediaTestRouter()

	body, contentType := multipartUpload(t, "big.png", pngPayload(6*1024*1024), nil)
	req, _ := http.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "слишком большой")
	assert.Empty(t, repo.byID)
}

func TestMediaHandler_UploadWrongType(t *testing.T) {
	r, repo := newMediaTestRouter()

	body, contentType := multipartUpload(t, "notes.txt", []byte("просто текст"), nil)
	req, _ := http.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "недопустимый тип файла")
	assert.Empty(t, repo.byID)
}

func TestMediaHandler_UploadValidPNG(t *testing.T) {
	r, repo := newMediaTestRouter()

	body, contentType := multipartUpload(t, "photo.png", pngPayload(2*1024*1024), map[string]string{
		"category":    "gallery",
		"projectName": "Casa Azul",
	})
	req, _ := http.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool         `json:"success"`
		Media   models.Media `json:"media"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "photo.png", resp.Media.Name)
	assert.Equal(t, "image/png", resp.Media.Type)
	assert.Equal(t, models.MediaCategoryGallery, resp.Media.Category)
	require.NotNil(t, resp.Media.ProjectName)
	assert.Equal(t, "Casa Azul", *resp.Media.ProjectName)
	assert.Contains(t, resp.Media.URL, "data:image/png;base64,")
	assert.Len(t, repo.byID, 1)
}

func TestMediaHandler_DeleteTwice(t *testing.T) {
	r, repo := newMediaTestRouter()

	media := &models.Media{Name: "photo.png", URL: "data:image/png;base64,AAAA", Category: models.MediaCategoryGeneral}
	require.NoError(t, repo.Create(context.Background(), media))

	url := fmt.Sprintf("/api/media?id=%d", media.ID)

	req, _ := http.NewRequest("DELETE", url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	req, _ = http.NewRequest("DELETE", url, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMediaHandler_DeleteInvalidID(t *testing.T) {
	r, _ := newMediaTestRouter()

	req, _ := http.NewRequest("DELETE", "/api/media?id=abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMediaHandler_CreateMetadataOnly(t *testing.T) {
	r, _ := newMediaTestRouter()

	payload := `{"name":"external.jpg","url":"https://cdn.example.com/media/external.jpg","type":"image/jpeg","category":"thumbnail"}`
	req, _ := http.NewRequest("POST", "/api/media", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var media models.Media
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &media))
	assert.NotZero(t, media.ID)
	assert.Equal(t, models.MediaCategoryThumbnail, media.Category)
}
