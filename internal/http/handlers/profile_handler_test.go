package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseeugenio/portfolio-backend/internal/models"
	"github.com/joseeugenio/portfolio-backend/internal/repository"
)

// profileStoreStub реализует ProfileStore в памяти: максимум одна строка.
type profileStoreStub struct {
	saved *models.Profile
	saves int
}

func (s *profileStoreStub) Get(ctx context.Context) (*models.Profile, error) {
	if s.saved == nil {
		return nil, repository.ErrProfileNotFound
	}
	copied := *s.saved
	return &copied, nil
}

func (s *profileStoreStub) Upsert(ctx context.Context, profile *models.Profile) error {
	profile.ID = models.ProfileID
	stored := *profile
	s.saved = &stored
	s.saves++
	return nil
}

func newProfileTestRouter() (*gin.Engine, *profileStoreStub) {
	gin.SetMode(gin.TestMode)
	store := &profileStoreStub{}
	handler := NewProfileHandler(store)

	r := gin.New()
	r.GET("/api/profile", handler.Get)
	r.POST("/api/profile", handler.Save)
	return r, store
}

func TestProfileHandler_GetReturnsPlaceholder(t *testing.T) {
	r, _ := newProfileTestRouter()

	req, _ := http.NewRequest("GET", "/api/profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var profile models.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, models.DefaultProfile().Name, profile.Name)
}

func TestProfileHandler_SaveIsUpsert(t *testing.T) {
	r, store := newProfileTestRouter()

	first := `{"name":"José","email":"a@b.c","bioPt":"первая версия"}`
	req, _ := http.NewRequest("POST", "/api/profile", bytes.NewBufferString(first))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	second := `{"name":"José","email":"a@b.c","bioPt":"вторая версия"}`
	req, _ = http.NewRequest("POST", "/api/profile", bytes.NewBufferString(second))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Строка всегда одна, последняя запись побеждает
	assert.Equal(t, 2, store.saves)
	assert.Equal(t, int64(models.ProfileID), store.saved.ID)
	assert.Equal(t, "вторая версия", store.saved.BioPt)
}

func TestProfileHandler_SaveRequiresName(t *testing.T) {
	r, _ := newProfileTestRouter()

	req, _ := http.NewRequest("POST", "/api/profile", bytes.NewBufferString(`{"email":"a@b.c"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
