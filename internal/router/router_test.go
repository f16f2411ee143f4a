package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"internhub/config"
	"internhub/internal/auth"
	"internhub/internal/database"
	"internhub/internal/domain"
	"internhub/internal/models"
	"internhub/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Env:       "test",
			RateLimit: config.RateLimitConfig{Requests: 1000, Window: time.Minute},
		},
		JWT: config.JWTConfig{
			AccessSecret:  "test-access-secret",
			RefreshSecret: "test-refresh-secret",
			AccessExpiry:  time.Minute,
			RefreshExpiry: time.Hour,
			Issuer:        "internhub-test",
		},
	}
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))
	cfg := testConfig()
	return Setup(cfg, db, nil, ws.NewHub()), db, cfg
}

func bearerFor(t *testing.T, cfg *config.Config, u *models.User) string {
	t.Helper()
	token, err := auth.GenerateAccessToken(&cfg.JWT, u.ID, u.Email, u.Role, u.Status)
	require.NoError(t, err)
	return "Bearer " + token
}

func seedCatalogue(t *testing.T, db *gorm.DB) (*models.User, *models.Internship) {
	t.Helper()
	org := &models.User{
		Name: "Acme", Email: "acme@example.com", PhoneNumber: "+254700000001",
		Role: domain.RoleOrganisation, Status: domain.UserStatusVerified,
	}
	require.NoError(t, db.Create(org).Error)
	in := &models.Internship{
		EmployerID: org.ID, Title: "Backend Intern", Description: "d", Location: "Nairobi",
		StartDate: time.Now(), EndDate: time.Now().AddDate(0, 3, 0),
		Status: domain.InternshipStatusActive,
	}
	require.NoError(t, db.Create(in).Error)
	return org, in
}

func TestCatalogueIsPublic(t *testing.T) {
	r, db, _ := newTestRouter(t)
	_, in := seedCatalogue(t, db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/internships", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Backend Intern")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/internships/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// writes still require a token
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/internships/1", strings.NewReader(`{"title":"Hijacked"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var got models.Internship
	require.NoError(t, db.First(&got, in.ID).Error)
	assert.Equal(t, "Backend Intern", got.Title)
}

func TestAdminCanManageForeignInternship(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	seedCatalogue(t, db)
	admin := &models.User{
		Name: "Admin", Email: "admin@example.com", PhoneNumber: "+254700000002",
		Role: domain.RoleAdmin, Status: domain.UserStatusVerified,
	}
	require.NoError(t, db.Create(admin).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/internships/1", strings.NewReader(`{"title":"Moderated Title"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, cfg, admin))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Internship
	require.NoError(t, db.First(&got, 1).Error)
	assert.Equal(t, "Moderated Title", got.Title)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/internships/1", nil)
	req.Header.Set("Authorization", bearerFor(t, cfg, admin))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
