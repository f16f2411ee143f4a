package repository

import (
	"fmt"
	"testing"
	"time"

	"internhub/internal/database"
	"internhub/internal/domain"
	"internhub/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

var seq int

func seedUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()
	seq++
	u := &models.User{
		Name:        fmt.Sprintf("User %d", seq),
		Email:       fmt.Sprintf("user%d@example.com", seq),
		PhoneNumber: fmt.Sprintf("+2547%08d", seq),
		Role:        role,
		Status:      domain.UserStatusVerified,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedInternship(t *testing.T, db *gorm.DB, employerID uint, title, status string) *models.Internship {
	t.Helper()
	in := &models.Internship{
		EmployerID:  employerID,
		Title:       title,
		Description: "An internship",
		Location:    "Nairobi",
		StartDate:   time.Now(),
		EndDate:     time.Now().AddDate(0, 3, 0),
		Status:      status,
	}
	require.NoError(t, db.Create(in).Error)
	return in
}
