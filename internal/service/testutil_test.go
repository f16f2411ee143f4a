package service

import (
	"fmt"
	"testing"
	"time"

	"internhub/internal/database"
	"internhub/internal/domain"
	"internhub/internal/models"
	"internhub/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway in-memory database. MaxOpenConns(1) keeps every
// connection on the same in-memory instance.
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

var userSeq int

func seedUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()
	userSeq++
	u := &models.User{
		Name:        fmt.Sprintf("User %d", userSeq),
		Email:       fmt.Sprintf("user%d@example.com", userSeq),
		PhoneNumber: fmt.Sprintf("+2547%08d", userSeq),
		Role:        role,
		Status:      domain.UserStatusVerified,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedInternship(t *testing.T, db *gorm.DB, employerID uint, title string) *models.Internship {
	t.Helper()
	in := &models.Internship{
		EmployerID:  employerID,
		Title:       title,
		Description: "An internship",
		Location:    "Nairobi",
		StartDate:   time.Now().AddDate(0, 1, 0),
		EndDate:     time.Now().AddDate(0, 4, 0),
		Status:      domain.InternshipStatusActive,
	}
	require.NoError(t, db.Create(in).Error)
	return in
}

func seedResume(t *testing.T, db *gorm.DB, studentID uint) *models.Resume {
	t.Helper()
	res := &models.Resume{StudentID: studentID, Title: "Software Engineering Student"}
	require.NoError(t, db.Create(res).Error)
	return res
}

// appFixture wires the application workflow against a fresh database, with
// the notification repository exposed so tests can assert on fan-out.
type appFixture struct {
	db     *gorm.DB
	svc    *ApplicationService
	notifs *repository.NotificationRepository
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()
	db := newTestDB(t)
	notifRepo := repository.NewNotificationRepository(db)
	svc := NewApplicationService(
		repository.NewApplicationRepository(db),
		repository.NewInternshipRepository(db),
		repository.NewResumeRepository(db),
		NewNotificationService(notifRepo, nil),
	)
	return &appFixture{db: db, svc: svc, notifs: notifRepo}
}

func (f *appFixture) notificationCount(t *testing.T, userID uint) int64 {
	t.Helper()
	var c int64
	require.NoError(t, f.db.Model(&models.Notification{}).Where("user_id = ?", userID).Count(&c).Error)
	return c
}

func (f *appFixture) notificationTypes(t *testing.T, userID uint) []string {
	t.Helper()
	var types []string
	require.NoError(t, f.db.Model(&models.Notification{}).
		Where("user_id = ?", userID).Order("id").Pluck("type", &types).Error)
	return types
}
