package database

import (
	"errors"
	"log"

	"internhub/config"
	"internhub/internal/domain"
	"internhub/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error), // Only log errors, not every SQL query
		// Unique violations surface as gorm.ErrDuplicatedKey, which backs the
		// (student_id, internship_id) duplicate-application guard.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Internship{},
		&models.Application{},
		&models.Resume{},
		&models.Experience{},
		&models.Education{},
		&models.Favourite{},
		&models.Notification{},
	)
}

// SeedAdmin creates the initial admin account if no admin exists yet.
func SeedAdmin(db *gorm.DB, cfg *config.AdminConfig) {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", domain.RoleAdmin).Count(&count).Error; err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	admin := &models.User{
		Name:         cfg.Name,
		Email:        cfg.Email,
		PhoneNumber:  cfg.Phone,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Status:       domain.UserStatusVerified,
	}
	if err := db.Create(admin).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		log.Printf("seed admin: %v", err)
		return
	}
	log.Printf("seeded admin account %s", cfg.Email)
}
