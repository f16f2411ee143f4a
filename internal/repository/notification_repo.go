package repository

import (
	"time"

	"internhub/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

func (r *NotificationRepository) GetByID(id uint) (*models.Notification, error) {
	var n models.Notification
	err := r.db.First(&n, id).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// ListByUserID returns the user's notifications, newest first. seen filters
// on the seen marker when non-nil.
func (r *NotificationRepository) ListByUserID(userID uint, seen *bool, limit, offset int) ([]models.Notification, int64, error) {
	q := r.db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if seen != nil {
		if *seen {
			q = q.Where("seen_at IS NOT NULL")
		} else {
			q = q.Where("seen_at IS NULL")
		}
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var list []models.Notification
	err := q.Limit(limit).Offset(offset).Order("created_at DESC").Find(&list).Error
	return list, count, err
}

func (r *NotificationRepository) ListUnseen(userID uint, limit int) ([]models.Notification, error) {
	var list []models.Notification
	err := r.db.Where("user_id = ? AND seen_at IS NULL", userID).
		Order("created_at DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *NotificationRepository) MarkSeen(id, userID uint) (int64, error) {
	res := r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("seen_at", time.Now())
	return res.RowsAffected, res.Error
}

func (r *NotificationRepository) Update(n *models.Notification) error {
	return r.db.Save(n).Error
}

func (r *NotificationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Notification{}, id).Error
}

func (r *NotificationRepository) CountByUserAndType(userID uint, notifType string) (int64, error) {
	var c int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", userID, notifType).
		Count(&c).Error
	return c, err
}
