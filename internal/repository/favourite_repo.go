package repository

import (
	"internhub/internal/domain"
	"internhub/internal/models"

	"gorm.io/gorm"
)

type FavouriteRepository struct {
	db *gorm.DB
}

func NewFavouriteRepository(db *gorm.DB) *FavouriteRepository {
	return &FavouriteRepository{db: db}
}

func (r *FavouriteRepository) Add(userID, internshipID uint) (*models.Favourite, error) {
	f := &models.Favourite{UserID: userID, InternshipID: internshipID}
	if err := r.db.Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

func (r *FavouriteRepository) Remove(userID, internshipID uint) (int64, error) {
	res := r.db.Where("user_id = ? AND internship_id = ?", userID, internshipID).Delete(&models.Favourite{})
	return res.RowsAffected, res.Error
}

func (r *FavouriteRepository) IsFavourite(userID, internshipID uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.Favourite{}).
		Where("user_id = ? AND internship_id = ?", userID, internshipID).
		Count(&c).Error
	return c > 0, err
}

// ListByUserID returns the user's favourites whose internship is still
// active, with the internship and its employer preloaded.
func (r *FavouriteRepository) ListByUserID(userID uint, limit, offset int) ([]models.Favourite, int64, error) {
	q := r.db.Model(&models.Favourite{}).
		Joins("JOIN internships ON internships.id = favourites.internship_id").
		Where("favourites.user_id = ? AND internships.status = ?", userID, domain.InternshipStatusActive)
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var list []models.Favourite
	err := q.Preload("Internship").Preload("Internship.Employer").
		Limit(limit).Offset(offset).Order("favourites.created_at DESC").Find(&list).Error
	return list, count, err
}
