package repository

import (
	"strings"
	"time"

	"internhub/internal/domain"
	"internhub/internal/models"

	"gorm.io/gorm"
)

// InternshipFilter narrows internship listings. ActiveOnly is an explicit
// choice made by the caller, not a default mutated into a shared filter.
type InternshipFilter struct {
	Title      string
	Location   string
	EmployerID uint
	ActiveOnly bool
}

type InternshipRepository struct {
	db *gorm.DB
}

func NewInternshipRepository(db *gorm.DB) *InternshipRepository {
	return &InternshipRepository{db: db}
}

func (r *InternshipRepository) Create(in *models.Internship) error {
	return r.db.Create(in).Error
}

func (r *InternshipRepository) GetByID(id uint) (*models.Internship, error) {
	var in models.Internship
	err := r.db.Preload("Employer").First(&in, id).Error
	if err != nil {
		return nil, err
	}
	return &in, nil
}

// GetByIDForEmployer scopes the lookup to the owning employer; returns
// gorm.ErrRecordNotFound when the internship exists but belongs to someone
// else, so callers cannot distinguish the two cases.
func (r *InternshipRepository) GetByIDForEmployer(id, employerID uint) (*models.Internship, error) {
	var in models.Internship
	err := r.db.Where("id = ? AND employer_id = ?", id, employerID).First(&in).Error
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *InternshipRepository) List(f InternshipFilter, limit, offset int) ([]models.Internship, int64, error) {
	q := r.db.Model(&models.Internship{})
	if f.Title != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(f.Title)+"%")
	}
	if f.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(f.Location)+"%")
	}
	if f.EmployerID != 0 {
		q = q.Where("employer_id = ?", f.EmployerID)
	}
	if f.ActiveOnly {
		q = q.Where("status = ?", domain.InternshipStatusActive)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var list []models.Internship
	err := q.Preload("Employer").Limit(limit).Offset(offset).Order("created_at DESC").Find(&list).Error
	return list, count, err
}

func (r *InternshipRepository) Update(in *models.Internship) error {
	return r.db.Save(in).Error
}

func (r *InternshipRepository) Delete(id uint) error {
	return r.db.Delete(&models.Internship{}, id).Error
}

// ExpirePast marks active internships whose end date has passed as expired.
// Returns the number of rows flipped.
func (r *InternshipRepository) ExpirePast(now time.Time) (int64, error) {
	res := r.db.Model(&models.Internship{}).
		Where("status = ? AND end_date < ?", domain.InternshipStatusActive, now).
		Update("status", domain.InternshipStatusExpired)
	return res.RowsAffected, res.Error
}
