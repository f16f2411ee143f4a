package repository

import (
	"internhub/internal/models"

	"gorm.io/gorm"
)

type ResumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{db: db}
}

func (r *ResumeRepository) GetByID(id uint) (*models.Resume, error) {
	var res models.Resume
	err := r.db.Preload("Experiences").Preload("Education").First(&res, id).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ResumeRepository) GetByStudentID(studentID uint) (*models.Resume, error) {
	var res models.Resume
	err := r.db.Where("student_id = ?", studentID).
		Preload("Experiences").Preload("Education").
		First(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateWithEntries inserts the resume and its experience/education rows in
// one transaction; a failure on any row rolls the whole resume back.
func (r *ResumeRepository) CreateWithEntries(res *models.Resume, experiences []models.Experience, education []models.Education) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(res).Error; err != nil {
			return err
		}
		for i := range experiences {
			experiences[i].ResumeID = res.ID
		}
		if len(experiences) > 0 {
			if err := tx.Create(&experiences).Error; err != nil {
				return err
			}
		}
		for i := range education {
			education[i].ResumeID = res.ID
		}
		if len(education) > 0 {
			if err := tx.Create(&education).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceEntries updates the resume fields and bulk-replaces the experience
// and/or education rows atomically. A nil slice leaves the existing rows in
// place; an empty non-nil slice clears them.
func (r *ResumeRepository) ReplaceEntries(res *models.Resume, experiences []models.Experience, education []models.Education) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(res).Select("title", "summary", "skills", "languages", "certifications").Updates(res).Error; err != nil {
			return err
		}
		if experiences != nil {
			if err := tx.Where("resume_id = ?", res.ID).Delete(&models.Experience{}).Error; err != nil {
				return err
			}
			for i := range experiences {
				experiences[i].ResumeID = res.ID
			}
			if len(experiences) > 0 {
				if err := tx.Create(&experiences).Error; err != nil {
					return err
				}
			}
		}
		if education != nil {
			if err := tx.Where("resume_id = ?", res.ID).Delete(&models.Education{}).Error; err != nil {
				return err
			}
			for i := range education {
				education[i].ResumeID = res.ID
			}
			if len(education) > 0 {
				if err := tx.Create(&education).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
