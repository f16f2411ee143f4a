package repository

import (
	"internhub/internal/models"

	"gorm.io/gorm"
)

// ApplicationFilter narrows application listings. All fields are optional and
// combined with AND. EmployerID restricts results to applications whose
// internship belongs to that employer via a join, so rows never leave the
// database for other employers.
type ApplicationFilter struct {
	InternshipID uint
	StudentID    uint
	Status       string
	EmployerID   uint
}

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(app *models.Application) error {
	return r.db.Create(app).Error
}

func (r *ApplicationRepository) GetByID(id uint) (*models.Application, error) {
	var app models.Application
	err := r.db.Preload("Student").Preload("Internship").First(&app, id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetDetailed loads the full application view: student with nested resume
// (experiences and education) and the internship with its employer.
func (r *ApplicationRepository) GetDetailed(id uint) (*models.Application, error) {
	var app models.Application
	err := r.db.
		Preload("Student").
		Preload("Student.Resume").
		Preload("Student.Resume.Experiences").
		Preload("Student.Resume.Education").
		Preload("Internship").
		Preload("Internship.Employer").
		First(&app, id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) Exists(studentID, internshipID uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.Application{}).
		Where("student_id = ? AND internship_id = ?", studentID, internshipID).
		Count(&c).Error
	return c > 0, err
}

func (r *ApplicationRepository) List(f ApplicationFilter, limit, offset int) ([]models.Application, int64, error) {
	q := r.db.Model(&models.Application{})
	if f.InternshipID != 0 {
		q = q.Where("applications.internship_id = ?", f.InternshipID)
	}
	if f.StudentID != 0 {
		q = q.Where("applications.student_id = ?", f.StudentID)
	}
	if f.Status != "" {
		q = q.Where("applications.status = ?", f.Status)
	}
	if f.EmployerID != 0 {
		q = q.Joins("JOIN internships ON internships.id = applications.internship_id").
			Where("internships.employer_id = ?", f.EmployerID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var list []models.Application
	err := q.Preload("Student").Preload("Internship").Preload("Internship.Employer").
		Limit(limit).Offset(offset).Order("applications.applied_at DESC").Find(&list).Error
	return list, count, err
}

func (r *ApplicationRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Application{}).Where("id = ?", id).Update("status", status).Error
}

func (r *ApplicationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Application{}, id).Error
}
