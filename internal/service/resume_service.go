package service

import (
	"errors"

	"internhub/internal/models"
	"internhub/internal/repository"

	"gorm.io/gorm"
)

var ErrResumeExists = errors.New("you already have a resume, update it instead")

// ResumeInput is the full resume payload. Experiences and Education are
// replace-all on update: a nil slice keeps the existing entries, a non-nil
// slice (including empty) replaces them.
type ResumeInput struct {
	Title          string
	Summary        string
	Skills         string
	Languages      string
	Certifications string
	Experiences    []models.Experience
	Education      []models.Education
}

type ResumeService struct {
	resumes *repository.ResumeRepository
}

func NewResumeService(resumes *repository.ResumeRepository) *ResumeService {
	return &ResumeService{resumes: resumes}
}

// Create builds the student's resume with its entries in one all-or-nothing
// transaction. A student can have at most one resume.
func (s *ResumeService) Create(studentID uint, in ResumeInput) (*models.Resume, error) {
	if _, err := s.resumes.GetByStudentID(studentID); err == nil {
		return nil, ErrResumeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	res := &models.Resume{
		StudentID:      studentID,
		Title:          in.Title,
		Summary:        in.Summary,
		Skills:         in.Skills,
		Languages:      in.Languages,
		Certifications: in.Certifications,
	}
	if err := s.resumes.CreateWithEntries(res, in.Experiences, in.Education); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrResumeExists
		}
		return nil, err
	}
	return s.resumes.GetByID(res.ID)
}

func (s *ResumeService) GetOwn(studentID uint) (*models.Resume, error) {
	res, err := s.resumes.GetByStudentID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return res, nil
}

// Update rewrites the resume fields and bulk-replaces entry rows inside one
// transaction; any failure rolls everything back.
func (s *ResumeService) Update(studentID uint, in ResumeInput) (*models.Resume, error) {
	res, err := s.resumes.GetByStudentID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	res.Title = in.Title
	res.Summary = in.Summary
	res.Skills = in.Skills
	res.Languages = in.Languages
	res.Certifications = in.Certifications
	if err := s.resumes.ReplaceEntries(res, in.Experiences, in.Education); err != nil {
		return nil, err
	}
	return s.resumes.GetByID(res.ID)
}
