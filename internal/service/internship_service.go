package service

import (
	"errors"

	"internhub/internal/domain"
	"internhub/internal/models"
	"internhub/internal/repository"
	"internhub/pkg/pagination"

	"gorm.io/gorm"
)

// InternshipQuery carries the public listing filters. Expired postings are
// only included when IncludeExpired is set explicitly (admin and owner
// views); the default is active-only, decided here rather than mutated into
// a shared filter object.
type InternshipQuery struct {
	Title          string
	Location       string
	EmployerID     uint
	IncludeExpired bool
	pagination.Params
}

type InternshipService struct {
	internships *repository.InternshipRepository
}

func NewInternshipService(internships *repository.InternshipRepository) *InternshipService {
	return &InternshipService{internships: internships}
}

func (s *InternshipService) Create(in *models.Internship) error {
	return s.internships.Create(in)
}

func (s *InternshipService) Get(id uint) (*models.Internship, error) {
	in, err := s.internships.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, err
	}
	return in, nil
}

func (s *InternshipService) List(q InternshipQuery) ([]models.Internship, int64, error) {
	f := repository.InternshipFilter{
		Title:      q.Title,
		Location:   q.Location,
		EmployerID: q.EmployerID,
		ActiveOnly: !q.IncludeExpired,
	}
	limit, offset := q.LimitOffset()
	return s.internships.List(f, limit, offset)
}

// getForWrite resolves an internship for mutation. Organisations get an
// owner-scoped lookup, so a foreign internship reads as not found; admins
// may touch any internship.
func (s *InternshipService) getForWrite(caller domain.Caller, id uint) (*models.Internship, error) {
	var (
		in  *models.Internship
		err error
	)
	if caller.IsAdmin() {
		in, err = s.internships.GetByID(id)
	} else {
		in, err = s.internships.GetByIDForEmployer(id, caller.ID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, err
	}
	return in, nil
}

// Update applies the changes to an internship the caller may edit.
func (s *InternshipService) Update(caller domain.Caller, id uint, apply func(*models.Internship)) (*models.Internship, error) {
	in, err := s.getForWrite(caller, id)
	if err != nil {
		return nil, err
	}
	apply(in)
	if err := s.internships.Update(in); err != nil {
		return nil, err
	}
	return s.internships.GetByID(id)
}

func (s *InternshipService) Remove(caller domain.Caller, id uint) error {
	if _, err := s.getForWrite(caller, id); err != nil {
		return err
	}
	return s.internships.Delete(id)
}

// Own lists the employer's postings, expired ones included.
func (s *InternshipService) Own(employerID uint, q InternshipQuery) ([]models.Internship, int64, error) {
	q.EmployerID = employerID
	q.IncludeExpired = true
	return s.List(q)
}
