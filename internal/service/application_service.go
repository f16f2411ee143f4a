package service

import (
	"errors"
	"log"
	"time"

	"internhub/internal/domain"
	"internhub/internal/models"
	"internhub/internal/repository"
	"internhub/pkg/pagination"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrInternshipNotFound  = errors.New("internship not found")
	ErrResumeNotFound      = errors.New("resume not found")
	ErrAlreadyApplied      = errors.New("you have already applied for this internship")
	ErrResumeRequired      = errors.New("you need to create a resume before applying for internships")
	ErrForbidden           = errors.New("you do not have permission to perform this action")
	ErrInvalidStatus       = errors.New("invalid application status")
)

// ApplicationQuery carries the optional list filters plus pagination. The
// service narrows it per caller role before it reaches the repository.
type ApplicationQuery struct {
	InternshipID uint
	StudentID    uint
	Status       string
	pagination.Params
}

type ApplicationService struct {
	apps        *repository.ApplicationRepository
	internships *repository.InternshipRepository
	resumes     *repository.ResumeRepository
	notifier    *NotificationService
}

func NewApplicationService(
	apps *repository.ApplicationRepository,
	internships *repository.InternshipRepository,
	resumes *repository.ResumeRepository,
	notifier *NotificationService,
) *ApplicationService {
	return &ApplicationService{apps: apps, internships: internships, resumes: resumes, notifier: notifier}
}

// Create submits a new application for the calling student. The student must
// have a resume and must not have applied to this internship before; the
// composite unique index backs the pre-check against concurrent submissions.
// The employer is notified on success.
func (s *ApplicationService) Create(studentID, internshipID uint) (*models.Application, error) {
	internship, err := s.internships.GetByID(internshipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, err
	}
	exists, err := s.apps.Exists(studentID, internshipID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyApplied
	}
	if _, err := s.resumes.GetByStudentID(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeRequired
		}
		return nil, err
	}

	app := &models.Application{
		StudentID:    studentID,
		InternshipID: internshipID,
		Status:       domain.ApplicationStatusPending,
		AppliedAt:    time.Now(),
	}
	if err := s.apps.Create(app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}

	created, err := s.apps.GetByID(app.ID)
	if err != nil {
		return app, nil
	}
	studentName := ""
	if created.Student != nil {
		studentName = created.Student.Name
	}
	if err := s.notifier.NotifyNewApplication(internship.EmployerID, created, internship, studentName); err != nil {
		log.Printf("application %d: employer notification failed: %v", created.ID, err)
	}
	return created, nil
}

// List returns applications visible to the caller. Students are forced onto
// their own applications; organisations are restricted to applications whose
// internship they own (via a join, not a post-filter); admins see the filter
// as supplied.
func (s *ApplicationService) List(caller domain.Caller, q ApplicationQuery) ([]models.Application, int64, error) {
	f := repository.ApplicationFilter{
		InternshipID: q.InternshipID,
		StudentID:    q.StudentID,
		Status:       q.Status,
	}
	switch caller.Role {
	case domain.RoleAdmin:
	case domain.RoleStudent:
		f.StudentID = caller.ID
	case domain.RoleOrganisation:
		f.StudentID = 0
		f.EmployerID = caller.ID
	default:
		return nil, 0, ErrForbidden
	}
	limit, offset := q.LimitOffset()
	return s.apps.List(f, limit, offset)
}

// Get returns the full application view when the caller may see it.
func (s *ApplicationService) Get(caller domain.Caller, id uint) (*models.Application, error) {
	app, err := s.getDetailed(id)
	if err != nil {
		return nil, err
	}
	if !canAccessApplication(caller, factsOf(app)) {
		return nil, ErrForbidden
	}
	return app, nil
}

// UpdateStatus transitions the application status. Any status may follow any
// other; there is deliberately no transition graph, so a decided application
// can be re-opened back to pending. Notifications fan out only when the
// status actually changes, after the update has committed.
func (s *ApplicationService) UpdateStatus(caller domain.Caller, id uint, newStatus string) (*models.Application, error) {
	switch newStatus {
	case domain.ApplicationStatusPending, domain.ApplicationStatusApproved, domain.ApplicationStatusRejected:
	default:
		return nil, ErrInvalidStatus
	}
	app, err := s.getDetailed(id)
	if err != nil {
		return nil, err
	}
	if !canUpdateApplicationStatus(caller, factsOf(app)) {
		return nil, ErrForbidden
	}
	oldStatus := app.Status
	if newStatus != oldStatus {
		if err := s.apps.UpdateStatus(id, newStatus); err != nil {
			return nil, err
		}
		s.fanOutStatusChange(app, oldStatus, newStatus)
	}
	return s.getDetailed(id)
}

// Remove deletes an application; the same visibility matrix as Get governs
// deletion rights.
func (s *ApplicationService) Remove(caller domain.Caller, id uint) error {
	app, err := s.getDetailed(id)
	if err != nil {
		return err
	}
	if !canAccessApplication(caller, factsOf(app)) {
		return ErrForbidden
	}
	return s.apps.Delete(id)
}

// ResumeFor returns the applicant's resume for callers allowed to see the
// application itself.
func (s *ApplicationService) ResumeFor(caller domain.Caller, id uint) (*models.Resume, error) {
	app, err := s.getDetailed(id)
	if err != nil {
		return nil, err
	}
	if !canAccessApplication(caller, factsOf(app)) {
		return nil, ErrForbidden
	}
	resume, err := s.resumes.GetByStudentID(app.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return resume, nil
}

func (s *ApplicationService) getDetailed(id uint) (*models.Application, error) {
	app, err := s.apps.GetDetailed(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}

func factsOf(app *models.Application) applicationFacts {
	f := applicationFacts{studentID: app.StudentID}
	if app.Internship != nil {
		f.employerID = app.Internship.EmployerID
	}
	return f
}

// statusChangeRule is one (condition, recipient, template) tuple of the
// status-change fan-out. Rules are evaluated in order; every matching rule
// fires.
type statusChangeRule struct {
	applies func(newStatus string) bool
	send    func(n *NotificationService, app *models.Application, oldStatus, newStatus string) error
}

var statusChangeRules = []statusChangeRule{
	{
		// approval: tell the student, naming employer and internship
		applies: func(s string) bool { return s == domain.ApplicationStatusApproved },
		send: func(n *NotificationService, app *models.Application, _, _ string) error {
			return n.NotifyApplicationAccepted(app.StudentID, app.ID, employerNameOf(app), internshipTitleOf(app))
		},
	},
	{
		// approval: confirmation back to the employer
		applies: func(s string) bool { return s == domain.ApplicationStatusApproved },
		send: func(n *NotificationService, app *models.Application, _, _ string) error {
			return n.NotifyEmployerAccepted(employerIDOf(app), app.ID, studentNameOf(app), internshipTitleOf(app))
		},
	},
	{
		// rejection: tell the student, naming employer and internship
		applies: func(s string) bool { return s == domain.ApplicationStatusRejected },
		send: func(n *NotificationService, app *models.Application, _, _ string) error {
			return n.NotifyApplicationRejected(app.StudentID, app.ID, employerNameOf(app), internshipTitleOf(app))
		},
	},
	{
		// any other change (e.g. re-opened to pending): generic status message
		applies: func(s string) bool {
			return s != domain.ApplicationStatusApproved && s != domain.ApplicationStatusRejected
		},
		send: func(n *NotificationService, app *models.Application, oldStatus, newStatus string) error {
			return n.NotifyStatusUpdated(app.StudentID, app.ID, oldStatus, newStatus)
		},
	},
}

// fanOutStatusChange runs the rule table. The status update has already
// committed; notification failures are logged and ignored.
func (s *ApplicationService) fanOutStatusChange(app *models.Application, oldStatus, newStatus string) {
	for _, rule := range statusChangeRules {
		if !rule.applies(newStatus) {
			continue
		}
		if err := rule.send(s.notifier, app, oldStatus, newStatus); err != nil {
			log.Printf("application %d: status notification failed: %v", app.ID, err)
		}
	}
}

func employerIDOf(app *models.Application) uint {
	if app.Internship != nil {
		return app.Internship.EmployerID
	}
	return 0
}

func employerNameOf(app *models.Application) string {
	if app.Internship != nil && app.Internship.Employer != nil {
		return app.Internship.Employer.Name
	}
	return "The employer"
}

func internshipTitleOf(app *models.Application) string {
	if app.Internship != nil {
		return app.Internship.Title
	}
	return "the internship"
}

func studentNameOf(app *models.Application) string {
	if app.Student != nil {
		return app.Student.Name
	}
	return "The student"
}
