package service

import (
	"testing"

	"internhub/internal/domain"
	"internhub/internal/models"
	"internhub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestApplicationCreate(t *testing.T) {
	f := newAppFixture(t)
	employer := seedUser(t, f.db, domain.RoleOrganisation)
	student := seedUser(t, f.db, domain.RoleStudent)
	internship := seedInternship(t, f.db, employer.ID, "Backend Intern")
	seedResume(t, f.db, student.ID)

	app, err := f.svc.Create(student.ID, internship.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusPending, app.Status)
	assert.Equal(t, student.ID, app.StudentID)
	assert.False(t, app.AppliedAt.IsZero())

	// the employer gets exactly one NEW_APPLICATION notification
	assert.Equal(t, []string{domain.NotifNewApplication}, f.notificationTypes(t, employer.ID))
	assert.EqualValues(t, 0, f.notificationCount(t, student.ID))
}

func TestApplicationCreateRequiresResume(t *testing.T) {
	f := newAppFixture(t)
	employer := seedUser(t, f.db, domain.RoleOrganisation)
	student := seedUser(t, f.db, domain.RoleStudent)
	internship := seedInternship(t, f.db, employer.ID, "Backend Intern")

	_, err := f.svc.Create(student.ID, internship.ID)
	assert.ErrorIs(t, err, ErrResumeRequired)
	assert.EqualValues(t, 0, f.notificationCount(t, employer.ID))
}

func TestApplicationCreateUnknownInternship(t *testing.T) {
	f := newAppFixture(t)
	student := seedUser(t, f.db, domain.RoleStudent)
	seedResume(t, f.db, student.ID)

	_, err := f.svc.Create(student.ID, 9999)
	assert.ErrorIs(t, err, ErrInternshipNotFound)
}

func TestApplicationCreateDuplicate(t *testing.T) {
	f := newAppFixture(t)
	employer := seedUser(t, f.db, domain.RoleOrganisation)
	student := seedUser(t, f.db, domain.RoleStudent)
	internship := seedInternship(t, f.db, employer.ID, "Backend Intern")
	seedResume(t, f.db, student.ID)

	_, err := f.svc.Create(student.ID, internship.ID)
	require.NoError(t, err)
	_, err = f.svc.Create(student.ID, internship.ID)
	assert.ErrorIs(t, err, ErrAlreadyApplied)

	// the composite unique index backs the pre-check for races
	repo := repository.NewApplicationRepository(f.db)
	err = repo.Create(&models.Application{StudentID: student.ID, InternshipID: internship.ID})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestApplicationReapplyAfterWithdrawal(t *testing.T) {
	f := newAppFixture(t)
	employer := seedUser(t, f.db, domain.RoleOrganisation)
	student := seedUser(t, f.db, domain.RoleStudent)
	internship := seedInternship(t, f.db, employer.ID, "Backend Intern")
	seedResume(t, f.db, student.ID)

	app, err := f.svc.Create(student.ID, internship.ID)
	require.NoError(t, err)
	require.NoError(t, f.svc.Remove(domain.Caller{ID: student.ID, Role: domain.RoleStudent}, app.ID))

	_, err = f.svc.Create(student.ID, internship.ID)
	assert.NoError(t, err)
}

func TestApplicationListNarrowsByRole(t *testing.T) {
	f := newAppFixture(t)
	orgA := seedUser(t, f.db, domain.RoleOrganisation)
	orgB := seedUser(t, f.db, domain.RoleOrganisation)
	alice := seedUser(t, f.db, domain.RoleStudent)
	bob := seedUser(t, f.db, domain.RoleStudent)
	inA := seedInternship(t, f.db, orgA.ID, "Internship A")
	inB := seedInternship(t, f.db, orgB.ID, "Internship B")
	seedResume(t, f.db, alice.ID)
	seedResume(t, f.db, bob.ID)

	_, err := f.svc.Create(alice.ID, inA.ID)
	require.NoError(t, err)
	_, err = f.svc.Create(alice.ID, inB.ID)
	require.NoError(t, err)
	_, err = f.svc.Create(bob.ID, inB.ID)
	require.NoError(t, err)

	// students only ever see their own, whatever filter they send
	list, count, err := f.svc.List(domain.Caller{ID: alice.ID, Role: domain.RoleStudent}, ApplicationQuery{StudentID: bob.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	for _, a := range list {
		assert.Equal(t, alice.ID, a.StudentID)
	}

	// organisations are narrowed to applications on their own internships
	list, count, err = f.svc.List(domain.Caller{ID: orgB.ID, Role: domain.RoleOrganisation}, ApplicationQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	for _, a := range list {
		assert.Equal(t, inB.ID, a.InternshipID)
	}

	// and a student filter from an organisation does not widen the view
	_, count, err = f.svc.List(domain.Caller{ID: orgA.ID, Role: domain.RoleOrganisation}, ApplicationQuery{StudentID: bob.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	_, count, err = f.svc.List(domain.Caller{ID: 1, Role: domain.RoleAdmin}, ApplicationQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	_, _, err = f.svc.List(domain.Caller{ID: 1, Role: "ghost"}, ApplicationQuery{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestApplicationGetVisibility(t *testing.T) {
	f := newAppFixture(t)
	employer := seedUser(t, f.db, domain.RoleOrganisation)
	otherOrg := seedUser(t, f.db, domain.RoleOrganisation)
	student := seedUser(t, f.db, domain.RoleStudent)
	otherStudent := seedUser(t, f.db, domain.RoleStudent)
	internship := seedInternship(t, f.db, employer.ID, "Backend Intern")
	seedResume(t, f.db, student.ID)

	app, err := f.svc.Create(student.ID, internship.ID)
	require.NoError(t, err)

	_, err = f.svc.Get(domain.Caller{ID: student.ID, Role: domain.RoleStudent}, app.ID)
	assert.NoError(t, err)
	_, err = f.svc.Get(domain.Caller{ID: employer.ID, Role: domain.RoleOrganisation}, app.ID)
	assert.NoError(t, err)
	_, err = f.svc.Get(domain.Caller{ID: 42, Role: domain.RoleAdmin}, app.ID)
	assert.NoError(t, err)

	_, err = f.svc.Get(domain.Caller{ID: otherStudent.ID, Role: domain.RoleStudent}, app.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = f.svc.Get(domain.Caller{ID: otherOrg.ID, Role: domain.RoleOrganisation}, app.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.Get(domain.Caller{ID: 42, Role: domain.RoleAdmin}, 9999)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestApplicationUpdateStatusApproved(t *testing.T) {
	f := newAppFixture(t)
	employer := seedUser(t, f.db, domain.RoleOrganisation)
	student := seedUser(t, f.db, domain.RoleStudent)
	internship := seedInternship(t, f.db, employer.ID, "Backend Intern")
	seedResume(t, f.db, student.ID)

	app, err := f.svc.Create(student.ID, internship.ID)
	require.NoError(t, err)

	updated, err := f.svc.UpdateStatus(domain.Caller{ID: employer.ID, Role: domain.RoleOrganisation}, app.ID, domain.ApplicationStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusApproved, updated.Status)

	// approval fans out to both sides: the student hears they were accepted,
	// the employer gets a confirmation on top of the original NEW_APPLICATION
	assert.Equal(t, []string{domain.NotifApplicationAccepted}, f.notificationTypes(t, student.ID))
	assert.Equal(t, []string{domain.NotifNewApplication, domain.NotifEmployerAccepted}, f.notificationTypes(t, employer.ID))
}

func TestApplicationUpdateStatusRejected(t *testing.T) {
	f := newAppFixture(t)
	employer := seedUser(t, f.db, domain.RoleOrganisation)
	student := seedUser(t, f.db, domain.RoleStudent)
	internship := seedInternship(t, f.db, employer.ID, "Backend Intern")
	seedResume(t, f.db, student.ID)

	app, err := f.svc.Create(student.ID, internship.ID)
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(domain.Caller{ID: employer.ID, Role: domain.RoleOrganisation}, app.ID, domain.ApplicationStatusRejected)
	require.NoError(t, err)

	assert.Equal(t, []string{domain.NotifApplicationRejected}, f.notificationTypes(t, student.ID))
	assert.Equal(t, []string{domain.NotifNewApplication}, f.notificationTypes(t, employer.ID))
}

func TestApplicationUpdateStatusReopened(t *testing.T) {
	f := newAppFixture(t)
	employer := seedUser(t, f.db, domain.RoleOrganisation)
	student := seedUser(t, f.db, domain.RoleStudent)
	internship := seedInternship(t, f.db, employer.ID, "Backend Intern")
	seedResume(t, f.db, student.ID)

	app, err := f.svc.Create(student.ID, internship.ID)
	require.NoError(t, err)
	admin := domain.Caller{ID: 42, Role: domain.RoleAdmin}
	_, err = f.svc.UpdateStatus(admin, app.ID, domain.ApplicationStatusRejected)
	require.NoError(t, err)

	// there is no transition graph; a decided application can go back to
	// pending, which sends the generic status message
	updated, err := f.svc.UpdateStatus(admin, app.ID, domain.ApplicationStatusPending)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusPending, updated.Status)
	assert.Equal(t,
		[]string{domain.NotifApplicationRejected, domain.NotifApplicationStatusUpdated},
		f.notificationTypes(t, student.ID))
}

func TestApplicationUpdateStatusNoop(t *testing.T) {
	f := newAppFixture(t)
	employer := seedUser(t, f.db, domain.RoleOrganisation)
	student := seedUser(t, f.db, domain.RoleStudent)
	internship := seedInternship(t, f.db, employer.ID, "Backend Intern")
	seedResume(t, f.db, student.ID)

	app, err := f.svc.Create(student.ID, internship.ID)
	require.NoError(t, err)
	before := f.notificationCount(t, student.ID) + f.notificationCount(t, employer.ID)

	updated, err := f.svc.UpdateStatus(domain.Caller{ID: employer.ID, Role: domain.RoleOrganisation}, app.ID, domain.ApplicationStatusPending)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusPending, updated.Status)
	assert.Equal(t, before, f.notificationCount(t, student.ID)+f.notificationCount(t, employer.ID))
}

func TestApplicationUpdateStatusGuards(t *testing.T) {
	f := newAppFixture(t)
	employer := seedUser(t, f.db, domain.RoleOrganisation)
	foreignOrg := seedUser(t, f.db, domain.RoleOrganisation)
	student := seedUser(t, f.db, domain.RoleStudent)
	internship := seedInternship(t, f.db, employer.ID, "Backend Intern")
	seedResume(t, f.db, student.ID)

	app, err := f.svc.Create(student.ID, internship.ID)
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(domain.Caller{ID: employer.ID, Role: domain.RoleOrganisation}, app.ID, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// a different organisation cannot decide, and the row stays untouched
	_, err = f.svc.UpdateStatus(domain.Caller{ID: foreignOrg.ID, Role: domain.RoleOrganisation}, app.ID, domain.ApplicationStatusApproved)
	assert.ErrorIs(t, err, ErrForbidden)

	// neither can the applicant
	_, err = f.svc.UpdateStatus(domain.Caller{ID: student.ID, Role: domain.RoleStudent}, app.ID, domain.ApplicationStatusApproved)
	assert.ErrorIs(t, err, ErrForbidden)

	var current models.Application
	require.NoError(t, f.db.First(&current, app.ID).Error)
	assert.Equal(t, domain.ApplicationStatusPending, current.Status)
	assert.EqualValues(t, 0, f.notificationCount(t, student.ID))
}

func TestApplicationRemoveGuards(t *testing.T) {
	f := newAppFixture(t)
	employer := seedUser(t, f.db, domain.RoleOrganisation)
	student := seedUser(t, f.db, domain.RoleStudent)
	otherStudent := seedUser(t, f.db, domain.RoleStudent)
	internship := seedInternship(t, f.db, employer.ID, "Backend Intern")
	seedResume(t, f.db, student.ID)

	app, err := f.svc.Create(student.ID, internship.ID)
	require.NoError(t, err)

	err = f.svc.Remove(domain.Caller{ID: otherStudent.ID, Role: domain.RoleStudent}, app.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, f.svc.Remove(domain.Caller{ID: student.ID, Role: domain.RoleStudent}, app.ID))
	err = f.svc.Remove(domain.Caller{ID: student.ID, Role: domain.RoleStudent}, app.ID)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestApplicationResumeFor(t *testing.T) {
	f := newAppFixture(t)
	employer := seedUser(t, f.db, domain.RoleOrganisation)
	otherOrg := seedUser(t, f.db, domain.RoleOrganisation)
	student := seedUser(t, f.db, domain.RoleStudent)
	internship := seedInternship(t, f.db, employer.ID, "Backend Intern")
	resume := seedResume(t, f.db, student.ID)

	app, err := f.svc.Create(student.ID, internship.ID)
	require.NoError(t, err)

	got, err := f.svc.ResumeFor(domain.Caller{ID: employer.ID, Role: domain.RoleOrganisation}, app.ID)
	require.NoError(t, err)
	assert.Equal(t, resume.ID, got.ID)

	_, err = f.svc.ResumeFor(domain.Caller{ID: otherOrg.ID, Role: domain.RoleOrganisation}, app.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}
