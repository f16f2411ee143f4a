package service

import "internhub/internal/domain"

// applicationFacts are the ownership facts an application decision needs:
// who applied and who owns the internship applied to.
type applicationFacts struct {
	studentID  uint
	employerID uint
}

// canAccessApplication is the single place the view/delete matrix lives:
// admins always, students only their own applications, organisations only
// applications to their own internships.
func canAccessApplication(caller domain.Caller, f applicationFacts) bool {
	switch caller.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleStudent:
		return caller.ID == f.studentID
	case domain.RoleOrganisation:
		return caller.ID == f.employerID
	default:
		return false
	}
}

// canUpdateApplicationStatus restricts status mutation to admins and the
// owning employer. Students never mutate status, even on their own
// applications.
func canUpdateApplicationStatus(caller domain.Caller, f applicationFacts) bool {
	switch caller.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleOrganisation:
		return caller.ID == f.employerID
	default:
		return false
	}
}
