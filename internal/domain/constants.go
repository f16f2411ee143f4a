package domain

const (
	RoleStudent      = "student"
	RoleOrganisation = "organisation"
	RoleAdmin        = "admin"
)

// User verification status. Organisations start pending and must be verified
// by an admin before posting internships; students and admins start verified.
const (
	UserStatusPending  = "pending"
	UserStatusVerified = "verified"
	UserStatusDeclined = "declined"
)

const (
	InternshipStatusActive  = "active"
	InternshipStatusExpired = "expired"
)

const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

// Notification type tags.
const (
	NotifNewApplication           = "NEW_APPLICATION"
	NotifApplicationStatusUpdated = "APPLICATION_STATUS_UPDATED"
	NotifApplicationAccepted      = "APPLICATION_ACCEPTED"
	NotifEmployerAccepted         = "EMPLOYER_APPLICATION_ACCEPTED"
	NotifApplicationRejected      = "APPLICATION_REJECTED"
	NotifOrganisationStatus       = "ORGANISATION_STATUS_UPDATED"
)

// Caller is the authenticated identity making a request, resolved from the
// access token by the auth middleware.
type Caller struct {
	ID   uint
	Role string
}

func (c Caller) IsAdmin() bool        { return c.Role == RoleAdmin }
func (c Caller) IsStudent() bool      { return c.Role == RoleStudent }
func (c Caller) IsOrganisation() bool { return c.Role == RoleOrganisation }
