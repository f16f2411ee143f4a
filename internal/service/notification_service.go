package service

import (
	"encoding/json"
	"fmt"

	"internhub/internal/domain"
	"internhub/internal/models"
	"internhub/internal/repository"
	"internhub/internal/ws"

	"gorm.io/datatypes"
)

type NotificationService struct {
	repo *repository.NotificationRepository
	hub  *ws.Hub
}

func NewNotificationService(repo *repository.NotificationRepository, hub *ws.Hub) *NotificationService {
	return &NotificationService{repo: repo, hub: hub}
}

// Notify persists a notification and pushes it to the recipient's open
// websocket connections, if any.
func (s *NotificationService) Notify(userID uint, notifType, title, description string, metadata map[string]interface{}) error {
	var meta datatypes.JSON
	if metadata != nil {
		b, _ := json.Marshal(metadata)
		meta = datatypes.JSON(b)
	}
	n := &models.Notification{
		UserID:      userID,
		Type:        notifType,
		Title:       title,
		Description: description,
		Metadata:    meta,
	}
	if err := s.repo.Create(n); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.BroadcastToUser(userID, n)
	}
	return nil
}

func (s *NotificationService) NotifyNewApplication(employerID uint, app *models.Application, in *models.Internship, studentName string) error {
	return s.Notify(employerID, domain.NotifNewApplication,
		"New application",
		studentName+" applied for "+in.Title,
		map[string]interface{}{"application_id": app.ID, "internship_id": in.ID, "student_id": app.StudentID})
}

func (s *NotificationService) NotifyStatusUpdated(studentID uint, appID uint, oldStatus, newStatus string) error {
	return s.Notify(studentID, domain.NotifApplicationStatusUpdated,
		"Application status updated",
		fmt.Sprintf("Your application status changed from %s to %s", oldStatus, newStatus),
		map[string]interface{}{"application_id": appID, "old_status": oldStatus, "new_status": newStatus})
}

func (s *NotificationService) NotifyApplicationAccepted(studentID uint, appID uint, employerName, internshipTitle string) error {
	return s.Notify(studentID, domain.NotifApplicationAccepted,
		"Application accepted",
		employerName+" accepted your application for "+internshipTitle,
		map[string]interface{}{"application_id": appID})
}

func (s *NotificationService) NotifyEmployerAccepted(employerID uint, appID uint, studentName, internshipTitle string) error {
	return s.Notify(employerID, domain.NotifEmployerAccepted,
		"Application approved",
		"You approved "+studentName+"'s application for "+internshipTitle,
		map[string]interface{}{"application_id": appID})
}

func (s *NotificationService) NotifyApplicationRejected(studentID uint, appID uint, employerName, internshipTitle string) error {
	return s.Notify(studentID, domain.NotifApplicationRejected,
		"Application rejected",
		employerName+" rejected your application for "+internshipTitle,
		map[string]interface{}{"application_id": appID})
}

func (s *NotificationService) NotifyOrganisationStatus(organisationID uint, status string) error {
	return s.Notify(organisationID, domain.NotifOrganisationStatus,
		"Account review completed",
		"Your organisation account is now "+status,
		map[string]interface{}{"status": status})
}
