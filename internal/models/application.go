package models

import (
	"time"
)

// Application links one student to one internship. The composite unique index
// makes concurrent duplicate submissions fail at the storage level, not just
// at the pre-insert existence check.
type Application struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	StudentID    uint      `gorm:"not null;index:idx_app_student_internship,unique" json:"student_id"`
	InternshipID uint      `gorm:"not null;index:idx_app_student_internship,unique" json:"internship_id"`
	Status       string    `gorm:"size:20;not null;default:pending;index" json:"status"` // pending | approved | rejected
	AppliedAt    time.Time `gorm:"not null" json:"applied_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Student    *User       `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Internship *Internship `gorm:"foreignKey:InternshipID" json:"internship,omitempty"`
}

func (Application) TableName() string {
	return "applications"
}
