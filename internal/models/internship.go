package models

import (
	"time"
)

type Internship struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EmployerID  uint      `gorm:"not null;index" json:"employer_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Location    string    `gorm:"size:255;not null" json:"location"`
	SalaryRange string    `gorm:"size:100" json:"salary_range"`
	StartDate   time.Time `gorm:"not null" json:"start_date"`
	EndDate     time.Time `gorm:"not null" json:"end_date"`
	Status      string    `gorm:"size:20;not null;default:active;index" json:"status"` // active | expired
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Employer     *User         `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
	Applications []Application `gorm:"foreignKey:InternshipID" json:"-"`
}

func (Internship) TableName() string {
	return "internships"
}
