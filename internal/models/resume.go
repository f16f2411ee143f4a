package models

import (
	"time"
)

// Resume is one-to-one with a student. Experience and education entries are
// owned rows, replaced wholesale on update and removed with the resume.
type Resume struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	StudentID      uint      `gorm:"not null;uniqueIndex" json:"student_id"`
	Title          string    `gorm:"size:255" json:"title"`
	Summary        string    `gorm:"type:text" json:"summary"`
	Skills         string    `gorm:"size:512" json:"skills"`
	Languages      string    `gorm:"size:255" json:"languages"`
	Certifications string    `gorm:"size:512" json:"certifications"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Student     *User        `gorm:"foreignKey:StudentID" json:"-"`
	Experiences []Experience `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE" json:"experiences"`
	Education   []Education  `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE" json:"education"`
}

func (Resume) TableName() string {
	return "resumes"
}

type Experience struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ResumeID    uint       `gorm:"not null;index" json:"resume_id"`
	Company     string     `gorm:"size:255;not null" json:"company"`
	Position    string     `gorm:"size:255;not null" json:"position"`
	StartDate   time.Time  `gorm:"not null" json:"start_date"`
	EndDate     *time.Time `json:"end_date"` // nil means current
	Description string     `gorm:"type:text" json:"description"`
	Location    string     `gorm:"size:255" json:"location"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Experience) TableName() string {
	return "experiences"
}

type Education struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ResumeID     uint       `gorm:"not null;index" json:"resume_id"`
	Institution  string     `gorm:"size:255;not null" json:"institution"`
	Degree       string     `gorm:"size:255;not null" json:"degree"`
	FieldOfStudy string     `gorm:"size:255" json:"field_of_study"`
	StartDate    time.Time  `gorm:"not null" json:"start_date"`
	EndDate      *time.Time `json:"end_date"` // nil means current
	Grade        string     `gorm:"size:50" json:"grade"`
	Description  string     `gorm:"type:text" json:"description"`
	Location     string     `gorm:"size:255" json:"location"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Education) TableName() string {
	return "education"
}
