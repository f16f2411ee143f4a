package models

import (
	"time"

	"internhub/internal/domain"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PhoneNumber  string         `gorm:"uniqueIndex;size:32;not null" json:"phone_number"`
	PasswordHash string         `gorm:"size:255" json:"-"`
	Role         string         `gorm:"size:20;not null;index" json:"role"` // student | organisation | admin
	Status       string         `gorm:"size:20;not null;default:verified;index" json:"status"`
	AvatarURL    string         `gorm:"size:512" json:"avatar_url"`
	GoogleID     *string        `gorm:"uniqueIndex;size:255" json:"-"` // nil for email signups (avoids duplicate '' on unique index)
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Resume       *Resume       `gorm:"foreignKey:StudentID" json:"resume,omitempty"`
	Internships  []Internship  `gorm:"foreignKey:EmployerID" json:"-"`
	Applications []Application `gorm:"foreignKey:StudentID" json:"-"`
	Favourites   []Favourite   `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) IsStudent() bool      { return u.Role == domain.RoleStudent }
func (u *User) IsOrganisation() bool { return u.Role == domain.RoleOrganisation }
func (u *User) IsAdmin() bool        { return u.Role == domain.RoleAdmin }
func (u *User) IsVerified() bool     { return u.Status == domain.UserStatusVerified }

func (User) TableName() string {
	return "users"
}
