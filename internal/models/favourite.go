package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Favourite struct {
	ID           string    `gorm:"type:char(36);primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index:idx_fav_user_internship,unique" json:"user_id"`
	InternshipID uint      `gorm:"not null;index:idx_fav_user_internship,unique" json:"internship_id"`
	CreatedAt    time.Time `json:"created_at"`

	User       *User       `gorm:"foreignKey:UserID" json:"-"`
	Internship *Internship `gorm:"foreignKey:InternshipID" json:"internship,omitempty"`
}

func (f *Favourite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

func (Favourite) TableName() string {
	return "favourites"
}
