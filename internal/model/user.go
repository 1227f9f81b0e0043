package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an identity record. Users are created once, at seeding time, and
// never mutated by the API afterward.
type User struct {
	ID                 uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Username           string    `json:"username" gorm:"size:255;not null"`
	NormalizedUsername string    `json:"-" gorm:"uniqueIndex;size:255;not null"`
	Email              string    `json:"email" gorm:"size:255"`
	NormalizedEmail    string    `json:"-" gorm:"size:255"`
	EmailConfirmed     bool      `json:"email_confirmed" gorm:"default:false"`
	PasswordHash       string    `json:"-" gorm:"size:255;not null"`
	SecurityStamp      string    `json:"-" gorm:"size:255"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
