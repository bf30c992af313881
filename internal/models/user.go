package models

import (
	"time"

	"github.com/google/uuid"
)

// User exists for the optional back-reference from Conversation. There is no
// authentication surface in the API; signup is handled outside this service.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Username   string    `gorm:"type:text;not null;uniqueIndex" json:"username"`
	Password   string    `gorm:"type:text;not null" json:"-"`
	Name       *string   `gorm:"type:text" json:"name,omitempty"`
	ResumeText *string   `gorm:"type:text" json:"resumeText,omitempty"`
	CreatedAt  time.Time `gorm:"type:timestamp;default:now()" json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}
