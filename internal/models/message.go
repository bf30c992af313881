package models

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	RoleUser   MessageRole = "user"
	RoleAlex   MessageRole = "alex"
	RoleSam    MessageRole = "sam"
	RoleSystem MessageRole = "system"
)

func (r MessageRole) Valid() bool {
	switch r {
	case RoleUser, RoleAlex, RoleSam, RoleSystem:
		return true
	}
	return false
}

// Interviewer reports whether the role is one of the two AI personas.
func (r MessageRole) Interviewer() bool {
	return r == RoleAlex || r == RoleSam
}

// Message is one immutable transcript turn. Transcript order is CreatedAt
// ascending with ID as tiebreaker.
type Message struct {
	ID             uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ConversationID uuid.UUID   `gorm:"type:uuid;not null;index" json:"conversationId"`
	Role           MessageRole `gorm:"type:text;not null" json:"role"`
	Content        string      `gorm:"type:text;not null" json:"content"`
	CreatedAt      time.Time   `gorm:"type:timestamp;default:now()" json:"createdAt"`
}

func (Message) TableName() string {
	return "messages"
}
