package models

import (
	"time"

	"github.com/google/uuid"
)

type ConversationStatus string

const (
	StatusInProgress ConversationStatus = "in_progress"
	StatusCompleted  ConversationStatus = "completed"
)

type InterviewType string

const (
	TypeSoftwareEngineer InterviewType = "software_engineer"
	TypeFrontend         InterviewType = "frontend"
	TypeDataScience      InterviewType = "data_science"
	TypeProductManager   InterviewType = "product_manager"
)

// InterviewTypeLabels maps the interview type enum to the human-readable form
// used when synthesizing a conversation title.
var InterviewTypeLabels = map[InterviewType]string{
	TypeSoftwareEngineer: "Software Engineer",
	TypeFrontend:         "Frontend Developer",
	TypeDataScience:      "Data Scientist",
	TypeProductManager:   "Product Manager",
}

func (t InterviewType) Valid() bool {
	_, ok := InterviewTypeLabels[t]
	return ok
}

// Conversation is a single practice interview session. Status only ever moves
// in_progress -> completed, flipped by the end-interview operation.
type Conversation struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        *uuid.UUID         `gorm:"type:uuid" json:"userId,omitempty"`
	Title         string             `gorm:"type:text;not null" json:"title"`
	Type          InterviewType      `gorm:"type:text" json:"type"`
	CandidateName string             `gorm:"type:text" json:"candidateName"`
	Status        ConversationStatus `gorm:"type:text;not null;default:'in_progress'" json:"status"`
	StartedAt     time.Time          `gorm:"type:timestamp;default:now()" json:"startedAt"`
	CompletedAt   *time.Time         `gorm:"type:timestamp" json:"completedAt"`
	CreatedAt     time.Time          `gorm:"type:timestamp;default:now()" json:"createdAt"`

	// Relations
	Messages []Message `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`
	Feedback *Feedback `gorm:"foreignKey:ConversationID" json:"feedback,omitempty"`
}

func (Conversation) TableName() string {
	return "conversations"
}
