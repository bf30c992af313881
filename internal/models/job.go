package models

import (
	"time"

	"github.com/google/uuid"
)

// Job is a listing, either stored or freshly invented by the resume matcher.
// MatchScore is populated only for jobs that came out of a resume analysis.
type Job struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title        string    `gorm:"type:text;not null" json:"title"`
	Company      string    `gorm:"type:text;not null" json:"company"`
	Location     string    `gorm:"type:text;not null" json:"location"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Requirements []string  `gorm:"type:jsonb;serializer:json" json:"requirements"`
	MatchScore   *int      `json:"matchScore,omitempty"`
	CreatedAt    time.Time `gorm:"type:timestamp;default:now()" json:"createdAt"`
}

func (Job) TableName() string {
	return "jobs"
}
