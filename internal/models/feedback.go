package models

import (
	"time"

	"github.com/google/uuid"
)

type Verdict string

const (
	VerdictStrongHire Verdict = "Strong Hire"
	VerdictHire       Verdict = "Hire"
	VerdictHold       Verdict = "Hold"
	VerdictNoHire     Verdict = "No Hire"
)

func (v Verdict) Valid() bool {
	switch v {
	case VerdictStrongHire, VerdictHire, VerdictHold, VerdictNoHire:
		return true
	}
	return false
}

type CategoryScore struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// FeedbackCategories is the fixed set of evaluation dimensions.
type FeedbackCategories struct {
	Technical      CategoryScore `json:"technical"`
	Communication  CategoryScore `json:"communication"`
	ProblemSolving CategoryScore `json:"problem_solving"`
	CulturalFit    CategoryScore `json:"cultural_fit"`
	Confidence     CategoryScore `json:"confidence"`
}

// Feedback is the one-time structured evaluation written when a session ends.
// Never mutated afterwards.
type Feedback struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ConversationID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex" json:"conversationId"`
	OverallScore   int                `gorm:"not null" json:"overallScore"`
	Verdict        Verdict            `gorm:"type:text" json:"verdict"`
	Summary        string             `gorm:"type:text" json:"summary"`
	Categories     FeedbackCategories `gorm:"type:jsonb;serializer:json" json:"categories"`
	Strengths      []string           `gorm:"type:jsonb;serializer:json" json:"strengths"`
	Improvements   []string           `gorm:"type:jsonb;serializer:json" json:"improvements"`
	IntegrityNote  *string            `gorm:"type:text" json:"integrityNote,omitempty"`
	Recommendation *string            `gorm:"type:text" json:"recommendation,omitempty"`
	CreatedAt      time.Time          `gorm:"type:timestamp;default:now()" json:"createdAt"`
}

func (Feedback) TableName() string {
	return "feedback"
}
