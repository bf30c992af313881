package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"interview-coach/internal/models"
)

type FeedbackRepository interface {
	Create(tx *gorm.DB, feedback *models.Feedback) error
	FindByConversation(conversationID uuid.UUID) (*models.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(tx *gorm.DB, feedback *models.Feedback) error {
	if tx == nil {
		tx = r.db
	}

	if err := tx.Create(feedback).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

func (r *feedbackRepository) FindByConversation(conversationID uuid.UUID) (*models.Feedback, error) {
	var feedback models.Feedback
	if err := r.db.Where("conversation_id = ?", conversationID).First(&feedback).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("feedback for conversation %s: %w", conversationID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find feedback: %w", err)
	}
	return &feedback, nil
}
