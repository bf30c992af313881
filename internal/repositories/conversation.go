package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"interview-coach/internal/models"
)

type ConversationRepository interface {
	Create(conversation *models.Conversation) error
	FindByID(id uuid.UUID) (*models.Conversation, error)
	FindAll() ([]models.Conversation, error)
	// CompleteIfInProgress flips status to completed and stamps completed_at,
	// but only while the row is still in_progress. Returns true when this call
	// won the transition, false when the conversation was already completed.
	CompleteIfInProgress(tx *gorm.DB, id uuid.UUID, completedAt time.Time) (bool, error)
	Transaction(fn func(tx *gorm.DB) error) error
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Create(conversation *models.Conversation) error {
	if err := r.db.Create(conversation).Error; err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}
	return nil
}

func (r *conversationRepository) FindByID(id uuid.UUID) (*models.Conversation, error) {
	var conversation models.Conversation
	if err := r.db.Where("id = ?", id).First(&conversation).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("conversation %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}
	return &conversation, nil
}

func (r *conversationRepository) FindAll() ([]models.Conversation, error) {
	var conversations []models.Conversation
	if err := r.db.Find(&conversations).Error; err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return conversations, nil
}

func (r *conversationRepository) CompleteIfInProgress(tx *gorm.DB, id uuid.UUID, completedAt time.Time) (bool, error) {
	if tx == nil {
		tx = r.db
	}

	result := tx.Model(&models.Conversation{}).
		Where("id = ? AND status = ?", id, models.StatusInProgress).
		Updates(map[string]interface{}{
			"status":       models.StatusCompleted,
			"completed_at": completedAt,
		})

	if result.Error != nil {
		return false, fmt.Errorf("failed to complete conversation: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *conversationRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}
