package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"interview-coach/internal/models"
)

type MessageRepository interface {
	Create(message *models.Message) error
	FindByConversation(conversationID uuid.UUID) ([]models.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	if !message.Role.Valid() {
		return fmt.Errorf("role %q: %w", message.Role, ErrInvalidRole)
	}

	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *messageRepository) FindByConversation(conversationID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	// id breaks ties for messages sharing a timestamp, so repeated reads
	// return the same order.
	err := r.db.
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
