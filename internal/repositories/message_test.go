package repositories

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"interview-coach/internal/models"
)

// newDryRunDB opens a gorm handle that builds SQL without executing it, so
// statement shape can be asserted without a running database.
func newDryRunDB(t *testing.T) (*gorm.DB, *string) {
	t.Helper()

	db, err := gorm.Open(postgres.Open("host=localhost user=test dbname=test"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("failed to open dry-run db: %v", err)
	}

	var captured string
	err = db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		captured = tx.Statement.SQL.String()
	})
	if err != nil {
		t.Fatalf("failed to register callback: %v", err)
	}
	return db, &captured
}

func TestFindByConversationOrdersWithTiebreaker(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewMessageRepository(db)

	if _, err := repo.FindByConversation(uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(*captured, "created_at ASC, id ASC") {
		t.Fatalf("transcript query must order by created_at with id tiebreaker, got: %s", *captured)
	}
}

func TestCreateRejectsUnknownRole(t *testing.T) {
	db, _ := newDryRunDB(t)
	repo := NewMessageRepository(db)

	err := repo.Create(&models.Message{
		ConversationID: uuid.New(),
		Role:           "moderator",
		Content:        "hello",
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
