package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"interview-coach/internal/models"
)

func seedConversation(convRepo *fakeConversationRepo, status models.ConversationStatus) uuid.UUID {
	id := uuid.New()
	convRepo.Create(&models.Conversation{
		ID:            id,
		Title:         "Frontend Developer Interview - Ada",
		Type:          models.TypeFrontend,
		CandidateName: "Ada",
		Status:        status,
		StartedAt:     time.Now(),
		CreatedAt:     time.Now(),
	})
	return id
}

func TestReplyWorkerAppendsPersonaMessage(t *testing.T) {
	convRepo := newFakeConversationRepo()
	messageRepo := &fakeMessageRepo{}
	gemini := &fakeGemini{response: "Good answer. How would you cache that?"}
	worker := NewReplyWorker(convRepo, messageRepo, gemini, 1).(*replyWorker)

	convID := seedConversation(convRepo, models.StatusInProgress)
	messageRepo.Create(&models.Message{ID: uuid.New(), ConversationID: convID, Role: models.RoleUser, Content: "I would memoize it."})

	if err := worker.reply(context.Background(), convID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	messages, _ := messageRepo.FindByConversation(convID)
	if len(messages) != 2 {
		t.Fatalf("expected persona reply appended, got %d messages", len(messages))
	}
	last := messages[len(messages)-1]
	if last.Role != models.RoleAlex {
		t.Fatalf("first interviewer turn should be alex, got %s", last.Role)
	}
	if last.Content == "" {
		t.Fatal("expected reply content")
	}
}

func TestReplyWorkerAlternatesPersonas(t *testing.T) {
	messages := []models.Message{
		{Role: models.RoleUser},
		{Role: models.RoleAlex},
		{Role: models.RoleUser},
	}
	if got := nextPersona(messages); got != models.RoleSam {
		t.Fatalf("expected sam after alex, got %s", got)
	}

	messages = append(messages, models.Message{Role: models.RoleSam}, models.Message{Role: models.RoleUser})
	if got := nextPersona(messages); got != models.RoleAlex {
		t.Fatalf("expected alex after sam, got %s", got)
	}
}

func TestReplyWorkerSkipsCompletedConversation(t *testing.T) {
	convRepo := newFakeConversationRepo()
	messageRepo := &fakeMessageRepo{}
	gemini := &fakeGemini{response: "reply"}
	worker := NewReplyWorker(convRepo, messageRepo, gemini, 1).(*replyWorker)

	convID := seedConversation(convRepo, models.StatusCompleted)
	messageRepo.Create(&models.Message{ID: uuid.New(), ConversationID: convID, Role: models.RoleUser, Content: "hello?"})

	if err := worker.reply(context.Background(), convID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gemini.calls != 0 {
		t.Fatal("completed conversations must not trigger model calls")
	}
}

func TestReplyWorkerSkipsWhenLastTurnIsNotUser(t *testing.T) {
	convRepo := newFakeConversationRepo()
	messageRepo := &fakeMessageRepo{}
	gemini := &fakeGemini{response: "reply"}
	worker := NewReplyWorker(convRepo, messageRepo, gemini, 1).(*replyWorker)

	convID := seedConversation(convRepo, models.StatusInProgress)
	messageRepo.Create(&models.Message{ID: uuid.New(), ConversationID: convID, Role: models.RoleUser, Content: "hi"})
	messageRepo.Create(&models.Message{ID: uuid.New(), ConversationID: convID, Role: models.RoleAlex, Content: "tell me about yourself"})

	if err := worker.reply(context.Background(), convID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	messages, _ := messageRepo.FindByConversation(convID)
	if len(messages) != 2 {
		t.Fatal("duplicate enqueue must be a no-op")
	}
}

func TestReplyWorkerStartStop(t *testing.T) {
	convRepo := newFakeConversationRepo()
	messageRepo := &fakeMessageRepo{}
	gemini := &fakeGemini{response: "And why that data structure?"}
	worker := NewReplyWorker(convRepo, messageRepo, gemini, 2)

	convID := seedConversation(convRepo, models.StatusInProgress)
	messageRepo.Create(&models.Message{ID: uuid.New(), ConversationID: convID, Role: models.RoleUser, Content: "A trie."})

	worker.Start(context.Background())
	worker.Enqueue(convID)

	deadline := time.After(2 * time.Second)
	for {
		messages, _ := messageRepo.FindByConversation(convID)
		if len(messages) == 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("reply was not generated before deadline")
		case <-time.After(10 * time.Millisecond):
		}
	}

	worker.Stop()
}
