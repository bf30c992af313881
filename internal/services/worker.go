package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"interview-coach/internal/models"
	"interview-coach/internal/repositories"
)

// ReplyWorker generates the interviewer persona turns. User messages only
// schedule a reply; this worker produces it asynchronously and the client's
// polling picks it up. Replies are best-effort: a failed generation is logged
// and dropped, the transcript is never left half-written.
type ReplyWorker interface {
	ReplyEnqueuer
	Start(ctx context.Context)
	Stop()
}

type replyWorker struct {
	convRepo      repositories.ConversationRepository
	messageRepo   repositories.MessageRepository
	geminiService GeminiService
	promptBuilder *PromptBuilder
	jobQueue      chan uuid.UUID
	concurrency   int
	wg            sync.WaitGroup
	stopChan      chan struct{}
}

func NewReplyWorker(
	convRepo repositories.ConversationRepository,
	messageRepo repositories.MessageRepository,
	geminiService GeminiService,
	concurrency int,
) ReplyWorker {
	return &replyWorker{
		convRepo:      convRepo,
		messageRepo:   messageRepo,
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
		jobQueue:      make(chan uuid.UUID, 100),
		concurrency:   concurrency,
		stopChan:      make(chan struct{}),
	}
}

// Start implements ReplyWorker.
func (w *replyWorker) Start(ctx context.Context) {
	log.Printf("🚀 Starting reply worker with %d goroutines\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}
}

// Stop implements ReplyWorker.
func (w *replyWorker) Stop() {
	log.Println("🛑 Stopping reply worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Reply worker stopped")
}

// Enqueue implements ReplyEnqueuer.
func (w *replyWorker) Enqueue(conversationID uuid.UUID) {
	select {
	case w.jobQueue <- conversationID:
	case <-w.stopChan:
		log.Printf("⚠️  Reply worker stopped, dropping reply for %s\n", conversationID)
	}
}

func (w *replyWorker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			return
		case convID := <-w.jobQueue:
			if err := w.reply(ctx, convID); err != nil {
				log.Printf("❌ Worker #%d failed to reply in %s: %v\n", workerID, convID, err)
			}
		}
	}
}

func (w *replyWorker) reply(ctx context.Context, convID uuid.UUID) error {
	conversation, err := w.convRepo.FindByID(convID)
	if err != nil {
		return err
	}

	// The session may have ended between enqueue and pickup.
	if conversation.Status == models.StatusCompleted {
		return nil
	}

	messages, err := w.messageRepo.FindByConversation(convID)
	if err != nil {
		return err
	}

	// Only the turn right after a candidate message gets a reply; a stale or
	// duplicate enqueue is a no-op.
	if len(messages) == 0 || messages[len(messages)-1].Role != models.RoleUser {
		return nil
	}

	persona := nextPersona(messages)
	transcript := w.promptBuilder.BuildTranscript(messages)
	prompt := w.promptBuilder.BuildPersonaReplyPrompt(persona, conversation.Type, conversation.CandidateName, transcript)

	reply, err := w.geminiService.GenerateText(ctx, prompt, 0.7)
	if err != nil {
		return err
	}

	return w.messageRepo.Create(&models.Message{
		ID:             uuid.New(),
		ConversationID: convID,
		Role:           persona,
		Content:        reply,
		CreatedAt:      time.Now(),
	})
}

// nextPersona alternates the two interviewers, alex leading.
func nextPersona(messages []models.Message) models.MessageRole {
	interviewerTurns := 0
	for _, m := range messages {
		if m.Role.Interviewer() {
			interviewerTurns++
		}
	}
	if interviewerTurns%2 == 0 {
		return models.RoleAlex
	}
	return models.RoleSam
}
