package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"interview-coach/internal/models"
	"interview-coach/internal/repositories"
)

// ReplyEnqueuer hands a conversation to the persona reply worker. AddMessage
// never generates the interviewer turn itself; it only schedules one.
type ReplyEnqueuer interface {
	Enqueue(conversationID uuid.UUID)
}

type InterviewService interface {
	Create(req models.CreateInterviewRequest) (*models.Conversation, error)
	Get(id string) (*models.Conversation, error)
	List() ([]models.Conversation, error)
	AddMessage(id string, req models.AddMessageRequest) (*models.Message, error)
	End(ctx context.Context, id string) (*models.Feedback, error)
}

type interviewService struct {
	convRepo      repositories.ConversationRepository
	messageRepo   repositories.MessageRepository
	feedbackRepo  repositories.FeedbackRepository
	geminiService GeminiService
	promptBuilder *PromptBuilder
	replies       ReplyEnqueuer
	maxRetries    int
}

func NewInterviewService(
	convRepo repositories.ConversationRepository,
	messageRepo repositories.MessageRepository,
	feedbackRepo repositories.FeedbackRepository,
	geminiService GeminiService,
	replies ReplyEnqueuer,
	maxRetries int,
) InterviewService {
	return &interviewService{
		convRepo:      convRepo,
		messageRepo:   messageRepo,
		feedbackRepo:  feedbackRepo,
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
		replies:       replies,
		maxRetries:    maxRetries,
	}
}

// feedbackEvaluation mirrors the JSON shape the model is prompted to return.
type feedbackEvaluation struct {
	OverallScore   float64                   `json:"overallScore"`
	Verdict        string                    `json:"verdict"`
	Summary        string                    `json:"summary"`
	Categories     models.FeedbackCategories `json:"categories"`
	Strengths      []string                  `json:"strengths"`
	Improvements   []string                  `json:"improvements"`
	Recommendation string                    `json:"recommendation"`
}

func (s *interviewService) Create(req models.CreateInterviewRequest) (*models.Conversation, error) {
	interviewType := models.InterviewType(req.Type)
	if !interviewType.Valid() {
		return nil, NewValidationError("type", fmt.Sprintf("unknown interview type %q", req.Type))
	}

	candidateName := strings.TrimSpace(req.CandidateName)
	if candidateName == "" {
		return nil, NewValidationError("candidateName", "candidateName is required")
	}

	now := time.Now()
	conversation := &models.Conversation{
		ID:            uuid.New(),
		Title:         fmt.Sprintf("%s Interview - %s", models.InterviewTypeLabels[interviewType], candidateName),
		Type:          interviewType,
		CandidateName: candidateName,
		Status:        models.StatusInProgress,
		StartedAt:     now,
		CreatedAt:     now,
	}

	if err := s.convRepo.Create(conversation); err != nil {
		return nil, err
	}

	return conversation, nil
}

func (s *interviewService) Get(id string) (*models.Conversation, error) {
	convID, err := parseConversationID(id)
	if err != nil {
		return nil, err
	}

	conversation, err := s.convRepo.FindByID(convID)
	if err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindByConversation(convID)
	if err != nil {
		return nil, err
	}
	conversation.Messages = messages

	feedback, err := s.feedbackRepo.FindByConversation(convID)
	if err == nil {
		conversation.Feedback = feedback
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	return conversation, nil
}

func (s *interviewService) List() ([]models.Conversation, error) {
	return s.convRepo.FindAll()
}

func (s *interviewService) AddMessage(id string, req models.AddMessageRequest) (*models.Message, error) {
	convID, err := parseConversationID(id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Content) == "" {
		return nil, NewValidationError("content", "content is required")
	}

	if _, err := s.convRepo.FindByID(convID); err != nil {
		return nil, err
	}

	message := &models.Message{
		ID:             uuid.New(),
		ConversationID: convID,
		Role:           models.RoleUser,
		Content:        req.Content,
		CreatedAt:      time.Now(),
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	// Interviewer turns are produced out of band; the caller sees only the
	// appended user message and picks the reply up through polling.
	if s.replies != nil {
		s.replies.Enqueue(convID)
	}

	return message, nil
}

func (s *interviewService) End(ctx context.Context, id string) (*models.Feedback, error) {
	convID, err := parseConversationID(id)
	if err != nil {
		return nil, err
	}

	conversation, err := s.convRepo.FindByID(convID)
	if err != nil {
		return nil, err
	}

	// Ending twice is a no-op that returns the existing feedback; there is
	// never a second feedback row or a second model call for a completed
	// conversation.
	if conversation.Status == models.StatusCompleted {
		return s.feedbackRepo.FindByConversation(convID)
	}

	messages, err := s.messageRepo.FindByConversation(convID)
	if err != nil {
		return nil, err
	}

	// An empty transcript is still evaluated; the model hands back low scores
	// rather than the API rejecting the session.
	transcript := s.promptBuilder.BuildTranscript(messages)
	prompt := s.promptBuilder.BuildFeedbackPrompt(transcript)

	response, err := s.geminiService.GenerateJSONWithRetry(ctx, prompt, 0.3, s.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate feedback: %w", err)
	}

	var eval feedbackEvaluation
	if err := parseJSONResponse(response, &eval); err != nil {
		// Nothing is persisted on this path; the conversation stays
		// in_progress and the client retries the end call.
		return nil, fmt.Errorf("failed to parse feedback response: %w", err)
	}

	feedback := buildFeedback(convID, &eval)

	var raceLost bool
	err = s.convRepo.Transaction(func(tx *gorm.DB) error {
		won, err := s.convRepo.CompleteIfInProgress(tx, convID, feedback.CreatedAt)
		if err != nil {
			return err
		}
		if !won {
			raceLost = true
			return nil
		}
		return s.feedbackRepo.Create(tx, feedback)
	})
	if err != nil {
		return nil, err
	}

	if raceLost {
		// A concurrent end call finished first; surface its feedback.
		return s.feedbackRepo.FindByConversation(convID)
	}

	log.Printf("✅ Interview %s completed, verdict: %s\n", convID, feedback.Verdict)
	return feedback, nil
}

func buildFeedback(conversationID uuid.UUID, eval *feedbackEvaluation) *models.Feedback {
	// The model scores 0-10; storage holds 0-100.
	overall := clampScore(int(math.Round(eval.OverallScore*10)), 0, 100)

	verdict := models.Verdict(eval.Verdict)
	if !verdict.Valid() {
		verdict = models.VerdictHold
	}

	feedback := &models.Feedback{
		ID:             uuid.New(),
		ConversationID: conversationID,
		OverallScore:   overall,
		Verdict:        verdict,
		Summary:        eval.Summary,
		Categories:     eval.Categories,
		Strengths:      eval.Strengths,
		Improvements:   eval.Improvements,
		CreatedAt:      time.Now(),
	}
	if eval.Recommendation != "" {
		feedback.Recommendation = &eval.Recommendation
	}
	return feedback
}

// parseConversationID maps a malformed id to not-found: an id that can never
// name a row behaves exactly like one that names no row.
func parseConversationID(id string) (uuid.UUID, error) {
	convID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("conversation %q: %w", id, repositories.ErrNotFound)
	}
	return convID, nil
}
