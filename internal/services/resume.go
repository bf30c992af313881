package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"

	"interview-coach/internal/models"
	"interview-coach/internal/repositories"
)

type ResumeService interface {
	Analyze(ctx context.Context, req models.AnalyzeResumeRequest) (*models.AnalyzeResumeResponse, error)
	ExtractPDF(file *multipart.FileHeader) (*models.ExtractResumeResponse, error)
}

type resumeService struct {
	jobRepo       repositories.JobRepository
	geminiService GeminiService
	storage       StorageService
	resumeParser  ResumeParserService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewResumeService(
	jobRepo repositories.JobRepository,
	geminiService GeminiService,
	storage StorageService,
	resumeParser ResumeParserService,
	maxRetries int,
) ResumeService {
	return &resumeService{
		jobRepo:       jobRepo,
		geminiService: geminiService,
		storage:       storage,
		resumeParser:  resumeParser,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// resumeMatchResult mirrors the JSON shape the model is prompted to return.
type resumeMatchResult struct {
	Message     string       `json:"message"`
	MatchedJobs []matchedJob `json:"matchedJobs"`
}

type matchedJob struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	MatchScore   int      `json:"matchScore"`
}

func (s *resumeService) Analyze(ctx context.Context, req models.AnalyzeResumeRequest) (*models.AnalyzeResumeResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, NewValidationError("text", "text is required")
	}

	prompt := s.promptBuilder.BuildResumeMatchPrompt(req.Text)

	response, err := s.geminiService.GenerateJSONWithRetry(ctx, prompt, 0.5, s.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze resume: %w", err)
	}

	var result resumeMatchResult
	if err := parseJSONResponse(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse resume analysis: %w", err)
	}

	now := time.Now()
	jobs := make([]models.Job, 0, len(result.MatchedJobs))
	for _, m := range result.MatchedJobs {
		score := clampScore(m.MatchScore, 0, 100)
		jobs = append(jobs, models.Job{
			ID:           uuid.New(),
			Title:        m.Title,
			Company:      m.Company,
			Location:     m.Location,
			Description:  m.Description,
			Requirements: m.Requirements,
			MatchScore:   &score,
			CreatedAt:    now,
		})
	}

	// Matched jobs are written back to the job store so the jobs listing and
	// the analysis result stay consistent.
	if err := s.jobRepo.CreateBatch(jobs); err != nil {
		return nil, err
	}

	return &models.AnalyzeResumeResponse{
		Message:     result.Message,
		MatchedJobs: jobs,
	}, nil
}

// ExtractPDF pulls plain text out of an uploaded resume PDF so the client can
// feed it to Analyze. The upload is parked on disk only for the duration of
// the extraction.
func (s *resumeService) ExtractPDF(file *multipart.FileHeader) (*models.ExtractResumeResponse, error) {
	if file == nil {
		return nil, NewValidationError("resume", "resume file is required")
	}

	filename, filePath, err := s.storage.SaveResume(file)
	if err != nil {
		if strings.Contains(err.Error(), "invalid file extension") {
			return nil, NewValidationError("resume", "resume must be a PDF file")
		}
		return nil, fmt.Errorf("failed to store resume upload: %w", err)
	}
	defer func() {
		if err := s.storage.DeleteFile(filename); err != nil {
			log.Printf("⚠️  Failed to clean up resume upload %s: %v\n", filename, err)
		}
	}()

	content, err := s.resumeParser.ExtractText(filePath)
	if err != nil {
		return nil, NewValidationError("resume", "could not extract text from PDF")
	}

	return &models.ExtractResumeResponse{
		Text:      content.Text,
		PageCount: content.PageCount,
	}, nil
}
