package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"interview-coach/internal/models"
)

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs []models.Job
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, *job)
	return nil
}

func (r *fakeJobRepo) CreateBatch(jobs []models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, jobs...)
	return nil
}

func (r *fakeJobRepo) FindAll() ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Job, len(r.jobs))
	copy(out, r.jobs)
	return out, nil
}

const validMatchJSON = `{
	"message": "Strong backend profile.",
	"matchedJobs": [
		{
			"title": "Backend Engineer",
			"company": "Acme",
			"location": "Berlin",
			"description": "APIs and data plumbing.",
			"requirements": ["Go", "Postgres"],
			"matchScore": 88
		},
		{
			"title": "Platform Engineer",
			"company": "Globex",
			"location": "Remote",
			"description": "Infra tooling.",
			"requirements": ["Kubernetes"],
			"matchScore": 120
		}
	]
}`

func newResumeFixture(geminiResponse string) (*fakeJobRepo, *fakeGemini, ResumeService) {
	jobRepo := &fakeJobRepo{}
	gemini := &fakeGemini{response: geminiResponse}
	service := NewResumeService(jobRepo, gemini, nil, nil, 3)
	return jobRepo, gemini, service
}

func TestAnalyzeRejectsEmptyText(t *testing.T) {
	_, gemini, service := newResumeFixture(validMatchJSON)

	_, err := service.Analyze(context.Background(), models.AnalyzeResumeRequest{Text: "  \n "})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if gemini.calls != 0 {
		t.Fatal("empty text must not reach the model")
	}
}

func TestAnalyzeReturnsJobShapedMatches(t *testing.T) {
	_, _, service := newResumeFixture(validMatchJSON)

	result, err := service.Analyze(context.Background(), models.AnalyzeResumeRequest{Text: "Go engineer, 5 years"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Message == "" {
		t.Fatal("expected analysis message")
	}
	if len(result.MatchedJobs) != 2 {
		t.Fatalf("expected 2 matched jobs, got %d", len(result.MatchedJobs))
	}
	for i, job := range result.MatchedJobs {
		if job.Title == "" || job.Company == "" || job.Location == "" || job.Description == "" {
			t.Fatalf("job %d missing required fields: %+v", i, job)
		}
		if job.MatchScore == nil {
			t.Fatalf("job %d missing match score", i)
		}
		if *job.MatchScore < 0 || *job.MatchScore > 100 {
			t.Fatalf("job %d match score out of range: %d", i, *job.MatchScore)
		}
	}
	if *result.MatchedJobs[1].MatchScore != 100 {
		t.Fatalf("expected score 120 clamped to 100, got %d", *result.MatchedJobs[1].MatchScore)
	}
}

func TestAnalyzePersistsMatchedJobs(t *testing.T) {
	jobRepo, _, service := newResumeFixture(validMatchJSON)

	if _, err := service.Analyze(context.Background(), models.AnalyzeResumeRequest{Text: "resume"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := jobRepo.FindAll()
	if len(stored) != 2 {
		t.Fatalf("expected matched jobs persisted, got %d rows", len(stored))
	}
}

func TestAnalyzeUnparsableModelReply(t *testing.T) {
	jobRepo, _, service := newResumeFixture("no jobs today")

	if _, err := service.Analyze(context.Background(), models.AnalyzeResumeRequest{Text: "resume"}); err == nil {
		t.Fatal("expected parse error")
	}
	if len(jobRepo.jobs) != 0 {
		t.Fatal("nothing may be persisted when the reply is unparsable")
	}
}

func TestAnalyzeUpstreamError(t *testing.T) {
	_, gemini, service := newResumeFixture("")
	gemini.err = fmt.Errorf("upstream timeout")

	if _, err := service.Analyze(context.Background(), models.AnalyzeResumeRequest{Text: "resume"}); err == nil {
		t.Fatal("expected upstream error")
	}
}
