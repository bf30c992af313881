package handlers

import (
	"github.com/gofiber/fiber/v2"

	"interview-coach/internal/models"
	"interview-coach/internal/repositories"
)

type JobHandler struct {
	jobRepo repositories.JobRepository
}

func NewJobHandler(jobRepo repositories.JobRepository) *JobHandler {
	return &JobHandler{
		jobRepo: jobRepo,
	}
}

// HandleList handles GET /api/jobs. The list is legitimately empty until a
// resume analysis has written matches back.
func (h *JobHandler) HandleList(c *fiber.Ctx) error {
	jobs, err := h.jobRepo.FindAll()
	if err != nil {
		return respondError(c, err, "Job not found")
	}

	if jobs == nil {
		jobs = []models.Job{}
	}
	return c.JSON(jobs)
}
